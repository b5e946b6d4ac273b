package translate

import (
	"context"
	"errors"
	"testing"
	"time"

	"subtran/internal/logging"
)

// shortProvider returns fewer translations than asked for.
type shortProvider struct{}

func (shortProvider) Name() string { return "short" }

func (shortProvider) Translate(_ context.Context, batch []string) ([]string, error) {
	return batch[:len(batch)-1], nil
}

// flakyProvider fails a fixed number of times, then succeeds.
type flakyProvider struct {
	failures int
	calls    int
	err      error
}

func (f *flakyProvider) Name() string { return "flaky" }

func (f *flakyProvider) Translate(_ context.Context, batch []string) ([]string, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, f.err
	}
	out := make([]string, len(batch))
	for i, s := range batch {
		out[i] = "ok: " + s
	}
	return out, nil
}

func TestEngineBatchesAndPreservesOrder(t *testing.T) {
	p, err := New("mock", Options{})
	if err != nil {
		t.Fatalf("new mock: %v", err)
	}
	e := NewEngine(p, 2)
	got := e.TranslateAll(context.Background(), []string{"a", "b", "c"})
	want := []string{"MOCK: a", "MOCK: b", "MOCK: c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestEnginePadsShortResults(t *testing.T) {
	e := NewEngine(shortProvider{}, 3)
	got := e.TranslateAll(context.Background(), []string{"a", "b", "c", "d"})
	if len(got) != 4 {
		t.Fatalf("expected 4 results, got %d", len(got))
	}
	if got[2] != "" || got[3] != "" {
		t.Fatalf("under-returned entries must be padded empty: %q", got)
	}
}

func TestEnginePadsFailedChunk(t *testing.T) {
	e := NewEngine(&flakyProvider{failures: 100, err: errors.New("boom")}, 2)
	got := e.TranslateAll(context.Background(), []string{"a", "b", "c"})
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	for i, s := range got {
		if s != "" {
			t.Fatalf("position %d should be empty, got %q", i, s)
		}
	}
}

func TestEngineEmptyInput(t *testing.T) {
	e := NewEngine(&flakyProvider{}, 0)
	if got := e.TranslateAll(context.Background(), nil); len(got) != 0 {
		t.Fatalf("expected no results, got %v", got)
	}
}

func TestRetrySucceedsAfterRateLimit(t *testing.T) {
	f := &flakyProvider{failures: 2, err: ErrRateLimited}
	var waits []time.Duration
	r := &retrier{
		next:   f,
		max:    5,
		base:   time.Second,
		sleep:  func(d time.Duration) { waits = append(waits, d) },
		logger: logging.NewNopLogger(),
	}
	got, err := r.Translate(context.Background(), []string{"x"})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got[0] != "ok: x" {
		t.Fatalf("unexpected result %q", got[0])
	}
	if len(waits) != 2 || waits[0] != time.Second || waits[1] != 2*time.Second {
		t.Fatalf("unexpected backoff %v", waits)
	}
}

func TestRetryExhausted(t *testing.T) {
	f := &flakyProvider{failures: 100, err: errors.New("down")}
	r := &retrier{
		next:   f,
		max:    3,
		base:   time.Millisecond,
		sleep:  func(time.Duration) {},
		logger: logging.NewNopLogger(),
	}
	if _, err := r.Translate(context.Background(), []string{"x"}); err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if f.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", f.calls)
	}
}

func TestRegistryUnknownProvider(t *testing.T) {
	if _, err := New("nope", Options{}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestRegistryList(t *testing.T) {
	names := List()
	var haveMock, haveOpenAI bool
	for _, n := range names {
		switch n {
		case "mock":
			haveMock = true
		case "openai":
			haveOpenAI = true
		}
	}
	if !haveMock || !haveOpenAI {
		t.Fatalf("expected built-in providers in %v", names)
	}
}
