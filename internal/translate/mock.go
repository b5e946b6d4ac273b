package translate

import "context"

func init() {
	Register("mock", func(opts Options) (Provider, error) {
		prefix := opts.Model
		if prefix == "" {
			prefix = "MOCK"
		}
		return &mockProvider{prefix: prefix}, nil
	})
}

// mockProvider echoes its input with a prefix. Useful for dry runs of the
// pipeline without an API key and for tests.
type mockProvider struct {
	prefix string
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Translate(_ context.Context, batch []string) ([]string, error) {
	out := make([]string, len(batch))
	for i, text := range batch {
		out[i] = m.prefix + ": " + text
	}
	return out, nil
}
