package translate

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"subtran/internal/logging"
)

// WithRetry wraps a provider with bounded exponential backoff. Every error
// is retried, rate limits included; retrying is this decorator's job alone,
// providers never loop internally.
func WithRetry(next Provider, maxAttempts int, base time.Duration) Provider {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &retrier{
		next:   next,
		max:    maxAttempts,
		base:   base,
		sleep:  time.Sleep,
		logger: logging.NewLogger("translate-retry"),
	}
}

type retrier struct {
	next   Provider
	max    int
	base   time.Duration
	sleep  func(time.Duration) // injectable for tests
	logger *logrus.Entry
}

func (r *retrier) Name() string { return r.next.Name() }

func (r *retrier) Translate(ctx context.Context, batch []string) ([]string, error) {
	var lastErr error
	for attempt := 1; attempt <= r.max; attempt++ {
		out, err := r.next.Translate(ctx, batch)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if attempt == r.max {
			break
		}
		wait := r.base << (attempt - 1)
		r.logger.WithError(err).WithFields(logrus.Fields{
			"attempt": attempt,
			"wait":    wait,
		}).Warn("Translation attempt failed, retrying")
		r.sleep(wait)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}
