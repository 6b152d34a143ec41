package sheets

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// errPermanent marks an error that must not be retried.
type errPermanent struct{ err error }

func (e errPermanent) Error() string { return e.err.Error() }
func (e errPermanent) Unwrap() error { return e.err }

func permanent(err error) error { return errPermanent{err: err} }

// Backoff retries an operation with exponential delay plus jitter.
type Backoff struct {
	base     time.Duration
	attempts int
	jitter   func(time.Duration) time.Duration
}

// NewBackoff returns a Backoff making at most attempts calls, sleeping
// base, 2*base, 4*base... (plus up to 50% jitter) between them.
func NewBackoff(base time.Duration, attempts int) Backoff {
	if attempts < 1 {
		attempts = 1
	}
	return Backoff{
		base:     base,
		attempts: attempts,
		jitter: func(d time.Duration) time.Duration {
			if d <= 0 {
				return 0
			}
			return time.Duration(rand.Int63n(int64(d)/2 + 1))
		},
	}
}

// Do calls fn until it succeeds, returns a permanent error, the attempts
// are exhausted or ctx is done. The last error is returned.
func (b Backoff) Do(ctx context.Context, fn func(attempt int) error) error {
	var err error
	for i := 0; i < b.attempts; i++ {
		if err = fn(i); err == nil {
			return nil
		}
		var p errPermanent
		if errors.As(err, &p) {
			return p.err
		}
		if i == b.attempts-1 {
			break
		}
		d := time.Duration(1<<i) * b.base
		d += b.jitter(d)
		t := time.NewTimer(d)
		select {
		case <-ctx.Done():
			t.Stop()
			return errors.Join(err, ctx.Err())
		case <-t.C:
		}
	}
	return err
}
