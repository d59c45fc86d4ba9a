package utils

import (
	"context"
	"time"
)

// RetryFixed calls fn until it succeeds or retries extra attempts have
// failed, waiting delay between attempts. The last error is returned.
func RetryFixed(ctx context.Context, retries int, delay time.Duration, fn func(attempt int) error) error {
	var err error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 && delay > 0 {
			t := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
		}
		if err = fn(attempt); err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return err
}
