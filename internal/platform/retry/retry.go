package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ridloal/pos-web-client/internal/platform/logger"
)

const (
	DefaultMaxRetries = 3
	DefaultDelay      = time.Second
)

type permanentError struct {
	err error
}

func (p *permanentError) Error() string { return p.err.Error() }

func (p *permanentError) Unwrap() error { return p.err }

// Permanent marks err as not worth retrying. Do returns the wrapped error
// immediately.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// Do calls fn up to maxRetries times. After the n-th failure it waits
// delay*n before the next attempt. The last error is returned when every
// attempt fails; ctx cancellation ends the wait early.
func Do(ctx context.Context, maxRetries int, delay time.Duration, fn func(ctx context.Context) error) error {
	if maxRetries < 1 {
		maxRetries = 1
	}

	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		var perm *permanentError
		if errors.As(err, &perm) {
			return perm.err
		}
		if attempt == maxRetries {
			break
		}

		logger.Warn(fmt.Sprintf("Request failed (attempt %d/%d), retrying...", attempt, maxRetries), "error", err)

		timer := time.NewTimer(delay * time.Duration(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("retry aborted after attempt %d: %w", attempt, ctx.Err())
		case <-timer.C:
		}
	}
	return err
}
