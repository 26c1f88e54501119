// Package retry provides linear backoff retry logic for remote calls.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// NonRetryableError wraps errors that should not be retried
type NonRetryableError struct {
	Err error
}

func (e *NonRetryableError) Error() string {
	return fmt.Sprintf("non-retryable: %v", e.Err)
}

func (e *NonRetryableError) Unwrap() error {
	return e.Err
}

// NonRetryable wraps an error to indicate it should not be retried
func NonRetryable(err error) error {
	if err == nil {
		return nil
	}
	return &NonRetryableError{Err: err}
}

// IsNonRetryable checks if an error is marked as non-retryable
func IsNonRetryable(err error) bool {
	var nre *NonRetryableError
	return errors.As(err, &nre)
}

// Config provides retry configuration
type Config struct {
	MaxAttempts int           // Maximum number of attempts (0 = just run once)
	BaseDelay   time.Duration // Delay unit; wait before attempt n+1 is BaseDelay*n

	// Sleep overrides the backoff sleep. Nil means a context-aware
	// timer sleep. Tests inject a recorder here.
	Sleep func(time.Duration)
}

// DefaultConfig returns the schedule used for remote lookups:
// three attempts with 5s, 10s pauses between them.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		BaseDelay:   5 * time.Second,
	}
}

// Do executes fn with linear backoff retry. The wait before attempt n+1
// is BaseDelay multiplied by n, so the schedule grows 5s, 10s, 15s with
// the default base. Errors wrapped with NonRetryable abandon the loop
// immediately.
func Do(ctx context.Context, cfg Config, fn func(attempt int) error) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if cfg.BaseDelay < 0 {
		return errors.New("retry: BaseDelay cannot be negative")
	}

	var lastErr error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err := fn(attempt)
		if err == nil {
			return nil
		}
		lastErr = err

		if IsNonRetryable(err) {
			return err
		}

		if ctx.Err() != nil {
			return fmt.Errorf("retry cancelled before attempt %d: %w", attempt+1, ctx.Err())
		}

		// Don't sleep after the last attempt
		if attempt == cfg.MaxAttempts {
			break
		}

		wait := cfg.BaseDelay * time.Duration(attempt)
		if cfg.Sleep != nil {
			cfg.Sleep(wait)
			continue
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("retry cancelled during backoff for attempt %d: %w", attempt+1, ctx.Err())
		case <-timer.C:
		}
	}

	return fmt.Errorf("retry failed after %d attempts: %w", cfg.MaxAttempts, lastErr)
}
