package ddc

import (
	"context"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/moffa90/go-ddcci/capture"
	"github.com/moffa90/go-ddcci/protocol"
)

// retry runs exchange until it succeeds, fails with a non-retryable error,
// or Retries+1 attempts have failed. The error of the last attempt is
// returned, wrapped in *RetriesExhaustedError when the attempts ran out.
//
// The context is checked before each attempt only; protocol delays are
// never cut short.
//
// Each attempt is a whole exchange: a failed read resends the request
// rather than reading again, so a reply lost on the bus cannot leave the
// display and the host out of step.
func (c *Client) retry(ctx context.Context, op capture.Op, exchange func(attempt int) error) error {
	attempt := 0
	permanent := false

	operation := func() error {
		if err := ctx.Err(); err != nil {
			permanent = true
			return backoff.Permanent(err)
		}
		attempt++
		err := exchange(attempt)
		if err == nil {
			return nil
		}

		c.logDebug("%s: failed attempt #%d: %v", op, attempt, err)
		c.record(capture.Event{
			Direction: capture.DirectionIn,
			Op:        op,
			Category:  capture.CategoryError,
			Attempt:   attempt,
			Error:     err.Error(),
		})
		if !protocol.IsRetryable(err) {
			permanent = true
			return backoff.Permanent(err)
		}
		return err
	}

	// The wait between attempts goes through the configured sleep, so the
	// policy itself carries no delay. WithMaxRetries treats 0 as unlimited.
	var policy backoff.BackOff = &backoff.StopBackOff{}
	if c.config.Retries > 0 {
		policy = backoff.WithMaxRetries(&backoff.ZeroBackOff{}, uint64(c.config.Retries))
	}
	notify := func(error, time.Duration) {
		c.sleep(protocol.RetryDelay)
	}

	err := backoff.RetryNotify(operation, policy, notify)
	if err == nil || permanent {
		return err
	}
	return &RetriesExhaustedError{Operation: op.String(), Attempts: attempt, Err: err}
}
