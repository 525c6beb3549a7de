// Package retry re-runs room mutations that lost a concurrent write.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
)

// Attempts is the total number of tries for one client request.
const Attempts = 3

// OnConflict calls fn until it returns something other than apperror.ErrConflict, at most Attempts times.
// fn must re-read the room on every call.
func OnConflict[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 5 * time.Millisecond
	policy.MaxInterval = 50 * time.Millisecond

	operation := func() (T, error) {
		result, err := fn(ctx)
		if err != nil && !errors.Is(err, apperror.ErrConflict) {
			return result, backoff.Permanent(err)
		}

		return result, err
	}

	return backoff.RetryWithData[T](operation, backoff.WithContext(backoff.WithMaxRetries(policy, Attempts-1), ctx))
}
