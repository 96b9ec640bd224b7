package apperr

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// FromStore translates transient store failures into the retryable
// unavailable kind. Typed business errors and everything else pass through
// unchanged.
func FromStore(err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return ErrStoreUnavailable
	}
	return err
}
