package bookingRepo

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchFailed wraps any transport or decode failure on read.
	ErrFetchFailed = errors.New("fetch bookings failed")
	// ErrCreateFailed wraps any transport, decode or application failure on write.
	ErrCreateFailed = errors.New("create booking failed")
)

// RemoteStatusError is returned when the remote store answers {"status":"error"}.
type RemoteStatusError struct {
	Message string
}

func (e *RemoteStatusError) Error() string {
	return fmt.Sprintf("%s: remote store rejected booking: %s", ErrCreateFailed, e.Message)
}

func (e *RemoteStatusError) Is(target error) bool {
	return target == ErrCreateFailed
}

// fetchFailed and createFailed keep both the sentinel and the cause in the chain.
func fetchFailed(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrFetchFailed, op, err)
}

func createFailed(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrCreateFailed, op, err)
}

// statusError reports a non-2xx answer from the remote store.
type statusError struct {
	Code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}
