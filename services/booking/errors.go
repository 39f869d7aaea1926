package booking

import "errors"

// ErrInvalidBooking wraps validator errors for a rejected creation request.
var ErrInvalidBooking = errors.New("invalid booking request")
