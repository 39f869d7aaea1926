package bookingRepo

import (
	"context"

	"roombook/models"

	"github.com/google/uuid"
)

// BookingRepository is the persistence gateway. Every variant presents the same contract.
type BookingRepository interface {
	// FetchAll returns every stored booking in arrival order.
	FetchAll(ctx context.Context) ([]models.Booking, error)
	// Create assigns an id, persists the booking and returns it.
	Create(ctx context.Context, req models.BookingCreationRequest) (*models.Booking, error)
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}

// IDGenerator produces booking ids.
type IDGenerator func() string

// NewID returns a random 128-bit token.
func NewID() string {
	return uuid.NewString()
}
