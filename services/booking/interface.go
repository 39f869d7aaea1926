package booking

import (
	"context"

	"roombook/models"
)

// BookingService owns the in-memory booking collection shown by the widget.
type BookingService interface {
	// Load replaces the collection with the gateway's contents. On failure the
	// collection becomes empty and the error is returned for logging or display.
	Load(ctx context.Context) ([]models.Booking, error)
	// Submit optionally drafts an agenda, creates the booking and prepends it.
	Submit(ctx context.Context, req models.BookingCreationRequest) (*models.Booking, error)
	// DraftAgenda drafts agenda text for a topic and time range without creating anything.
	DraftAgenda(ctx context.Context, topic, startTime, endTime string) models.AgendaResponse

	Snapshot() []models.Booking
	Sorted() []models.Booking
	Histogram() []models.HourlyLoad
	Loading() bool
}
