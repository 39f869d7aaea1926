package booking

import (
	"context"
	"fmt"
	"sync"

	bookingRepo "roombook/database/repository/booking"
	"roombook/models"
	ai "roombook/services/intelligence"

	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService on top of a BookingRepository.
type DefaultBookingService struct {
	Repo    bookingRepo.BookingRepository
	Drafter ai.AgendaDrafter
	Logger  *zap.Logger

	mu       sync.RWMutex
	bookings []models.Booking
	inFlight int
}

func NewDefaultBookingService(repo bookingRepo.BookingRepository, drafter ai.AgendaDrafter, logger *zap.Logger) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:     repo,
		Drafter:  drafter,
		Logger:   logger.With(zap.String("component", "booking_service")),
		bookings: []models.Booking{},
	}
}

// Load is not coalesced: concurrent loads all hit the gateway and the last to
// finish decides the collection. A failure is logged here, since the caller
// still gets a usable empty collection.
func (s *DefaultBookingService) Load(ctx context.Context) ([]models.Booking, error) {
	s.setLoading(1)
	defer s.setLoading(-1)

	fetched, err := s.Repo.FetchAll(ctx)
	if err != nil {
		s.Logger.Error("Failed to fetch bookings", zap.Error(err))
		fetched = []models.Booking{}
	}

	s.mu.Lock()
	s.bookings = fetched
	s.mu.Unlock()

	return clone(fetched), err
}

// Submit leaves logging of a returned error to the caller.
func (s *DefaultBookingService) Submit(ctx context.Context, req models.BookingCreationRequest) (*models.Booking, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBooking, err)
	}

	if req.DraftAgenda && req.Agenda == "" && req.Topic != "" && s.Drafter != nil {
		duration := ai.MeetingDuration(req.StartTime, req.EndTime)
		req.Agenda = s.Drafter.DraftAgenda(ctx, req.Topic, duration)
	}

	created, err := s.Repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.bookings = append([]models.Booking{*created}, s.bookings...)
	s.mu.Unlock()

	return created, nil
}

func (s *DefaultBookingService) DraftAgenda(ctx context.Context, topic, startTime, endTime string) models.AgendaResponse {
	duration := ai.MeetingDuration(startTime, endTime)
	resp := models.AgendaResponse{DurationMinutes: duration, Agenda: ai.FallbackUnavailable}
	if s.Drafter != nil {
		resp.Agenda = s.Drafter.DraftAgenda(ctx, topic, duration)
	}
	return resp
}

// Snapshot returns a copy of the collection in stored order.
func (s *DefaultBookingService) Snapshot() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.bookings)
}

func (s *DefaultBookingService) Sorted() []models.Booking {
	return SortChronological(s.Snapshot())
}

func (s *DefaultBookingService) Histogram() []models.HourlyLoad {
	return HourlyHistogram(s.Snapshot())
}

func (s *DefaultBookingService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight > 0
}

func (s *DefaultBookingService) setLoading(delta int) {
	s.mu.Lock()
	s.inFlight += delta
	s.mu.Unlock()
}

func clone(in []models.Booking) []models.Booking {
	out := make([]models.Booking, len(in))
	copy(out, in)
	return out
}
