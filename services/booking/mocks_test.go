package booking

import (
	"context"

	"roombook/models"

	"github.com/stretchr/testify/mock"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) FetchAll(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	var out []models.Booking
	if v := args.Get(0); v != nil {
		out = v.([]models.Booking)
	}
	return out, args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, req models.BookingCreationRequest) (*models.Booking, error) {
	args := m.Called(ctx, req)
	var out *models.Booking
	if v := args.Get(0); v != nil {
		out = v.(*models.Booking)
	}
	return out, args.Error(1)
}

func (m *mockRepo) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockDrafter struct {
	mock.Mock
}

func (m *mockDrafter) DraftAgenda(ctx context.Context, topic string, durationMinutes int) string {
	return m.Called(ctx, topic, durationMinutes).String(0)
}
