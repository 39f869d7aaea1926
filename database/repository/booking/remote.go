package bookingRepo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"roombook/models"

	"go.uber.org/zap"
)

// remoteStatus is the write acknowledgement of the spreadsheet endpoint.
type remoteStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

const remoteStatusError = "error"

type remoteBookingRepo struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
	newID    IDGenerator
}

// NewRemoteBookingRepo returns a BookingRepository backed by the spreadsheet HTTP endpoint.
// The same URL serves reads (GET) and writes (POST).
func NewRemoteBookingRepo(endpoint string, client *http.Client, logger *zap.Logger, newID IDGenerator) BookingRepository {
	if client == nil {
		client = http.DefaultClient
	}
	if newID == nil {
		newID = NewID
	}
	return &remoteBookingRepo{
		endpoint: endpoint,
		client:   client,
		logger:   logger.With(zap.String("component", "remote_booking_repo")),
		newID:    newID,
	}
}

func (r *remoteBookingRepo) FetchAll(ctx context.Context) ([]models.Booking, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint, nil)
	if err != nil {
		return nil, fetchFailed("build request", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fetchFailed("request", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		drain(resp.Body)
		return nil, fetchFailed("read bookings", &statusError{Code: resp.StatusCode})
	}

	var bookings []models.Booking
	if err := json.NewDecoder(resp.Body).Decode(&bookings); err != nil {
		return nil, fetchFailed("decode response", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	r.logger.Debug("fetched bookings", zap.Int("count", len(bookings)))
	return bookings, nil
}

// Create posts the client-assembled booking. The echoed body is only checked for an error status.
func (r *remoteBookingRepo) Create(ctx context.Context, in models.BookingCreationRequest) (*models.Booking, error) {
	booking := in.ToBooking(r.newID())

	payload, err := json.Marshal(booking)
	if err != nil {
		return nil, createFailed("marshal booking", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, createFailed("build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, createFailed("request", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		drain(resp.Body)
		return nil, createFailed("write booking", &statusError{Code: resp.StatusCode})
	}

	var ack remoteStatus
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return nil, createFailed("decode response", err)
	}
	if ack.Status == remoteStatusError {
		return nil, &RemoteStatusError{Message: ack.Message}
	}

	r.logger.Info("booking created", zap.String("id", booking.ID), zap.String("date", booking.Date))
	return &booking, nil
}

// Ping issues a read; the spreadsheet endpoint has no dedicated health route.
func (r *remoteBookingRepo) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	drain(resp.Body)
	if !isSuccess(resp.StatusCode) {
		return &statusError{Code: resp.StatusCode}
	}
	return nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

func drain(body io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 64<<10))
}
