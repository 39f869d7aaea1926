package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	bookingRepo "roombook/database/repository/booking"
	"roombook/models"
	"roombook/services/booking"
	"roombook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockService struct {
	mock.Mock
}

func (m *mockService) Load(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	var out []models.Booking
	if v := args.Get(0); v != nil {
		out = v.([]models.Booking)
	}
	return out, args.Error(1)
}

func (m *mockService) Submit(ctx context.Context, req models.BookingCreationRequest) (*models.Booking, error) {
	args := m.Called(ctx, req)
	var out *models.Booking
	if v := args.Get(0); v != nil {
		out = v.(*models.Booking)
	}
	return out, args.Error(1)
}

func (m *mockService) DraftAgenda(ctx context.Context, topic, startTime, endTime string) models.AgendaResponse {
	return m.Called(ctx, topic, startTime, endTime).Get(0).(models.AgendaResponse)
}

func (m *mockService) Snapshot() []models.Booking {
	return m.Called().Get(0).([]models.Booking)
}

func (m *mockService) Sorted() []models.Booking {
	return m.Called().Get(0).([]models.Booking)
}

func (m *mockService) Histogram() []models.HourlyLoad {
	return m.Called().Get(0).([]models.HourlyLoad)
}

func (m *mockService) Loading() bool {
	return m.Called().Bool(0)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

func newTestRouter(svc booking.BookingService, pinger stubPinger) *gin.Engine {
	bh := NewBookingHandler(svc, zap.NewNop())
	ah := NewAgendaHandler(svc, zap.NewNop())

	r := gin.New()
	r.GET("/api/bookings", bh.ListBookings)
	r.POST("/api/bookings", bh.CreateBooking)
	r.POST("/api/bookings/refresh", bh.RefreshBookings)
	r.GET("/api/bookings/stats", bh.GetStats)
	r.POST("/api/ai/agenda", ah.DraftAgendaHandler)
	r.GET("/health", NewHealthHandler("local", pinger))
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

var sampleBookings = []models.Booking{
	{ID: "2", Date: "2023-10-28", StartTime: "11:00", EndTime: "12:00", EmployeeName: "Елена"},
	{ID: "1", Date: "2023-10-27", StartTime: "09:00", EndTime: "10:00", EmployeeName: "Анна"},
}

func TestListBookings(t *testing.T) {
	t.Parallel()

	svc := &mockService{}
	svc.On("Sorted").Return(sampleBookings)
	svc.On("Loading").Return(false)

	rr := serve(newTestRouter(svc, stubPinger{}), http.MethodGet, "/api/bookings", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Bookings []models.Booking `json:"bookings"`
		Count    int              `json:"count"`
		Loading  bool             `json:"loading"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, sampleBookings, body.Bookings)
	assert.Equal(t, 2, body.Count)
	assert.False(t, body.Loading)
}

func TestRefreshBookings(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		loadErr     error
		sorted      []models.Booking
		wantWarning bool
	}{
		{name: "Success", sorted: sampleBookings},
		{name: "Fetch failed", loadErr: bookingRepo.ErrFetchFailed, sorted: []models.Booking{}, wantWarning: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &mockService{}
			svc.On("Load", mock.Anything).Return(tc.sorted, tc.loadErr)
			svc.On("Sorted").Return(tc.sorted)

			rr := serve(newTestRouter(svc, stubPinger{}), http.MethodPost, "/api/bookings/refresh", "")

			require.Equal(t, http.StatusOK, rr.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.EqualValues(t, len(tc.sorted), body["count"])
			_, hasWarning := body["warning"]
			assert.Equal(t, tc.wantWarning, hasWarning)
			svc.AssertExpectations(t)
		})
	}
}

func TestCreateBooking(t *testing.T) {
	t.Parallel()

	validBody := `{"date":"2023-10-29","startTime":"09:00","endTime":"10:30","employeeName":"Мария","topic":"Ретро","draftAgenda":true}`
	validReq := models.BookingCreationRequest{
		Date: "2023-10-29", StartTime: "09:00", EndTime: "10:30",
		EmployeeName: "Мария", Topic: "Ретро", DraftAgenda: true,
	}
	created := validReq.ToBooking("abc")

	invalid := models.BookingCreationRequest{Date: "2023-10-29", StartTime: "09:00", EndTime: "10:30"}
	validationErr := fmt.Errorf("%w: %w", booking.ErrInvalidBooking, invalid.Validate())

	testCases := []struct {
		name           string
		body           string
		mockSetup      func(m *mockService)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			body: validBody,
			mockSetup: func(m *mockService) {
				m.On("Submit", mock.Anything, validReq).Return(&created, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"booking":{"id":"abc","date":"2023-10-29","startTime":"09:00","endTime":"10:30","employeeName":"Мария","topic":"Ретро"}}`, body)
			},
		},
		{
			name:           "Invalid JSON",
			body:           `{"date":`,
			mockSetup:      func(m *mockService) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Invalid request payload")
			},
		},
		{
			name: "Validation error",
			body: `{"date":"2023-10-29","startTime":"09:00","endTime":"10:30"}`,
			mockSetup: func(m *mockService) {
				m.On("Submit", mock.Anything, invalid).Return(nil, validationErr)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"message":"Invalid booking","details":["field employeeName is a required field"]}`, body)
			},
		},
		{
			name: "Create failed",
			body: validBody,
			mockSetup: func(m *mockService) {
				m.On("Submit", mock.Anything, validReq).Return(nil, &bookingRepo.RemoteStatusError{Message: "locked"})
			},
			expectedStatus: http.StatusBadGateway,
			checkBody: func(t *testing.T, body string) {
				var envelope utils.ErrorResponse
				require.NoError(t, json.Unmarshal([]byte(body), &envelope))
				assert.Equal(t, createFailedMessage, envelope.Message)
				assert.Contains(t, envelope.Details, "locked")
			},
		},
		{
			name: "Unexpected error",
			body: validBody,
			mockSetup: func(m *mockService) {
				m.On("Submit", mock.Anything, validReq).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"message":"`+createFailedMessage+`"`)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &mockService{}
			tc.mockSetup(svc)

			rr := serve(newTestRouter(svc, stubPinger{}), http.MethodPost, "/api/bookings", tc.body)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestGetStats(t *testing.T) {
	t.Parallel()

	svc := &mockService{}
	svc.On("Histogram").Return([]models.HourlyLoad{{Hour: 9, Name: "9:00", Count: 2}, {Hour: 14, Name: "14:00", Count: 1}})

	rr := serve(newTestRouter(svc, stubPinger{}), http.MethodGet, "/api/bookings/stats", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"hourly":[{"hour":9,"name":"9:00","count":2},{"hour":14,"name":"14:00","count":1}]}`, rr.Body.String())
}

func TestDraftAgendaHandler(t *testing.T) {
	t.Parallel()

	svc := &mockService{}
	svc.On("DraftAgenda", mock.Anything, "Бюджет", "09:00", "10:30").
		Return(models.AgendaResponse{Agenda: "- Смета", DurationMinutes: 90})
	r := newTestRouter(svc, stubPinger{})

	rr := serve(r, http.MethodPost, "/api/ai/agenda", `{"topic":"Бюджет","startTime":"09:00","endTime":"10:30"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"agenda":"- Смета","durationMinutes":90}`, rr.Body.String())

	rr = serve(r, http.MethodPost, "/api/ai/agenda", `{"startTime":"09:00"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), `"message":"Invalid input"`)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rr := serve(newTestRouter(&mockService{}, stubPinger{}), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"ok"`)

	rr = serve(newTestRouter(&mockService{}, stubPinger{err: errors.New("down")}), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"degraded"`)
}
