package handlers

import (
	"errors"
	"net/http"

	bookingRepo "roombook/database/repository/booking"
	"roombook/models"
	"roombook/services/booking"
	"roombook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// createFailedMessage is shown to the widget user when a booking cannot be stored.
const createFailedMessage = "Не удалось создать запись. Пожалуйста, попробуйте снова."

type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// ListBookings returns the current collection, newest first.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings := h.Service.Sorted()
	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"count":    len(bookings),
		"loading":  h.Service.Loading(),
	})
}

// RefreshBookings reloads from storage. A failed fetch still answers 200 with
// an empty list and a warning; the service has already logged it.
func (h *BookingHandler) RefreshBookings(c *gin.Context) {
	_, err := h.Service.Load(c.Request.Context())
	bookings := h.Service.Sorted()

	resp := gin.H{"bookings": bookings, "count": len(bookings)}
	if err != nil {
		resp["warning"] = "bookings could not be loaded"
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	var req models.BookingCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, logger, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.Service.Submit(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"booking": created})
	case errors.Is(err, booking.ErrInvalidBooking):
		utils.JSONError(c, logger, http.StatusBadRequest, "Invalid booking", validationDetails(err))
	case errors.Is(err, bookingRepo.ErrCreateFailed):
		utils.JSONError(c, logger, http.StatusBadGateway, createFailedMessage, err.Error())
	default:
		utils.JSONError(c, logger, http.StatusInternalServerError, createFailedMessage, err.Error())
	}
}

// GetStats returns the usage-by-hour histogram of the current collection.
func (h *BookingHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"hourly": h.Service.Histogram()})
}
