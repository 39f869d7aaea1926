package handlers

import (
	"net/http"

	"roombook/models"
	"roombook/services/booking"
	"roombook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AgendaHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewAgendaHandler(service booking.BookingService, logger *zap.Logger) *AgendaHandler {
	return &AgendaHandler{Service: service, Logger: logger}
}

// DraftAgendaHandler always answers 200 once the request is valid; drafting
// failures are already mapped to fallback text.
func (h *AgendaHandler) DraftAgendaHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	var req models.AgendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, logger, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	c.JSON(http.StatusOK, h.Service.DraftAgenda(c.Request.Context(), req.Topic, req.StartTime, req.EndTime))
}
