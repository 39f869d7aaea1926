package handlers

import (
	"net/http"
	"time"

	"roombook/utils"

	"github.com/gin-gonic/gin"
)

const healthTimeout = 3 * time.Second

// NewHealthHandler reports whether the configured storage backend answers.
func NewHealthHandler(backend string, p utils.Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := utils.CheckHealth(c.Request.Context(), backend, p, healthTimeout)
		code := http.StatusOK
		if status.Status != "ok" {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	}
}
