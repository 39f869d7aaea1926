// File: roombook/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints
	ListBookings    gin.HandlerFunc
	CreateBooking   gin.HandlerFunc
	RefreshBookings gin.HandlerFunc
	GetStats        gin.HandlerFunc

	// AI endpoints
	DraftAgenda gin.HandlerFunc

	Health gin.HandlerFunc
}
