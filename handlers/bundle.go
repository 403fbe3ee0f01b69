package handlers

import (
	"tablebook/services/auth"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the assembled handlers and the session service the
// gate middleware needs, so route registration takes one argument.
type HandlerBundle struct {
	Sessions auth.SessionService

	// Auth endpoints.
	LoginHandler     gin.HandlerFunc
	LogoutHandler    gin.HandlerFunc
	CheckAuthHandler gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler gin.HandlerFunc
	ListBookingsHandler  gin.HandlerFunc

	// Availability endpoint.
	GetAvailabilityHandler gin.HandlerFunc
}
