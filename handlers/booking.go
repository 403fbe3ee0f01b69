package handlers

import (
	"errors"
	"net/http"

	"tablebook/models"
	"tablebook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking creation and listing.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// CreateBookingHandler persists one booking record.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create booking", "details": err.Error()})
		return
	}

	record, err := h.Service.Create(input)
	if err != nil {
		var validationErr *booking.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create booking", "details": validationErr.Message})
			return
		}
		var slotErr *booking.SlotTakenError
		if errors.As(err, &slotErr) {
			c.JSON(http.StatusConflict, gin.H{"message": "Slot is already booked", "details": slotErr.Error()})
			return
		}
		h.Logger.Error("Booking creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Booking created successfully", "booking": record})
}

// ListBookingsHandler returns all booking records in storage order.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.List()
	if err != nil {
		h.Logger.Error("Fetching bookings failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}
