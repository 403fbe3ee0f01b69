package handlers

import (
	"net/http"

	"tablebook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the free-slot listing for a date.
type AvailabilityHandler struct {
	Service booking.AvailabilityService
	Logger  *zap.Logger
}

func NewAvailabilityHandler(service booking.AvailabilityService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: service, Logger: logger}
}

// GetAvailabilityHandler returns the free slots for the date query value.
// A missing date is rejected before any computation.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Date is required"})
		return
	}

	slots, err := h.Service.GetAvailableSlots(date)
	if err != nil {
		h.Logger.Error("Availability check failed", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"availableSlots": slots})
}
