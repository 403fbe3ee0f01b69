package bookingRepo

import (
	"errors"

	"tablebook/models"
)

// ErrSlotTaken is returned by Create when the strict-slot unique index
// rejects a booking for an already booked (date, time) pair.
var ErrSlotTaken = errors.New("slot already booked")

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetAll() ([]models.Booking, error)
	GetByDate(date string) ([]models.Booking, error)
}
