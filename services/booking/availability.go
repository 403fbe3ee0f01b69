package booking

import (
	"fmt"

	bookingRepo "tablebook/database/repository/booking"
	"tablebook/models"
)

// The restaurant serves one-hour slots starting on the hour, first seating
// at 10:00, last at 22:00. Labels carry no zero padding.
const (
	openingHour = 10
	closingHour = 22
)

// AvailabilityService defines methods for computing free reservation slots.
type AvailabilityService interface {
	GetAvailableSlots(date string) ([]string, error)
}

// DefaultAvailabilityService is a concrete implementation.
type DefaultAvailabilityService struct {
	Repo bookingRepo.BookingRepository
}

// GetAvailableSlots computes the free slots for a date from the fixed daily
// schedule minus the slots already booked on that date.
func (s *DefaultAvailabilityService) GetAvailableSlots(date string) ([]string, error) {
	bookingsOnDate, err := s.Repo.GetByDate(date)
	if err != nil {
		return nil, &PersistenceError{Op: "fetch bookings for availability", Err: err}
	}
	return FreeSlots(bookingsOnDate), nil
}

// FreeSlots returns the schedule slots not claimed by any of the given
// bookings, in ascending hour order. A slot is taken only on an exact string
// match of the booking time, so a booking at an off-schedule time such as
// "10:30" removes nothing.
func FreeSlots(bookings []models.Booking) []string {
	slots := make([]string, 0, closingHour-openingHour+1)
	for hour := openingHour; hour <= closingHour; hour++ {
		label := fmt.Sprintf("%d:00", hour)
		if !slotBooked(bookings, label) {
			slots = append(slots, label)
		}
	}
	return slots
}

func slotBooked(bookings []models.Booking, label string) bool {
	for _, b := range bookings {
		if b.Time == label {
			return true
		}
	}
	return false
}
