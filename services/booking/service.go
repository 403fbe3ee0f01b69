package booking

import (
	"errors"
	"strings"

	bookingRepo "tablebook/database/repository/booking"
	"tablebook/models"
	"tablebook/utils"

	"go.uber.org/zap"
)

// BookingService validates and creates booking records and lists all records.
type BookingService interface {
	Create(input models.BookingInput) (*models.Booking, error)
	List() ([]models.Booking, error)
}

// DefaultBookingService is the concrete implementation backed by the booking store.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}

// Create persists a booking after checking that every required field is
// present. No availability or date-format check is performed: a booking at a
// time outside the fixed schedule is stored as-is, and in the default mode
// two bookings for the same slot both succeed.
func (s *DefaultBookingService) Create(input models.BookingInput) (*models.Booking, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	record := &models.Booking{
		Date:    input.Date,
		Time:    input.Time,
		Guests:  input.Guests,
		Name:    input.Name,
		Contact: input.Contact,
	}
	if err := s.Repo.Create(record); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, &SlotTakenError{Date: input.Date, Time: input.Time}
		}
		utils.GetLogger().Error("Failed to persist booking", zap.Error(err))
		return nil, &PersistenceError{Op: "create booking", Err: err}
	}
	return record, nil
}

// List returns all booking records in storage order.
func (s *DefaultBookingService) List() ([]models.Booking, error) {
	bookings, err := s.Repo.GetAll()
	if err != nil {
		utils.GetLogger().Error("Failed to fetch bookings", zap.Error(err))
		return nil, &PersistenceError{Op: "list bookings", Err: err}
	}
	return bookings, nil
}

func validateInput(input models.BookingInput) error {
	if strings.TrimSpace(input.Date) == "" {
		return NewValidationError("date", "date is required")
	}
	if strings.TrimSpace(input.Time) == "" {
		return NewValidationError("time", "time is required")
	}
	if input.Guests <= 0 {
		return NewValidationError("guests", "guests must be a positive number")
	}
	if strings.TrimSpace(input.Name) == "" {
		return NewValidationError("name", "name is required")
	}
	if strings.TrimSpace(input.Contact) == "" {
		return NewValidationError("contact", "contact is required")
	}
	return nil
}
