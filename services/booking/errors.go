package booking

import "fmt"

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// SlotTakenError reports a strict-mode conflict on an already booked slot.
type SlotTakenError struct {
	Date string
	Time string
}

func (e *SlotTakenError) Error() string {
	return fmt.Sprintf("slot %s %s is already booked", e.Date, e.Time)
}

// PersistenceError wraps a storage failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
