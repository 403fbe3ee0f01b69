package booking

import (
	"errors"
	"reflect"
	"testing"

	"tablebook/models"
)

func TestFreeSlots_EmptyDate(t *testing.T) {
	slots := FreeSlots(nil)

	want := []string{
		"10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00",
		"17:00", "18:00", "19:00", "20:00", "21:00", "22:00",
	}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected full schedule %v, got %v", want, slots)
	}
}

func TestFreeSlots_BookedSlotExcluded(t *testing.T) {
	bookings := []models.Booking{
		{Date: "2026-09-01", Time: "12:00", Guests: 2, Name: "Ana", Contact: "ana@example.com"},
	}

	slots := FreeSlots(bookings)
	if len(slots) != 12 {
		t.Fatalf("expected 12 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s == "12:00" {
			t.Fatalf("booked slot 12:00 still listed in %v", slots)
		}
	}
}

func TestFreeSlots_OffScheduleBookingRemovesNothing(t *testing.T) {
	bookings := []models.Booking{
		{Date: "2026-09-01", Time: "12:30", Guests: 4, Name: "Ben", Contact: "0700"},
		{Date: "2026-09-01", Time: "9:00", Guests: 2, Name: "Cara", Contact: "0711"},
	}

	slots := FreeSlots(bookings)
	if len(slots) != 13 {
		t.Fatalf("off-schedule bookings changed the slot count: got %d", len(slots))
	}
}

func TestFreeSlots_Ordering(t *testing.T) {
	bookings := []models.Booking{
		{Time: "10:00"}, {Time: "22:00"},
	}

	slots := FreeSlots(bookings)
	if len(slots) != 11 {
		t.Fatalf("expected 11 slots, got %d", len(slots))
	}
	if slots[0] != "11:00" || slots[len(slots)-1] != "21:00" {
		t.Fatalf("slots out of order: %v", slots)
	}
}

func TestGetAvailableSlots_FiltersByDate(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.seed(
		models.Booking{Date: "2026-09-01", Time: "12:00"},
		models.Booking{Date: "2026-09-02", Time: "13:00"},
	)
	svc := &DefaultAvailabilityService{Repo: repo}

	slots, err := svc.GetAvailableSlots("2026-09-01")
	if err != nil {
		t.Fatalf("GetAvailableSlots failed: %v", err)
	}
	if len(slots) != 12 {
		t.Fatalf("expected 12 slots, got %d (%v)", len(slots), slots)
	}
	for _, s := range slots {
		if s == "12:00" {
			t.Fatalf("slot booked on the queried date still listed")
		}
		if s == "13:00" {
			// Booked on a different date, must stay available.
			return
		}
	}
	t.Fatalf("13:00 missing even though it is only booked on another date: %v", slots)
}

func TestGetAvailableSlots_StoreFailure(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.failWith = errors.New("connection reset")
	svc := &DefaultAvailabilityService{Repo: repo}

	_, err := svc.GetAvailableSlots("2026-09-01")
	var persistErr *PersistenceError
	if !errors.As(err, &persistErr) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}
