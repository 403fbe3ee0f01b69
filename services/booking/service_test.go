package booking

import (
	"errors"
	"sync"
	"testing"

	bookingRepo "tablebook/database/repository/booking"
	"tablebook/models"
)

// fakeBookingRepo is an in-memory BookingRepository for service tests.
type fakeBookingRepo struct {
	mu       sync.Mutex
	records  []models.Booking
	failWith error
	strict   bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{}
}

func (r *fakeBookingRepo) seed(bookings ...models.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, bookings...)
}

func (r *fakeBookingRepo) Create(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	if r.strict {
		for _, b := range r.records {
			if b.Date == booking.Date && b.Time == booking.Time {
				return bookingRepo.ErrSlotTaken
			}
		}
	}
	if booking.ID == "" {
		booking.ID = "fake-id"
	}
	r.records = append(r.records, *booking)
	return nil
}

func (r *fakeBookingRepo) GetAll() ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]models.Booking, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *fakeBookingRepo) GetByDate(date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []models.Booking
	for _, b := range r.records {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func validInput() models.BookingInput {
	return models.BookingInput{
		Date:    "2026-09-01",
		Time:    "18:00",
		Guests:  4,
		Name:    "Dana",
		Contact: "dana@example.com",
	}
}

func TestCreate_PersistsRecord(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{Repo: repo}

	record, err := svc.Create(validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if record.ID == "" {
		t.Errorf("expected an assigned ID")
	}
	if record.Date != "2026-09-01" || record.Time != "18:00" {
		t.Errorf("record fields not carried over: %+v", record)
	}

	all, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 persisted record, got %d", len(all))
	}
}

func TestCreate_MissingFieldRejected(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*models.BookingInput)
	}{
		{"date", func(in *models.BookingInput) { in.Date = "" }},
		{"time", func(in *models.BookingInput) { in.Time = " " }},
		{"guests", func(in *models.BookingInput) { in.Guests = 0 }},
		{"guests", func(in *models.BookingInput) { in.Guests = -2 }},
		{"name", func(in *models.BookingInput) { in.Name = "" }},
		{"contact", func(in *models.BookingInput) { in.Contact = "" }},
	}

	for _, tc := range cases {
		repo := newFakeBookingRepo()
		svc := &DefaultBookingService{Repo: repo}

		input := validInput()
		tc.mutate(&input)

		_, err := svc.Create(input)
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.field, err)
		}
		if validationErr.Field != tc.field {
			t.Errorf("expected failure on %s, got %s", tc.field, validationErr.Field)
		}

		all, _ := svc.List()
		if len(all) != 0 {
			t.Errorf("%s: invalid input persisted a record", tc.field)
		}
	}
}

func TestCreate_NoSlotMembershipCheck(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{Repo: repo}

	input := validInput()
	input.Time = "23:30" // outside the fixed schedule, still accepted
	if _, err := svc.Create(input); err != nil {
		t.Fatalf("off-schedule time rejected: %v", err)
	}
}

func TestCreate_DuplicateSlotBothSucceedByDefault(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{Repo: repo}

	if _, err := svc.Create(validInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(validInput()); err != nil {
		t.Fatalf("second create for the same slot failed: %v", err)
	}

	all, _ := svc.List()
	if len(all) != 2 {
		t.Fatalf("expected both identical-slot bookings stored, got %d", len(all))
	}
}

func TestCreate_ConcurrentIdenticalSlot(t *testing.T) {
	// Two in-flight creates for the same (date, time) both succeed in the
	// default mode; the store ends up with two records. Accepted behavior,
	// remedied only by the strict-slot mode.
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{Repo: repo}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(validInput())
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("concurrent create %d failed: %v", i, err)
		}
	}
	all, _ := svc.List()
	if len(all) != 2 {
		t.Fatalf("expected 2 records after concurrent creates, got %d", len(all))
	}
}

func TestCreate_StrictModeMapsSlotConflict(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.strict = true
	svc := &DefaultBookingService{Repo: repo}

	if _, err := svc.Create(validInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(validInput())
	var slotErr *SlotTakenError
	if !errors.As(err, &slotErr) {
		t.Fatalf("expected SlotTakenError, got %v", err)
	}
	if slotErr.Date != "2026-09-01" || slotErr.Time != "18:00" {
		t.Errorf("conflict identifies wrong slot: %+v", slotErr)
	}
}

func TestCreate_StoreFailure(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.failWith = errors.New("server selection timeout")
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.Create(validInput())
	var persistErr *PersistenceError
	if !errors.As(err, &persistErr) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}

func TestList_StoreFailure(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.failWith = errors.New("server selection timeout")
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.List()
	var persistErr *PersistenceError
	if !errors.As(err, &persistErr) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}
