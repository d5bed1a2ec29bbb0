package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mentora/mentora_backend/internal/repo"
	entbooking "github.com/mentora/mentora_backend/internal/repo/booking"
	"github.com/mentora/mentora_backend/internal/repo/enttest"
	entuser "github.com/mentora/mentora_backend/internal/repo/user"
)

type fixture struct {
	db      *repo.Client
	svc     Service
	student *repo.User
	tutor   *repo.User
	profile *repo.TutorProfile
	subject *repo.Category
	slot    *repo.AvailabilitySlot
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	db := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })

	student := db.User.Create().
		SetName("Sara Student").
		SetEmail("sara@example.com").
		SetPasswordHash("x").
		SetRole(entuser.RoleStudent).
		SaveX(ctx)

	tutor := db.User.Create().
		SetName("Tom Tutor").
		SetEmail("tom@example.com").
		SetPasswordHash("x").
		SetRole(entuser.RoleTutor).
		SaveX(ctx)

	profile := db.TutorProfile.Create().
		SetUserID(tutor.ID).
		SetHourlyRate(5000).
		SaveX(ctx)

	subject := db.Category.Create().
		SetName("Mathematics").
		SaveX(ctx)

	start := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	slot := db.AvailabilitySlot.Create().
		SetTutorProfileID(profile.ID).
		SetCategoryID(subject.ID).
		SetStartTime(start).
		SetEndTime(start.Add(time.Hour)).
		SaveX(ctx)

	return &fixture{
		db:      db,
		svc:     New(db, nil),
		student: student,
		tutor:   tutor,
		profile: profile,
		subject: subject,
		slot:    slot,
	}
}

func TestCreateClaimsSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	summary, err := f.svc.Create(ctx, f.student.ID, CreateRequest{SlotID: f.slot.ID})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if summary.Status != string(entbooking.StatusConfirmed) {
		t.Errorf("Create() status = %s, want confirmed", summary.Status)
	}
	if summary.Subject != "Mathematics" {
		t.Errorf("Create() subject = %q, want Mathematics", summary.Subject)
	}
	if summary.Tutor != "Tom Tutor" {
		t.Errorf("Create() tutor = %q, want Tom Tutor", summary.Tutor)
	}
	if !summary.ScheduledFor.Start.Equal(f.slot.StartTime) {
		t.Errorf("Create() start = %v, want %v", summary.ScheduledFor.Start, f.slot.StartTime)
	}

	slot := f.db.AvailabilitySlot.GetX(ctx, f.slot.ID)
	if !slot.IsBooked {
		t.Error("Create() did not mark the slot as booked")
	}

	b := f.db.Booking.GetX(ctx, summary.ID)
	if b.HourlyRate != f.profile.HourlyRate {
		t.Errorf("Create() snapshotted rate = %d, want %d", b.HourlyRate, f.profile.HourlyRate)
	}
	if b.StudentID != f.student.ID {
		t.Errorf("Create() student = %v, want %v", b.StudentID, f.student.ID)
	}
}

func TestCreateSlotAlreadyBooked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Create(ctx, f.student.ID, CreateRequest{SlotID: f.slot.ID}); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	other := f.db.User.Create().
		SetName("Olly Other").
		SetEmail("olly@example.com").
		SetPasswordHash("x").
		SetRole(entuser.RoleStudent).
		SaveX(ctx)

	_, err := f.svc.Create(ctx, other.ID, CreateRequest{SlotID: f.slot.ID})
	if !errors.Is(err, ErrSlotNotAvailable) {
		t.Errorf("second Create() error = %v, want ErrSlotNotAvailable", err)
	}

	// A failed claim must leave no booking behind.
	n := f.db.Booking.Query().
		Where(entbooking.StudentID(other.ID)).
		CountX(ctx)
	if n != 0 {
		t.Errorf("failed Create() left %d bookings", n)
	}
}

func TestCreateSlotNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), f.student.ID, CreateRequest{SlotID: f.tutor.ID})
	if !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("Create() error = %v, want ErrSlotNotFound", err)
	}
}

func TestCreateOwnSlot(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), f.tutor.ID, CreateRequest{SlotID: f.slot.ID})
	if !errors.Is(err, ErrOwnSlot) {
		t.Errorf("Create() error = %v, want ErrOwnSlot", err)
	}
}

func TestCancelReleasesSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	summary, err := f.svc.Create(ctx, f.student.ID, CreateRequest{SlotID: f.slot.ID})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := f.svc.Cancel(ctx, f.student.ID, summary.ID); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}

	b := f.db.Booking.GetX(ctx, summary.ID)
	if b.Status != entbooking.StatusCancelled {
		t.Errorf("Cancel() status = %s, want cancelled", b.Status)
	}
	if b.CancelledAt == nil {
		t.Error("Cancel() did not set cancelled_at")
	}

	slot := f.db.AvailabilitySlot.GetX(ctx, f.slot.ID)
	if slot.IsBooked {
		t.Error("Cancel() did not release the slot")
	}

	// The released slot can be claimed again.
	other := f.db.User.Create().
		SetName("Olly Other").
		SetEmail("olly@example.com").
		SetPasswordHash("x").
		SetRole(entuser.RoleStudent).
		SaveX(ctx)
	if _, err := f.svc.Create(ctx, other.ID, CreateRequest{SlotID: f.slot.ID}); err != nil {
		t.Errorf("re-Create() after cancel error = %v", err)
	}
}

func TestCancelNotOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	summary, err := f.svc.Create(ctx, f.student.ID, CreateRequest{SlotID: f.slot.ID})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := f.svc.Cancel(ctx, f.tutor.ID, summary.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("Cancel() by non-owner error = %v, want ErrNotOwner", err)
	}

	// The booking and slot must be untouched.
	b := f.db.Booking.GetX(ctx, summary.ID)
	if b.Status != entbooking.StatusConfirmed {
		t.Errorf("booking status changed to %s after rejected cancel", b.Status)
	}
	if !f.db.AvailabilitySlot.GetX(ctx, f.slot.ID).IsBooked {
		t.Error("slot released after rejected cancel")
	}
}

func TestCancelTerminalStates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	summary, err := f.svc.Create(ctx, f.student.ID, CreateRequest{SlotID: f.slot.ID})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := f.svc.Cancel(ctx, f.student.ID, summary.ID); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if err := f.svc.Cancel(ctx, f.student.ID, summary.ID); !errors.Is(err, ErrAlreadyCancelled) {
		t.Errorf("second Cancel() error = %v, want ErrAlreadyCancelled", err)
	}
}

func TestCompleteByTutor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	summary, err := f.svc.Create(ctx, f.student.ID, CreateRequest{SlotID: f.slot.ID})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := f.svc.Complete(ctx, f.profile.ID, summary.ID); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	b := f.db.Booking.GetX(ctx, summary.ID)
	if b.Status != entbooking.StatusCompleted {
		t.Errorf("Complete() status = %s, want completed", b.Status)
	}
	if b.CompletedAt == nil {
		t.Error("Complete() did not set completed_at")
	}

	// Completion consumes the slot; it stays booked.
	if !f.db.AvailabilitySlot.GetX(ctx, f.slot.ID).IsBooked {
		t.Error("Complete() released the slot")
	}

	// A completed booking cannot be cancelled afterwards.
	if err := f.svc.Cancel(ctx, f.student.ID, summary.ID); !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("Cancel() after complete error = %v, want ErrAlreadyCompleted", err)
	}
}

func TestCompleteNotOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	summary, err := f.svc.Create(ctx, f.student.ID, CreateRequest{SlotID: f.slot.ID})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	otherTutor := f.db.User.Create().
		SetName("Nina Next").
		SetEmail("nina@example.com").
		SetPasswordHash("x").
		SetRole(entuser.RoleTutor).
		SaveX(ctx)
	otherProfile := f.db.TutorProfile.Create().
		SetUserID(otherTutor.ID).
		SetHourlyRate(4000).
		SaveX(ctx)

	if err := f.svc.Complete(ctx, otherProfile.ID, summary.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("Complete() by other tutor error = %v, want ErrNotOwner", err)
	}
}

func TestCompleteAfterCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	summary, err := f.svc.Create(ctx, f.student.ID, CreateRequest{SlotID: f.slot.ID})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := f.svc.Cancel(ctx, f.student.ID, summary.ID); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if err := f.svc.Complete(ctx, f.profile.ID, summary.ID); !errors.Is(err, ErrAlreadyCancelled) {
		t.Errorf("Complete() after cancel error = %v, want ErrAlreadyCancelled", err)
	}
}

func TestListForStudent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	summary, err := f.svc.Create(ctx, f.student.ID, CreateRequest{SlotID: f.slot.ID})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	bookings, err := f.svc.ListForStudent(ctx, f.student.ID, ListRequest{})
	if err != nil {
		t.Fatalf("ListForStudent() error = %v", err)
	}
	if len(bookings) != 1 || bookings[0].ID != summary.ID {
		t.Errorf("ListForStudent() = %d bookings, want the created one", len(bookings))
	}

	// History only contains terminal bookings.
	history, err := f.svc.ListHistoryForStudent(ctx, f.student.ID, ListRequest{})
	if err != nil {
		t.Fatalf("ListHistoryForStudent() error = %v", err)
	}
	if len(history) != 0 {
		t.Errorf("history of confirmed booking = %d entries, want 0", len(history))
	}

	if err := f.svc.Complete(ctx, f.profile.ID, summary.ID); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	history, err = f.svc.ListHistoryForStudent(ctx, f.student.ID, ListRequest{})
	if err != nil {
		t.Fatalf("ListHistoryForStudent() error = %v", err)
	}
	if len(history) != 1 {
		t.Errorf("history after complete = %d entries, want 1", len(history))
	}

	// Another student sees nothing.
	other := f.db.User.Create().
		SetName("Olly Other").
		SetEmail("olly@example.com").
		SetPasswordHash("x").
		SetRole(entuser.RoleStudent).
		SaveX(ctx)
	bookings, err = f.svc.ListForStudent(ctx, other.ID, ListRequest{})
	if err != nil {
		t.Fatalf("ListForStudent() error = %v", err)
	}
	if len(bookings) != 0 {
		t.Errorf("ListForStudent() for other student = %d bookings, want 0", len(bookings))
	}
}

func TestCreateConcurrentClaims(t *testing.T) {
	ctx := context.Background()

	drv, err := entsql.Open("sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// sqlite allows a single writer; one pooled connection serializes the
	// transactions while the goroutines still race to reach them.
	drv.DB().SetMaxOpenConns(1)
	db := repo.NewClient(repo.Driver(drv))
	t.Cleanup(func() { db.Close() })
	if err := db.Schema.Create(ctx); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	tutorUser := db.User.Create().
		SetName("Tom Tutor").
		SetEmail("tom@example.com").
		SetPasswordHash("x").
		SetRole(entuser.RoleTutor).
		SaveX(ctx)
	profile := db.TutorProfile.Create().
		SetUserID(tutorUser.ID).
		SetHourlyRate(5000).
		SaveX(ctx)
	subject := db.Category.Create().
		SetName("Mathematics").
		SaveX(ctx)
	start := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	slot := db.AvailabilitySlot.Create().
		SetTutorProfileID(profile.ID).
		SetCategoryID(subject.ID).
		SetStartTime(start).
		SetEndTime(start.Add(time.Hour)).
		SaveX(ctx)

	const contenders = 8
	students := make([]*repo.User, contenders)
	for i := range students {
		students[i] = db.User.Create().
			SetName(fmt.Sprintf("Student %d", i)).
			SetEmail(fmt.Sprintf("student%d@example.com", i)).
			SetPasswordHash("x").
			SetRole(entuser.RoleStudent).
			SaveX(ctx)
	}

	svc := New(db, nil)
	results := make([]error, contenders)
	var wg sync.WaitGroup
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.Create(ctx, students[i].ID, CreateRequest{SlotID: slot.ID})
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range results {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrSlotNotAvailable):
			lost++
		default:
			t.Errorf("Create() error = %v, want nil or ErrSlotNotAvailable", err)
		}
	}
	if won != 1 {
		t.Errorf("concurrent Create() successes = %d, want exactly 1", won)
	}
	if lost != contenders-1 {
		t.Errorf("concurrent Create() ErrSlotNotAvailable = %d, want %d", lost, contenders-1)
	}

	// Exactly one booking row and a claimed slot must remain.
	if n := db.Booking.Query().CountX(ctx); n != 1 {
		t.Errorf("bookings after concurrent Create() = %d, want 1", n)
	}
	if !db.AvailabilitySlot.GetX(ctx, slot.ID).IsBooked {
		t.Error("slot not booked after concurrent Create()")
	}
}

func TestListForTutorStatusFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Create(ctx, f.student.ID, CreateRequest{SlotID: f.slot.ID}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	status := string(entbooking.StatusConfirmed)
	bookings, err := f.svc.ListForTutor(ctx, f.profile.ID, ListRequest{Status: &status})
	if err != nil {
		t.Fatalf("ListForTutor() error = %v", err)
	}
	if len(bookings) != 1 {
		t.Errorf("ListForTutor(confirmed) = %d bookings, want 1", len(bookings))
	}

	status = string(entbooking.StatusCompleted)
	bookings, err = f.svc.ListForTutor(ctx, f.profile.ID, ListRequest{Status: &status})
	if err != nil {
		t.Fatalf("ListForTutor() error = %v", err)
	}
	if len(bookings) != 0 {
		t.Errorf("ListForTutor(completed) = %d bookings, want 0", len(bookings))
	}
}
