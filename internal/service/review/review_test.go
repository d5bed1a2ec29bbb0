package review

import (
	"context"
	"errors"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mentora/mentora_backend/internal/repo"
	entbooking "github.com/mentora/mentora_backend/internal/repo/booking"
	"github.com/mentora/mentora_backend/internal/repo/enttest"
	entuser "github.com/mentora/mentora_backend/internal/repo/user"
)

type fixture struct {
	db        *repo.Client
	svc       Service
	student   *repo.User
	profile   *repo.TutorProfile
	completed *repo.Booking
	confirmed *repo.Booking
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
		SetName("Physics").
		SaveX(ctx)

	start := time.Now().Add(-48 * time.Hour).Truncate(time.Second)

	newBooking := func(status entbooking.Status, offset time.Duration) *repo.Booking {
		slot := db.AvailabilitySlot.Create().
			SetTutorProfileID(profile.ID).
			SetCategoryID(subject.ID).
			SetStartTime(start.Add(offset)).
			SetEndTime(start.Add(offset + time.Hour)).
			SetIsBooked(true).
			SaveX(ctx)
		b := db.Booking.Create().
			SetStudentID(student.ID).
			SetTutorProfileID(profile.ID).
			SetSlotID(slot.ID).
			SetCategoryID(subject.ID).
			SetStartTime(slot.StartTime).
			SetEndTime(slot.EndTime).
			SetStatus(status).
			SetHourlyRate(5000).
			SaveX(ctx)
		return b
	}

	return &fixture{
		db:        db,
		svc:       New(db, nil),
		student:   student,
		profile:   profile,
		completed: newBooking(entbooking.StatusCompleted, 0),
		confirmed: newBooking(entbooking.StatusConfirmed, 2*time.Hour),
	}
}

func TestCreateReview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	comment := "clear explanations, patient"
	r, err := f.svc.Create(ctx, f.student.ID, CreateRequest{
		BookingID: f.completed.ID,
		Rating:    5,
		Comment:   &comment,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if r.Rating != 5 {
		t.Errorf("Create() rating = %d, want 5", r.Rating)
	}
	if r.TutorProfileID != f.profile.ID {
		t.Errorf("Create() tutor_profile_id = %v, want %v", r.TutorProfileID, f.profile.ID)
	}
	if r.BookingID != f.completed.ID {
		t.Errorf("Create() booking_id = %v, want %v", r.BookingID, f.completed.ID)
	}
}

func TestCreateReviewGates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Unknown booking
	_, err := f.svc.Create(ctx, f.student.ID, CreateRequest{BookingID: f.student.ID, Rating: 4})
	if !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("Create(unknown booking) error = %v, want ErrBookingNotFound", err)
	}

	// Someone else's booking
	other := f.db.User.Create().
		SetName("Olly Other").
		SetEmail("olly@example.com").
		SetPasswordHash("x").
		SetRole(entuser.RoleStudent).
		SaveX(ctx)
	_, err = f.svc.Create(ctx, other.ID, CreateRequest{BookingID: f.completed.ID, Rating: 4})
	if !errors.Is(err, ErrBookingNotOwned) {
		t.Errorf("Create(foreign booking) error = %v, want ErrBookingNotOwned", err)
	}

	// Booking not completed yet
	_, err = f.svc.Create(ctx, f.student.ID, CreateRequest{BookingID: f.confirmed.ID, Rating: 4})
	if !errors.Is(err, ErrBookingNotComplete) {
		t.Errorf("Create(confirmed booking) error = %v, want ErrBookingNotComplete", err)
	}

	// Rating out of range
	for _, rating := range []int{0, 6, -1} {
		_, err = f.svc.Create(ctx, f.student.ID, CreateRequest{BookingID: f.completed.ID, Rating: rating})
		if !errors.Is(err, ErrInvalidRating) {
			t.Errorf("Create(rating=%d) error = %v, want ErrInvalidRating", rating, err)
		}
	}

	// One review per booking
	if _, err := f.svc.Create(ctx, f.student.ID, CreateRequest{BookingID: f.completed.ID, Rating: 4}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	_, err = f.svc.Create(ctx, f.student.ID, CreateRequest{BookingID: f.completed.ID, Rating: 3})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("duplicate Create() error = %v, want ErrAlreadyExists", err)
	}
}

func TestUpdateReview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	r, err := f.svc.Create(ctx, f.student.ID, CreateRequest{BookingID: f.completed.ID, Rating: 3})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	rating := 4
	comment := "better on second thought"
	updated, err := f.svc.Update(ctx, f.student.ID, r.ID, UpdateRequest{Rating: &rating, Comment: &comment})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Rating != 4 {
		t.Errorf("Update() rating = %d, want 4", updated.Rating)
	}

	bad := 9
	if _, err := f.svc.Update(ctx, f.student.ID, r.ID, UpdateRequest{Rating: &bad}); !errors.Is(err, ErrInvalidRating) {
		t.Errorf("Update(rating=9) error = %v, want ErrInvalidRating", err)
	}

	// Ownership
	other := f.db.User.Create().
		SetName("Olly Other").
		SetEmail("olly@example.com").
		SetPasswordHash("x").
		SetRole(entuser.RoleStudent).
		SaveX(ctx)
	if _, err := f.svc.Update(ctx, other.ID, r.ID, UpdateRequest{Rating: &rating}); !errors.Is(err, ErrNotOwner) {
		t.Errorf("Update() by non-owner error = %v, want ErrNotOwner", err)
	}

	// Unknown review
	if _, err := f.svc.Update(ctx, f.student.ID, f.student.ID, UpdateRequest{Rating: &rating}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestDeleteReview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	r, err := f.svc.Create(ctx, f.student.ID, CreateRequest{BookingID: f.completed.ID, Rating: 2})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	other := f.db.User.Create().
		SetName("Olly Other").
		SetEmail("olly@example.com").
		SetPasswordHash("x").
		SetRole(entuser.RoleStudent).
		SaveX(ctx)
	if err := f.svc.Delete(ctx, other.ID, r.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("Delete() by non-owner error = %v, want ErrNotOwner", err)
	}

	if err := f.svc.Delete(ctx, f.student.ID, r.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// A deleted review frees the booking for a new one.
	if _, err := f.svc.Create(ctx, f.student.ID, CreateRequest{BookingID: f.completed.ID, Rating: 5}); err != nil {
		t.Errorf("Create() after delete error = %v", err)
	}
}

func TestListForTutor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Create(ctx, f.student.ID, CreateRequest{BookingID: f.completed.ID, Rating: 5}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	reviews, err := f.svc.ListForTutor(ctx, f.profile.ID, ListRequest{})
	if err != nil {
		t.Fatalf("ListForTutor() error = %v", err)
	}
	if len(reviews) != 1 {
		t.Errorf("ListForTutor() = %d reviews, want 1", len(reviews))
	}

	reviews, err = f.svc.ListForStudent(ctx, f.student.ID, ListRequest{})
	if err != nil {
		t.Fatalf("ListForStudent() error = %v", err)
	}
	if len(reviews) != 1 {
		t.Errorf("ListForStudent() = %d reviews, want 1", len(reviews))
	}
}
