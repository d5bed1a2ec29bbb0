package tutor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mentora/mentora_backend/internal/repo"
	"github.com/mentora/mentora_backend/internal/repo/enttest"
	entuser "github.com/mentora/mentora_backend/internal/repo/user"
)

func newTestService(t *testing.T) (*repo.Client, Service, *repo.User, *repo.Category) {
	t.Helper()
	ctx := context.Background()

	db := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })

	u := db.User.Create().
		SetName("Tom Tutor").
		SetEmail("tom@example.com").
		SetPasswordHash("x").
		SetRole(entuser.RoleTutor).
		SaveX(ctx)

	cat := db.Category.Create().
		SetName("Chemistry").
		SaveX(ctx)

	return db, New(db), u, cat
}

func TestUpsertProfile(t *testing.T) {
	_, svc, u, _ := newTestService(t)
	ctx := context.Background()

	headline := "PhD chemist, 10 years of teaching"
	profile, err := svc.UpsertProfile(ctx, u.ID, UpsertProfileRequest{
		Headline:   &headline,
		HourlyRate: 6000,
	})
	if err != nil {
		t.Fatalf("UpsertProfile() create error = %v", err)
	}
	if profile.HourlyRate != 6000 {
		t.Errorf("UpsertProfile() rate = %d, want 6000", profile.HourlyRate)
	}
	if profile.Headline == nil || *profile.Headline != headline {
		t.Errorf("UpsertProfile() headline = %v, want %q", profile.Headline, headline)
	}

	// Second call updates in place instead of creating a duplicate.
	accepting := false
	updated, err := svc.UpsertProfile(ctx, u.ID, UpsertProfileRequest{
		HourlyRate:  7000,
		IsAccepting: &accepting,
	})
	if err != nil {
		t.Fatalf("UpsertProfile() update error = %v", err)
	}
	if updated.ID != profile.ID {
		t.Error("UpsertProfile() created a second profile")
	}
	if updated.HourlyRate != 7000 || updated.IsAccepting {
		t.Errorf("UpsertProfile() update = rate %d accepting %v", updated.HourlyRate, updated.IsAccepting)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	_, svc, u, _ := newTestService(t)

	if _, err := svc.GetProfile(context.Background(), u.ID); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("GetProfile() error = %v, want ErrProfileNotFound", err)
	}
}

func TestCreateSlot(t *testing.T) {
	_, svc, u, cat := newTestService(t)
	ctx := context.Background()

	start := time.Now().Add(24 * time.Hour).Truncate(time.Second)

	// Slot creation requires a profile.
	_, err := svc.CreateSlot(ctx, u.ID, CreateSlotRequest{
		CategoryID: cat.ID,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	})
	if !errors.Is(err, ErrProfileRequired) {
		t.Fatalf("CreateSlot() without profile error = %v, want ErrProfileRequired", err)
	}

	if _, err := svc.UpsertProfile(ctx, u.ID, UpsertProfileRequest{HourlyRate: 5000}); err != nil {
		t.Fatalf("UpsertProfile() error = %v", err)
	}

	// Inverted window
	_, err = svc.CreateSlot(ctx, u.ID, CreateSlotRequest{
		CategoryID: cat.ID,
		StartTime:  start.Add(time.Hour),
		EndTime:    start,
	})
	if !errors.Is(err, ErrInvalidTimeRange) {
		t.Errorf("CreateSlot(inverted) error = %v, want ErrInvalidTimeRange", err)
	}

	// Unknown category
	_, err = svc.CreateSlot(ctx, u.ID, CreateSlotRequest{
		CategoryID: uuid.Must(uuid.NewV7()),
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("CreateSlot(unknown category) error = %v, want ErrCategoryNotFound", err)
	}

	slot, err := svc.CreateSlot(ctx, u.ID, CreateSlotRequest{
		CategoryID: cat.ID,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateSlot() error = %v", err)
	}
	if slot.IsBooked {
		t.Error("CreateSlot() created a booked slot")
	}

	// Overlapping window is rejected.
	_, err = svc.CreateSlot(ctx, u.ID, CreateSlotRequest{
		CategoryID: cat.ID,
		StartTime:  start.Add(30 * time.Minute),
		EndTime:    start.Add(90 * time.Minute),
	})
	if !errors.Is(err, ErrOverlappingSlot) {
		t.Errorf("CreateSlot(overlap) error = %v, want ErrOverlappingSlot", err)
	}

	// Adjacent window is fine.
	if _, err := svc.CreateSlot(ctx, u.ID, CreateSlotRequest{
		CategoryID: cat.ID,
		StartTime:  start.Add(time.Hour),
		EndTime:    start.Add(2 * time.Hour),
	}); err != nil {
		t.Errorf("CreateSlot(adjacent) error = %v", err)
	}
}

func TestDeleteSlotBookedGuard(t *testing.T) {
	db, svc, u, cat := newTestService(t)
	ctx := context.Background()

	if _, err := svc.UpsertProfile(ctx, u.ID, UpsertProfileRequest{HourlyRate: 5000}); err != nil {
		t.Fatalf("UpsertProfile() error = %v", err)
	}

	start := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	slot, err := svc.CreateSlot(ctx, u.ID, CreateSlotRequest{
		CategoryID: cat.ID,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateSlot() error = %v", err)
	}

	db.AvailabilitySlot.UpdateOne(slot).SetIsBooked(true).SaveX(ctx)

	if err := svc.DeleteSlot(ctx, u.ID, slot.ID); !errors.Is(err, ErrSlotBooked) {
		t.Errorf("DeleteSlot(booked) error = %v, want ErrSlotBooked", err)
	}

	db.AvailabilitySlot.UpdateOne(slot).SetIsBooked(false).SaveX(ctx)

	if err := svc.DeleteSlot(ctx, u.ID, slot.ID); err != nil {
		t.Errorf("DeleteSlot() error = %v", err)
	}
}

func TestSubjects(t *testing.T) {
	db, svc, u, cat := newTestService(t)
	ctx := context.Background()

	if _, err := svc.UpsertProfile(ctx, u.ID, UpsertProfileRequest{HourlyRate: 5000}); err != nil {
		t.Fatalf("UpsertProfile() error = %v", err)
	}

	if err := svc.AddSubjects(ctx, u.ID, []uuid.UUID{cat.ID}); err != nil {
		t.Fatalf("AddSubjects() error = %v", err)
	}

	// Re-adding is a no-op, not an error.
	if err := svc.AddSubjects(ctx, u.ID, []uuid.UUID{cat.ID}); err != nil {
		t.Fatalf("AddSubjects() repeat error = %v", err)
	}

	subjects, err := svc.ListSubjects(ctx, u.ID)
	if err != nil {
		t.Fatalf("ListSubjects() error = %v", err)
	}
	if len(subjects) != 1 || subjects[0].Name != "Chemistry" {
		t.Errorf("ListSubjects() = %v, want [Chemistry]", subjects)
	}

	// Unknown category
	other := db.Category.Create().SetName("Biology").SaveX(ctx)
	if err := svc.RemoveSubject(ctx, u.ID, other.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("RemoveSubject(unlinked) error = %v, want ErrCategoryNotFound", err)
	}

	if err := svc.RemoveSubject(ctx, u.ID, cat.ID); err != nil {
		t.Fatalf("RemoveSubject() error = %v", err)
	}
	subjects, _ = svc.ListSubjects(ctx, u.ID)
	if len(subjects) != 0 {
		t.Errorf("ListSubjects() after remove = %d, want 0", len(subjects))
	}
}

func TestDashboardWithoutProfile(t *testing.T) {
	_, svc, u, _ := newTestService(t)

	dash, err := svc.GetDashboard(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("GetDashboard() error = %v", err)
	}
	if dash.TotalSessions != 0 || dash.AverageRating != 0 {
		t.Errorf("GetDashboard() without profile = %+v, want zero values", dash)
	}
}
