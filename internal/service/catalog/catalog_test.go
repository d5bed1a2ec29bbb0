package catalog

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

func seedTutor(t *testing.T, db *repo.Client, name, email string, rate int64, cat *repo.Category) *repo.TutorProfile {
	t.Helper()
	ctx := context.Background()

	u := db.User.Create().
		SetName(name).
		SetEmail(email).
		SetPasswordHash("x").
		SetRole(entuser.RoleTutor).
		SaveX(ctx)
	p := db.TutorProfile.Create().
		SetUserID(u.ID).
		SetHourlyRate(rate).
		SaveX(ctx)
	if cat != nil {
		db.TutorCategory.Create().
			SetTutorProfileID(p.ID).
			SetCategoryID(cat.ID).
			SaveX(ctx)
	}
	return p
}

func TestSearchTutors(t *testing.T) {
	db := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })
	ctx := context.Background()
	svc := New(db)

	math := db.Category.Create().SetName("Mathematics").SaveX(ctx)
	physics := db.Category.Create().SetName("Physics").SaveX(ctx)

	seedTutor(t, db, "Alice Algebra", "alice@example.com", 3000, math)
	seedTutor(t, db, "Peter Photon", "peter@example.com", 8000, physics)

	// No filters returns everyone
	all, err := svc.SearchTutors(ctx, SearchRequest{})
	if err != nil {
		t.Fatalf("SearchTutors() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("SearchTutors() = %d results, want 2", len(all))
	}

	// Name search
	name := "alice"
	byName, err := svc.SearchTutors(ctx, SearchRequest{Search: &name})
	if err != nil {
		t.Fatalf("SearchTutors(search) error = %v", err)
	}
	if len(byName) != 1 || byName[0].TutorName != "Alice Algebra" {
		t.Errorf("SearchTutors(search=alice) = %d results, want Alice", len(byName))
	}

	// Category by name, case-insensitive
	catName := "physics"
	byCat, err := svc.SearchTutors(ctx, SearchRequest{Category: &catName})
	if err != nil {
		t.Fatalf("SearchTutors(category) error = %v", err)
	}
	if len(byCat) != 1 || byCat[0].TutorName != "Peter Photon" {
		t.Errorf("SearchTutors(category=physics) = %d results, want Peter", len(byCat))
	}

	// Category by id
	catID := math.ID.String()
	byCatID, err := svc.SearchTutors(ctx, SearchRequest{Category: &catID})
	if err != nil {
		t.Fatalf("SearchTutors(category id) error = %v", err)
	}
	if len(byCatID) != 1 || byCatID[0].TutorName != "Alice Algebra" {
		t.Errorf("SearchTutors(category id) = %d results, want Alice", len(byCatID))
	}

	// Rate window
	minRate, maxRate := int64(5000), int64(10000)
	byRate, err := svc.SearchTutors(ctx, SearchRequest{MinRate: &minRate, MaxRate: &maxRate})
	if err != nil {
		t.Fatalf("SearchTutors(rate) error = %v", err)
	}
	if len(byRate) != 1 || byRate[0].Profile.HourlyRate != 8000 {
		t.Errorf("SearchTutors(rate 5000-10000) = %d results, want the 8000 tutor", len(byRate))
	}
}

func TestGetTutorDetail(t *testing.T) {
	db := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })
	ctx := context.Background()
	svc := New(db)

	math := db.Category.Create().SetName("Mathematics").SaveX(ctx)
	p := seedTutor(t, db, "Alice Algebra", "alice@example.com", 3000, math)

	start := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	db.AvailabilitySlot.Create().
		SetTutorProfileID(p.ID).
		SetCategoryID(math.ID).
		SetStartTime(start).
		SetEndTime(start.Add(time.Hour)).
		SaveX(ctx)
	db.AvailabilitySlot.Create().
		SetTutorProfileID(p.ID).
		SetCategoryID(math.ID).
		SetStartTime(start.Add(2 * time.Hour)).
		SetEndTime(start.Add(3 * time.Hour)).
		SetIsBooked(true).
		SaveX(ctx)

	detail, err := svc.GetTutorDetail(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetTutorDetail() error = %v", err)
	}
	if detail.TutorName != "Alice Algebra" {
		t.Errorf("GetTutorDetail() name = %q", detail.TutorName)
	}
	if len(detail.Subjects) != 1 {
		t.Errorf("GetTutorDetail() subjects = %d, want 1", len(detail.Subjects))
	}
	// Only the open slot is listed.
	if len(detail.OpenSlots) != 1 {
		t.Errorf("GetTutorDetail() open slots = %d, want 1", len(detail.OpenSlots))
	}

	if _, err := svc.GetTutorDetail(ctx, uuid.Must(uuid.NewV7())); !errors.Is(err, ErrTutorNotFound) {
		t.Errorf("GetTutorDetail(unknown) error = %v, want ErrTutorNotFound", err)
	}
}
