package tutor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mentora/mentora_backend/internal/repo"
	entslot "github.com/mentora/mentora_backend/internal/repo/availabilityslot"
	entbooking "github.com/mentora/mentora_backend/internal/repo/booking"
	entcategory "github.com/mentora/mentora_backend/internal/repo/category"
	entreview "github.com/mentora/mentora_backend/internal/repo/review"
	enttutorcat "github.com/mentora/mentora_backend/internal/repo/tutorcategory"
	entprofile "github.com/mentora/mentora_backend/internal/repo/tutorprofile"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UpsertProfileRequest struct {
	Headline    *string
	Bio         *string
	HourlyRate  int64
	IsAccepting *bool
}

type CreateSlotRequest struct {
	CategoryID uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
}

// Dashboard aggregates a tutor's session and rating statistics.
type Dashboard struct {
	TotalSessions     int
	CompletedSessions int
	UpcomingSessions  int
	UniqueStudents    int
	AverageRating     float64
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Profile
	GetProfile(ctx context.Context, userID uuid.UUID) (*repo.TutorProfile, error)
	GetProfileByID(ctx context.Context, profileID uuid.UUID) (*repo.TutorProfile, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, req UpsertProfileRequest) (*repo.TutorProfile, error)

	// Subjects
	AddSubjects(ctx context.Context, userID uuid.UUID, categoryIDs []uuid.UUID) error
	RemoveSubject(ctx context.Context, userID, categoryID uuid.UUID) error
	ListSubjects(ctx context.Context, userID uuid.UUID) ([]*repo.Category, error)

	// Availability slots
	CreateSlot(ctx context.Context, userID uuid.UUID, req CreateSlotRequest) (*repo.AvailabilitySlot, error)
	ListSlots(ctx context.Context, userID uuid.UUID) ([]*repo.AvailabilitySlot, error)
	DeleteSlot(ctx context.Context, userID, slotID uuid.UUID) error

	// Stats
	GetDashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type tutorService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &tutorService{db: db}
}

// ---------------------------------------------------------------------------
// Profile
// ---------------------------------------------------------------------------

func (s *tutorService) GetProfile(ctx context.Context, userID uuid.UUID) (*repo.TutorProfile, error) {
	profile, err := s.db.TutorProfile.Query().
		Where(entprofile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get tutor profile: %w", err)
	}
	return profile, nil
}

func (s *tutorService) GetProfileByID(ctx context.Context, profileID uuid.UUID) (*repo.TutorProfile, error) {
	profile, err := s.db.TutorProfile.Query().
		Where(entprofile.ID(profileID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get tutor profile: %w", err)
	}
	return profile, nil
}

func (s *tutorService) UpsertProfile(ctx context.Context, userID uuid.UUID, req UpsertProfileRequest) (*repo.TutorProfile, error) {
	existing, err := s.db.TutorProfile.Query().
		Where(entprofile.UserID(userID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get tutor profile: %w", err)
	}

	if existing == nil {
		c := s.db.TutorProfile.Create().
			SetUserID(userID).
			SetHourlyRate(req.HourlyRate)
		if req.Headline != nil {
			c = c.SetNillableHeadline(req.Headline)
		}
		if req.Bio != nil {
			c = c.SetNillableBio(req.Bio)
		}
		if req.IsAccepting != nil {
			c = c.SetIsAccepting(*req.IsAccepting)
		}
		profile, err := c.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create tutor profile: %w", err)
		}
		return profile, nil
	}

	upd := s.db.TutorProfile.UpdateOne(existing).
		SetHourlyRate(req.HourlyRate)
	if req.Headline != nil {
		upd = upd.SetHeadline(*req.Headline)
	}
	if req.Bio != nil {
		upd = upd.SetBio(*req.Bio)
	}
	if req.IsAccepting != nil {
		upd = upd.SetIsAccepting(*req.IsAccepting)
	}

	profile, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update tutor profile: %w", err)
	}
	return profile, nil
}

// ---------------------------------------------------------------------------
// Subjects
// ---------------------------------------------------------------------------

func (s *tutorService) AddSubjects(ctx context.Context, userID uuid.UUID, categoryIDs []uuid.UUID) error {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		if err == ErrProfileNotFound {
			return ErrProfileRequired
		}
		return err
	}

	for _, categoryID := range categoryIDs {
		exists, err := s.db.Category.Query().
			Where(entcategory.ID(categoryID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check category: %w", err)
		}
		if !exists {
			return ErrCategoryNotFound
		}

		linked, err := s.db.TutorCategory.Query().
			Where(
				enttutorcat.TutorProfileID(profile.ID),
				enttutorcat.CategoryID(categoryID),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check subject link: %w", err)
		}
		if linked {
			continue
		}

		if _, err := s.db.TutorCategory.Create().
			SetTutorProfileID(profile.ID).
			SetCategoryID(categoryID).
			Save(ctx); err != nil {
			return fmt.Errorf("add subject: %w", err)
		}
	}
	return nil
}

func (s *tutorService) RemoveSubject(ctx context.Context, userID, categoryID uuid.UUID) error {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	deleted, err := s.db.TutorCategory.Delete().
		Where(
			enttutorcat.TutorProfileID(profile.ID),
			enttutorcat.CategoryID(categoryID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("remove subject: %w", err)
	}
	if deleted == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *tutorService) ListSubjects(ctx context.Context, userID uuid.UUID) ([]*repo.Category, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	links, err := s.db.TutorCategory.Query().
		Where(enttutorcat.TutorProfileID(profile.ID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subject links: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.CategoryID)
	}

	categories, err := s.db.Category.Query().
		Where(entcategory.IDIn(ids...)).
		Order(entcategory.ByName()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return categories, nil
}

// ---------------------------------------------------------------------------
// Availability slots
// ---------------------------------------------------------------------------

func (s *tutorService) CreateSlot(ctx context.Context, userID uuid.UUID, req CreateSlotRequest) (*repo.AvailabilitySlot, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		if err == ErrProfileNotFound {
			return nil, ErrProfileRequired
		}
		return nil, err
	}

	exists, err := s.db.Category.Query().
		Where(entcategory.ID(req.CategoryID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}
	if !exists {
		return nil, ErrCategoryNotFound
	}

	// Overlap check: existing slots for this tutor that intersect the window
	overlaps, err := s.db.AvailabilitySlot.Query().
		Where(
			entslot.TutorProfileID(profile.ID),
			entslot.StartTimeLT(req.EndTime),
			entslot.EndTimeGT(req.StartTime),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check overlap: %w", err)
	}
	if overlaps {
		return nil, ErrOverlappingSlot
	}

	slot, err := s.db.AvailabilitySlot.Create().
		SetTutorProfileID(profile.ID).
		SetCategoryID(req.CategoryID).
		SetStartTime(req.StartTime).
		SetEndTime(req.EndTime).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}
	return slot, nil
}

func (s *tutorService) ListSlots(ctx context.Context, userID uuid.UUID) ([]*repo.AvailabilitySlot, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	slots, err := s.db.AvailabilitySlot.Query().
		Where(entslot.TutorProfileID(profile.ID)).
		Order(entslot.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return slots, nil
}

func (s *tutorService) DeleteSlot(ctx context.Context, userID, slotID uuid.UUID) error {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	slot, err := s.db.AvailabilitySlot.Query().
		Where(entslot.ID(slotID), entslot.TutorProfileID(profile.ID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrSlotNotFound
		}
		return fmt.Errorf("get slot: %w", err)
	}
	if slot.IsBooked {
		return ErrSlotBooked
	}
	return s.db.AvailabilitySlot.DeleteOne(slot).Exec(ctx)
}

// ---------------------------------------------------------------------------
// Stats
// ---------------------------------------------------------------------------

func (s *tutorService) GetDashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	profile, err := s.db.TutorProfile.Query().
		Where(entprofile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return &Dashboard{}, nil
		}
		return nil, fmt.Errorf("get tutor profile: %w", err)
	}

	bookings, err := s.db.Booking.Query().
		Where(entbooking.TutorProfileID(profile.ID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	reviews, err := s.db.Review.Query().
		Where(entreview.TutorProfileID(profile.ID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	students := make(map[uuid.UUID]struct{}, len(bookings))
	var completed, upcoming int
	for _, b := range bookings {
		students[b.StudentID] = struct{}{}
		switch b.Status {
		case entbooking.StatusCompleted:
			completed++
		case entbooking.StatusConfirmed:
			upcoming++
		}
	}

	var avg float64
	if len(reviews) > 0 {
		var sum int
		for _, r := range reviews {
			sum += r.Rating
		}
		avg = float64(sum) / float64(len(reviews))
	}

	return &Dashboard{
		TotalSessions:     len(bookings),
		CompletedSessions: completed,
		UpcomingSessions:  upcoming,
		UniqueStudents:    len(students),
		AverageRating:     avg,
	}, nil
}
