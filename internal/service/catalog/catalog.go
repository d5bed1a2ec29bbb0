package catalog

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/mentora/mentora_backend/internal/repo"
	entslot "github.com/mentora/mentora_backend/internal/repo/availabilityslot"
	entcategory "github.com/mentora/mentora_backend/internal/repo/category"
	entreview "github.com/mentora/mentora_backend/internal/repo/review"
	enttutorcat "github.com/mentora/mentora_backend/internal/repo/tutorcategory"
	entprofile "github.com/mentora/mentora_backend/internal/repo/tutorprofile"
	entuser "github.com/mentora/mentora_backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SearchRequest struct {
	Search   *string
	Category *string // category id or case-insensitive name
	MinRate  *int64
	MaxRate  *int64
	Page     int
	PerPage  int
}

// TutorListing is a public search result row.
type TutorListing struct {
	Profile       *repo.TutorProfile
	TutorName     string
	Subjects      []*repo.Category
	AverageRating float64
	ReviewCount   int
}

// TutorDetail is the public tutor page: listing plus open slots and reviews.
type TutorDetail struct {
	TutorListing
	OpenSlots []*repo.AvailabilitySlot
	Reviews   []*repo.Review
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	SearchTutors(ctx context.Context, req SearchRequest) ([]*TutorListing, error)
	GetTutorDetail(ctx context.Context, profileID uuid.UUID) (*TutorDetail, error)
	ListCategories(ctx context.Context) ([]*repo.Category, error)
	ListOpenSlots(ctx context.Context, profileID uuid.UUID) ([]*repo.AvailabilitySlot, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type catalogService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &catalogService{db: db}
}

func (s *catalogService) SearchTutors(ctx context.Context, req SearchRequest) ([]*TutorListing, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.TutorProfile.Query()

	if req.MinRate != nil {
		q = q.Where(entprofile.HourlyRateGTE(*req.MinRate))
	}
	if req.MaxRate != nil {
		q = q.Where(entprofile.HourlyRateLTE(*req.MaxRate))
	}

	if req.Search != nil && *req.Search != "" {
		userIDs, err := s.db.User.Query().
			Where(entuser.NameContainsFold(*req.Search)).
			IDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("search users: %w", err)
		}
		q = q.Where(entprofile.UserIDIn(userIDs...))
	}

	if req.Category != nil && *req.Category != "" {
		catQ := s.db.Category.Query()
		if id, err := uuid.Parse(*req.Category); err == nil {
			catQ = catQ.Where(entcategory.Or(
				entcategory.ID(id),
				entcategory.NameEqualFold(*req.Category),
			))
		} else {
			catQ = catQ.Where(entcategory.NameEqualFold(*req.Category))
		}
		catIDs, err := catQ.IDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolve category: %w", err)
		}

		links, err := s.db.TutorCategory.Query().
			Where(enttutorcat.CategoryIDIn(catIDs...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolve tutors for category: %w", err)
		}

		ids := make([]uuid.UUID, 0, len(links))
		for _, l := range links {
			ids = append(ids, l.TutorProfileID)
		}
		q = q.Where(entprofile.IDIn(ids...))
	}

	profiles, err := q.
		Order(entprofile.ByRating(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search tutors: %w", err)
	}

	out := make([]*TutorListing, 0, len(profiles))
	for _, p := range profiles {
		listing, err := s.buildListing(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, listing)
	}
	return out, nil
}

func (s *catalogService) buildListing(ctx context.Context, p *repo.TutorProfile) (*TutorListing, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(p.UserID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get tutor user: %w", err)
	}

	links, err := s.db.TutorCategory.Query().
		Where(enttutorcat.TutorProfileID(p.ID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subject links: %w", err)
	}
	catIDs := make([]uuid.UUID, 0, len(links))
	for _, l := range links {
		catIDs = append(catIDs, l.CategoryID)
	}
	subjects, err := s.db.Category.Query().
		Where(entcategory.IDIn(catIDs...)).
		Order(entcategory.ByName()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	reviews, err := s.db.Review.Query().
		Where(entreview.TutorProfileID(p.ID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	var avg float64
	if len(reviews) > 0 {
		var sum int
		for _, r := range reviews {
			sum += r.Rating
		}
		avg = float64(sum) / float64(len(reviews))
	}

	listing := &TutorListing{
		Profile:       p,
		Subjects:      subjects,
		AverageRating: avg,
		ReviewCount:   len(reviews),
	}
	if u != nil {
		listing.TutorName = u.Name
	}
	return listing, nil
}

func (s *catalogService) GetTutorDetail(ctx context.Context, profileID uuid.UUID) (*TutorDetail, error) {
	p, err := s.db.TutorProfile.Query().
		Where(entprofile.ID(profileID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTutorNotFound
		}
		return nil, fmt.Errorf("get tutor profile: %w", err)
	}

	listing, err := s.buildListing(ctx, p)
	if err != nil {
		return nil, err
	}

	slots, err := s.ListOpenSlots(ctx, profileID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.db.Review.Query().
		Where(entreview.TutorProfileID(profileID)).
		Order(entreview.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return &TutorDetail{
		TutorListing: *listing,
		OpenSlots:    slots,
		Reviews:      reviews,
	}, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*repo.Category, error) {
	categories, err := s.db.Category.Query().
		Order(entcategory.ByName()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *catalogService) ListOpenSlots(ctx context.Context, profileID uuid.UUID) ([]*repo.AvailabilitySlot, error) {
	slots, err := s.db.AvailabilitySlot.Query().
		Where(
			entslot.TutorProfileID(profileID),
			entslot.IsBooked(false),
		).
		Order(entslot.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list open slots: %w", err)
	}
	return slots, nil
}
