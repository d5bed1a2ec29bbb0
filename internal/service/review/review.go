package review

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/mentora/mentora_backend/internal/repo"
	entbooking "github.com/mentora/mentora_backend/internal/repo/booking"
	entreview "github.com/mentora/mentora_backend/internal/repo/review"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	BookingID uuid.UUID
	Rating    int
	Comment   *string
}

type UpdateRequest struct {
	Rating  *int
	Comment *string
}

type ListRequest struct {
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Create records feedback for a booking. The booking must belong to the
	// student, be completed, and not be reviewed already.
	Create(ctx context.Context, studentID uuid.UUID, req CreateRequest) (*repo.Review, error)
	Update(ctx context.Context, studentID, reviewID uuid.UUID, req UpdateRequest) (*repo.Review, error)
	Delete(ctx context.Context, studentID, reviewID uuid.UUID) error
	ListForStudent(ctx context.Context, studentID uuid.UUID, req ListRequest) ([]*repo.Review, error)
	ListForTutor(ctx context.Context, tutorProfileID uuid.UUID, req ListRequest) ([]*repo.Review, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type reviewService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &reviewService{db: db, nc: nc}
}

func (s *reviewService) Create(ctx context.Context, studentID uuid.UUID, req CreateRequest) (*repo.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	b, err := s.db.Booking.Query().
		Where(entbooking.ID(req.BookingID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if b.StudentID != studentID {
		return nil, ErrBookingNotOwned
	}
	if b.Status != entbooking.StatusCompleted {
		return nil, ErrBookingNotComplete
	}

	exists, err := s.db.Review.Query().
		Where(entreview.BookingID(req.BookingID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	c := s.db.Review.Create().
		SetBookingID(req.BookingID).
		SetStudentID(studentID).
		SetTutorProfileID(b.TutorProfileID).
		SetRating(req.Rating)

	if req.Comment != nil {
		c = c.SetNillableComment(req.Comment)
	}

	r, err := c.Save(ctx)
	if err != nil {
		// The unique constraint on booking_id backstops the existence check
		// under concurrent submits.
		if repo.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.publishChanged(b.TutorProfileID)
	return r, nil
}

func (s *reviewService) Update(ctx context.Context, studentID, reviewID uuid.UUID, req UpdateRequest) (*repo.Review, error) {
	r, err := s.getOwned(ctx, studentID, reviewID)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return nil, ErrInvalidRating
	}

	upd := s.db.Review.UpdateOne(r)
	if req.Rating != nil {
		upd = upd.SetRating(*req.Rating)
	}
	if req.Comment != nil {
		upd = upd.SetComment(*req.Comment)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.publishChanged(r.TutorProfileID)
	return updated, nil
}

func (s *reviewService) Delete(ctx context.Context, studentID, reviewID uuid.UUID) error {
	r, err := s.getOwned(ctx, studentID, reviewID)
	if err != nil {
		return err
	}

	if err := s.db.Review.DeleteOne(r).Exec(ctx); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	s.publishChanged(r.TutorProfileID)
	return nil
}

func (s *reviewService) ListForStudent(ctx context.Context, studentID uuid.UUID, req ListRequest) ([]*repo.Review, error) {
	q := s.db.Review.Query().
		Where(entreview.StudentID(studentID))
	return s.list(ctx, q, req)
}

func (s *reviewService) ListForTutor(ctx context.Context, tutorProfileID uuid.UUID, req ListRequest) ([]*repo.Review, error) {
	q := s.db.Review.Query().
		Where(entreview.TutorProfileID(tutorProfileID))
	return s.list(ctx, q, req)
}

func (s *reviewService) list(ctx context.Context, q *repo.ReviewQuery, req ListRequest) ([]*repo.Review, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	reviews, err := q.
		Order(entreview.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (s *reviewService) getOwned(ctx context.Context, studentID, reviewID uuid.UUID) (*repo.Review, error) {
	r, err := s.db.Review.Query().
		Where(entreview.ID(reviewID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	if r.StudentID != studentID {
		return nil, ErrNotOwner
	}
	return r, nil
}

func (s *reviewService) publishChanged(tutorProfileID uuid.UUID) {
	if s.nc == nil {
		return
	}
	subject := fmt.Sprintf("mentora.review.changed.%s", tutorProfileID.String())
	_ = s.nc.Publish(subject, []byte(tutorProfileID.String()))
}
