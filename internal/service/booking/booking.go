package booking

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/mentora/mentora_backend/internal/repo"
	entslot "github.com/mentora/mentora_backend/internal/repo/availabilityslot"
	entbooking "github.com/mentora/mentora_backend/internal/repo/booking"
	entcategory "github.com/mentora/mentora_backend/internal/repo/category"
	entprofile "github.com/mentora/mentora_backend/internal/repo/tutorprofile"
	entuser "github.com/mentora/mentora_backend/internal/repo/user"
	"github.com/mentora/mentora_backend/pkg/database"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	SlotID uuid.UUID
}

// Summary is the confirmation payload returned after a successful booking.
type Summary struct {
	ID           uuid.UUID
	Status       string
	Subject      string
	ScheduledFor ScheduledWindow
	Tutor        string
}

type ScheduledWindow struct {
	Start time.Time
	End   time.Time
}

type ListRequest struct {
	Status  *string
	From    *time.Time
	To      *time.Time
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, studentID uuid.UUID, req CreateRequest) (*Summary, error)
	GetByID(ctx context.Context, bookingID uuid.UUID) (*repo.Booking, error)
	ListForStudent(ctx context.Context, studentID uuid.UUID, req ListRequest) ([]*repo.Booking, error)
	ListHistoryForStudent(ctx context.Context, studentID uuid.UUID, req ListRequest) ([]*repo.Booking, error)
	ListForTutor(ctx context.Context, tutorProfileID uuid.UUID, req ListRequest) ([]*repo.Booking, error)

	// Cancel is student-initiated: the booking must belong to the student
	// and still be in the confirmed state. The claimed slot is released.
	Cancel(ctx context.Context, studentID, bookingID uuid.UUID) error

	// Complete is tutor-initiated: the booking must belong to the tutor's
	// profile and still be in the confirmed state.
	Complete(ctx context.Context, tutorProfileID, bookingID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type bookingService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &bookingService{db: db, nc: nc}
}

func (s *bookingService) Create(ctx context.Context, studentID uuid.UUID, req CreateRequest) (*Summary, error) {
	slot, err := s.db.AvailabilitySlot.Query().
		Where(entslot.ID(req.SlotID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("get slot: %w", err)
	}
	if slot.IsBooked {
		return nil, ErrSlotNotAvailable
	}

	profile, err := s.db.TutorProfile.Query().
		Where(entprofile.ID(slot.TutorProfileID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTutorNotFound
		}
		return nil, fmt.Errorf("get tutor profile: %w", err)
	}
	if profile.UserID == studentID {
		return nil, ErrOwnSlot
	}

	var created *repo.Booking
	err = database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		// Claim the slot atomically: the conditional update loses the race
		// when another transaction already flipped is_booked.
		claimed, err := tx.AvailabilitySlot.Update().
			Where(
				entslot.ID(slot.ID),
				entslot.IsBooked(false),
			).
			SetIsBooked(true).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("claim slot: %w", err)
		}
		if claimed == 0 {
			return ErrSlotNotAvailable
		}

		created, err = tx.Booking.Create().
			SetStudentID(studentID).
			SetTutorProfileID(slot.TutorProfileID).
			SetSlotID(slot.ID).
			SetCategoryID(slot.CategoryID).
			SetStartTime(slot.StartTime).
			SetEndTime(slot.EndTime).
			SetHourlyRate(profile.HourlyRate).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.nc != nil {
		subject := fmt.Sprintf("mentora.booking.created.%s", created.ID.String())
		_ = s.nc.Publish(subject, []byte(created.ID.String()))
	}

	return s.buildSummary(ctx, created, profile)
}

func (s *bookingService) buildSummary(ctx context.Context, b *repo.Booking, profile *repo.TutorProfile) (*Summary, error) {
	category, err := s.db.Category.Query().
		Where(entcategory.ID(b.CategoryID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get category: %w", err)
	}

	tutorUser, err := s.db.User.Query().
		Where(entuser.ID(profile.UserID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get tutor user: %w", err)
	}

	out := &Summary{
		ID:     b.ID,
		Status: string(b.Status),
		ScheduledFor: ScheduledWindow{
			Start: b.StartTime,
			End:   b.EndTime,
		},
	}
	if category != nil {
		out.Subject = category.Name
	}
	if tutorUser != nil {
		out.Tutor = tutorUser.Name
	}
	return out, nil
}

func (s *bookingService) GetByID(ctx context.Context, bookingID uuid.UUID) (*repo.Booking, error) {
	b, err := s.db.Booking.Query().
		Where(entbooking.ID(bookingID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

func (s *bookingService) ListForStudent(ctx context.Context, studentID uuid.UUID, req ListRequest) ([]*repo.Booking, error) {
	q := s.db.Booking.Query().
		Where(entbooking.StudentID(studentID))
	return s.list(ctx, q, req)
}

func (s *bookingService) ListHistoryForStudent(ctx context.Context, studentID uuid.UUID, req ListRequest) ([]*repo.Booking, error) {
	q := s.db.Booking.Query().
		Where(
			entbooking.StudentID(studentID),
			entbooking.StatusIn(entbooking.StatusCompleted, entbooking.StatusCancelled),
		)
	return s.list(ctx, q, req)
}

func (s *bookingService) ListForTutor(ctx context.Context, tutorProfileID uuid.UUID, req ListRequest) ([]*repo.Booking, error) {
	q := s.db.Booking.Query().
		Where(entbooking.TutorProfileID(tutorProfileID))
	return s.list(ctx, q, req)
}

func (s *bookingService) list(ctx context.Context, q *repo.BookingQuery, req ListRequest) ([]*repo.Booking, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	if req.Status != nil {
		q = q.Where(entbooking.StatusEQ(entbooking.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entbooking.StartTimeGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entbooking.StartTimeLT(*req.To))
	}

	q = q.Order(entbooking.ByCreatedAt(sql.OrderDesc()))

	bookings, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) Cancel(ctx context.Context, studentID, bookingID uuid.UUID) error {
	b, err := s.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if b.StudentID != studentID {
		return ErrNotOwner
	}
	if !canTransition(b.Status, entbooking.StatusCancelled) {
		return transitionError(b.Status)
	}

	now := time.Now()
	err = database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		// Guard on status inside the transaction so a concurrent cancel or
		// complete cannot double-fire.
		updated, err := tx.Booking.Update().
			Where(
				entbooking.ID(b.ID),
				entbooking.StatusEQ(entbooking.StatusConfirmed),
			).
			SetStatus(entbooking.StatusCancelled).
			SetCancelledAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}
		if updated == 0 {
			current, err := s.GetByID(ctx, b.ID)
			if err != nil {
				return err
			}
			return transitionError(current.Status)
		}

		// Release the claimed slot so it can be booked again.
		_, err = tx.AvailabilitySlot.Update().
			Where(
				entslot.ID(b.SlotID),
				entslot.IsBooked(true),
			).
			SetIsBooked(false).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("release slot: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.nc != nil {
		subject := fmt.Sprintf("mentora.booking.cancelled.%s", b.ID.String())
		_ = s.nc.Publish(subject, []byte(b.ID.String()))
	}
	return nil
}

func (s *bookingService) Complete(ctx context.Context, tutorProfileID, bookingID uuid.UUID) error {
	b, err := s.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if b.TutorProfileID != tutorProfileID {
		return ErrNotOwner
	}
	if !canTransition(b.Status, entbooking.StatusCompleted) {
		return transitionError(b.Status)
	}

	now := time.Now()
	updated, err := s.db.Booking.Update().
		Where(
			entbooking.ID(b.ID),
			entbooking.StatusEQ(entbooking.StatusConfirmed),
		).
		SetStatus(entbooking.StatusCompleted).
		SetCompletedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("complete booking: %w", err)
	}
	if updated == 0 {
		// Lost a race with a cancel or another complete; report the state
		// the booking actually ended up in.
		current, err := s.GetByID(ctx, b.ID)
		if err != nil {
			return err
		}
		return transitionError(current.Status)
	}

	if s.nc != nil {
		subject := fmt.Sprintf("mentora.booking.completed.%s", b.ID.String())
		_ = s.nc.Publish(subject, []byte(b.ID.String()))
	}
	return nil
}
