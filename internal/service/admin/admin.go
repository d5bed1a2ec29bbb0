package admin

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/mentora/mentora_backend/internal/repo"
	entslot "github.com/mentora/mentora_backend/internal/repo/availabilityslot"
	entbooking "github.com/mentora/mentora_backend/internal/repo/booking"
	entcategory "github.com/mentora/mentora_backend/internal/repo/category"
	entuser "github.com/mentora/mentora_backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Analytics is a platform-wide snapshot for the admin dashboard.
type Analytics struct {
	TotalUsers        int
	TotalStudents     int
	TotalTutors       int
	TotalBookings     int
	CompletedBookings int
	CancelledBookings int
	TotalReviews      int
	TotalCategories   int
}

type ListUsersRequest struct {
	Role    *string // "student" | "tutor" | "admin"
	Banned  *bool
	Page    int
	PerPage int
}

type ListBookingsRequest struct {
	Status  *string // "confirmed" | "completed" | "cancelled"
	Page    int
	PerPage int
}

type CategoryRequest struct {
	Name        string
	Description *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	GetAnalytics(ctx context.Context) (*Analytics, error)

	ListUsers(ctx context.Context, req ListUsersRequest) ([]*repo.User, error)
	BanUser(ctx context.Context, userID uuid.UUID) error
	UnbanUser(ctx context.Context, userID uuid.UUID) error

	ListBookings(ctx context.Context, req ListBookingsRequest) ([]*repo.Booking, error)

	CreateCategory(ctx context.Context, req CategoryRequest) (*repo.Category, error)
	UpdateCategory(ctx context.Context, categoryID uuid.UUID, req CategoryRequest) (*repo.Category, error)
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type adminService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &adminService{db: db}
}

func (s *adminService) GetAnalytics(ctx context.Context) (*Analytics, error) {
	out := &Analytics{}

	var err error
	if out.TotalUsers, err = s.db.User.Query().
		Where(entuser.DeletedAtIsNil()).
		Count(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if out.TotalStudents, err = s.db.User.Query().
		Where(entuser.RoleEQ(entuser.RoleStudent), entuser.DeletedAtIsNil()).
		Count(ctx); err != nil {
		return nil, fmt.Errorf("count students: %w", err)
	}
	if out.TotalTutors, err = s.db.User.Query().
		Where(entuser.RoleEQ(entuser.RoleTutor), entuser.DeletedAtIsNil()).
		Count(ctx); err != nil {
		return nil, fmt.Errorf("count tutors: %w", err)
	}
	if out.TotalBookings, err = s.db.Booking.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}
	if out.CompletedBookings, err = s.db.Booking.Query().
		Where(entbooking.StatusEQ(entbooking.StatusCompleted)).
		Count(ctx); err != nil {
		return nil, fmt.Errorf("count completed bookings: %w", err)
	}
	if out.CancelledBookings, err = s.db.Booking.Query().
		Where(entbooking.StatusEQ(entbooking.StatusCancelled)).
		Count(ctx); err != nil {
		return nil, fmt.Errorf("count cancelled bookings: %w", err)
	}
	if out.TotalReviews, err = s.db.Review.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}
	if out.TotalCategories, err = s.db.Category.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	return out, nil
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

func (s *adminService) ListUsers(ctx context.Context, req ListUsersRequest) ([]*repo.User, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}

	q := s.db.User.Query().Where(entuser.DeletedAtIsNil())
	if req.Role != nil {
		q = q.Where(entuser.RoleEQ(entuser.Role(*req.Role)))
	}
	if req.Banned != nil {
		q = q.Where(entuser.IsBanned(*req.Banned))
	}

	users, err := q.
		Order(entuser.ByCreatedAt(sql.OrderDesc())).
		Offset((req.Page - 1) * req.PerPage).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *adminService) BanUser(ctx context.Context, userID uuid.UUID) error {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user: %w", err)
	}
	if u.Role == entuser.RoleAdmin {
		return ErrCannotBanAdmin
	}

	if _, err := s.db.User.UpdateOne(u).
		SetIsBanned(true).
		SetBannedAt(time.Now()).
		Save(ctx); err != nil {
		return fmt.Errorf("ban user: %w", err)
	}
	return nil
}

func (s *adminService) UnbanUser(ctx context.Context, userID uuid.UUID) error {
	updated, err := s.db.User.Update().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		SetIsBanned(false).
		ClearBannedAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("unban user: %w", err)
	}
	if updated == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Bookings
// ---------------------------------------------------------------------------

func (s *adminService) ListBookings(ctx context.Context, req ListBookingsRequest) ([]*repo.Booking, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}

	q := s.db.Booking.Query()
	if req.Status != nil {
		q = q.Where(entbooking.StatusEQ(entbooking.Status(*req.Status)))
	}

	bookings, err := q.
		Order(entbooking.ByStartTime(sql.OrderDesc())).
		Offset((req.Page - 1) * req.PerPage).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

func (s *adminService) CreateCategory(ctx context.Context, req CategoryRequest) (*repo.Category, error) {
	c := s.db.Category.Create().SetName(req.Name)
	if req.Description != nil {
		c = c.SetDescription(*req.Description)
	}

	category, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *adminService) UpdateCategory(ctx context.Context, categoryID uuid.UUID, req CategoryRequest) (*repo.Category, error) {
	existing, err := s.db.Category.Query().
		Where(entcategory.ID(categoryID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}

	upd := s.db.Category.UpdateOne(existing).SetName(req.Name)
	if req.Description != nil {
		upd = upd.SetDescription(*req.Description)
	}

	category, err := upd.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

func (s *adminService) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	// Refuse deletion while slots or bookings still reference the category;
	// historical bookings keep their snapshot, so the row must stay.
	inUse, err := s.db.AvailabilitySlot.Query().
		Where(entslot.CategoryID(categoryID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check slots: %w", err)
	}
	if !inUse {
		inUse, err = s.db.Booking.Query().
			Where(entbooking.CategoryID(categoryID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check bookings: %w", err)
		}
	}
	if inUse {
		return ErrCategoryInUse
	}

	deleted, err := s.db.Category.Delete().
		Where(entcategory.ID(categoryID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if deleted == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
