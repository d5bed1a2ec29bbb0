package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mentora/mentora_backend/internal/repo"
	entuser "github.com/mentora/mentora_backend/internal/repo/user"
	"github.com/mentora/mentora_backend/pkg/util/password"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UpdateMeRequest struct {
	Name *string
}

type ChangePasswordRequest struct {
	CurrentPassword string
	NewPassword     string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Me(ctx context.Context, userID uuid.UUID) (*repo.User, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, req UpdateMeRequest) (*repo.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &userService{db: db}
}

func (s *userService) Me(ctx context.Context, userID uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) UpdateMe(ctx context.Context, userID uuid.UUID, req UpdateMeRequest) (*repo.User, error) {
	u, err := s.Me(ctx, userID)
	if err != nil {
		return nil, err
	}

	upd := s.db.User.UpdateOne(u)
	if req.Name != nil {
		upd = upd.SetName(*req.Name)
	}

	u, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	if len(req.NewPassword) < 8 {
		return ErrPasswordTooShort
	}

	u, err := s.Me(ctx, userID)
	if err != nil {
		return err
	}

	if err := password.Verify(u.PasswordHash, req.CurrentPassword); err != nil {
		return ErrWrongPassword
	}

	newHash, err := password.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.db.User.UpdateOne(u).
		SetPasswordHash(newHash).
		Save(ctx); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
