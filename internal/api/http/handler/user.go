package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/mentora/mentora_backend/internal/service/user"
	pasetotoken "github.com/mentora/mentora_backend/pkg/paseto"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrWrongPassword):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrPasswordTooShort):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /users/me
func (h *UserHandler) Me(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	u, err := h.svc.Me(c.Context(), claims.UserID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, fiber.Map{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"role":       u.Role,
		"created_at": u.CreatedAt,
	})
}

// PATCH /users/me
func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Name *string `json:"name"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.UpdateMe(c.Context(), claims.UserID, user.UpdateMeRequest{
		Name: body.Name,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, fiber.Map{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	})
}

// POST /users/me/change-password
func (h *UserHandler) ChangePassword(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.CurrentPassword == "" || body.NewPassword == "" {
		return badRequest(c, "current_password and new_password are required")
	}

	if err := h.svc.ChangePassword(c.Context(), claims.UserID, user.ChangePasswordRequest{
		CurrentPassword: body.CurrentPassword,
		NewPassword:     body.NewPassword,
	}); err != nil {
		return mapUserError(c, err)
	}

	return noContent(c)
}
