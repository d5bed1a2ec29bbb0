package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/mentora/mentora_backend/internal/service/admin"
)

type AdminHandler struct {
	svc admin.Service
}

func NewAdminHandler(svc admin.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func mapAdminError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, admin.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, admin.ErrCannotBanAdmin):
		return forbidden(c)
	case errors.Is(err, admin.ErrCategoryNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, admin.ErrCategoryExists):
		return conflict(c, err.Error())
	case errors.Is(err, admin.ErrCategoryInUse):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /admin/analytics
func (h *AdminHandler) Analytics(c fiber.Ctx) error {
	analytics, err := h.svc.GetAnalytics(c.Context())
	if err != nil {
		return mapAdminError(c, err)
	}

	return ok(c, analytics)
}

// GET /admin/users
func (h *AdminHandler) ListUsers(c fiber.Ctx) error {
	var q struct {
		Role    string `query:"role"`
		Banned  *bool  `query:"banned"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := admin.ListUsersRequest{
		Banned:  q.Banned,
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.Role != "" {
		req.Role = &q.Role
	}

	users, err := h.svc.ListUsers(c.Context(), req)
	if err != nil {
		return mapAdminError(c, err)
	}

	return ok(c, users)
}

// PATCH /admin/users/:id/ban
func (h *AdminHandler) BanUser(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	if err := h.svc.BanUser(c.Context(), userID); err != nil {
		return mapAdminError(c, err)
	}

	return noContent(c)
}

// PATCH /admin/users/:id/unban
func (h *AdminHandler) UnbanUser(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	if err := h.svc.UnbanUser(c.Context(), userID); err != nil {
		return mapAdminError(c, err)
	}

	return noContent(c)
}

// GET /admin/bookings
func (h *AdminHandler) ListBookings(c fiber.Ctx) error {
	var q struct {
		Status  string `query:"status"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := admin.ListBookingsRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.Status != "" {
		req.Status = &q.Status
	}

	bookings, err := h.svc.ListBookings(c.Context(), req)
	if err != nil {
		return mapAdminError(c, err)
	}

	return ok(c, bookings)
}

// POST /admin/categories
func (h *AdminHandler) CreateCategory(c fiber.Ctx) error {
	var body struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	category, err := h.svc.CreateCategory(c.Context(), admin.CategoryRequest{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		return mapAdminError(c, err)
	}

	return created(c, category)
}

// PATCH /admin/categories/:id
func (h *AdminHandler) UpdateCategory(c fiber.Ctx) error {
	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid category id")
	}

	var body struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	category, err := h.svc.UpdateCategory(c.Context(), categoryID, admin.CategoryRequest{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		return mapAdminError(c, err)
	}

	return ok(c, category)
}

// DELETE /admin/categories/:id
func (h *AdminHandler) DeleteCategory(c fiber.Ctx) error {
	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid category id")
	}

	if err := h.svc.DeleteCategory(c.Context(), categoryID); err != nil {
		return mapAdminError(c, err)
	}

	return noContent(c)
}
