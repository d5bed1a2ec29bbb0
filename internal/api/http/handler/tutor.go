package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/mentora/mentora_backend/internal/service/tutor"
	pasetotoken "github.com/mentora/mentora_backend/pkg/paseto"
)

type TutorHandler struct {
	svc tutor.Service
}

func NewTutorHandler(svc tutor.Service) *TutorHandler {
	return &TutorHandler{svc: svc}
}

func mapTutorError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, tutor.ErrProfileNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, tutor.ErrProfileRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, tutor.ErrSlotNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, tutor.ErrSlotBooked):
		return conflict(c, err.Error())
	case errors.Is(err, tutor.ErrInvalidTimeRange):
		return badRequest(c, err.Error())
	case errors.Is(err, tutor.ErrOverlappingSlot):
		return conflict(c, err.Error())
	case errors.Is(err, tutor.ErrCategoryNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /tutors/me
func (h *TutorHandler) GetProfile(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	profile, err := h.svc.GetProfile(c.Context(), claims.UserID)
	if err != nil {
		return mapTutorError(c, err)
	}

	return ok(c, profile)
}

// PUT /tutors/me
func (h *TutorHandler) UpsertProfile(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Headline    *string `json:"headline"`
		Bio         *string `json:"bio"`
		HourlyRate  int64   `json:"hourly_rate"`
		IsAccepting *bool   `json:"is_accepting"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.HourlyRate <= 0 {
		return badRequest(c, "hourly_rate must be positive")
	}

	profile, err := h.svc.UpsertProfile(c.Context(), claims.UserID, tutor.UpsertProfileRequest{
		Headline:    body.Headline,
		Bio:         body.Bio,
		HourlyRate:  body.HourlyRate,
		IsAccepting: body.IsAccepting,
	})
	if err != nil {
		return mapTutorError(c, err)
	}

	return ok(c, profile)
}

// POST /tutors/me/subjects
func (h *TutorHandler) AddSubjects(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		CategoryIDs []string `json:"category_ids"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(body.CategoryIDs) == 0 {
		return badRequest(c, "category_ids is required")
	}

	ids := make([]uuid.UUID, 0, len(body.CategoryIDs))
	for _, s := range body.CategoryIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			return badRequest(c, "invalid category id")
		}
		ids = append(ids, id)
	}

	if err := h.svc.AddSubjects(c.Context(), claims.UserID, ids); err != nil {
		return mapTutorError(c, err)
	}

	return noContent(c)
}

// DELETE /tutors/me/subjects/:id
func (h *TutorHandler) RemoveSubject(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid category id")
	}

	if err := h.svc.RemoveSubject(c.Context(), claims.UserID, categoryID); err != nil {
		return mapTutorError(c, err)
	}

	return noContent(c)
}

// GET /tutors/me/subjects
func (h *TutorHandler) ListSubjects(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	subjects, err := h.svc.ListSubjects(c.Context(), claims.UserID)
	if err != nil {
		return mapTutorError(c, err)
	}

	return ok(c, subjects)
}

// POST /tutors/me/slots
func (h *TutorHandler) CreateSlot(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		CategoryID string    `json:"category_id"`
		StartTime  time.Time `json:"start_time"`
		EndTime    time.Time `json:"end_time"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	categoryID, err := uuid.Parse(body.CategoryID)
	if err != nil {
		return badRequest(c, "invalid category_id")
	}

	slot, err := h.svc.CreateSlot(c.Context(), claims.UserID, tutor.CreateSlotRequest{
		CategoryID: categoryID,
		StartTime:  body.StartTime,
		EndTime:    body.EndTime,
	})
	if err != nil {
		return mapTutorError(c, err)
	}

	return created(c, slot)
}

// GET /tutors/me/slots
func (h *TutorHandler) ListSlots(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	slots, err := h.svc.ListSlots(c.Context(), claims.UserID)
	if err != nil {
		return mapTutorError(c, err)
	}

	return ok(c, slots)
}

// DELETE /tutors/me/slots/:id
func (h *TutorHandler) DeleteSlot(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	slotID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid slot id")
	}

	if err := h.svc.DeleteSlot(c.Context(), claims.UserID, slotID); err != nil {
		return mapTutorError(c, err)
	}

	return noContent(c)
}

// GET /tutors/me/dashboard
func (h *TutorHandler) Dashboard(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	dash, err := h.svc.GetDashboard(c.Context(), claims.UserID)
	if err != nil {
		return mapTutorError(c, err)
	}

	return ok(c, dash)
}
