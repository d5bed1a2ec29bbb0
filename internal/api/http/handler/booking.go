package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/mentora/mentora_backend/internal/repo"
	entbooking "github.com/mentora/mentora_backend/internal/repo/booking"
	"github.com/mentora/mentora_backend/internal/service/booking"
	"github.com/mentora/mentora_backend/internal/service/tutor"
	pasetotoken "github.com/mentora/mentora_backend/pkg/paseto"
)

type BookingHandler struct {
	svc      booking.Service
	tutorSvc tutor.Service
}

func NewBookingHandler(svc booking.Service, tutorSvc tutor.Service) *BookingHandler {
	return &BookingHandler{svc: svc, tutorSvc: tutorSvc}
}

func mapBookingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, booking.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrSlotNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrTutorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrSlotNotAvailable):
		return conflict(c, err.Error())
	case errors.Is(err, booking.ErrOwnSlot):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrNotOwner):
		return forbidden(c)
	case errors.Is(err, booking.ErrAlreadyCompleted):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrAlreadyCancelled):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrInvalidTransition):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

func parseListQuery(c fiber.Ctx) (booking.ListRequest, error) {
	var q struct {
		Status  string `query:"status"`
		From    string `query:"from"`
		To      string `query:"to"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := booking.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.Status != "" {
		switch entbooking.Status(q.Status) {
		case entbooking.StatusConfirmed, entbooking.StatusCompleted, entbooking.StatusCancelled:
			req.Status = &q.Status
		default:
			return req, errors.New("invalid status filter")
		}
	}
	if q.From != "" {
		t, err := time.Parse(time.RFC3339, q.From)
		if err != nil {
			return req, errors.New("invalid from timestamp")
		}
		req.From = &t
	}
	if q.To != "" {
		t, err := time.Parse(time.RFC3339, q.To)
		if err != nil {
			return req, errors.New("invalid to timestamp")
		}
		req.To = &t
	}
	return req, nil
}

// POST /bookings
func (h *BookingHandler) Create(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		SlotID string `json:"slot_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	slotID, err := uuid.Parse(body.SlotID)
	if err != nil {
		return badRequest(c, "invalid slot_id")
	}

	summary, err := h.svc.Create(c.Context(), claims.UserID, booking.CreateRequest{SlotID: slotID})
	if err != nil {
		return mapBookingError(c, err)
	}

	return created(c, summary)
}

// GET /bookings
func (h *BookingHandler) List(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	req, err := parseListQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	bookings, err := h.svc.ListForStudent(c.Context(), claims.UserID, req)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, bookings)
}

// GET /bookings/history
func (h *BookingHandler) History(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	req, err := parseListQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	bookings, err := h.svc.ListHistoryForStudent(c.Context(), claims.UserID, req)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, bookings)
}

// GET /bookings/:id
func (h *BookingHandler) GetByID(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid booking id")
	}

	b, err := h.svc.GetByID(c.Context(), bookingID)
	if err != nil {
		return mapBookingError(c, err)
	}

	// The student who booked it or the tutor who owns the slot may view it.
	if b.StudentID != claims.UserID {
		profile, err := h.tutorSvc.GetProfile(c.Context(), claims.UserID)
		if err != nil || profile.ID != b.TutorProfileID {
			return forbidden(c)
		}
	}

	return ok(c, b)
}

// PATCH /bookings/:id/cancel
func (h *BookingHandler) Cancel(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid booking id")
	}

	if err := h.svc.Cancel(c.Context(), claims.UserID, bookingID); err != nil {
		return mapBookingError(c, err)
	}

	return noContent(c)
}

// PATCH /bookings/:id/complete
func (h *BookingHandler) Complete(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid booking id")
	}

	// Completion is tutor-initiated; the caller must have a tutor profile.
	profile, err := h.tutorSvc.GetProfile(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, tutor.ErrProfileNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	if err := h.svc.Complete(c.Context(), profile.ID, bookingID); err != nil {
		return mapBookingError(c, err)
	}

	return noContent(c)
}

// GET /bookings/tutor
func (h *BookingHandler) ListForTutor(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	req, err := parseListQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	profile, err := h.tutorSvc.GetProfile(c.Context(), claims.UserID)
	if err != nil {
		// A tutor without a profile has no bookings yet.
		if errors.Is(err, tutor.ErrProfileNotFound) {
			return ok(c, []*repo.Booking{})
		}
		return internalError(c)
	}

	bookings, err := h.svc.ListForTutor(c.Context(), profile.ID, req)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, bookings)
}
