package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/mentora/mentora_backend/internal/service/review"
	pasetotoken "github.com/mentora/mentora_backend/pkg/paseto"
)

type ReviewHandler struct {
	svc review.Service
}

func NewReviewHandler(svc review.Service) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func mapReviewError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, review.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, review.ErrBookingNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, review.ErrBookingNotOwned):
		return forbidden(c)
	case errors.Is(err, review.ErrNotOwner):
		return forbidden(c)
	case errors.Is(err, review.ErrBookingNotComplete):
		return badRequest(c, err.Error())
	case errors.Is(err, review.ErrAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, review.ErrInvalidRating):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /reviews
func (h *ReviewHandler) Create(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		BookingID string  `json:"booking_id"`
		Rating    int     `json:"rating"`
		Comment   *string `json:"comment"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	bookingID, err := uuid.Parse(body.BookingID)
	if err != nil {
		return badRequest(c, "invalid booking_id")
	}

	r, err := h.svc.Create(c.Context(), claims.UserID, review.CreateRequest{
		BookingID: bookingID,
		Rating:    body.Rating,
		Comment:   body.Comment,
	})
	if err != nil {
		return mapReviewError(c, err)
	}

	return created(c, r)
}

// PATCH /reviews/:id
func (h *ReviewHandler) Update(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid review id")
	}

	var body struct {
		Rating  *int    `json:"rating"`
		Comment *string `json:"comment"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	r, err := h.svc.Update(c.Context(), claims.UserID, reviewID, review.UpdateRequest{
		Rating:  body.Rating,
		Comment: body.Comment,
	})
	if err != nil {
		return mapReviewError(c, err)
	}

	return ok(c, r)
}

// DELETE /reviews/:id
func (h *ReviewHandler) Delete(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid review id")
	}

	if err := h.svc.Delete(c.Context(), claims.UserID, reviewID); err != nil {
		return mapReviewError(c, err)
	}

	return noContent(c)
}

// GET /reviews/mine
func (h *ReviewHandler) ListMine(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	reviews, err := h.svc.ListForStudent(c.Context(), claims.UserID, review.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		return mapReviewError(c, err)
	}

	return ok(c, reviews)
}
