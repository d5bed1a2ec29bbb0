package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/mentora/mentora_backend/internal/service/catalog"
	"github.com/mentora/mentora_backend/internal/service/review"
)

type CatalogHandler struct {
	svc       catalog.Service
	reviewSvc review.Service
}

func NewCatalogHandler(svc catalog.Service, reviewSvc review.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc, reviewSvc: reviewSvc}
}

func mapCatalogError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, catalog.ErrTutorNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /tutors
func (h *CatalogHandler) Search(c fiber.Ctx) error {
	var q struct {
		Search   string `query:"search"`
		Category string `query:"category"`
		MinRate  int64  `query:"min_rate"`
		MaxRate  int64  `query:"max_rate"`
		Page     int    `query:"page"`
		PerPage  int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := catalog.SearchRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.Search != "" {
		req.Search = &q.Search
	}
	if q.Category != "" {
		req.Category = &q.Category
	}
	if q.MinRate > 0 {
		req.MinRate = &q.MinRate
	}
	if q.MaxRate > 0 {
		req.MaxRate = &q.MaxRate
	}

	listings, err := h.svc.SearchTutors(c.Context(), req)
	if err != nil {
		return mapCatalogError(c, err)
	}

	return ok(c, listings)
}

// GET /tutors/:id
func (h *CatalogHandler) GetByID(c fiber.Ctx) error {
	profileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid tutor id")
	}

	detail, err := h.svc.GetTutorDetail(c.Context(), profileID)
	if err != nil {
		return mapCatalogError(c, err)
	}

	return ok(c, detail)
}

// GET /tutors/:id/slots
func (h *CatalogHandler) ListOpenSlots(c fiber.Ctx) error {
	profileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid tutor id")
	}

	slots, err := h.svc.ListOpenSlots(c.Context(), profileID)
	if err != nil {
		return mapCatalogError(c, err)
	}

	return ok(c, slots)
}

// GET /tutors/:id/reviews
func (h *CatalogHandler) ListReviews(c fiber.Ctx) error {
	profileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid tutor id")
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	reviews, err := h.reviewSvc.ListForTutor(c.Context(), profileID, review.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		return internalError(c)
	}

	return ok(c, reviews)
}

// GET /categories
func (h *CatalogHandler) ListCategories(c fiber.Ctx) error {
	categories, err := h.svc.ListCategories(c.Context())
	if err != nil {
		return internalError(c)
	}

	return ok(c, categories)
}
