package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mentora/mentora_backend/internal/api/http/handler"
)

// Catalog routes are public: browsing tutors requires no authentication.
func (r *Router) registerCatalogRoutes(api fiber.Router, ch *handler.CatalogHandler) {
	api.Get("/categories", ch.ListCategories)

	tutors := api.Group("/tutors")
	tutors.Get("/", ch.Search)
	tutors.Get("/:id", ch.GetByID)
	tutors.Get("/:id/slots", ch.ListOpenSlots)
	tutors.Get("/:id/reviews", ch.ListReviews)
}
