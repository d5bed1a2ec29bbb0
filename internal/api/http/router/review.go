package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mentora/mentora_backend/internal/api/http/handler"
	"github.com/mentora/mentora_backend/pkg/authorize"
)

func (r *Router) registerReviewRoutes(
	api fiber.Router,
	rh *handler.ReviewHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	reviews := api.Group("/reviews", authRequired)

	reviews.Post("/", requirePerm(authorize.ResourceReview, authorize.ActionCreate), rh.Create)
	reviews.Get("/mine", requirePerm(authorize.ResourceReview, authorize.ActionList), rh.ListMine)
	reviews.Patch("/:id", requirePerm(authorize.ResourceReview, authorize.ActionUpdate), rh.Update)
	reviews.Delete("/:id", requirePerm(authorize.ResourceReview, authorize.ActionDelete), rh.Delete)
}
