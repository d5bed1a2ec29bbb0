package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mentora/mentora_backend/internal/api/http/handler"
	"github.com/mentora/mentora_backend/pkg/authorize"
)

func (r *Router) registerBookingRoutes(
	api fiber.Router,
	bh *handler.BookingHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	bookings := api.Group("/bookings", authRequired)

	bookings.Post("/", requirePerm(authorize.ResourceBooking, authorize.ActionCreate), bh.Create)
	bookings.Get("/", requirePerm(authorize.ResourceBooking, authorize.ActionList), bh.List)
	bookings.Get("/history", requirePerm(authorize.ResourceBooking, authorize.ActionList), bh.History)
	bookings.Get("/tutor", requirePerm(authorize.ResourceBooking, authorize.ActionList), bh.ListForTutor)

	b := bookings.Group("/:id")
	b.Get("/", requirePerm(authorize.ResourceBooking, authorize.ActionRead), bh.GetByID)
	b.Patch("/cancel", requirePerm(authorize.ResourceBooking, authorize.ActionCancel), bh.Cancel)
	b.Patch("/complete", requirePerm(authorize.ResourceBooking, authorize.ActionComplete), bh.Complete)
}
