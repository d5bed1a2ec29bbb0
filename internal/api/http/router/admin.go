package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mentora/mentora_backend/internal/api/http/handler"
	"github.com/mentora/mentora_backend/pkg/authorize"
)

func (r *Router) registerAdminRoutes(
	api fiber.Router,
	ah *handler.AdminHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	adm := api.Group("/admin", authRequired)

	adm.Get("/analytics", requirePerm(authorize.ResourceAudit, authorize.ActionRead), ah.Analytics)

	users := adm.Group("/users", requirePerm(authorize.ResourceUser, authorize.ActionManage))
	users.Get("/", ah.ListUsers)
	users.Patch("/:id/ban", ah.BanUser)
	users.Patch("/:id/unban", ah.UnbanUser)

	adm.Get("/bookings", requirePerm(authorize.ResourceBooking, authorize.ActionManage), ah.ListBookings)

	categories := adm.Group("/categories", requirePerm(authorize.ResourceCategory, authorize.ActionManage))
	categories.Post("/", ah.CreateCategory)
	categories.Patch("/:id", ah.UpdateCategory)
	categories.Delete("/:id", ah.DeleteCategory)
}
