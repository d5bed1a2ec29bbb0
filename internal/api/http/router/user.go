package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mentora/mentora_backend/internal/api/http/handler"
	"github.com/mentora/mentora_backend/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	uh *handler.UserHandler,
	authRequired fiber.Handler,
	requireSelf func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	me := api.Group("/users/me", authRequired)

	me.Get("/", requireSelf(authorize.ResourceUser, authorize.ActionRead), uh.Me)
	me.Patch("/", requireSelf(authorize.ResourceUser, authorize.ActionUpdate), uh.UpdateMe)
	me.Post("/change-password", requireSelf(authorize.ResourceUser, authorize.ActionUpdate), uh.ChangePassword)
}
