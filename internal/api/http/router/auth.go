package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mentora/mentora_backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(api fiber.Router, ah *handler.AuthHandler, authRequired fiber.Handler) {
	grp := api.Group("/auth")

	grp.Post("/register", ah.Register)
	grp.Post("/login", ah.Login)
	grp.Post("/refresh", ah.Refresh)
	grp.Post("/logout", authRequired, ah.Logout)
}
