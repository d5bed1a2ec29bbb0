package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mentora/mentora_backend/internal/api/http/handler"
	"github.com/mentora/mentora_backend/pkg/authorize"
)

func (r *Router) registerTutorRoutes(
	api fiber.Router,
	th *handler.TutorHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	me := api.Group("/tutors/me", authRequired)

	me.Get("/", requirePerm(authorize.ResourceTutorProfile, authorize.ActionRead), th.GetProfile)
	me.Put("/", requirePerm(authorize.ResourceTutorProfile, authorize.ActionUpdate), th.UpsertProfile)
	me.Get("/dashboard", requirePerm(authorize.ResourceTutorProfile, authorize.ActionRead), th.Dashboard)

	subjects := me.Group("/subjects")
	subjects.Get("/", requirePerm(authorize.ResourceTutorProfile, authorize.ActionRead), th.ListSubjects)
	subjects.Post("/", requirePerm(authorize.ResourceTutorProfile, authorize.ActionUpdate), th.AddSubjects)
	subjects.Delete("/:id", requirePerm(authorize.ResourceTutorProfile, authorize.ActionUpdate), th.RemoveSubject)

	slots := me.Group("/slots")
	slots.Get("/", requirePerm(authorize.ResourceAvailabilitySlot, authorize.ActionManage), th.ListSlots)
	slots.Post("/", requirePerm(authorize.ResourceAvailabilitySlot, authorize.ActionManage), th.CreateSlot)
	slots.Delete("/:id", requirePerm(authorize.ResourceAvailabilitySlot, authorize.ActionManage), th.DeleteSlot)
}
