package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/mentora/mentora_backend/config"
	"github.com/mentora/mentora_backend/internal/api/http/handler"
	"github.com/mentora/mentora_backend/internal/api/http/middleware"
	"github.com/mentora/mentora_backend/internal/service/admin"
	"github.com/mentora/mentora_backend/internal/service/auth"
	"github.com/mentora/mentora_backend/internal/service/booking"
	"github.com/mentora/mentora_backend/internal/service/catalog"
	"github.com/mentora/mentora_backend/internal/service/review"
	"github.com/mentora/mentora_backend/internal/service/tutor"
	"github.com/mentora/mentora_backend/internal/service/user"
	"github.com/mentora/mentora_backend/pkg/authorize"
	pasetotoken "github.com/mentora/mentora_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg        *config.Config
	Redis      *redis.Client
	Auth       authorize.IAuthorization
	AuthSvc    auth.Service
	UserSvc    user.Service
	TutorSvc   tutor.Service
	CatalogSvc catalog.Service
	BookingSvc booking.Service
	ReviewSvc  review.Service
	AdminSvc   admin.Service
	PasetoMgr  *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	// Permission helpers
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}
	requireSelf := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequireSelfPermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	tutorH := handler.NewTutorHandler(r.p.TutorSvc)
	catalogH := handler.NewCatalogHandler(r.p.CatalogSvc, r.p.ReviewSvc)
	bookingH := handler.NewBookingHandler(r.p.BookingSvc, r.p.TutorSvc)
	reviewH := handler.NewReviewHandler(r.p.ReviewSvc)
	adminH := handler.NewAdminHandler(r.p.AdminSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files. Tutor self-routes are registered before the
	// public catalog routes so /tutors/me wins over /tutors/:id.
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired, requireSelf)
	r.registerTutorRoutes(api, tutorH, authRequired, requirePerm)
	r.registerCatalogRoutes(api, catalogH)
	r.registerBookingRoutes(api, bookingH, authRequired, requirePerm)
	r.registerReviewRoutes(api, reviewH, authRequired, requirePerm)
	r.registerAdminRoutes(api, adminH, authRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
