package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/mentora/mentora_backend/config"
	"github.com/mentora/mentora_backend/internal/repo"
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

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideUserService,
		ProvideTutorService,
		ProvideCatalogService,
		ProvideBookingService,
		ProvideReviewService,
		ProvideAdminService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	authz authorize.IAuthorization,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, paseto, authz, cfg)
}

func ProvideUserService(db *repo.Client) user.Service {
	return user.New(db)
}

func ProvideTutorService(db *repo.Client) tutor.Service {
	return tutor.New(db)
}

func ProvideCatalogService(db *repo.Client) catalog.Service {
	return catalog.New(db)
}

func ProvideBookingService(db *repo.Client, nc *nats.Conn) booking.Service {
	return booking.New(db, nc)
}

func ProvideReviewService(db *repo.Client, nc *nats.Conn) review.Service {
	return review.New(db, nc)
}

func ProvideAdminService(db *repo.Client) admin.Service {
	return admin.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
