package router

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/fangearhq/fangear-api/config"
	"github.com/fangearhq/fangear-api/internal/application"
	pginfra "github.com/fangearhq/fangear-api/internal/infrastructure/postgres"
	handlers "github.com/fangearhq/fangear-api/internal/interface/http"
	"github.com/fangearhq/fangear-api/internal/router/modules"
)

// Deps carries the shared infrastructure every module is built from.
type Deps struct {
	Cfg        *config.Config
	Logger     *logrus.Logger
	Pool       *pgxpool.Pool
	Redis      *redis.Client
	ContactPub application.ContactPublisher // optional
}

// InitModules builds all application modules and registers them with
// the router registry. Called once during startup.
func InitModules(r *Registry, d Deps) {
	userSvc := application.NewUserService(pginfra.NewUserRepository(d.Pool), d.Logger)
	productSvc := application.NewProductService(pginfra.NewProductRepository(d.Pool), d.Logger)
	cartSvc := application.NewCartService(pginfra.NewCartRepository(d.Pool), d.Logger)
	contactSvc := application.NewContactService(pginfra.NewContactRepository(d.Pool), d.ContactPub, d.Logger)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, d.Logger), d.Redis))
	r.Add(modules.NewProductModule(handlers.NewProductHandler(productSvc, d.Logger)))
	r.Add(modules.NewCartModule(handlers.NewCartHandler(cartSvc, d.Cfg.CartUserID, d.Logger)))
	r.Add(modules.NewContactModule(handlers.NewContactHandler(contactSvc, d.Logger), d.Redis))
}
