package main

import (
	"context"
	"net/http"
	"os"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"atelier-cms/api/router"
	"atelier-cms/cdn"
	"atelier-cms/config"
	"atelier-cms/db"
	_ "atelier-cms/docs" // swag generated package
	"atelier-cms/internal/logger"
	"atelier-cms/internal/metrics"
	"atelier-cms/repositories"
	"atelier-cms/services"
	"atelier-cms/store"
)

// @title           Atelier CMS API
// @version         1.0
// @description     Content API for the marketing site and its admin panel
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		logger.Log.Errorf("mongo init failed: %v", err)
		os.Exit(1)
	}

	reg := metrics.NewRegistry()
	st := metrics.InstrumentStore(store.NewMongoStore(db.Database()), reg)

	authSvc, err := services.NewAuthServiceFromEnv(repositories.NewUserRepository(st))
	if err != nil {
		logger.Log.Errorf("auth init failed: %v", err)
		os.Exit(1)
	}

	deps := router.NewDeps(st, authSvc, cdn.NewClient(cfg.CDN), reg)
	deps.HealthCheck = func(ctx context.Context) error {
		return db.Client().Ping(ctx, readpref.Primary())
	}

	r := router.New(deps)
	if err := r.Run(cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
		logger.Log.Errorf("server stopped: %v", err)
		os.Exit(1)
	}
}
