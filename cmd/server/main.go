package main

import (
	"log"
	"net/http"

	"analytics_backend/internal/config"
	"analytics_backend/internal/controllers"
	"analytics_backend/internal/logger"
	"analytics_backend/internal/middleware"
	"analytics_backend/internal/repository"
	"analytics_backend/internal/routes"
	"analytics_backend/internal/service"
)

func main() {
	// Environment first; everything else is built from it
	cfg := config.Load()

	// Initialize structured logging to file
	logger.Setup(cfg.LogFile)

	// Open every configured database and migrate the record schema
	registry, err := config.NewRegistry(cfg)
	if err != nil {
		log.Fatalf("database setup failed: %v", err)
	}

	mainDB, err := registry.Get(config.MainDB)
	if err != nil {
		log.Fatalf("main database missing: %v", err)
	}

	repo := repository.NewGormDrivingDistanceRepo(mainDB)
	svc := service.NewDrivingDistanceService(repo)
	ctl := controllers.NewDrivingDistanceController(svc)

	// Setup Gin router
	r := routes.SetupRouter(cfg, ctl)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 Server running at :%s", cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}
