package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nearaid/config"
	"nearaid/database"
	serviceRepo "nearaid/database/repository/service"
	"nearaid/handlers"
	"nearaid/middleware"
	"nearaid/routes"
	"nearaid/services/geocode"
	"nearaid/services/help"
	"nearaid/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitGeocodeCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	svcRepo := serviceRepo.NewMongoServiceRepo()

	// services.
	geocodeTimeout := time.Duration(config.AppConfig.GeocodeTimeoutSec) * time.Second
	nominatim := geocode.NewNominatimGeocoder(
		config.AppConfig.NominatimBaseURL,
		config.AppConfig.NominatimUserAgent,
		geocodeTimeout,
	)
	geocoder := geocode.NewCachedGeocoder(
		nominatim,
		utils.GetGeocodeCacheClient(),
		time.Duration(config.AppConfig.GeocodeCacheTTLMin)*time.Minute,
	)

	helpService := &help.DefaultHelpService{
		Repo:     svcRepo,
		Geocoder: geocoder,
		Config: help.Config{
			DefaultRadiusKm: config.AppConfig.DefaultRadiusKm,
			SearchLimit:     int64(config.AppConfig.SearchLimit),
			GeocodeTimeout:  geocodeTimeout,
		},
		Logger: logger,
	}

	serviceHandler := handlers.NewServiceHandler(svcRepo)
	helpHandler := handlers.NewHelpHandler(helpService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AddServiceHandler:       serviceHandler.AddServiceHandler,
		UploadServicesHandler:   serviceHandler.UploadServicesHandler,
		ListServicesHandler:     serviceHandler.ListServicesHandler,
		ListServiceTypesHandler: serviceHandler.ListServiceTypesHandler,
		GetHelpHandler:          helpHandler.GetHelpHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetGeocodeCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
