package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dawar-shafaque/restaurant-application/api"
	"github.com/dawar-shafaque/restaurant-application/config"
	"github.com/dawar-shafaque/restaurant-application/handlers"
	"github.com/dawar-shafaque/restaurant-application/routes"
	"github.com/dawar-shafaque/restaurant-application/services/auth"
	"github.com/dawar-shafaque/restaurant-application/services/booking"
	"github.com/dawar-shafaque/restaurant-application/services/catalog"
	"github.com/dawar-shafaque/restaurant-application/services/profile"
	"github.com/dawar-shafaque/restaurant-application/services/reservation"
	"github.com/dawar-shafaque/restaurant-application/services/waiter"
	"github.com/dawar-shafaque/restaurant-application/session"
	"github.com/dawar-shafaque/restaurant-application/store"
	"github.com/dawar-shafaque/restaurant-application/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// Transport, endpoint registry, session manager and domain stores.
	apiClient := api.NewClient(nil)
	endpoints := api.ResolveEndpoints()
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessions := session.NewManager(utils.GetSessionCacheClient(), sessionTTL)
	stores := store.NewStores()

	// Services.
	authService := &auth.DefaultAuthService{
		Client:    apiClient,
		Endpoints: endpoints,
		Sessions:  sessions,
	}
	bookingService := &booking.DefaultBookingService{
		Client:    apiClient,
		Endpoints: endpoints,
		Tables:    &stores.Tables,
	}
	reservationService := &reservation.DefaultReservationService{
		Client:    apiClient,
		Endpoints: endpoints,
	}
	catalogService := &catalog.DefaultCatalogService{
		Client:               apiClient,
		Endpoints:            endpoints,
		LocationsStore:       &stores.Locations,
		LocationOptionsStore: &stores.LocationOptions,
	}
	profileService := &profile.DefaultProfileService{
		Client:    apiClient,
		Endpoints: endpoints,
		Sessions:  sessions,
		Profile:   &stores.Profile,
	}
	waiterService := &waiter.DefaultWaiterService{
		Client:    apiClient,
		Endpoints: endpoints,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:        handlers.NewAuthHandler(authService),
		Booking:     handlers.NewBookingHandler(bookingService),
		Reservation: handlers.NewReservationHandler(reservationService),
		Catalog:     handlers.NewCatalogHandler(catalogService),
		Profile:     handlers.NewProfileHandler(profileService),
		Waiter:      handlers.NewWaiterHandler(waiterService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, sessions, handlerBundle)

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
