package routes

import (
	"condo-ops-backend/internal/api/handlers"
	"condo-ops-backend/internal/api/middleware"
	"condo-ops-backend/internal/auth"
	"condo-ops-backend/internal/config"
	"condo-ops-backend/internal/scheduling"
	"condo-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Version is reported by the health endpoints
const Version = "1.0.0"

// Dependencies holds what the router needs from main
type Dependencies struct {
	Scheduling  service.SchedulingServiceInterface
	AuthService *auth.AuthService
	// Store is pinged by the health endpoints; nil for the memory driver.
	Store handlers.Pinger
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps Dependencies, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Lets c.Value resolve request keys so handlers can pass c as a context
	router.ContextWithFallback = true

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.Store, Version)
	dutyHandler := handlers.NewDutyHandler(deps.Scheduling)
	reservationHandler := handlers.NewReservationHandler(deps.Scheduling)
	cleaningHandler := handlers.NewCleaningHandler(deps.Scheduling)
	saunaHandler := handlers.NewSaunaHandler(deps.Scheduling)
	adminHandler := handlers.NewAdminHandler(deps.Scheduling)

	authMiddleware := auth.NewAuthMiddleware(deps.AuthService)
	can := auth.RequireCapability

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/board", can(scheduling.CapViewBoard), dutyHandler.GetBoard)

		// Duty routes
		duties := v1.Group("/duties")
		{
			duties.GET("", can(scheduling.CapViewBoard), dutyHandler.ListDuties)
			duties.POST("", can(scheduling.CapManageDuties), dutyHandler.CreateDuty)
			duties.PUT("/:id", can(scheduling.CapManageDuties), dutyHandler.UpdateDuty)
			duties.PATCH("/:id/active", can(scheduling.CapManageDuties), dutyHandler.SetDutyActive)
			duties.DELETE("/:id", can(scheduling.CapManageDuties), dutyHandler.DeleteDuty)
			duties.POST("/:id/toggle", can(scheduling.CapCompleteDuties), dutyHandler.ToggleDuty)
		}

		// Reservation routes
		reservations := v1.Group("/reservations")
		{
			reservations.GET("", can(scheduling.CapViewReservations), reservationHandler.ListReservations)
			reservations.POST("", can(scheduling.CapBookReservations), reservationHandler.CreateReservation)
			reservations.PUT("/:id", can(scheduling.CapBookReservations), reservationHandler.UpdateReservation)
			reservations.DELETE("/:id", can(scheduling.CapDeleteReservations), reservationHandler.DeleteReservation)
			reservations.POST("/:id/complete", can(scheduling.CapCompleteReservations), reservationHandler.CompleteReservation)
			reservations.POST("/:id/cancel", can(scheduling.CapBookReservations), reservationHandler.CancelReservation)
		}

		// Space occupancy routes
		spaces := v1.Group("/spaces", can(scheduling.CapViewReservations))
		{
			spaces.GET("/status", reservationHandler.SpacesStatus)
			spaces.GET("/:space/status", reservationHandler.SpaceStatus)
		}

		// Cleaning routes
		cleaning := v1.Group("/cleaning")
		{
			cleaning.GET("/pending", can(scheduling.CapViewCleaning), cleaningHandler.ListPending)
			cleaning.GET("/history", can(scheduling.CapViewCleaning), cleaningHandler.History)
			cleaning.POST("/:id/finish", can(scheduling.CapManageCleaning), cleaningHandler.Finish)
			cleaning.PUT("/:id/crew", can(scheduling.CapManageCleaning), cleaningHandler.AssignCrew)
		}

		// Sauna walk-in routes
		sauna := v1.Group("/sauna")
		{
			sauna.GET("", can(scheduling.CapViewReservations), saunaHandler.Overview)
			sauna.POST("/sessions", can(scheduling.CapManageSauna), saunaHandler.StartSession)
			sauna.POST("/sessions/:id/finish", can(scheduling.CapManageSauna), saunaHandler.FinishSession)
		}

		// Admin routes
		admin := v1.Group("/admin", can(scheduling.CapAdminister))
		{
			admin.POST("/reconcile", adminHandler.Reconcile)
		}
	}

	return router
}
