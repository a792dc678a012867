package routes

import (
	"spabook/internal/adapters/http/handlers"
	"spabook/internal/adapters/http/middleware"
	"spabook/internal/adapters/persistence/repositories"
	"spabook/internal/config"
	"spabook/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	formulaRepo := repositories.NewFormulaRepository(db)
	appointmentRepo := repositories.NewAppointmentRepository(db)

	// Initialize services
	notifyService := services.NewNotificationService()
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	catalogService := services.NewCatalogService(clientRepo, formulaRepo)
	scheduleService := services.NewScheduleService(appointmentRepo, clientRepo, formulaRepo, notifyService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	appointmentHandler := handlers.NewAppointmentHandler(scheduleService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes (public)
	authRoutes := apiV1.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Admin routes. The role check runs on every request so a role
	// change in the store takes effect without a new login.
	adminRoutes := apiV1.Group("/admin")
	adminRoutes.Use(middleware.AuthMiddleware(cfg))
	adminRoutes.Use(middleware.AdminOnly(profileRepo))
	setupAdminRoutes(adminRoutes, authHandler, catalogHandler, appointmentHandler)

	// Masseur routes
	masseurRoutes := apiV1.Group("/masseur")
	masseurRoutes.Use(middleware.AuthMiddleware(cfg))
	masseurRoutes.Use(middleware.MasseurOnly(profileRepo))
	setupMasseurRoutes(masseurRoutes, scheduleHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupAdminRoutes configures the admin workspace (admin role only)
func setupAdminRoutes(
	router fiber.Router,
	authHandler *handlers.AuthHandler,
	catalogHandler *handlers.CatalogHandler,
	appointmentHandler *handlers.AppointmentHandler,
) {
	// Staff accounts
	router.Post("/staff", authHandler.CreateStaff)

	// Clients
	router.Get("/clients", catalogHandler.ListClients)
	router.Post("/clients", catalogHandler.CreateClient)

	// Formulas
	router.Get("/formulas", catalogHandler.ListFormulas)
	router.Post("/formulas", catalogHandler.CreateFormula)

	// Appointments
	router.Get("/appointments", appointmentHandler.List)
	router.Post("/appointments", appointmentHandler.Create)
}

// setupMasseurRoutes configures the masseur workspace (masseur role only)
func setupMasseurRoutes(router fiber.Router, handler *handlers.ScheduleHandler) {
	// Daily schedule
	router.Get("/schedule", handler.Daily)

	// Appointment lifecycle
	router.Post("/appointments/:id/start", handler.Start)
	router.Post("/appointments/:id/complete", handler.Complete)
}
