package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/job-board-api/internal/config"
	"github.com/hireloop/job-board-api/internal/database"
	"github.com/hireloop/job-board-api/internal/handlers"
	"github.com/hireloop/job-board-api/internal/middleware"
	"github.com/hireloop/job-board-api/internal/repository"
	"github.com/hireloop/job-board-api/internal/services"
	"github.com/hireloop/job-board-api/internal/token"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	// Bootstrap the organization account and default departments
	if err := database.Seed(database.GetDB(), cfg); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Initialize token manager
	tokens := token.NewManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// Initialize repositories
	db := database.GetDB()
	organizationRepo := repository.NewOrganizationRepository(db)
	departmentsRepo := repository.NewDepartmentsRepository(db)
	jobsRepo := repository.NewJobsRepository(db)
	applicationsRepo := repository.NewJobApplicationsRepository(db)

	// Initialize services
	authService := services.NewAuthService(organizationRepo, tokens)
	organizationService := services.NewOrganizationService(organizationRepo)
	departmentService := services.NewDepartmentService(departmentsRepo)
	jobService := services.NewJobService(jobsRepo, departmentsRepo)
	applicationService := services.NewApplicationService(jobsRepo, applicationsRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	orgHandler := handlers.NewOrganizationHandler(organizationService)
	departmentHandler := handlers.NewDepartmentHandler(departmentService)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Job Board API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/sessions", authHandler.Authenticate)
			auth.POST("/refresh", authHandler.Refresh)
		}

		// Organization profile
		organization := api.Group("/organization")
		{
			organization.GET("", orgHandler.GetOrganization)
			organization.PATCH("", middleware.RequireAuth(tokens), orgHandler.UpdateOrganization)
		}

		// Departments
		departments := api.Group("/departments")
		{
			departments.GET("", departmentHandler.ListDepartments)
			departments.POST("", middleware.RequireAuth(tokens), departmentHandler.CreateDepartment)
		}

		// Jobs (listing and applying are public, management is protected)
		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobHandler.ListJobs)
			jobs.GET("/:id", jobHandler.GetJob)
			jobs.POST("", middleware.RequireAuth(tokens), jobHandler.CreateJob)
			jobs.PATCH("/:id", middleware.RequireAuth(tokens), jobHandler.UpdateJob)
			jobs.POST("/:id/apply", applicationHandler.ApplyToJob)
		}

		// Applications (protected)
		applications := api.Group("/applications")
		applications.Use(middleware.RequireAuth(tokens))
		{
			applications.PATCH("/:id/status", applicationHandler.UpdateStatus)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
