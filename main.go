package main

import (
	"context"
	"log"
	"net/http"

	"template-manager/backend/internal/config"
	"template-manager/backend/internal/handlers"
	"template-manager/backend/internal/middleware"
	"template-manager/backend/internal/monitoring"
	"template-manager/backend/internal/repositories"
	"template-manager/backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func buildRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	authService := services.NewAuthService(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL)
	registerService := services.NewRegisterService(cfg.Auth.BCryptCost)
	userService := services.NewUserService()
	templateService := services.NewTemplateService()
	taskService := services.NewTaskService()

	registerHandler := handlers.NewRegisterHandler(db, registerService)
	authHandler := handlers.NewAuthHandler(db, authService)
	templateHandler := handlers.NewTemplateHandler(db, templateService)
	taskHandler := handlers.NewTaskHandler(db, taskService)
	teamHandler := handlers.NewTeamHandler(db, userService)

	router := gin.New()
	router.Use(middleware.RecoveryWithLog())
	router.Use(monitoring.MetricsMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.NewRateLimiter(cfg.RateLimit).Middleware())
	}

	router.GET("/health", monitoring.HealthHandler())
	router.GET("/metrics", monitoring.MetricsHandler())

	router.POST("/register", registerHandler.Registration)
	router.POST("/login", authHandler.Login)

	authorized := router.Group("/", middleware.RequireAuth([]byte(cfg.Auth.JWTSecret)))
	{
		authorized.POST("/template", templateHandler.CreateTemplate)
		authorized.GET("/template", templateHandler.GetTemplates)
		authorized.GET("/template/:id", templateHandler.GetTemplateByID)
		authorized.PUT("/template/:id", templateHandler.UpdateTemplate)
		authorized.DELETE("/template/:id", templateHandler.DeleteTemplate)

		authorized.POST("/task", taskHandler.CreateTask)
		authorized.GET("/task", taskHandler.GetTasks)
		authorized.GET("/task/:id", taskHandler.GetTaskByID)
		authorized.PUT("/task/:id", taskHandler.UpdateTask)
		authorized.DELETE("/task/:id", taskHandler.DeleteTask)

		authorized.GET("/team", teamHandler.GetTeam)
	}

	router.NoRoute(handlers.StaticFallback(cfg.Static.Dir))

	return router
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := repositories.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := repositories.Migrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
	log.Println("Successfully connected to database")

	monitoring.RegisterHealthCheck("database", func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddr(),
		Handler:      buildRouter(cfg, db),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	log.Printf("listening on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
