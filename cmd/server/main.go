package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/quietday/api/internal/cache"
	"github.com/quietday/api/internal/config"
	"github.com/quietday/api/internal/database"
	"github.com/quietday/api/internal/handler"
	"github.com/quietday/api/internal/middleware"
	"github.com/quietday/api/internal/quotes"
	"github.com/quietday/api/internal/scheduler"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

func main() {
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Seed the system master library up front so first requests don't pay
	// for it. The resolver re-checks on demand either way.
	if err := quotes.EnsureSystemQuotesSeeded(db); err != nil {
		log.Printf("Warning: Failed to seed system quotes: %v", err)
	}

	// Initialize Redis cache
	var redisCache *cache.RedisCache
	redisCache, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v", err)
		// Continue without Redis cache (fail-open)
	}

	seeder := quotes.NewSeeder(db, cfg.SeedThreshold, cfg.SeedBatchSize)
	resolver := quotes.NewResolver(db, seeder)

	var googleConfig *oauth2.Config
	if cfg.GoogleClientID != "" {
		googleConfig = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}

	// Initialize and start background scheduler if enabled
	var backfill *scheduler.BackfillScheduler
	if cfg.SchedulerEnabled {
		backfill = scheduler.NewBackfillScheduler(db, seeder, scheduler.Config{
			Interval: cfg.SchedulerInterval,
		})
		go backfill.Start(context.Background())
		log.Println("Background backfill scheduler started")
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(db, cfg.JWTSecret, googleConfig, cfg.FrontendURL, seeder)
	quoteHandler := handler.NewQuoteHandler(db, redisCache, resolver)
	favoriteHandler := handler.NewFavoriteHandler(db)
	journalHandler := handler.NewJournalHandler(db)
	shareHandler := handler.NewShareHandler(db)
	widgetHandler := handler.NewWidgetHandler(db, redisCache)
	exportHandler := handler.NewExportHandler(db)
	reportHandler := handler.NewReportHandler(db)
	adminHandler := handler.NewAdminHandler(db, backfill)

	// Setup router
	r := gin.Default()
	r.Use(middleware.MetricsMiddleware())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", cfg.FrontendURL)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Scheduler status
	r.GET("/scheduler/status", func(c *gin.Context) {
		if backfill != nil {
			c.JSON(200, backfill.GetStatus())
		} else {
			c.JSON(200, gin.H{"enabled": false, "message": "Scheduler is disabled"})
		}
	})

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.GET("/google", authHandler.GoogleAuth)
		auth.GET("/google/callback", authHandler.GoogleCallback)
		auth.POST("/refresh", authHandler.RefreshToken)
		auth.POST("/logout", authHandler.Logout)
	}

	// API routes
	api := r.Group("/api")
	{
		// Public: the shared quote of the day and shared moments
		api.GET("/quotes/global/today", quoteHandler.GlobalToday)
		api.GET("/shares/:id", shareHandler.Get)

		// Widget works with or without auth
		api.GET("/widget/today", middleware.OptionalAuthMiddleware(cfg.JWTSecret), widgetHandler.Today)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			// Profile
			protected.GET("/me", authHandler.Me)
			protected.PUT("/me", authHandler.UpdateProfile)
			protected.PUT("/me/password", authHandler.ChangePassword)

			// Quotes
			protected.GET("/quotes", quoteHandler.List)
			protected.POST("/quotes", quoteHandler.Create)
			protected.GET("/quotes/today", quoteHandler.Today)
			protected.GET("/quotes/:id", quoteHandler.Get)
			protected.PUT("/quotes/:id", quoteHandler.Update)
			protected.POST("/quotes/:id/clean", quoteHandler.Clean)
			protected.DELETE("/quotes/:id", quoteHandler.Delete)

			// Favorites
			protected.POST("/favorites/:id/toggle", favoriteHandler.Toggle)
			protected.GET("/favorites", favoriteHandler.List)
			protected.GET("/favorites/:id/status", favoriteHandler.Status)

			// Journals
			protected.POST("/journals", journalHandler.Save)
			protected.GET("/journals/entry", journalHandler.Entry)
			protected.GET("/journals", journalHandler.List)
			protected.DELETE("/journals/:id", journalHandler.Delete)

			// Shared moments
			protected.POST("/shares", shareHandler.Create)
			protected.DELETE("/shares/:id", shareHandler.Delete)

			// Export
			protected.GET("/export", exportHandler.Export)

			// Reports
			protected.POST("/reports", reportHandler.Create)
			protected.GET("/reports", reportHandler.Mine)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AdminMiddleware(cfg.JWTSecret, cfg.AdminEmails))
		{
			admin.GET("/stats", adminHandler.GetStats)
			admin.GET("/reports", adminHandler.ListReports)
			admin.PUT("/reports/:id", adminHandler.UpdateReport)
			admin.GET("/scheduler", adminHandler.SchedulerStatus)
			admin.POST("/backfill", adminHandler.TriggerBackfill)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	log.Printf("API server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
