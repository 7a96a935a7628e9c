package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Creativeuseoftechnology/CUT-Blog-generator/analyzer"
	"github.com/Creativeuseoftechnology/CUT-Blog-generator/assembler"
	"github.com/Creativeuseoftechnology/CUT-Blog-generator/generator"
	"github.com/Creativeuseoftechnology/CUT-Blog-generator/logging"
	"github.com/Creativeuseoftechnology/CUT-Blog-generator/middleware"
	"github.com/Creativeuseoftechnology/CUT-Blog-generator/sitemap"
	"github.com/Creativeuseoftechnology/CUT-Blog-generator/store"
)

var (
	aiClient      *generator.Client
	blogAssembler *assembler.Assembler
	seoAnalyzer   *analyzer.Analyzer
	siteFetcher   *sitemap.Fetcher
	draftStore    *store.Store
	rateLimiter   *middleware.RateLimiter
	statistics    *logging.Statistics
)

func loadEnv() {
	// Try to load .env.development first (for local development)
	if err := godotenv.Load(".env.development"); err != nil {
		// If .env.development doesn't exist, try regular .env
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	}
}

func setupGinMode() {
	// Set Gin mode based on environment variable
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		// Default to release mode if not specified
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// Load environment configuration
	loadEnv()

	// Set up Gin mode
	setupGinMode()

	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		log.Fatal("ANTHROPIC_API_KEY is required")
	}
	dataDir := envOr("DATA_DIR", "./data")
	dbPath := envOr("DB_PATH", dataDir+"/drafts.db")

	// Initialize services
	var err error
	seoAnalyzer, err = analyzer.New(dataDir)
	if err != nil {
		log.Fatal("Failed to initialize analyzer:", err)
	}
	draftStore, err = store.NewStore(dbPath)
	if err != nil {
		log.Fatal("Failed to open draft store:", err)
	}
	aiClient = generator.NewClient(apiKey)
	blogAssembler = assembler.New()
	siteFetcher = sitemap.NewFetcher()
	rateLimiter = middleware.NewRateLimiter(2, 5) // 2 requests per second, bucket size of 5

	// Initialize statistics
	statistics = logging.Initialize()

	// Initialize Gin router
	r := gin.Default()

	// Add middlewares
	r.Use(middleware.ErrorHandler())
	r.Use(rateLimiter.RateLimit())
	r.Use(middleware.StatsTracking(statistics))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// API routes
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})

		// Authoring pipeline
		api.POST("/generate", generateBlog)
		api.POST("/modify", modifyBlog)
		api.POST("/assemble", assembleBlog)
		api.POST("/analyze", analyzeBlog)

		// Exports
		api.POST("/export/elementor", exportElementor)
		api.POST("/export/html", exportHTML)

		// AI assistance
		api.POST("/describe-image", describeImage)
		api.POST("/suggestions/keywords", suggestKeywords)
		api.POST("/suggestions/intents", suggestIntents)

		// Site context
		api.GET("/sitemap/products", sitemapProducts)

		// Drafts
		api.GET("/drafts", listDrafts)
		api.POST("/drafts", saveDraft)
		api.GET("/drafts/:id", getDraft)
		api.DELETE("/drafts/:id", deleteDraft)

		// Statistics endpoint
		api.GET("/statistics", func(c *gin.Context) {
			stats := statistics.GetStatistics()
			stats["analysisCache"] = seoAnalyzer.GetCacheStats()
			c.JSON(http.StatusOK, stats)
		})
	}

	// Get port from environment variable or use default
	port := envOr("PORT", "8082")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%s\n", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Persist statistics and counters on shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("Server shutdown error:", err)
	}
	if err := seoAnalyzer.Shutdown(); err != nil {
		log.Println("Analyzer shutdown error:", err)
	}
	if err := draftStore.Close(); err != nil {
		log.Println("Draft store close error:", err)
	}
	if err := statistics.Save(); err != nil {
		log.Println("Statistics save error:", err)
	}
}
