package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/seo-metapilot/backend/audit"
	"github.com/seo-metapilot/backend/config"
	"github.com/seo-metapilot/backend/llm"
	_ "github.com/seo-metapilot/backend/llm/providers"
	"github.com/seo-metapilot/backend/logging"
	"github.com/seo-metapilot/backend/middleware"
	"github.com/seo-metapilot/backend/pipeline"
	"github.com/seo-metapilot/backend/promptgen"
	"github.com/seo-metapilot/backend/research"
	"github.com/seo-metapilot/backend/stats"
)

var (
	generator   *pipeline.Generator
	auditor     *audit.Auditor
	rateLimiter *middleware.RateLimiter
)

func loadEnv() {
	// Try to load .env.development first (for local development)
	if err := godotenv.Load(".env.development"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	}
}

func setupGinMode() {
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
}

func main() {
	loadEnv()
	setupGinMode()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// Initialize services
	storage, err := stats.NewStorage(cfg.Server.DataDir)
	if err != nil {
		log.Fatal("Failed to initialize statistics storage: ", err)
	}

	builderOpts := []promptgen.BuilderOption{
		promptgen.WithResearchBudget(cfg.Research.Budget.Std()),
	}
	if cfg.Research.Enabled {
		builderOpts = append(builderOpts, promptgen.WithResearchClient(research.NewHTTPClient()))
	}
	builder := promptgen.NewBuilder(builderOpts...)

	generatorOpts := []pipeline.Option{
		pipeline.WithStats(storage),
		pipeline.WithCacheTTL(cfg.Generation.CacheTTL.Std()),
		pipeline.WithMaxCacheSize(cfg.Generation.MaxCacheSize),
		pipeline.WithLLMTimeout(cfg.Generation.LLMTimeout.Std()),
	}
	if cfg.LLM.APIKey != "" {
		var clientOpts []llm.ClientOption
		if cfg.LLM.BaseURL != "" {
			clientOpts = append(clientOpts, llm.WithBaseURL(cfg.LLM.BaseURL))
		}
		completer, err := llm.NewClient(cfg.LLM.Provider, cfg.LLM.Model, cfg.LLM.APIKey, clientOpts...)
		if err != nil {
			log.Fatal("Failed to initialize LLM client: ", err)
		}
		generatorOpts = append(generatorOpts, pipeline.WithCompleter(completer))
	} else {
		log.Println("No LLM API key configured, generations will use the deterministic fallback")
	}
	generator = pipeline.New(builder, generatorOpts...)

	auditor = audit.New()
	rateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateBurst)
	runtimeStats := logging.Initialize()

	r := gin.Default()

	r.Use(middleware.ErrorHandler())
	r.Use(rateLimiter.RateLimit())
	r.Use(corsMiddleware(cfg.Server.AllowOrigins))
	r.Use(middleware.StatsMiddleware(runtimeStats))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})

		api.POST("/generate", generateMetadata)
		api.POST("/analyze", analyzeContent)
		api.POST("/audit", auditPage)

		api.GET("/statistics", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"runtime": runtimeStats.GetStatistics(),
				"monthly": storage.GetCurrentStats(),
				"cache":   generator.GetCacheStats(),
			})
		})
	}

	log.Printf("Server starting on http://localhost:%s\n", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func corsMiddleware(allowOrigins string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowOrigins)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func generateMetadata(c *gin.Context) {
	log.Printf("Generate request received from: %s\n", c.ClientIP())

	var request pipeline.Request
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Minute)
	defer cancel()

	result := generator.Generate(ctx, request)

	c.Writer.Header().Set("X-Used-Fallback", strconv.FormatBool(result.UsedFallback))
	c.JSON(http.StatusOK, result)
}

func analyzeContent(c *gin.Context) {
	var request pipeline.Request
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	c.JSON(http.StatusOK, generator.Analyze(request))
}

func auditPage(c *gin.Context) {
	var request struct {
		URL string `json:"url" binding:"required,url"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid URL provided",
		})
		return
	}

	result, err := auditor.Audit(request.URL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to audit page: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
