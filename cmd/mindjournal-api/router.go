package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/mindjournal/backend/internal/handlers"
	"github.com/JonnyWalker81/mindjournal/backend/internal/logger"
	"github.com/JonnyWalker81/mindjournal/backend/internal/metrics"
	"github.com/JonnyWalker81/mindjournal/backend/internal/middleware"
)

// routerDeps is everything the HTTP surface needs once the stores and services are built.
type routerDeps struct {
	env            string
	production     bool
	allowedOrigins []string
	log            logger.Logger
	collector      *metrics.Collector
	verifier       middleware.TokenVerifier
	limiter        *middleware.RateLimiter // nil disables rate limiting

	entries  *handlers.EntryHandler
	insights *handlers.InsightHandler
	cycle    *handlers.CycleHandler
	patterns *handlers.PatternHandler
}

func newRouter(d routerDeps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(d.log))
	router.Use(middleware.Logger(d.collector))
	router.Use(middleware.SecurityHeaders(d.production))
	router.Use(middleware.CORS(d.allowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    d.env,
		})
	})
	router.GET("/metrics", gin.WrapH(d.collector.Handler()))

	protected := router.Group("/api/v1")
	protected.Use(middleware.Auth(d.verifier))
	if d.limiter != nil {
		protected.Use(middleware.RateLimit(d.limiter))
	}
	{
		// Entry routes. Search is registered before :id.
		protected.GET("/entries/search", d.entries.SearchEntries)
		protected.GET("/entries", d.entries.ListEntries)
		protected.POST("/entries", d.entries.CreateEntry)
		protected.GET("/entries/:id", d.entries.GetEntry)
		protected.PUT("/entries/:id", d.entries.UpdateEntry)
		protected.DELETE("/entries/:id", d.entries.DeleteEntry)

		// Insight routes
		protected.GET("/insights/overview", d.insights.GetOverview)
		protected.GET("/insights/mood-trends", d.insights.GetMoodTrends)
		protected.GET("/insights/weekly-report", d.insights.GetWeeklyReport)
		protected.GET("/insights/monthly-report", d.insights.GetMonthlyReport)
		protected.GET("/insights/similar-entries/:entryId", d.insights.GetSimilarEntries)
		protected.GET("/insights/keyword-cloud", d.insights.GetKeywordCloud)
		protected.GET("/insights/emotional-journey", d.insights.GetEmotionalJourney)

		// Cycle routes
		protected.GET("/cycle", d.cycle.GetProfile)
		protected.POST("/cycle/enable", d.cycle.EnableTracking)
		protected.POST("/cycle/disable", d.cycle.DisableTracking)
		protected.GET("/cycle/phase", d.cycle.GetCurrentPhase)
		protected.GET("/cycle/mood-correlations", d.cycle.GetMoodCorrelations)
		protected.POST("/cycle/period/start", d.cycle.LogPeriodStart)
		protected.POST("/cycle/period/end", d.cycle.LogPeriodEnd)
		protected.PUT("/cycle/preferences", d.cycle.UpdatePreferences)

		// Pattern routes
		protected.POST("/patterns/detect", d.patterns.DetectPatterns)
		protected.GET("/patterns/cycles", d.patterns.GetCycles)
		protected.GET("/patterns/triggers", d.patterns.GetTriggers)
		protected.GET("/patterns/thought-patterns", d.patterns.GetThoughtPatterns)
		protected.GET("/patterns/coping/suggestions", d.patterns.GetCopingSuggestions)
		protected.GET("/patterns", d.patterns.ListPatterns)
		protected.GET("/patterns/:id", d.patterns.GetPattern)
		protected.DELETE("/patterns/:id", d.patterns.DeletePattern)

		protected.POST("/predictions/generate", d.patterns.GeneratePredictions)
	}

	return router
}
