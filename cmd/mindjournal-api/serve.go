package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/JonnyWalker81/mindjournal/backend/internal/config"
	"github.com/JonnyWalker81/mindjournal/backend/internal/detector"
	"github.com/JonnyWalker81/mindjournal/backend/internal/handlers"
	"github.com/JonnyWalker81/mindjournal/backend/internal/logger"
	"github.com/JonnyWalker81/mindjournal/backend/internal/metrics"
	"github.com/JonnyWalker81/mindjournal/backend/internal/middleware"
	"github.com/JonnyWalker81/mindjournal/backend/internal/repository"
	"github.com/JonnyWalker81/mindjournal/backend/internal/service"
	"github.com/JonnyWalker81/mindjournal/backend/pkg/supabase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.New(logger.Config{
		Level:     logger.ParseLevel(cfg.Logging.Level),
		Format:    cfg.Logging.Format,
		Backend:   cfg.Logging.Backend,
		AddSource: cfg.Logging.AddSource,
	})
	logger.SetDefault(log)
	defer func() { _ = logger.Sync(log) }()

	log.Info("starting mindjournal api",
		logger.String("env", cfg.Server.Env),
		logger.String("supabase_url", cfg.Supabase.URL),
		logger.String("log_backend", cfg.Logging.Backend),
	)

	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)
	if cfg.Supabase.Timeout > 0 {
		supabaseClient.HTTPClient.Timeout = cfg.Supabase.Timeout
	}

	collector := metrics.NewCollector("mindjournal")

	// Repositories
	entryRepo := repository.NewEntryRepository(supabaseClient)
	cycleRepo := repository.NewCycleRepository(supabaseClient)
	patternRepo := repository.NewPatternRepository(supabaseClient)

	// Services
	entryService := service.NewEntryService(entryRepo)
	insightService := service.NewInsightService(entryRepo, patternRepo, service.SystemClock, collector)
	cycleService := service.NewCycleService(cycleRepo, entryRepo, service.SystemClock, collector)
	patternService := service.NewPatternService(detector.NewRPCDetector(supabaseClient), patternRepo, collector)

	var verifier middleware.TokenVerifier = supabaseClient
	if cfg.Supabase.JWTSecret != "" {
		verifier = middleware.NewJWTVerifier(cfg.Supabase.JWTSecret)
		log.Info("verifying access tokens locally")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, "api")
		go limiter.Cleanup(ctx.Done())
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := newRouter(routerDeps{
		env:            cfg.Server.Env,
		production:     cfg.IsProduction(),
		allowedOrigins: cfg.CORS.AllowedOrigins,
		log:            log,
		collector:      collector,
		verifier:       verifier,
		limiter:        limiter,
		entries:        handlers.NewEntryHandler(entryService),
		insights:       handlers.NewInsightHandler(insightService),
		cycle:          handlers.NewCycleHandler(cycleService),
		patterns:       handlers.NewPatternHandler(patternService),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", logger.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server", logger.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", logger.Err(err))
		return err
	}
	log.Info("server stopped")
	return nil
}
