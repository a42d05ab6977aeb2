package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/careerpilot/backend/internal/analyzer"
	"github.com/careerpilot/backend/internal/api"
	"github.com/careerpilot/backend/internal/infrastructure/config"
	"github.com/careerpilot/backend/internal/logger"
	"github.com/careerpilot/backend/internal/metrics"
	"github.com/careerpilot/backend/internal/service"
	"github.com/careerpilot/backend/internal/store"

	_ "github.com/careerpilot/backend/docs" // generated swagger docs
)

// @title           CareerPilot Interview Practice API
// @version         1.0
// @description     Mock interview sessions: answer industry-specific questions, get each answer scored, and receive a readiness verdict.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("failed to load config", zap.Error(err))
	}
	log := logger.New(cfg.Env, cfg.LogFile)
	defer log.Sync()
	log.Info("config loaded", zap.Stringer("config", cfg))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DatabasePath)
	if err != nil {
		log.Error("failed to open database", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	var a analyzer.Analyzer
	switch cfg.Analysis.Analyzer {
	case "heuristic":
		a = analyzer.HeuristicAnalyzer{}
	default:
		a = analyzer.NewLLMAnalyzer(cfg.Analysis.LLMURL, cfg.Analysis.LLMModel, cfg.Analysis.APIKey)
	}

	m := metrics.New()
	svc := service.NewInterviewService(db, a, log, service.Options{
		AnalysisTimeout: cfg.Analysis.Timeout,
		SessionLength:   cfg.Session.Length,
		Policy:          cfg.ReadinessPolicy(),
		Metrics:         m,
	})
	handler := api.NewHandler(svc, log)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			log.Error("health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unavailable"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	mux.Handle("GET /metrics", m.Handler())

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → Metrics → CORS → RateLimit → mux ──
	var h http.Handler = mux
	if cfg.Limiter.Enabled {
		h = api.NewRateLimiter(cfg.Limiter.RPS, cfg.Limiter.Burst).Middleware(h)
	}
	h = api.Logging(log)(api.Metrics(m)(api.CORS(h)))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           h,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Analysis.Timeout + 30*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		log.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			log.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	log.Info("starting server", zap.String("address", cfg.ServerAddress), zap.String("analyzer", cfg.Analysis.Analyzer))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server failed to start", zap.Error(err))
		os.Exit(1)
	}
}
