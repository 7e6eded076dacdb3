package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BerylCAtieno/interview-persona/internal/analysis"
	"github.com/BerylCAtieno/interview-persona/internal/api"
	"github.com/BerylCAtieno/interview-persona/internal/config"
	"github.com/BerylCAtieno/interview-persona/internal/logger"
	"github.com/BerylCAtieno/interview-persona/internal/metrics"
	"github.com/BerylCAtieno/interview-persona/internal/profiler"
	"github.com/BerylCAtieno/interview-persona/web"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	configFile := flag.String("config", "", "Path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLog, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zapLog.Sync() }()

	if cfg.Log.Format == "json" {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	analyzer, closeAnalyzer, err := profiler.NewAnalyzerForConfig(ctx, cfg, zapLog, m)
	if err != nil {
		zapLog.Fatal("Failed to set up analyzer", zap.Error(err))
	}
	defer closeAnalyzer()

	format, err := analysis.ParseFormat(cfg.Analysis.ResponseFormat)
	if err != nil {
		zapLog.Fatal("Invalid response format", zap.Error(err))
	}

	router, err := api.NewRouter(api.RouterOptions{
		Handler:  api.NewHandler(analyzer, format, zapLog, m),
		Assets:   web.Assets,
		Gatherer: reg,
		Logger:   zapLog,
		Metrics:  m,
	})
	if err != nil {
		zapLog.Fatal("Failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLog.Info("Interview persona server starting",
			zap.String("addr", srv.Addr),
			zap.String("mode", cfg.Analysis.Mode),
			zap.String("format", string(format)),
		)
		zapLog.Info(fmt.Sprintf("Front end available at: http://localhost:%s/", cfg.Server.Port))
		zapLog.Info(fmt.Sprintf("Analysis endpoint available at: http://localhost:%s/api/gemini", cfg.Server.Port))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLog.Info("Shutdown signal received, stopping server...")

	// Leave room for an in-flight remote call to finish.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Gemini.Timeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("Server stopped")
}
