package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mhessler/rechnung/internal"
	"github.com/mhessler/rechnung/internal/handler"
	"github.com/mhessler/rechnung/internal/layout"
	"github.com/mhessler/rechnung/internal/profile"
	"github.com/mhessler/rechnung/internal/router"
	"github.com/mhessler/rechnung/internal/service"
	"github.com/mhessler/rechnung/internal/telemetry"
	"github.com/mhessler/rechnung/internal/vat"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize metrics
	metrics := telemetry.NewMetrics(cfg.MetricsNamespace)
	httpMetrics := router.NewHTTPMetrics(prometheus.DefaultRegisterer, cfg.MetricsNamespace)

	// Initialize services
	rules := vat.NewLoader(cfg.VATRulePath, logger)
	renderer := layout.NewRenderer(cfg.LogoPath)
	profiles := profile.NewStore(cfg.ProfilePath, logger)
	generator := service.NewGenerator(rules, renderer, profiles, metrics, logger, cfg.OutputDir)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create invoice output directory: %w", err)
	}

	// Initialize handlers
	invoices := handler.NewInvoiceHandler(generator, metrics, logger)
	settings := handler.NewSettingsHandler(profiles, logger)

	// Assemble router with global middleware
	r := router.New(
		router.Recovery(logger),
		router.RequestID,
		httpMetrics.Middleware,
		router.Logger(logger),
	)

	r.Post("/api/invoices", invoices.Generate)
	r.Get("/invoices/{filename}/download", invoices.Download)
	r.Get("/invoices/{filename}/preview", invoices.Preview)

	r.Get("/api/company-settings", settings.Get)
	r.Put("/api/company-settings", settings.Update)

	r.Get("/health", invoices.Health)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		httpMetrics.Handler().ServeHTTP(w, req)
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting invoice server", "address", addr, "output_dir", cfg.OutputDir)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
