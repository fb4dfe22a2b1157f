// Package reports собирает HTTP-приложение отчётов баг-трекера.
package reports

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	_ "github.com/magabrotheeeer/bugtrack-reports/docs"
	"github.com/magabrotheeeer/bugtrack-reports/internal/http/handlers/dtd"
	"github.com/magabrotheeeer/bugtrack-reports/internal/http/handlers/health"
	"github.com/magabrotheeeer/bugtrack-reports/internal/http/handlers/period/compute"
	"github.com/magabrotheeeer/bugtrack-reports/internal/http/handlers/period/types"
	"github.com/magabrotheeeer/bugtrack-reports/internal/http/handlers/report/summary"
	"github.com/magabrotheeeer/bugtrack-reports/internal/http/handlers/report/trend"
	"github.com/magabrotheeeer/bugtrack-reports/internal/http/middlewarectx"
	"github.com/magabrotheeeer/bugtrack-reports/internal/models"
)

// ReportService объединяет операции, которые нужны обработчикам API.
type ReportService interface {
	Period(req models.PeriodRequest) (models.PeriodResponse, error)
	Summary(ctx context.Context, req models.ReportRequest) (*models.Summary, error)
	Trend(ctx context.Context, req models.ReportRequest) (*models.Trend, error)
}

// RegisterRoutes регистрирует все маршруты приложения.
// Коллекторы HTTP-метрик регистрируются в reg, /metrics отдаёт его же.
func RegisterRoutes(r chi.Router, logger *slog.Logger, service ReportService, limiter *rate.Limiter, reg *prometheus.Registry) error {
	metrics, err := middlewarectx.NewMetrics(reg)
	if err != nil {
		return err
	}

	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		metrics.Handler,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))

		r.Get("/periods", compute.New(logger, service).ServeHTTP)
		r.Get("/periods/types", types.New(logger).ServeHTTP)
		r.Get("/reports/summary", summary.New(logger, service).ServeHTTP)
		r.Get("/reports/trend", trend.New(logger, service).ServeHTTP)
	})

	r.Get("/dtd/{name}", dtd.New(logger).ServeHTTP)
	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))
	return nil
}
