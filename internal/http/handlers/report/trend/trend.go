// Package trend реализует HTTP-обработчик отчёта, возвращающего ежедневную динамику созданных и решённых задач.
package trend

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/bugtrack-reports/internal/http/request"
	"github.com/magabrotheeeer/bugtrack-reports/internal/http/response"
	"github.com/magabrotheeeer/bugtrack-reports/internal/lib/period"
	"github.com/magabrotheeeer/bugtrack-reports/internal/lib/sl"
	"github.com/magabrotheeeer/bugtrack-reports/internal/models"
	"github.com/magabrotheeeer/bugtrack-reports/internal/services/report"
)

// Handler управляет HTTP-запросами на построение тренда.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает построение тренда.
type Service interface {
	Trend(ctx context.Context, req models.ReportRequest) (*models.Trend, error)
}

// New создаёт новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Динамика по дням
// @Tags Reports
// @Produce  json
// @Param type query string true "Тип периода, кроме none"
// @Param project_id query int false "ID проекта"
// @Success 200 {object} models.Trend "Точка на каждый день периода"
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры или период длиннее 3660 дней"
// @Failure 404 {object} response.ErrorResponse "Проект не найден"
// @Router /reports/trend [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.trend"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	req, err := request.Report(r)
	if err != nil {
		log.Error("failed to parse query", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid project_id"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	res, err := h.service.Trend(r.Context(), req)
	if err != nil {
		log.Error("failed to build report", sl.Err(err))
		switch {
		case errors.Is(err, period.ErrUnknownType):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown period type"))
		case errors.Is(err, report.ErrInvalidReference):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid reference date"))
		case errors.Is(err, report.ErrPeriodRequired):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("a bounded period is required"))
		case errors.Is(err, report.ErrPeriodTooLong):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("period is too long for a trend"))
		case errors.Is(err, report.ErrProjectNotFound):
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("project not found"))
		default:
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not build report"))
		}
		return
	}

	render.JSON(w, r, response.StatusOKWithData(res))
}
