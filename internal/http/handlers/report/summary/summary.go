// Package summary реализует HTTP-обработчик отчёта, возвращающего сводку по статусам задач за период.
package summary

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

// Handler управляет HTTP-запросами на построение отчёта.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис построения отчётов
	validate *validator.Validate // Валидатор входящих параметров
}

// Service описывает построение отчёта.
type Service interface {
	Summary(ctx context.Context, req models.ReportRequest) (*models.Summary, error)
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
// @Summary Сводка по статусам
// @Description Количество задач по статусам, созданных за период. Тип none означает всё время:
// @Description даты в period пустые, метки времени — от начала эпохи до текущего момента.
// @Tags Reports
// @Produce  json
// @Param type query string true "Тип периода"
// @Param project_id query int false "ID проекта"
// @Success 200 {object} models.Summary "Сводка"
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры"
// @Failure 404 {object} response.ErrorResponse "Проект не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /reports/summary [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.summary"

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

	res, err := h.service.Summary(r.Context(), req)
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
