// Package compute реализует HTTP-обработчик вычисления границ периода отчёта.
//
// Handler читает тип периода и даты из query-строки, валидирует их, вызывает
// сервис и возвращает отформатированные границы, метки времени и число дней.
package compute

import (
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

// Handler управляет HTTP-запросами на вычисление периода.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис, владеющий настройками калькулятора
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает вычисление периода.
type Service interface {
	Period(req models.PeriodRequest) (models.PeriodResponse, error)
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
// @Summary Вычислить период
// @Description Возвращает границы периода, метки времени и число прошедших дней.
// @Tags Periods
// @Produce  json
// @Param type query string true "Тип периода"
// @Param start_date query string false "Начало произвольного диапазона"
// @Param end_date query string false "Конец произвольного диапазона"
// @Param reference query string false "Точка отсчёта прошлых периодов"
// @Success 200 {object} models.PeriodResponse "Вычисленный период"
// @Failure 400 {object} response.ErrorResponse "Неизвестный тип или некорректная дата"
// @Failure 429 {object} response.ErrorResponse "Превышен лимит запросов"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /periods [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.period.compute"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	req := request.Period(r)
	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	resp, err := h.service.Period(req)
	if err != nil {
		log.Error("failed to compute period", sl.Err(err))
		switch {
		case errors.Is(err, period.ErrUnknownType):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown period type"))
		case errors.Is(err, report.ErrInvalidReference):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid reference date"))
		default:
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not compute period"))
		}
		return
	}

	log.Debug("period computed", slog.String("type", resp.Type))
	render.JSON(w, r, response.StatusOKWithData(resp))
}
