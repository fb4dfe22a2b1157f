// Package types отдаёт список поддерживаемых типов периода для выпадающего списка.
package types

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/bugtrack-reports/internal/http/response"
	"github.com/magabrotheeeer/bugtrack-reports/internal/lib/period"
)

// Handler возвращает period.Options().
type Handler struct {
	log *slog.Logger
}

// New создаёт новый Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

// ServeHTTP godoc
// @Summary Типы периода
// @Tags Periods
// @Produce  json
// @Success 200 {array} period.Option "Варианты выбора"
// @Router /periods/types [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.period.types"

	h.log.Debug("listing period types",
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	render.JSON(w, r, response.StatusOKWithData(period.Options()))
}
