// Package dtd отдаёт встроенные в бинарник DTD формата XML-экспорта задач.
//
// Отдаются только файлы из каталога files; любое другое имя, в том числе
// с попыткой выйти за пределы каталога, получает 404.
package dtd

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"path"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/bugtrack-reports/internal/http/response"
	"github.com/magabrotheeeer/bugtrack-reports/internal/lib/sl"
)

//go:embed files/*.dtd
var files embed.FS

// Handler отдаёт DTD по имени из URL.
type Handler struct {
	log   *slog.Logger
	files fs.FS
}

// New создаёт Handler поверх встроенных файлов.
func New(log *slog.Logger) *Handler {
	sub, err := fs.Sub(files, "files")
	if err != nil {
		// files/ встроен на этапе компиляции, ошибка здесь невозможна
		panic(err)
	}
	return &Handler{log: log, files: sub}
}

// ServeHTTP обрабатывает GET /dtd/{name}.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dtd"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	name := chi.URLParam(r, "name")
	if name == "" || name != path.Base(name) || path.Ext(name) != ".dtd" || !fs.ValidPath(name) {
		log.Warn("rejected dtd name", slog.String("name", name))
		notFound(w, r)
		return
	}

	data, err := fs.ReadFile(h.files, name)
	if err != nil {
		log.Warn("dtd not found", slog.String("name", name))
		notFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/xml-dtd")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Error("failed to write dtd", sl.Err(err))
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusNotFound)
	render.JSON(w, r, response.Error("file not found"))
}
