// Package request разбирает параметры отчётов из query-строки HTTP-запроса в DTO.
package request

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/magabrotheeeer/bugtrack-reports/internal/models"
)

// Period читает параметры type, start_date, end_date и reference.
func Period(r *http.Request) models.PeriodRequest {
	q := r.URL.Query()
	return models.PeriodRequest{
		Type:      strings.TrimSpace(q.Get("type")),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		Reference: q.Get("reference"),
	}
}

// Report дополнительно читает project_id. Отсутствующий project_id означает все проекты.
func Report(r *http.Request) (models.ReportRequest, error) {
	req := models.ReportRequest{PeriodRequest: Period(r)}

	raw := strings.TrimSpace(r.URL.Query().Get("project_id"))
	if raw == "" {
		return req, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return models.ReportRequest{}, fmt.Errorf("request.Report: invalid project_id %q: %w", raw, err)
	}
	req.ProjectID = id
	return req, nil
}
