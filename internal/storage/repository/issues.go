package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/bugtrack-reports/internal/models"
)

// upperBound возвращает исключающую верхнюю границу. Конец периода хранится
// с точностью до секунды (23:59:59), а timestamptz в базе — до микросекунды.
func upperBound(filter models.ReportFilter) time.Time {
	return filter.End.Truncate(time.Second).Add(time.Second)
}

// ProjectExists проверяет наличие проекта.
func (s *Storage) ProjectExists(ctx context.Context, id int) (bool, error) {
	const op = "storage.ProjectExists"

	var exists bool
	err := s.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// CountByStatus считает задачи, созданные в периоде фильтра, с группировкой по статусу.
func (s *Storage) CountByStatus(ctx context.Context, filter models.ReportFilter) ([]models.StatusCount, error) {
	const op = "storage.CountByStatus"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT status, COUNT(*)
			  FROM issues
			  WHERE date_submitted >= $1 AND date_submitted < $2
			    AND ($3::int IS NULL OR project_id = $3)
			  GROUP BY status
			  ORDER BY status`
	rows, err := s.DB.QueryContext(ctx, query, filter.Start, upperBound(filter), filter.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := make([]models.StatusCount, 0)
	for rows.Next() {
		var item models.StatusCount
		if err := rows.Scan(&item.Status, &item.Count); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountByDay возвращает количество созданных и решённых задач по дням периода.
// Дни без событий в результат не попадают.
func (s *Storage) CountByDay(ctx context.Context, filter models.ReportFilter) ([]models.DayCount, error) {
	const op = "storage.CountByDay"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tz := filter.Timezone
	if tz == "" {
		tz = "UTC"
	}

	query := `WITH submitted AS (
				  SELECT (date_submitted AT TIME ZONE $3)::date AS day, COUNT(*) AS n
				  FROM issues
				  WHERE date_submitted >= $1 AND date_submitted < $2
				    AND ($4::int IS NULL OR project_id = $4)
				  GROUP BY 1
			  ), resolved AS (
				  SELECT (resolved_at AT TIME ZONE $3)::date AS day, COUNT(*) AS n
				  FROM issues
				  WHERE resolved_at >= $1 AND resolved_at < $2
				    AND ($4::int IS NULL OR project_id = $4)
				  GROUP BY 1
			  )
			  SELECT COALESCE(s.day, r.day), COALESCE(s.n, 0), COALESCE(r.n, 0)
			  FROM submitted s
			  FULL OUTER JOIN resolved r ON s.day = r.day
			  ORDER BY 1`
	rows, err := s.DB.QueryContext(ctx, query, filter.Start, upperBound(filter), tz, filter.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := make([]models.DayCount, 0)
	for rows.Next() {
		var item models.DayCount
		if err := rows.Scan(&item.Day, &item.Submitted, &item.Resolved); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
