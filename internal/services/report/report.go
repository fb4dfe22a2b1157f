// Package report содержит бизнес-логику отчётов баг-трекера: вычисление периода
// по выбору пользователя и агрегаты по задачам внутри этого периода с кешированием.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/bugtrack-reports/internal/cache"
	"github.com/magabrotheeeer/bugtrack-reports/internal/lib/period"
	"github.com/magabrotheeeer/bugtrack-reports/internal/lib/sl"
	"github.com/magabrotheeeer/bugtrack-reports/internal/models"
)

var (
	// ErrProjectNotFound возвращается, если указан несуществующий проект.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidReference возвращается, если точку отсчёта не удалось разобрать.
	ErrInvalidReference = errors.New("invalid reference date")
	// ErrPeriodRequired возвращается для отчётов, которым нужен конкретный период.
	ErrPeriodRequired = errors.New("period is required")
	// ErrPeriodTooLong возвращается, если тренд запрошен больше чем за MaxTrendDays дней.
	ErrPeriodTooLong = errors.New("period is too long")
)

// MaxTrendDays ограничивает число точек в одном ответе тренда.
const MaxTrendDays = 3660

// Repository описывает агрегирующие запросы к хранилищу задач.
type Repository interface {
	ProjectExists(ctx context.Context, id int) (bool, error)
	CountByStatus(ctx context.Context, filter models.ReportFilter) ([]models.StatusCount, error)
	CountByDay(ctx context.Context, filter models.ReportFilter) ([]models.DayCount, error)
}

// Cache описывает методы для кеширования агрегатов отчётов.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// Settings — настройки отчётов, которые калькулятор периода получает явно.
type Settings struct {
	DateFormat string
	Location   *time.Location
	CacheTTL   time.Duration
	Clock      period.Clock
}

// Service реализует построение отчётов.
type Service struct {
	repo     Repository
	cache    Cache
	settings Settings
	log      *slog.Logger
}

// NewService создаёт новый экземпляр Service.
func NewService(repo Repository, cache Cache, settings Settings, log *slog.Logger) *Service {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	if settings.Clock == nil {
		settings.Clock = period.SystemClock
	}
	return &Service{
		repo:     repo,
		cache:    cache,
		settings: settings,
		log:      log,
	}
}

func (s *Service) calculator(req models.PeriodRequest) (*period.Calculator, error) {
	typ, err := period.ParseType(req.Type)
	if err != nil {
		return nil, err
	}

	var ref time.Time
	if strings.TrimSpace(req.Reference) != "" {
		ref, err = time.ParseInLocation(s.dateFormat(), strings.TrimSpace(req.Reference), s.settings.Location)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidReference, req.Reference)
		}
	}

	c := period.New(s.settings.DateFormat, s.settings.Location, s.settings.Clock)
	c.Apply(typ, ref, req.StartDate, req.EndDate)
	return c, nil
}

func (s *Service) dateFormat() string {
	if s.settings.DateFormat == "" {
		return period.DefaultFormat
	}
	return s.settings.DateFormat
}

func describe(c *period.Calculator) models.PeriodResponse {
	return models.PeriodResponse{
		Type:           c.Type().String(),
		Label:          c.Type().Label(),
		StartDate:      c.StartFormatted(),
		EndDate:        c.EndFormatted(),
		StartTimestamp: c.StartTimestamp(),
		EndTimestamp:   c.EndTimestamp(),
		ElapsedDays:    c.ElapsedDays(),
	}
}

// Period вычисляет границы периода по параметрам запроса.
func (s *Service) Period(req models.PeriodRequest) (models.PeriodResponse, error) {
	const op = "services.report.Period"

	c, err := s.calculator(req)
	if err != nil {
		return models.PeriodResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	return describe(c), nil
}

func (s *Service) filter(ctx context.Context, projectID int, c *period.Calculator) (models.ReportFilter, error) {
	f := models.ReportFilter{
		Start:    c.Start(),
		End:      c.End(),
		Timezone: s.settings.Location.String(),
	}
	if c.Type() == period.None {
		f.Start = time.Unix(0, 0).UTC()
		f.End = s.settings.Clock.Now()
	}
	if projectID > 0 {
		ok, err := s.repo.ProjectExists(ctx, projectID)
		if err != nil {
			return models.ReportFilter{}, err
		}
		if !ok {
			return models.ReportFilter{}, fmt.Errorf("%w: %d", ErrProjectNotFound, projectID)
		}
		f.ProjectID = &projectID
	}
	return f, nil
}

// describeFilter описывает период так, как его увидело хранилище: для none
// метки времени и число дней берутся из фактических границ фильтра.
func describeFilter(c *period.Calculator, f models.ReportFilter) models.PeriodResponse {
	resp := describe(c)
	if c.Type() == period.None {
		resp.StartTimestamp = f.Start.Unix()
		resp.EndTimestamp = f.End.Unix()
		resp.ElapsedDays = period.DaysBetween(f.Start, f.End, c.Location())
	}
	return resp
}

// cacheKey зависит только от границ и проекта: в кеше лежат агрегаты хранилища,
// а описание периода строится заново на каждый запрос.
func cacheKey(kind string, f models.ReportFilter) string {
	project := 0
	if f.ProjectID != nil {
		project = *f.ProjectID
	}
	return fmt.Sprintf("report:%s:%d:%d:%d", kind, project, f.Start.Unix(), f.End.Unix())
}

// fromCache читает агрегаты из кеша. Запись, которую не удалось разобрать,
// удаляется, чтобы следующий запрос перезаписал её.
func (s *Service) fromCache(ctx context.Context, key string, result any) bool {
	found, err := s.cache.Get(ctx, key, result)
	if errors.Is(err, cache.ErrCorrupt) {
		s.log.Warn("dropping corrupt cache entry", slog.String("key", key), sl.Err(err))
		if err := s.cache.Invalidate(ctx, key); err != nil {
			s.log.Warn("failed to invalidate cache entry", slog.String("key", key), sl.Err(err))
		}
		return false
	}
	if err != nil {
		s.log.Warn("failed to read report from cache", slog.String("key", key), sl.Err(err))
		return false
	}
	return found
}

func (s *Service) toCache(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value, s.settings.CacheTTL); err != nil {
		s.log.Warn("failed to cache report", slog.String("key", key), sl.Err(err))
	}
}

// Summary возвращает количество задач по статусам, созданных за период.
// Для типа none отчёт строится за всё время.
func (s *Service) Summary(ctx context.Context, req models.ReportRequest) (*models.Summary, error) {
	const op = "services.report.Summary"

	c, err := s.calculator(req.PeriodRequest)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	f, err := s.filter(ctx, req.ProjectID, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	key := cacheKey("summary", f)
	var counts []models.StatusCount
	if !s.fromCache(ctx, key, &counts) {
		counts, err = s.repo.CountByStatus(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		s.toCache(ctx, key, counts)
	}

	summary := &models.Summary{Period: describeFilter(c, f), ByStatus: counts}
	for _, sc := range counts {
		summary.Total += sc.Count
	}
	s.log.Info("summary report built", sl.Period(f.Start, f.End), slog.Int("total", summary.Total))
	return summary, nil
}

// Trend возвращает ежедневную динамику за период. Дни без событий заполняются нулями,
// поэтому точек всегда ElapsedDays()+1.
func (s *Service) Trend(ctx context.Context, req models.ReportRequest) (*models.Trend, error) {
	const op = "services.report.Trend"

	c, err := s.calculator(req.PeriodRequest)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if c.Type() == period.None {
		return nil, fmt.Errorf("%s: %w", op, ErrPeriodRequired)
	}
	if c.Start().After(c.End()) {
		return nil, fmt.Errorf("%s: %w: start is after end", op, ErrPeriodRequired)
	}
	if days := c.ElapsedDays() + 1; days > MaxTrendDays {
		return nil, fmt.Errorf("%s: %w: %d days, at most %d", op, ErrPeriodTooLong, days, MaxTrendDays)
	}
	f, err := s.filter(ctx, req.ProjectID, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	key := cacheKey("trend", f)
	var counts []models.DayCount
	if !s.fromCache(ctx, key, &counts) {
		counts, err = s.repo.CountByDay(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		s.toCache(ctx, key, counts)
	}

	trend := &models.Trend{Period: describe(c), Days: fillDays(c, counts)}
	s.log.Info("trend report built", sl.Period(f.Start, f.End), slog.Int("days", len(trend.Days)))
	return trend, nil
}

// fillDays раскладывает ответ хранилища по всем дням периода.
// Хранилище отдаёт дату как полночь UTC, поэтому ключом служит строка YYYY-MM-DD.
func fillDays(c *period.Calculator, counts []models.DayCount) []models.DayCount {
	const layout = "2006-01-02"

	byDay := make(map[string]models.DayCount, len(counts))
	for _, dc := range counts {
		byDay[dc.Day.UTC().Format(layout)] = dc
	}

	loc := c.Location()
	first := period.BeginningOfDay(c.Start(), loc)
	days := make([]models.DayCount, 0, c.ElapsedDays()+1)
	for i := 0; i <= c.ElapsedDays(); i++ {
		d := first.AddDate(0, 0, i)
		dc := byDay[d.Format(layout)]
		dc.Day = d
		days = append(days, dc)
	}
	return days
}
