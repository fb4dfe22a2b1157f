package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/bugtrack-reports/internal/models"
)

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestStorage_Reports(t *testing.T) {
	storage := setupTestDatabase(t)
	ctx := context.Background()

	require.NoError(t, CheckDatabaseReady(ctx, storage))

	factory := NewTestDataFactory(storage)
	core := factory.CreateProject(t, "core")
	web := factory.CreateProject(t, "web")

	resolved := at(2024, time.May, 3, 12)
	factory.CreateIssue(t, core, "new", at(2024, time.May, 1, 9), nil)
	factory.CreateIssue(t, core, "new", at(2024, time.May, 1, 15), nil)
	factory.CreateIssue(t, core, "resolved", at(2024, time.May, 2, 10), &resolved)
	factory.CreateIssue(t, web, "assigned", at(2024, time.May, 3, 8), nil)
	// вне периода
	factory.CreateIssue(t, core, "new", at(2024, time.April, 30, 23), nil)

	period := models.ReportFilter{
		Start:    at(2024, time.May, 1, 0),
		End:      time.Date(2024, time.May, 3, 23, 59, 59, 0, time.UTC),
		Timezone: "UTC",
	}

	t.Run("count by status for all projects", func(t *testing.T) {
		got, err := storage.CountByStatus(ctx, period)
		require.NoError(t, err)
		assert.Equal(t, []models.StatusCount{
			{Status: "assigned", Count: 1},
			{Status: "new", Count: 2},
			{Status: "resolved", Count: 1},
		}, got)
	})

	t.Run("count by status for one project", func(t *testing.T) {
		filter := period
		filter.ProjectID = &web
		got, err := storage.CountByStatus(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, []models.StatusCount{{Status: "assigned", Count: 1}}, got)
	})

	t.Run("count by day", func(t *testing.T) {
		filter := period
		filter.ProjectID = &core
		got, err := storage.CountByDay(ctx, filter)
		require.NoError(t, err)
		require.Len(t, got, 3)

		assert.Equal(t, 1, got[0].Day.Day())
		assert.Equal(t, 2, got[0].Submitted)
		assert.Equal(t, 0, got[0].Resolved)

		assert.Equal(t, 2, got[1].Day.Day())
		assert.Equal(t, 1, got[1].Submitted)

		assert.Equal(t, 3, got[2].Day.Day())
		assert.Equal(t, 0, got[2].Submitted)
		assert.Equal(t, 1, got[2].Resolved)
	})

	t.Run("last fractional second belongs to the period", func(t *testing.T) {
		edge := factory.CreateProject(t, "edge")
		lastMoment := time.Date(2024, time.May, 3, 23, 59, 59, 750_000_000, time.UTC)
		factory.CreateIssue(t, edge, "new", lastMoment, &lastMoment)
		// следующий день
		factory.CreateIssue(t, edge, "new", at(2024, time.May, 4, 0), nil)

		filter := period
		filter.ProjectID = &edge

		byStatus, err := storage.CountByStatus(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, []models.StatusCount{{Status: "new", Count: 1}}, byStatus)

		byDay, err := storage.CountByDay(ctx, filter)
		require.NoError(t, err)
		require.Len(t, byDay, 1)
		assert.Equal(t, 3, byDay[0].Day.Day())
		assert.Equal(t, 1, byDay[0].Submitted)
		assert.Equal(t, 1, byDay[0].Resolved)
	})

	t.Run("project exists", func(t *testing.T) {
		ok, err := storage.ProjectExists(ctx, core)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = storage.ProjectExists(ctx, 100500)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := storage.CountByStatus(cctx, period)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
