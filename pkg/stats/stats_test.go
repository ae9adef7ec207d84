package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMonthAggregate(t *testing.T) {
	t.Run("should total only the requested month", func(t *testing.T) {
		// given
		entries := map[string]float64{
			"2026-01-05": 8,
			"2026-01-10": 4,
			"2026-02-01": 6,
		}

		// when
		aggregate := ComputeMonthAggregate(entries, 2026, 1)

		// then
		assert.Equal(t, 12.0, aggregate.TotalHours)
		assert.Equal(t, 2, aggregate.ActiveDays)
		assert.Equal(t, 6.0, aggregate.AverageHours)
		require.NotNil(t, aggregate.BestDay)
		assert.Equal(t, "2026-01-05", aggregate.BestDay.Date)
		assert.Equal(t, 8.0, aggregate.BestDay.Hours)
	})

	t.Run("should produce zero values for a month without entries", func(t *testing.T) {
		// given
		entries := map[string]float64{"2026-01-05": 8}

		// when
		aggregate := ComputeMonthAggregate(entries, 2026, 3)

		// then
		assert.Equal(t, 0.0, aggregate.TotalHours)
		assert.Equal(t, 0, aggregate.ActiveDays)
		assert.Equal(t, 0.0, aggregate.AverageHours)
		assert.Nil(t, aggregate.BestDay)
	})
}

func TestComputeAggregate(t *testing.T) {
	t.Run("should break best-day ties by earliest date", func(t *testing.T) {
		// given
		entries := map[string]float64{
			"2026-01-20": 8,
			"2026-01-03": 8,
			"2026-01-11": 5,
		}

		// when
		aggregate := ComputeAggregate(entries)

		// then
		require.NotNil(t, aggregate.BestDay)
		assert.Equal(t, "2026-01-03", aggregate.BestDay.Date)
	})
}

func TestComputeProjection(t *testing.T) {
	yearStart := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should project earnings over the remaining days", func(t *testing.T) {
		// given 315 days elapsed, so 50 of the 365 remain
		now := yearStart.AddDate(0, 0, 314)

		// when
		projection := ComputeProjection(8, now, yearStart, 10)

		// then
		assert.Equal(t, 50, projection.RemainingDays)
		assert.Equal(t, 4000.0, projection.ProjectedEarnings)
	})

	t.Run("should count the first day of the year as elapsed", func(t *testing.T) {
		// when
		projection := ComputeProjection(8, yearStart, yearStart, 10)

		// then
		assert.Equal(t, 364, projection.RemainingDays)
	})

	t.Run("should never report negative remaining days", func(t *testing.T) {
		// given a clock past the fixed 365-day year
		now := yearStart.AddDate(0, 0, 400)

		// when
		projection := ComputeProjection(8, now, yearStart, 10)

		// then
		assert.Equal(t, 0, projection.RemainingDays)
		assert.Equal(t, 0.0, projection.ProjectedEarnings)
	})
}

func TestComputeProgress(t *testing.T) {
	t.Run("should report no goal when target is zero", func(t *testing.T) {
		// when
		progress := ComputeProgress(10, 0)

		// then
		assert.False(t, progress.Active)
		assert.Equal(t, 0.0, progress.Capped())
	})

	t.Run("should report no goal when target is negative", func(t *testing.T) {
		// when
		progress := ComputeProgress(10, -5)

		// then
		assert.False(t, progress.Active)
	})

	t.Run("should leave the raw percentage uncapped", func(t *testing.T) {
		// when
		progress := ComputeProgress(150, 100)

		// then
		assert.True(t, progress.Active)
		assert.Equal(t, 150.0, progress.Percent)
		assert.Equal(t, 100.0, progress.Capped())
	})

	t.Run("should compute a partial percentage", func(t *testing.T) {
		// when
		progress := ComputeProgress(25, 100)

		// then
		assert.True(t, progress.Active)
		assert.Equal(t, 25.0, progress.Percent)
		assert.Equal(t, 25.0, progress.Capped())
	})
}
