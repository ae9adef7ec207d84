package goal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workcal/workcal/internal/test_utils"
)

func TestRepositoryImpl_Monthly(t *testing.T) {
	t.Run("should store and read back a monthly goal", func(t *testing.T) {
		// given
		db := test_utils.SetupTestDB(t)
		repo := NewRepository(db)

		// when
		err := repo.StoreMonthly(context.Background(), "2026-03-01", Goal{TargetHours: 160, TargetEarnings: 3200})

		// then
		require.NoError(t, err)
		goal, err := repo.GetMonthly(context.Background(), "2026-03-01")
		require.NoError(t, err)
		assert.Equal(t, Goal{TargetHours: 160, TargetEarnings: 3200}, goal)
	})

	t.Run("should overwrite on conflict", func(t *testing.T) {
		// given
		db := test_utils.SetupTestDB(t)
		repo := NewRepository(db)
		require.NoError(t, repo.StoreMonthly(context.Background(), "2026-03-01", Goal{TargetHours: 100}))

		// when
		err := repo.StoreMonthly(context.Background(), "2026-03-01", Goal{TargetHours: 120})

		// then
		require.NoError(t, err)
		goal, _ := repo.GetMonthly(context.Background(), "2026-03-01")
		assert.Equal(t, 120.0, goal.TargetHours)
	})

	t.Run("should return the zero goal for an unset month", func(t *testing.T) {
		// given
		db := test_utils.SetupTestDB(t)
		repo := NewRepository(db)

		// when
		goal, err := repo.GetMonthly(context.Background(), "2026-07-01")

		// then
		require.NoError(t, err)
		assert.Equal(t, Goal{}, goal)
	})
}

func TestRepositoryImpl_Yearly(t *testing.T) {
	t.Run("should keep a single yearly record", func(t *testing.T) {
		// given
		db := test_utils.SetupTestDB(t)
		repo := NewRepository(db)
		require.NoError(t, repo.StoreYearly(context.Background(), Goal{TargetHours: 1800}))

		// when
		err := repo.StoreYearly(context.Background(), Goal{TargetHours: 2000, TargetEarnings: 45000})

		// then
		require.NoError(t, err)
		goal, err := repo.GetYearly(context.Background())
		require.NoError(t, err)
		assert.Equal(t, Goal{TargetHours: 2000, TargetEarnings: 45000}, goal)
	})
}

func TestRepositoryImpl_ReplaceAll(t *testing.T) {
	t.Run("should swap all goal records", func(t *testing.T) {
		// given
		db := test_utils.SetupTestDB(t)
		repo := NewRepository(db)
		require.NoError(t, repo.StoreMonthly(context.Background(), "2026-01-01", Goal{TargetHours: 10}))

		// when
		err := repo.ReplaceAll(context.Background(),
			map[string]Goal{"2026-02-01": {TargetHours: 150}},
			Goal{TargetHours: 1800, TargetEarnings: 40000},
		)

		// then
		require.NoError(t, err)
		monthly, err := repo.GetAllMonthly(context.Background())
		require.NoError(t, err)
		assert.Equal(t, map[string]Goal{"2026-02-01": {TargetHours: 150}}, monthly)
		yearly, err := repo.GetYearly(context.Background())
		require.NoError(t, err)
		assert.Equal(t, Goal{TargetHours: 1800, TargetEarnings: 40000}, yearly)
	})
}
