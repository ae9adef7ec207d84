package goal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workcal/workcal/pkg/datekey"
)

var ctx = context.Background()

var repoStub = NewStubRepository()

var service Service

func setup(t *testing.T) func() {
	service = NewService(repoStub)
	return func() {
		t.Log("Teardown after test")
		repoStub.Cleanup()
	}
}

func TestServiceImpl_SetMonthlyGoal(t *testing.T) {
	t.Run("should store parsed targets", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		stored, err := service.SetMonthlyGoal(ctx, "2026-03-01", "160", "3200.50")

		// then
		require.NoError(t, err)
		assert.Equal(t, Goal{TargetHours: 160, TargetEarnings: 3200.50}, stored)
		goal, err := service.GetMonthlyGoal(ctx, "2026-03-01")
		require.NoError(t, err)
		assert.Equal(t, stored, goal)
	})

	t.Run("should normalize any day of the month to its first day", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.SetMonthlyGoal(ctx, "2026-03-17", "100", "0")
		require.NoError(t, err)

		// when
		goal, err := service.GetMonthlyGoal(ctx, "2026-03-01")

		// then
		require.NoError(t, err)
		assert.Equal(t, 100.0, goal.TargetHours)
	})

	t.Run("should default unparseable targets to zero", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		stored, err := service.SetMonthlyGoal(ctx, "2026-03-01", "lots", "")

		// then
		require.NoError(t, err)
		assert.Equal(t, Goal{}, stored)
	})

	t.Run("should accept negative targets as-is", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		stored, err := service.SetMonthlyGoal(ctx, "2026-03-01", "-10", "-50")

		// then
		require.NoError(t, err)
		assert.Equal(t, Goal{TargetHours: -10, TargetEarnings: -50}, stored)
	})

	t.Run("should reject a malformed month key", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.SetMonthlyGoal(ctx, "2026-03", "160", "0")

		// then
		assert.ErrorIs(t, err, datekey.ErrInvalidFormat)
	})
}

func TestServiceImpl_GetMonthlyGoal(t *testing.T) {
	t.Run("should default to the zero goal when unset", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		goal, err := service.GetMonthlyGoal(ctx, "2026-06-01")

		// then
		require.NoError(t, err)
		assert.Equal(t, Goal{}, goal)
		assert.False(t, goal.IsSet())
	})
}

func TestServiceImpl_YearlyGoal(t *testing.T) {
	t.Run("should overwrite the single yearly record", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.SetYearlyGoal(ctx, "1800", "40000")
		require.NoError(t, err)

		// when
		stored, err := service.SetYearlyGoal(ctx, "2000", "45000")

		// then
		require.NoError(t, err)
		assert.Equal(t, Goal{TargetHours: 2000, TargetEarnings: 45000}, stored)
		goal, err := service.GetYearlyGoal(ctx)
		require.NoError(t, err)
		assert.Equal(t, stored, goal)
	})

	t.Run("should default to the zero goal when unset", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		goal, err := service.GetYearlyGoal(ctx)

		// then
		require.NoError(t, err)
		assert.False(t, goal.IsSet())
	})
}

func TestServiceImpl_Replace(t *testing.T) {
	t.Run("should drop monthly goals with malformed keys", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		err := service.Replace(ctx, map[string]Goal{
			"2026-03-01": {TargetHours: 100},
			"bogus":      {TargetHours: 50},
		}, Goal{TargetHours: 1800})

		// then
		require.NoError(t, err)
		monthly, err := service.GetAllMonthlyGoals(ctx)
		require.NoError(t, err)
		assert.Len(t, monthly, 1)
		assert.Contains(t, monthly, "2026-03-01")
		yearly, err := service.GetYearlyGoal(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1800.0, yearly.TargetHours)
	})
}
