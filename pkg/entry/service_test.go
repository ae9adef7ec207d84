package entry

import (
	"context"
	"math"
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

func TestServiceImpl_Upsert(t *testing.T) {
	t.Run("should store positive hours", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		err := service.Upsert(ctx, "2026-01-05", 7.5)

		// then
		require.NoError(t, err)
		entries, _ := service.GetAll(ctx)
		assert.Equal(t, 7.5, entries["2026-01-05"])
	})

	t.Run("should overwrite an existing entry", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		require.NoError(t, service.Upsert(ctx, "2026-01-05", 4))

		// when
		err := service.Upsert(ctx, "2026-01-05", 8)

		// then
		require.NoError(t, err)
		entries, _ := service.GetAll(ctx)
		assert.Equal(t, 8.0, entries["2026-01-05"])
	})

	t.Run("should remove the entry on zero hours", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		require.NoError(t, service.Upsert(ctx, "2026-01-05", 5))

		// when
		err := service.Upsert(ctx, "2026-01-05", 0)

		// then
		require.NoError(t, err)
		entries, _ := service.GetForMonth(ctx, 2026, 1)
		assert.NotContains(t, entries, "2026-01-05")
	})

	t.Run("should remove the entry on negative hours", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		require.NoError(t, service.Upsert(ctx, "2026-01-05", 5))

		// when
		err := service.Upsert(ctx, "2026-01-05", -1)

		// then
		require.NoError(t, err)
		entries, _ := service.GetAll(ctx)
		assert.Empty(t, entries)
	})

	t.Run("should treat non-finite hours as deletion, not an error", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		require.NoError(t, service.Upsert(ctx, "2026-01-05", 5))

		// when
		err := service.Upsert(ctx, "2026-01-05", math.NaN())

		// then
		require.NoError(t, err)
		entries, _ := service.GetAll(ctx)
		assert.Empty(t, entries)
	})

	t.Run("should reject a malformed date key", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		err := service.Upsert(ctx, "05.01.2026", 5)

		// then
		assert.ErrorIs(t, err, datekey.ErrInvalidFormat)
	})
}

func TestServiceImpl_Remove(t *testing.T) {
	t.Run("should delete an existing entry", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		require.NoError(t, service.Upsert(ctx, "2026-01-05", 5))

		// when
		err := service.Remove(ctx, "2026-01-05")

		// then
		require.NoError(t, err)
		entries, _ := service.GetAll(ctx)
		assert.Empty(t, entries)
	})

	t.Run("should be a no-op for an absent entry", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		err := service.Remove(ctx, "2026-01-05")

		// then
		assert.NoError(t, err)
	})
}

func TestServiceImpl_GetForMonth(t *testing.T) {
	t.Run("should only return entries of the exact month", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		require.NoError(t, service.Upsert(ctx, "2026-01-05", 8))
		require.NoError(t, service.Upsert(ctx, "2026-01-31", 4))
		require.NoError(t, service.Upsert(ctx, "2026-02-01", 6))

		// when
		entries, err := service.GetForMonth(ctx, 2026, 1)

		// then
		require.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Contains(t, entries, "2026-01-05")
		assert.Contains(t, entries, "2026-01-31")
	})

	t.Run("should exclude adjacent months across year boundaries", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		require.NoError(t, service.Upsert(ctx, "2025-12-31", 8))
		require.NoError(t, service.Upsert(ctx, "2026-01-01", 6))

		// when
		entries, err := service.GetForMonth(ctx, 2026, 1)

		// then
		require.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.NotContains(t, entries, "2025-12-31")
	})
}

func TestServiceImpl_Notes(t *testing.T) {
	t.Run("should store trimmed note text", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		err := service.SetNote(ctx, "2026-01-05", "  client meeting  ")

		// then
		require.NoError(t, err)
		note, err := service.GetNote(ctx, "2026-01-05")
		require.NoError(t, err)
		assert.Equal(t, "client meeting", note)
	})

	t.Run("should delete the note on whitespace-only text", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		require.NoError(t, service.SetNote(ctx, "2026-01-05", "client meeting"))

		// when
		err := service.SetNote(ctx, "2026-01-05", "   ")

		// then
		require.NoError(t, err)
		note, err := service.GetNote(ctx, "2026-01-05")
		require.NoError(t, err)
		assert.Equal(t, "", note)
	})

	t.Run("should return empty string for an absent note", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		note, err := service.GetNote(ctx, "2026-01-05")

		// then
		require.NoError(t, err)
		assert.Equal(t, "", note)
	})
}

func TestServiceImpl_Search(t *testing.T) {
	t.Run("should match note text case-insensitively", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		require.NoError(t, service.Upsert(ctx, "2026-01-05", 8))
		require.NoError(t, service.SetNote(ctx, "2026-01-05", "Client Meeting"))
		require.NoError(t, service.Upsert(ctx, "2026-01-06", 4))

		// when
		results, err := service.Search(ctx, "meeting")

		// then
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "2026-01-05", results[0].Date)
		assert.Equal(t, 8.0, results[0].Hours)
		assert.Equal(t, "Client Meeting", results[0].Note)
	})

	t.Run("should match on date key and sort ascending", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		require.NoError(t, service.Upsert(ctx, "2026-03-10", 8))
		require.NoError(t, service.Upsert(ctx, "2026-03-02", 4))
		require.NoError(t, service.Upsert(ctx, "2026-04-01", 2))

		// when
		results, err := service.Search(ctx, "2026-03")

		// then
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "2026-03-02", results[0].Date)
		assert.Equal(t, "2026-03-10", results[1].Date)
	})

	t.Run("should include days that only carry a note", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		require.NoError(t, service.SetNote(ctx, "2026-01-05", "holiday"))

		// when
		results, err := service.Search(ctx, "holiday")

		// then
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 0.0, results[0].Hours)
	})

	t.Run("should return nothing for a blank query", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		require.NoError(t, service.Upsert(ctx, "2026-01-05", 8))

		// when
		results, err := service.Search(ctx, "   ")

		// then
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestServiceImpl_Replace(t *testing.T) {
	t.Run("should replace all entries and notes", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		require.NoError(t, service.Upsert(ctx, "2026-01-05", 8))
		require.NoError(t, service.SetNote(ctx, "2026-01-05", "old"))

		// when
		err := service.Replace(ctx,
			map[string]float64{"2026-02-01": 6},
			map[string]string{"2026-02-01": "new"},
		)

		// then
		require.NoError(t, err)
		entries, _ := service.GetAll(ctx)
		assert.Equal(t, map[string]float64{"2026-02-01": 6}, entries)
		notes, _ := service.GetAllNotes(ctx)
		assert.Equal(t, map[string]string{"2026-02-01": "new"}, notes)
	})

	t.Run("should drop non-positive hours and blank notes on replace", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		err := service.Replace(ctx,
			map[string]float64{"2026-01-05": 0, "2026-01-06": 8},
			map[string]string{"2026-01-05": "  ", "2026-01-06": "kept"},
		)

		// then
		require.NoError(t, err)
		entries, _ := service.GetAll(ctx)
		assert.Equal(t, map[string]float64{"2026-01-06": 8}, entries)
		notes, _ := service.GetAllNotes(ctx)
		assert.Equal(t, map[string]string{"2026-01-06": "kept"}, notes)
	})
}
