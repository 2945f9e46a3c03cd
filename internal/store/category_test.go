package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velespak/storefront/internal/catalog"
)

func TestCategoryFromAPI_Recursive(t *testing.T) {
	raw := catalog.Category{
		UUID:      "root",
		Name:      "Упаковка",
		Slug:      "upakovka",
		CreatedAt: "2024-01-01T00:00:00Z",
		UpdatedAt: "2024-02-01T00:00:00Z",
		Parents: []catalog.Category{
			{UUID: "top", Name: "Каталог", Slug: "katalog"},
		},
		Children: []catalog.Category{
			{
				UUID: "bags",
				Name: "Пакеты",
				Slug: "pakety",
				Children: []catalog.Category{
					{UUID: "zip", Name: "Зип-лок", Slug: "zip-lock"},
				},
			},
		},
	}

	got, err := CategoryFromAPI(raw)
	require.NoError(t, err)

	assert.Equal(t, "root", got.UUID)
	assert.Equal(t, "2024-01-01T00:00:00Z", got.CreatedAt)
	require.Len(t, got.Parents, 1)
	assert.Equal(t, "top", got.Parents[0].UUID)
	require.Len(t, got.Children, 1)
	require.Len(t, got.Children[0].Children, 1)
	assert.Equal(t, "zip", got.Children[0].Children[0].UUID)
}

func TestCategoryFromAPI_NilVersusEmpty(t *testing.T) {
	t.Run("absent slices stay nil", func(t *testing.T) {
		got, err := CategoryFromAPI(catalog.Category{UUID: "c1"})
		require.NoError(t, err)
		assert.Nil(t, got.Parents)
		assert.Nil(t, got.Children)
	})

	t.Run("explicit empty slice round-trips as empty", func(t *testing.T) {
		got, err := CategoryFromAPI(catalog.Category{UUID: "c1", Children: []catalog.Category{}})
		require.NoError(t, err)
		require.NotNil(t, got.Children)
		assert.Empty(t, got.Children)
	})
}

func TestCategoryFromAPI_CycleDetected(t *testing.T) {
	raw := catalog.Category{
		UUID: "a",
		Children: []catalog.Category{
			{
				UUID: "b",
				Children: []catalog.Category{
					{UUID: "a"},
				},
			},
		},
	}

	_, err := CategoryFromAPI(raw)
	require.ErrorIs(t, err, ErrCategoryCycle)
}

func TestCategoryFromAPI_SiblingDuplicatesAllowed(t *testing.T) {
	// The guard tracks the current path, not the whole graph: the same
	// category appearing under two different parents is not a cycle.
	raw := catalog.Category{
		UUID: "root",
		Children: []catalog.Category{
			{UUID: "x", Children: []catalog.Category{{UUID: "shared"}}},
			{UUID: "y", Children: []catalog.Category{{UUID: "shared"}}},
		},
	}

	_, err := CategoryFromAPI(raw)
	require.NoError(t, err)
}
