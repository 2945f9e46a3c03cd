package view

import (
	"github.com/velespak/storefront/internal/catalog"
	"github.com/velespak/storefront/internal/store"
)

// CategoryFromStore derives the presentation form of a canonical category.
// Parents and timestamps are dropped; only the downward tree survives. The
// input was produced by the guarded API mapping, so it is a finite tree and
// the recursion here needs no cycle check.
func CategoryFromStore(c store.Category) Category {
	var children []Category
	if c.Children != nil {
		children = make([]Category, len(c.Children))
		for i, child := range c.Children {
			children[i] = CategoryFromStore(child)
		}
	}

	return Category{
		UUID:        c.UUID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Children:    children,
	}
}

// CategoryFromAPI is the two-stage composition for raw categories. It fails
// only when the raw graph contains a cycle.
func CategoryFromAPI(raw catalog.Category) (Category, error) {
	canonical, err := store.CategoryFromAPI(raw)
	if err != nil {
		return Category{}, err
	}
	return CategoryFromStore(canonical), nil
}
