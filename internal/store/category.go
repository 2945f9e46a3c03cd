package store

import (
	"github.com/go-faster/errors"

	"github.com/velespak/storefront/internal/catalog"
)

// ErrCategoryCycle is returned when the raw category graph revisits a uuid
// on the current traversal path. The upstream is expected to send a tree;
// a cycle would otherwise recurse without bound.
var ErrCategoryCycle = errors.New("category graph contains a cycle")

// CategoryFromAPI converts a recursively nested raw category into its
// canonical form, mapping Parents and Children element-wise through itself.
// Nil slices stay nil; explicit empty slices stay empty.
func CategoryFromAPI(raw catalog.Category) (Category, error) {
	return categoryFromAPI(raw, map[string]struct{}{})
}

func categoryFromAPI(raw catalog.Category, path map[string]struct{}) (Category, error) {
	if _, seen := path[raw.UUID]; seen {
		return Category{}, errors.Wrapf(ErrCategoryCycle, "category %s", raw.UUID)
	}
	path[raw.UUID] = struct{}{}
	defer delete(path, raw.UUID)

	parents, err := mapCategories(raw.Parents, path)
	if err != nil {
		return Category{}, err
	}
	children, err := mapCategories(raw.Children, path)
	if err != nil {
		return Category{}, err
	}

	return Category{
		UUID:        raw.UUID,
		Name:        raw.Name,
		Slug:        raw.Slug,
		Description: raw.Description,
		Parents:     parents,
		Children:    children,
		CreatedAt:   raw.CreatedAt,
		UpdatedAt:   raw.UpdatedAt,
	}, nil
}

func mapCategories(raw []catalog.Category, path map[string]struct{}) ([]Category, error) {
	if raw == nil {
		return nil, nil
	}
	out := make([]Category, len(raw))
	for i, c := range raw {
		mapped, err := categoryFromAPI(c, path)
		if err != nil {
			return nil, err
		}
		out[i] = mapped
	}
	return out, nil
}
