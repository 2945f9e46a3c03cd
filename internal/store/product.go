package store

import (
	"strconv"
	"strings"

	"github.com/velespak/storefront/internal/catalog"
)

// Recognized property-bag keys. The upstream encodes physical dimensions as
// RU-localized free-text pairs instead of typed fields.
const (
	propThickness = "Толщина, мкм"
	propWidth     = "Ширина, мм"
	propLength    = "Длина, мм"
	propHeight    = "Высота, мм"
	propVolume    = "Объем, л"
	propWeight    = "Вес пакета, г"
)

// ProductFromAPI converts one raw product into its canonical form. The
// representative image is the first image's card URL, falling back to its
// original URL; offers map element-wise; dimensions are extracted from the
// property bag when at least one recognized key is present.
func ProductFromAPI(raw catalog.Product) Product {
	offers := make([]Offer, len(raw.Offers))
	for i, o := range raw.Offers {
		offers[i] = OfferFromAPI(o)
	}

	return Product{
		UUID:         raw.UUID,
		Name:         raw.Name,
		SKU:          raw.Article,
		Description:  raw.Description,
		Slug:         raw.Slug,
		Image:        pickImage(raw.Images),
		CategoryUUID: raw.CategoryUUID,
		Dimensions:   dimensionsFromProperties(raw.Properties),
		Offers:       offers,
	}
}

func pickImage(images []catalog.Image) string {
	if len(images) == 0 {
		return ""
	}
	if images[0].CardURL != "" {
		return images[0].CardURL
	}
	return images[0].OriginalURL
}

// dimensionsFromProperties returns nil when none of the recognized keys are
// present, so callers can tell "no dimensions" from "all fields unparseable".
func dimensionsFromProperties(props map[string]string) *Dimensions {
	keys := []string{propThickness, propWidth, propLength, propHeight, propVolume, propWeight}

	present := false
	for _, k := range keys {
		if _, ok := props[k]; ok {
			present = true
			break
		}
	}
	if !present {
		return nil
	}

	return &Dimensions{
		Thickness: parseDimension(props, propThickness),
		Width:     parseDimension(props, propWidth),
		Length:    parseDimension(props, propLength),
		Height:    parseDimension(props, propHeight),
		Volume:    parseDimension(props, propVolume),
		Weight:    parseDimension(props, propWeight),
	}
}

// parseDimension parses one property value. The bag is RU-localized free
// text, so a decimal comma is accepted. An absent key or unparseable value
// yields nil for that one field only.
func parseDimension(props map[string]string, key string) *float64 {
	raw, ok := props[key]
	if !ok {
		return nil
	}

	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return nil
	}
	return &v
}
