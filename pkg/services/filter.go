package services

import "media-gallery/pkg/models"

// Apply returns the entries that belong to the category, in their original order
func Apply(entries []models.Entry, category models.Category) []models.Entry {
	return filterBy(entries, category, func(e models.Entry) models.Kind { return e.Type })
}

// filterBy keeps the items whose kind belongs to the category
func filterBy[T any](items []T, category models.Category, kind func(T) models.Kind) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if category.Matches(kind(it)) {
			out = append(out, it)
		}
	}
	return out
}
