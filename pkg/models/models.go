package models

import (
	"errors"
	"fmt"
)

// Kind is the media type of a gallery entry
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// ErrUnknownKind is returned when a kind is neither image nor video
var ErrUnknownKind = errors.New("unknown media kind")

// ParseKind converts a string into a Kind
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindImage, KindVideo:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// UnmarshalText rejects anything other than the two known kinds, so a stored
// list carrying a foreign kind fails to decode as a whole.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Entry is a single image or video in the gallery.
// Field names on the wire match the records the browser widget kept in local storage.
type Entry struct {
	Type        Kind   `json:"type"`
	Src         string `json:"src"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsDefault   bool   `json:"isDefault"`
}

// Category selects which entries are part of the active view
type Category string

const (
	CategoryAll   Category = "all"
	CategoryImage Category = Category(KindImage)
	CategoryVideo Category = Category(KindVideo)
)

// Categories lists every category in the order the filter buttons appear
var Categories = []Category{CategoryAll, CategoryImage, CategoryVideo}

// ErrUnknownCategory is returned for a filter value that is not a category
var ErrUnknownCategory = errors.New("unknown category")

// ParseCategory converts a filter value into a Category
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryAll, CategoryImage, CategoryVideo:
		return Category(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Matches reports whether an entry of the given kind belongs to the category
func (c Category) Matches(k Kind) bool {
	return c == CategoryAll || Kind(c) == k
}

// Label is the caption shown on the filter button
func (c Category) Label() string {
	switch c {
	case CategoryImage:
		return "Images"
	case CategoryVideo:
		return "Videos"
	default:
		return "All"
	}
}
