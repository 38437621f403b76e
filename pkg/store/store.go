package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"media-gallery/pkg/models"
)

// DefaultKey is the key the gallery list is saved under
const DefaultKey = "galleryItems"

var seed = []models.Entry{
	{
		Type:        models.KindImage,
		Src:         "https://source.unsplash.com/random/800x600?nature",
		Title:       "Nature Scene",
		Description: "Beautiful nature landscape",
		IsDefault:   true,
	},
	{
		Type:        models.KindVideo,
		Src:         "https://www.w3schools.com/html/mov_bbb.mp4",
		Title:       "Sample Video",
		Description: "A sample video clip",
		IsDefault:   true,
	},
	{
		Type:        models.KindImage,
		Src:         "https://source.unsplash.com/random/800x600?city",
		Title:       "City View",
		Description: "Urban landscape",
		IsDefault:   true,
	},
	{
		Type:        models.KindImage,
		Src:         "https://source.unsplash.com/random/800x600?technology",
		Title:       "Technology",
		Description: "Modern technology",
		IsDefault:   true,
	},
	{
		Type:        models.KindVideo,
		Src:         "https://www.w3schools.com/html/mov_bbb.mp4",
		Title:       "Another Video",
		Description: "Another sample video",
		IsDefault:   true,
	},
}

// Seed returns a fresh copy of the built-in entries
func Seed() []models.Entry {
	return append([]models.Entry(nil), seed...)
}

// Store persists the gallery list under a single key
type Store struct {
	backend Backend
	key     string
	log     *slog.Logger
}

// New creates a store writing to key on the backend
func New(backend Backend, key string, log *slog.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{backend: backend, key: key, log: log}
}

// Load returns the saved list, or the seed list when nothing usable is saved
func (s *Store) Load(ctx context.Context) []models.Entry {
	data, err := s.backend.Get(ctx, s.key)
	if errors.Is(err, ErrNotFound) {
		s.log.Debug("No saved gallery, using seed entries", "key", s.key)
		return Seed()
	}
	if err != nil {
		s.log.Error("Failed to read saved gallery, using seed entries", "key", s.key, "error", err)
		return Seed()
	}

	var entries []models.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.log.Warn("Discarding malformed saved gallery", "key", s.key, "error", err)
		return Seed()
	}
	if entries == nil {
		// a stored JSON null
		s.log.Warn("Discarding empty saved gallery", "key", s.key)
		return Seed()
	}

	s.log.Debug("Loaded gallery", "key", s.key, "entries", len(entries))
	return entries
}

// Save overwrites the saved list
func (s *Store) Save(ctx context.Context, entries []models.Entry) error {
	if entries == nil {
		entries = []models.Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode gallery: %w", err)
	}
	if err := s.backend.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to save gallery: %w", err)
	}
	return nil
}

// Clear removes the saved list so the next Load returns the seed entries
func (s *Store) Clear(ctx context.Context) error {
	if err := s.backend.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("failed to clear gallery: %w", err)
	}
	return nil
}

// Raw returns the saved bytes as they are stored
func (s *Store) Raw(ctx context.Context) ([]byte, error) {
	return s.backend.Get(ctx, s.key)
}

// Remove returns a new list without the first entry equal to target
func Remove(entries []models.Entry, target models.Entry) []models.Entry {
	out := make([]models.Entry, 0, len(entries))
	removed := false
	for _, e := range entries {
		if !removed && e == target {
			removed = true
			continue
		}
		out = append(out, e)
	}
	return out
}

// Prepend returns a new list with entry at the front
func Prepend(entries []models.Entry, entry models.Entry) []models.Entry {
	out := make([]models.Entry, 0, len(entries)+1)
	out = append(out, entry)
	return append(out, entries...)
}
