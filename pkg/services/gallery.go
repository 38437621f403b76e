package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"media-gallery/pkg/arena"
	"media-gallery/pkg/models"
	"media-gallery/pkg/store"
)

// ErrNotFound is returned when a position or key addresses no entry
var ErrNotFound = errors.New("entry not found")

// Direction is a lightbox navigation step
type Direction int

const (
	Prev Direction = iota
	Next
)

// ParseDirection accepts "prev" and "next"
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "prev":
		return Prev, nil
	case "next":
		return Next, nil
	}
	return 0, fmt.Errorf("unknown direction: %q", s)
}

func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

type lightbox struct {
	open  bool
	index int
}

// Gallery owns the gallery state: the saved entries, the filter and the lightbox.
// Every mutation is saved before the lock is released, so View never observes
// an unsaved list.
type Gallery struct {
	mu       sync.Mutex
	store    *store.Store
	log      *slog.Logger
	entries  *arena.Arena[models.Entry]
	order    []arena.Key
	category models.Category
	view     []arena.Key
	lightbox lightbox
}

// NewGallery loads the saved entries and shows all of them
func NewGallery(ctx context.Context, st *store.Store, log *slog.Logger) *Gallery {
	g := &Gallery{
		store:    st,
		log:      log,
		entries:  arena.New[models.Entry](),
		category: models.CategoryAll,
	}
	g.fillLocked(st.Load(ctx))
	return g
}

func (g *Gallery) fillLocked(entries []models.Entry) {
	g.entries.Reset()
	g.order = make([]arena.Key, 0, len(entries))
	for _, e := range entries {
		g.order = append(g.order, g.entries.Insert(e))
	}
	g.refreshLocked()
}

// refreshLocked recomputes the active view from the saved entries and the filter
func (g *Gallery) refreshLocked() {
	g.view = filterBy(g.order, g.category, g.kindLocked)
}

func (g *Gallery) kindLocked(k arena.Key) models.Kind {
	e, _ := g.entries.Get(k)
	return e.Type
}

func (g *Gallery) snapshotLocked() []models.Entry {
	out := make([]models.Entry, 0, len(g.order))
	for _, k := range g.order {
		e, _ := g.entries.Get(k)
		out = append(out, e)
	}
	return out
}

func (g *Gallery) saveLocked(ctx context.Context, entries []models.Entry) {
	if err := g.store.Save(ctx, entries); err != nil {
		g.log.Error("Failed to save gallery", "error", err)
	}
}

func (g *Gallery) viewIndexLocked(k arena.Key) int {
	for i, vk := range g.view {
		if vk == k {
			return i
		}
	}
	return -1
}

// Entries returns every saved entry in order
func (g *Gallery) Entries() []models.Entry {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

// ActiveView returns the entries that pass the current filter
func (g *Gallery) ActiveView() []models.Entry {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]models.Entry, 0, len(g.view))
	for _, k := range g.view {
		e, _ := g.entries.Get(k)
		out = append(out, e)
	}
	return out
}

// Category returns the current filter
func (g *Gallery) Category() models.Category {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.category
}

// Key returns the key of the entry at position i of the active view
func (g *Gallery) Key(i int) (arena.Key, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if i < 0 || i >= len(g.view) {
		return arena.Key{}, fmt.Errorf("%w: position %d", ErrNotFound, i+1)
	}
	return g.view[i], nil
}

// Entry returns the entry stored under k
func (g *Gallery) Entry(k arena.Key) (models.Entry, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.entries.Get(k)
	if !ok {
		return models.Entry{}, fmt.Errorf("%w: key %s", ErrNotFound, k)
	}
	return e, nil
}

// IsOpen reports whether the lightbox is showing
func (g *Gallery) IsOpen() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lightbox.open
}

// Focus returns the lightbox position within the active view
func (g *Gallery) Focus() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lightbox.index
}

// Focused returns the key shown in the lightbox
func (g *Gallery) Focused() (arena.Key, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.focusedLocked()
}

func (g *Gallery) focusedLocked() (arena.Key, bool) {
	if !g.lightbox.open || g.lightbox.index < 0 || g.lightbox.index >= len(g.view) {
		return arena.Key{}, false
	}
	return g.view[g.lightbox.index], true
}

// Open shows the lightbox at position i. Out of range positions are ignored.
func (g *Gallery) Open(i int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.openLocked(i)
}

func (g *Gallery) openLocked(i int) bool {
	if i < 0 || i >= len(g.view) {
		return false
	}
	g.lightbox = lightbox{open: true, index: i}
	return true
}

// OpenKey shows the lightbox on the entry addressed by k, if it is in the active view
func (g *Gallery) OpenKey(k arena.Key) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.openLocked(g.viewIndexLocked(k))
}

// Navigate moves the lightbox one step, wrapping around at either end
func (g *Gallery) Navigate(d Direction) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.view)
	if !g.lightbox.open || n == 0 {
		return
	}
	if d == Prev {
		g.lightbox.index = (g.lightbox.index - 1 + n) % n
	} else {
		g.lightbox.index = (g.lightbox.index + 1) % n
	}
}

// Close hides the lightbox
func (g *Gallery) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lightbox.open = false
}

// SetCategory switches the filter and moves the lightbox focus back to the
// first entry. An open lightbox stays open and shows the new view.
func (g *Gallery) SetCategory(c models.Category) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.category = c
	g.refreshLocked()
	g.lightbox.index = 0
}

// Delete removes the entry addressed by k. Built-in entries and stale keys
// are left alone.
func (g *Gallery) Delete(ctx context.Context, k arena.Key) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.entries.Get(k)
	if !ok || e.IsDefault {
		return false
	}

	// equal entries serialize identically, so dropping the first match
	// saves the same list as dropping the keyed one
	saved := store.Remove(g.snapshotLocked(), e)

	for i, key := range g.order {
		if key == k {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	g.entries.Remove(k)
	g.saveLocked(ctx, saved)
	g.refreshLocked()

	if g.lightbox.index >= len(g.view) {
		g.lightbox.index = max(0, len(g.view)-1)
	}
	g.log.Info("Deleted entry", "title", e.Title, "key", k.String())
	return true
}

// Add puts a new entry at the front of the gallery
func (g *Gallery) Add(ctx context.Context, e models.Entry) arena.Key {
	g.mu.Lock()
	defer g.mu.Unlock()

	saved := store.Prepend(g.snapshotLocked(), e)
	k := g.entries.Insert(e)
	g.order = append([]arena.Key{k}, g.order...)
	g.saveLocked(ctx, saved)
	g.refreshLocked()
	g.log.Info("Added entry", "title", e.Title, "type", e.Type, "key", k.String())
	return k
}

// Reset clears the saved list and starts over from the built-in entries
func (g *Gallery) Reset(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.store.Clear(ctx); err != nil {
		return err
	}
	g.fillLocked(g.store.Load(ctx))
	g.lightbox = lightbox{}
	return nil
}
