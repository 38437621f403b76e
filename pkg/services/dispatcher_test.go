package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"media-gallery/pkg/arena"
	"media-gallery/pkg/logger"
	"media-gallery/pkg/models"
)

func newTestDispatcher(t *testing.T, answer bool) (*Dispatcher, *Gallery, *fakePrompter) {
	t.Helper()
	g, _ := newTestGallery(t)
	p := &fakePrompter{answer: answer}
	return NewDispatcher(g, p, logger.Nop()), g, p
}

func mustKey(t *testing.T, s string) arena.Key {
	t.Helper()
	k, err := arena.ParseKey(s)
	require.NoError(t, err)
	return k
}

func TestDispatchCardClick(t *testing.T) {
	ctx := context.Background()
	d, g, _ := newTestDispatcher(t, true)

	page := d.Dispatch(ctx, CardClick{Key: mustKey(t, g.View().Cards[2].Key)})
	require.True(t, page.Lightbox.Open)
	assert.Equal(t, 2, page.Lightbox.Index)
	assert.Equal(t, "City View", page.Lightbox.Card.Title)
}

func TestDispatchKeysOnlyWhileOpen(t *testing.T) {
	ctx := context.Background()
	d, g, _ := newTestDispatcher(t, true)

	d.Dispatch(ctx, KeyPress{Key: KeyArrowRight})
	assert.False(t, g.IsOpen())
	assert.Equal(t, 0, g.Focus())

	d.Dispatch(ctx, CardClick{Key: mustKey(t, g.View().Cards[0].Key)})
	page := d.Dispatch(ctx, KeyPress{Key: KeyArrowLeft})
	assert.Equal(t, 4, page.Lightbox.Index)

	page = d.Dispatch(ctx, KeyPress{Key: KeyArrowRight})
	assert.Equal(t, 0, page.Lightbox.Index)

	page = d.Dispatch(ctx, KeyPress{Key: "Enter"})
	assert.True(t, page.Lightbox.Open)

	page = d.Dispatch(ctx, KeyPress{Key: KeyEscape})
	assert.False(t, page.Lightbox.Open)
}

func TestDispatchNavAndClose(t *testing.T) {
	ctx := context.Background()
	d, g, _ := newTestDispatcher(t, true)
	require.True(t, g.Open(1))

	page := d.Dispatch(ctx, NavClick{Direction: Next})
	assert.Equal(t, 2, page.Lightbox.Index)

	page = d.Dispatch(ctx, CloseClick{})
	assert.False(t, page.Lightbox.Open)
}

func TestDispatchFilterVideo(t *testing.T) {
	ctx := context.Background()
	d, g, _ := newTestDispatcher(t, true)
	require.True(t, g.Open(4))

	page := d.Dispatch(ctx, FilterClick{Category: models.CategoryVideo})

	require.Len(t, page.Cards, 2)
	assert.Equal(t, "Sample Video", page.Cards[0].Title)
	assert.Equal(t, "Another Video", page.Cards[1].Title)
	assert.Equal(t, 0, g.Focus())
	assert.Equal(t, models.CategoryVideo, page.Category)
	assert.Equal(t, "Sample Video", page.Lightbox.Card.Title, "open lightbox follows the new view")

	for _, f := range page.Filters {
		assert.Equal(t, f.Category == models.CategoryVideo, f.Active, "filter %s", f.Category)
	}
}

func TestDispatchDeleteConfirmed(t *testing.T) {
	ctx := context.Background()
	d, g, p := newTestDispatcher(t, true)
	key := addUpload(t, g, "mine.png")

	page := d.Dispatch(ctx, DeleteClick{Key: mustKey(t, key)})

	assert.Equal(t, []string{ConfirmDeleteMessage}, p.confirms)
	assert.Len(t, page.Cards, 5)
	assert.Len(t, g.Entries(), 5)
}

func TestDispatchDeleteDeclined(t *testing.T) {
	ctx := context.Background()
	d, g, p := newTestDispatcher(t, false)
	key := addUpload(t, g, "mine.png")

	page := d.Dispatch(ctx, DeleteClick{Key: mustKey(t, key)})

	assert.Len(t, p.confirms, 1)
	assert.Len(t, page.Cards, 6)
}

func TestDispatchDeleteBuiltinNeverPrompts(t *testing.T) {
	ctx := context.Background()
	d, g, p := newTestDispatcher(t, true)

	d.Dispatch(ctx, DeleteClick{Key: mustKey(t, g.View().Cards[0].Key)})
	assert.Empty(t, p.confirms)
	assert.Len(t, g.Entries(), 5)
}

func TestDispatchLightboxDeleteCloses(t *testing.T) {
	ctx := context.Background()
	d, g, _ := newTestDispatcher(t, true)
	key := addUpload(t, g, "only-upload.png")

	d.Dispatch(ctx, CardClick{Key: mustKey(t, key)})
	require.True(t, g.IsOpen())

	page := d.Dispatch(ctx, LightboxDelete{})
	assert.False(t, page.Lightbox.Open)
	assert.Len(t, page.Cards, 5, "built-in entries remain")
	for _, c := range page.Cards {
		assert.NotEqual(t, "only-upload.png", c.Title)
	}
}

func TestDispatchLightboxDeleteDeclinedStillCloses(t *testing.T) {
	ctx := context.Background()
	d, g, _ := newTestDispatcher(t, false)
	key := addUpload(t, g, "keep.png")

	d.Dispatch(ctx, CardClick{Key: mustKey(t, key)})
	page := d.Dispatch(ctx, LightboxDelete{})

	assert.False(t, page.Lightbox.Open)
	assert.Len(t, page.Cards, 6)
}

func TestDispatchUpload(t *testing.T) {
	ctx := context.Background()
	d, _, p := newTestDispatcher(t, true)

	page := d.Dispatch(ctx, FilesSelected{Files: []File{
		pngFile("cat.png"),
		MemoryFile{FileName: "doc.pdf", Type: "application/pdf"},
		MemoryFile{FileName: "notes.txt", Type: "text/plain"},
	}})

	assert.Equal(t, []string{RejectedUploadMessage, RejectedUploadMessage}, p.warnings)
	require.Len(t, page.Cards, 6)
	assert.Equal(t, "cat.png", page.Cards[0].Title)
	assert.True(t, page.Cards[0].Deletable)
	assert.True(t, page.Cards[0].IsImage)
}

func TestDispatchStaleKey(t *testing.T) {
	ctx := context.Background()
	d, g, _ := newTestDispatcher(t, true)
	key := mustKey(t, addUpload(t, g, "gone.png"))

	d.Dispatch(ctx, DeleteClick{Key: key})
	addUpload(t, g, "reuses-slot.png")

	page := d.Dispatch(ctx, CardClick{Key: key})
	assert.False(t, page.Lightbox.Open, "a deleted key must not open the entry now in its slot")
}
