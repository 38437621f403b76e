package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"media-gallery/pkg/models"
)

func TestViewGrid(t *testing.T) {
	g, _ := newTestGallery(t)
	page := g.View()

	require.Len(t, page.Cards, 5)
	for i, c := range page.Cards {
		assert.Equal(t, i, c.Index)
		assert.False(t, c.Deletable, "built-in entries have no delete button")
		assert.Equal(t, c.Type == models.KindImage, c.IsImage)
		assert.NotEmpty(t, c.Key)
	}
	assert.False(t, page.Lightbox.Open)
	assert.Nil(t, page.Lightbox.Card)

	require.Len(t, page.Filters, 3)
	assert.Equal(t, "All", page.Filters[0].Label)
	assert.True(t, page.Filters[0].Active)
	assert.False(t, page.Filters[1].Active)
	assert.False(t, page.Filters[2].Active)
}

func TestViewLightbox(t *testing.T) {
	g, _ := newTestGallery(t)
	require.True(t, g.Open(1))

	lb := g.View().Lightbox
	assert.True(t, lb.Open)
	assert.False(t, lb.Empty)
	assert.Equal(t, 5, lb.Count)
	require.NotNil(t, lb.Card)
	assert.Equal(t, "Sample Video", lb.Card.Title)
	assert.False(t, lb.Card.IsImage)
}

func TestViewUploadedCardIsDeletable(t *testing.T) {
	g, _ := newTestGallery(t)
	addUpload(t, g, "mine.png")

	page := g.View()
	assert.True(t, page.Cards[0].Deletable)
	assert.Equal(t, "mine.png", page.Cards[0].Title)
}
