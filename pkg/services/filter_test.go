package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"media-gallery/pkg/models"
	"media-gallery/pkg/store"
)

func TestApplyAllIsIdentity(t *testing.T) {
	seed := store.Seed()
	assert.Equal(t, seed, Apply(seed, models.CategoryAll))
}

func TestApplyKeepsOrder(t *testing.T) {
	seed := store.Seed()

	videos := Apply(seed, models.CategoryVideo)
	assert.Equal(t, []string{"Sample Video", "Another Video"}, titles(videos))

	images := Apply(seed, models.CategoryImage)
	assert.Equal(t, []string{"Nature Scene", "City View", "Technology"}, titles(images))
}

func TestApplyIsSubsequence(t *testing.T) {
	seed := store.Seed()
	for _, c := range models.Categories {
		out := Apply(seed, c)
		j := 0
		for _, e := range seed {
			if j < len(out) && out[j] == e {
				j++
			}
		}
		assert.Equal(t, len(out), j, "category %s", c)
		for _, e := range out {
			assert.True(t, c.Matches(e.Type))
		}
	}
}

func TestApplyEmpty(t *testing.T) {
	assert.Empty(t, Apply(nil, models.CategoryImage))
}

func TestGalleryViewMatchesApply(t *testing.T) {
	g, _ := newTestGallery(t)
	addUpload(t, g, "a.png")
	g.Upload(context.Background(), []File{MemoryFile{FileName: "b.mp4", Type: "video/mp4", Data: []byte("v")}})

	for _, c := range models.Categories {
		g.SetCategory(c)
		assert.Equal(t, Apply(g.Entries(), c), g.ActiveView(), "category %s", c)
	}
}
