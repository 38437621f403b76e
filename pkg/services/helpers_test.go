package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"media-gallery/pkg/logger"
	"media-gallery/pkg/models"
	"media-gallery/pkg/store"
)

type fakePrompter struct {
	answer   bool
	confirms []string
	warnings []string
}

func (p *fakePrompter) Confirm(message string) bool {
	p.confirms = append(p.confirms, message)
	return p.answer
}

func (p *fakePrompter) Warn(message string) {
	p.warnings = append(p.warnings, message)
}

type brokenFile struct{ name string }

func (f brokenFile) Name() string      { return f.name }
func (f brokenFile) MediaType() string { return "image/png" }
func (f brokenFile) Open() (io.ReadCloser, error) {
	return nil, errors.New("permission denied")
}

func newTestStore() *store.Store {
	return store.New(store.NewMemoryBackend(), store.DefaultKey, logger.Nop())
}

func newTestGallery(t *testing.T) (*Gallery, *store.Store) {
	t.Helper()
	st := newTestStore()
	return NewGallery(context.Background(), st, logger.Nop()), st
}

func pngFile(name string) MemoryFile {
	return MemoryFile{FileName: name, Type: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}
}

func titles(entries []models.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Title)
	}
	return out
}

// addUpload stores one uploaded image and returns its key as text
func addUpload(t *testing.T, g *Gallery, name string) string {
	t.Helper()
	res := g.Upload(context.Background(), []File{pngFile(name)})
	require.Len(t, res.Added, 1)
	return res.Added[0].String()
}
