package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"media-gallery/pkg/arena"
	"media-gallery/pkg/models"
)

// maxParallelReads bounds how many selected files are read at once
const maxParallelReads = 4

// File is a user-selected file
type File interface {
	Name() string
	MediaType() string
	Open() (io.ReadCloser, error)
}

// MemoryFile is a File whose content is already in memory
type MemoryFile struct {
	FileName string
	Type     string
	Data     []byte
}

func (f MemoryFile) Name() string      { return f.FileName }
func (f MemoryFile) MediaType() string { return f.Type }

func (f MemoryFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.Data)), nil
}

// Classify maps a declared media type to an entry kind
func Classify(mediaType string) (models.Kind, bool) {
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	switch {
	case strings.HasPrefix(mediaType, "image/"):
		return models.KindImage, true
	case strings.HasPrefix(mediaType, "video/"):
		return models.KindVideo, true
	}
	return "", false
}

// DataURL embeds data as a base64 data URL
func DataURL(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// UploadResult reports what happened to each selected file
type UploadResult struct {
	Added    []arena.Key
	Rejected []string
	Failed   []string
}

type readResult struct {
	entry models.Entry
	err   error
}

// Upload reads every accepted file in parallel and adds them in the order
// they were selected, so the last selected file ends up first in the gallery.
// Files with an unsupported media type are rejected; files that fail to read
// are logged and skipped.
func (g *Gallery) Upload(ctx context.Context, files []File) UploadResult {
	var result UploadResult

	accepted := make([]File, 0, len(files))
	kinds := make([]models.Kind, 0, len(files))
	for _, f := range files {
		kind, ok := Classify(f.MediaType())
		if !ok {
			g.log.Warn("Rejected upload", "name", f.Name(), "mediaType", f.MediaType())
			result.Rejected = append(result.Rejected, f.Name())
			continue
		}
		accepted = append(accepted, f)
		kinds = append(kinds, kind)
	}

	reads := make([]readResult, len(accepted))
	var eg errgroup.Group
	eg.SetLimit(maxParallelReads)
	for i, f := range accepted {
		eg.Go(func() error {
			reads[i] = readFile(ctx, f, kinds[i])
			return nil
		})
	}
	_ = eg.Wait()

	for i, r := range reads {
		if r.err != nil {
			g.log.Error("Failed to read upload", "name", accepted[i].Name(), "error", r.err)
			result.Failed = append(result.Failed, accepted[i].Name())
			continue
		}
		result.Added = append(result.Added, g.Add(ctx, r.entry))
	}
	return result
}

func readFile(ctx context.Context, f File, kind models.Kind) readResult {
	if err := ctx.Err(); err != nil {
		return readResult{err: err}
	}

	rc, err := f.Open()
	if err != nil {
		return readResult{err: fmt.Errorf("failed to open %s: %w", f.Name(), err)}
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return readResult{err: fmt.Errorf("failed to read %s: %w", f.Name(), err)}
	}

	return readResult{entry: models.Entry{
		Type:        kind,
		Src:         DataURL(f.MediaType(), data),
		Title:       f.Name(),
		Description: fmt.Sprintf("Uploaded %s", kind),
	}}
}
