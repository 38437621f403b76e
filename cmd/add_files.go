package cmd

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"media-gallery/pkg/services"
)

// newAddCmd creates a new command for uploading local files
func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [file...]",
		Short: "Add images or videos to the gallery",
		Long: `Add local image or video files to the front of the gallery. The media type is taken from
the file extension, or detected from the content when the extension is unknown.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			files := make([]services.File, 0, len(args))
			for _, path := range args {
				f, err := newLocalFile(path)
				if err != nil {
					return err
				}
				files = append(files, f)
			}

			prompt := newTerminalPrompter(cmd.InOrStdin(), cmd.ErrOrStderr(), true)
			before := len(a.gallery.Entries())
			page := services.NewDispatcher(a.gallery, prompt, a.log).Dispatch(cmd.Context(), services.FilesSelected{Files: files})

			fmt.Fprintf(cmd.OutOrStdout(), "Added %d of %d files, gallery now has %d entries\n",
				len(page.Cards)-before, len(files), len(page.Cards))
			return nil
		},
	}
}

// localFile is a file on disk selected for upload
type localFile struct {
	path      string
	mediaType string
}

func newLocalFile(path string) (localFile, error) {
	mediaType, err := detectMediaType(path)
	if err != nil {
		return localFile{}, err
	}
	return localFile{path: path, mediaType: mediaType}, nil
}

func (f localFile) Name() string      { return filepath.Base(f.path) }
func (f localFile) MediaType() string { return f.mediaType }

func (f localFile) Open() (io.ReadCloser, error) {
	return os.Open(f.path)
}

// detectMediaType looks at the extension first and sniffs the content otherwise
func detectMediaType(path string) (string, error) {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		mediaType, _, err := mime.ParseMediaType(t)
		if err == nil {
			return mediaType, nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	detected := http.DetectContentType(head[:n])
	mediaType, _, _ := strings.Cut(detected, ";")
	return strings.TrimSpace(mediaType), nil
}
