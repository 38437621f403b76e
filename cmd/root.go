package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"media-gallery/pkg/config"
	"media-gallery/pkg/logger"
	"media-gallery/pkg/services"
	"media-gallery/pkg/store"
)

// Configuration flags
var (
	storeKind  string
	dataDir    string
	bucketName string
	storageKey string
	portNumber string
	logLevel   string
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "media-gallery",
		Short: "Media Gallery shows, filters and manages a gallery of images and videos",
		Long: `Media Gallery is a command line application that keeps a gallery of images and videos
in a key-value store (memory, local files or Google Cloud Storage). It can serve the gallery
as a web page with a lightbox viewer, or manage it directly from the terminal.`,
		SilenceUsage: true,
	}

	// Define persistent flags that will be available for all commands
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", "", "Set the GALLERY_STORE: memory, file or gcs (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "Set the GALLERY_DATA_DIR (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&bucketName, "bucket", "b", "", "Set the BUCKET_NAME (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&storageKey, "key", "k", "", "Set the GALLERY_STORAGE_KEY (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&portNumber, "port", "p", "", "Set the PORT (overrides environment variable)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set the LOG_LEVEL (overrides environment variable)")

	// Add commands to root
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newListCategoriesCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// LoadConfig loads configuration with respect to command line flags
func LoadConfig() (*config.Config, error) {
	// Set environment variables from flags if provided
	overrides := map[string]string{
		"GALLERY_STORE":       storeKind,
		"GALLERY_DATA_DIR":    dataDir,
		"BUCKET_NAME":         bucketName,
		"GALLERY_STORAGE_KEY": storageKey,
		"PORT":                portNumber,
		"LOG_LEVEL":           logLevel,
	}
	for name, value := range overrides {
		if value != "" {
			os.Setenv(name, value)
		}
	}

	// Load configuration from environment variables (potentially set above)
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("%w\n\n%s", err, config.Usage())
	}
	return cfg, nil
}

// app is what every command works with
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	backend store.Backend
	gallery *services.Gallery
}

// openApp loads configuration, connects the store and loads the gallery
func openApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Opts{Level: cfg.LogLevel, Output: cmd.ErrOrStderr()})

	backend, err := store.Open(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	st := store.New(backend, cfg.StorageKey, log)
	return &app{
		cfg:     cfg,
		log:     log,
		backend: backend,
		gallery: services.NewGallery(ctx, st, log),
	}, nil
}

func (a *app) Close() {
	if err := a.backend.Close(); err != nil {
		a.log.Warn("Error closing store", "error", err)
	}
}
