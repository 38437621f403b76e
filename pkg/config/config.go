package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/ilyakaznacheev/cleanenv"
)

// Store backends
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreGCS    = "gcs"
)

// Config holds all configuration for the application
type Config struct {
	Port            string `env:"PORT" env-default:"8080" env-description:"HTTP port"`
	Store           string `env:"GALLERY_STORE" env-default:"file" env-description:"storage backend: memory, file or gcs"`
	DataDir         string `env:"GALLERY_DATA_DIR" env-default:"./data" env-description:"directory used by the file store"`
	BucketName      string `env:"BUCKET_NAME" env-description:"bucket used by the gcs store"`
	CredentialsFile string `env:"GCS_CREDENTIALS_FILE" env-description:"service account file for the gcs store"`
	StorageKey      string `env:"GALLERY_STORAGE_KEY" env-default:"galleryItems" env-description:"key the gallery is saved under"`
	ViewsDir        string `env:"VIEWS_DIR" env-default:"./views" env-description:"directory holding the pug templates"`
	PublicDir       string `env:"PUBLIC_DIR" env-default:"./public" env-description:"directory served under /static/"`
	LogLevel        string `env:"LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	MaxUploadMB     int64  `env:"MAX_UPLOAD_MB" env-default:"32" env-description:"maximum size of one upload request"`
}

// ErrBucketNameNotSet is returned when the gcs store is selected without a bucket
var ErrBucketNameNotSet = errors.New("BUCKET_NAME environment variable not set")

// ErrUnknownStore is returned for a GALLERY_STORE value that names no backend
var ErrUnknownStore = errors.New("unknown store")

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected store has what it needs
func (c *Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreFile:
	case StoreGCS:
		if c.BucketName == "" {
			return ErrBucketNameNotSet
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStore, c.Store)
	}
	return nil
}

// ServerAddress returns the server address with port
func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// MaxUploadBytes returns the upload limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// PrintServerStartMessage prints a message when the server starts
func (c *Config) PrintServerStartMessage(w io.Writer) {
	fmt.Fprintf(w, "Starting server at port %s\n", c.Port)
	fmt.Fprintf(w, "Gallery URL: http://localhost:%s/\n", c.Port)
	fmt.Fprintf(w, "State URL: http://localhost:%s/api/state\n", c.Port)
}

// Usage describes every environment variable the application reads
func Usage() string {
	help, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return help
}
