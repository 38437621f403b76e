package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"media-gallery/pkg/config"
)

// ErrNotFound is returned by a Backend when nothing is stored under a key
var ErrNotFound = errors.New("key not found")

// Backend is a key-value byte store
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open creates the backend selected by the configuration
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (Backend, error) {
	switch cfg.Store {
	case config.StoreMemory:
		log.Debug("Using memory store")
		return NewMemoryBackend(), nil
	case config.StoreFile:
		log.Debug("Using file store", "dir", cfg.DataDir)
		return NewFileBackend(cfg.DataDir)
	case config.StoreGCS:
		log.Debug("Using cloud storage", "bucket", cfg.BucketName)
		return NewGCSBackend(ctx, cfg.BucketName, cfg.CredentialsFile)
	}
	return nil, fmt.Errorf("%w: %q", config.ErrUnknownStore, cfg.Store)
}
