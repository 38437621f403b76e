package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSBackend stores each key as an object in a Cloud Storage bucket
type GCSBackend struct {
	client *storage.Client
	bucket *storage.BucketHandle
}

// NewGCSBackend connects to the bucket. An empty credentials file falls back
// to application default credentials.
func NewGCSBackend(ctx context.Context, bucketName, credentialsFile string) (*GCSBackend, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &GCSBackend{
		client: client,
		bucket: client.Bucket(bucketName),
	}, nil
}

func objectName(key string) string {
	return key + ".json"
}

func (g *GCSBackend) Get(ctx context.Context, key string) ([]byte, error) {
	r, err := g.bucket.Object(objectName(key)).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open object %s: %w", objectName(key), err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", objectName(key), err)
	}
	return data, nil
}

func (g *GCSBackend) Set(ctx context.Context, key string, value []byte) error {
	w := g.bucket.Object(objectName(key)).NewWriter(ctx)
	w.ContentType = "application/json"

	if _, err := w.Write(value); err != nil {
		w.Close()
		return fmt.Errorf("failed to write object %s: %w", objectName(key), err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to upload object %s: %w", objectName(key), err)
	}
	return nil
}

func (g *GCSBackend) Delete(ctx context.Context, key string) error {
	err := g.bucket.Object(objectName(key)).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete object %s: %w", objectName(key), err)
	}
	return nil
}

func (g *GCSBackend) Close() error {
	return g.client.Close()
}
