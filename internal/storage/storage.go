package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage abstracts the media host that receives uploaded files.
type Storage interface {
	// Save stores a file at the given path.
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get retrieves a file from the given path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file at the given path.
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path.
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns a public URL for the file.
	GetURL(ctx context.Context, path string) (string, error)
}

// Config holds storage configuration.
type Config struct {
	Type       string // local, s3
	BasePath   string // for local storage
	BaseURL    string // public URL base
	Bucket     string // for S3/R2
	Region     string // for S3
	AccessKey  string // for S3/R2
	SecretKey  string // for S3/R2
	Endpoint   string // for R2 or custom S3
	PublicRead bool
}

// NewStorage builds the backend selected by cfg.Type.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local", "":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
