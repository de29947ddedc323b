package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrNotExists is returned by Delete when the object is already gone.
// Callers must log it instead of silently proceeding.
var ErrNotExists = errors.New("stored file does not exist")

// Storage abstracts where listing images live.
type Storage interface {
	// Save stores the object under name.
	Save(ctx context.Context, name string, reader io.Reader, size int64, contentType string) error
	// Delete removes the object. Returns ErrNotExists when it was
	// already missing.
	Delete(ctx context.Context, name string) error
	// Exists reports whether the object is present.
	Exists(ctx context.Context, name string) (bool, error)
	// URL returns the public URL of the object.
	URL(name string) string
}

// Config selects and configures a backend.
type Config struct {
	Type      string // local, s3
	BasePath  string
	BaseURL   string
	Bucket    string
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// NewStorage builds the configured backend.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local", "":
		return NewLocalStorage(cfg)
	case "s3":
		return NewMinIOStorage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
