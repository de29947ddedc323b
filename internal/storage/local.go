package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage keeps images on the local filesystem under a public
// static directory.
type LocalStorage struct {
	basePath string
	baseURL  string
}

func NewLocalStorage(cfg Config) (*LocalStorage, error) {
	if cfg.BasePath == "" {
		cfg.BasePath = "./public/uploads"
	}

	if err := os.MkdirAll(cfg.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: cfg.BasePath,
		baseURL:  cfg.BaseURL,
	}, nil
}

func (s *LocalStorage) Save(ctx context.Context, name string, reader io.Reader, size int64, contentType string) error {
	fullPath := filepath.Join(s.basePath, name)

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func (s *LocalStorage) Delete(ctx context.Context, name string) error {
	fullPath := filepath.Join(s.basePath, name)

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return ErrNotExists
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

func (s *LocalStorage) Exists(ctx context.Context, name string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.basePath, name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *LocalStorage) URL(name string) string {
	if s.baseURL == "" {
		return fmt.Sprintf("/uploads/%s", name)
	}
	return fmt.Sprintf("%s/%s", s.baseURL, name)
}
