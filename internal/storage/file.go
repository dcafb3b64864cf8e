package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileRepository provides thread-safe JSON file-based persistence
type FileRepository[T any] struct {
	mu       sync.RWMutex
	filePath string
}

// NewFileRepository creates the parent directory of filePath if needed.
func NewFileRepository[T any](filePath string) (*FileRepository[T], error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return nil, err
	}

	return &FileRepository[T]{filePath: filePath}, nil
}

func (s *FileRepository[T]) Load(ctx context.Context) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := os.Open(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var v T
	if err := json.NewDecoder(file).Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.filePath, err)
	}
	return &v, nil
}

// Save writes to a temp file first, then renames it over the target.
func (s *FileRepository[T]) Save(ctx context.Context, v *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tempFile := s.filePath + ".tmp"
	file, err := os.OpenFile(tempFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		file.Close()
		os.Remove(tempFile)
		return err
	}

	if err := file.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, s.filePath)
}

func (s *FileRepository[T]) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.filePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
