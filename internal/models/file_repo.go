package models

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileRepo keeps every slot in its own JSON file under a data directory.
type FileRepo struct {
	dir string
	mu  sync.Mutex
}

func FileNewRepo(dir string) (*FileRepo, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileRepo{dir: dir}, nil
}

func (fr *FileRepo) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid slot key %q", key)
	}
	return filepath.Join(fr.dir, key+".json"), nil
}

func (fr *FileRepo) GetSlot(ctx context.Context, key string) ([]byte, error) {
	p, err := fr.path(key)
	if err != nil {
		return nil, err
	}
	fr.mu.Lock()
	defer fr.mu.Unlock()

	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading slot %s: %w", key, err)
	}
	return data, nil
}

// SetSlot writes through a temp file and rename so a crash never leaves a torn blob.
func (fr *FileRepo) SetSlot(ctx context.Context, key string, value []byte) error {
	p, err := fr.path(key)
	if err != nil {
		return err
	}
	fr.mu.Lock()
	defer fr.mu.Unlock()

	tmp, err := os.CreateTemp(fr.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("error writing slot %s: %w", key, err)
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("error writing slot %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error writing slot %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error writing slot %s: %w", key, err)
	}
	return nil
}

func (fr *FileRepo) DeleteSlot(ctx context.Context, key string) error {
	p, err := fr.path(key)
	if err != nil {
		return err
	}
	fr.mu.Lock()
	defer fr.mu.Unlock()

	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error deleting slot %s: %w", key, err)
	}
	return nil
}
