// Package file backs storage slots with one JSON file per key under a data
// directory. Writes go through a temp file and rename so a crash mid-write
// leaves the previous value intact.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"listcal/internal/slot"
)

type Store struct {
	basePath string
}

func New(basePath string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{basePath: basePath}, nil
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	path, err := s.safeJoin(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, slot.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read slot file: %w", err)
	}
	return data, nil
}

func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	path, err := s.safeJoin(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.basePath, ".slot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write slot file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close slot file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace slot file: %w", err)
	}
	return nil
}

// safeJoin resolves a key to a file under basePath and rejects traversal.
func (s *Store) safeJoin(key string) (string, error) {
	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(s.basePath, key+".json"))
	if err != nil {
		return "", fmt.Errorf("invalid slot key: %w", err)
	}

	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("slot key escapes data directory")
	}
	return absPath, nil
}
