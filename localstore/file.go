package localstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileStore reads keys from a flat YAML mapping. The file is re-read on every Get
// since another process owns it.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

func NewFile(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("[localstore FileStore.Get] failed to read %s: %w", s.path, err)
	}

	values := make(map[string]string)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return "", false, fmt.Errorf("[localstore FileStore.Get] failed to parse %s: %w", s.path, err)
	}
	value, ok := values[key]
	return value, ok, nil
}
