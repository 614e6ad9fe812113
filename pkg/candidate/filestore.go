package candidate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStore кладёт файлы резюме в локальный каталог.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("upload dir is empty")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save writes data under a fresh name that keeps the original extension.
func (s *DiskStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, uuid.NewString()+strings.ToLower(filepath.Ext(name)))
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return "", fmt.Errorf("save resume file: %w", err)
	}
	return path, nil
}

func (s *DiskStore) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean := filepath.Clean(path)
	if rel, err := filepath.Rel(s.dir, clean); err != nil || strings.HasPrefix(rel, "..") {
		return nil, fmt.Errorf("resume path %q is outside upload dir", path)
	}
	data, err := os.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("read resume file: %w", err)
	}
	return data, nil
}
