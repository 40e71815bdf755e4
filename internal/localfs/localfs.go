// Package localfs implements the storage contract over a plain directory.
// Listing is non-recursive and directory creation is unsupported; nested
// paths therefore only work when their parents already exist.
package localfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aqfs-io/aqfs/internal/aqfs"
)

// File re-reads its backing file on every ReadAll.
type File struct {
	meta     aqfs.FileMeta
	realPath string
}

func (f *File) Meta() aqfs.FileMeta {
	return f.meta
}

func (f *File) ReadAll(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.realPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.realPath, err)
	}
	return data, nil
}

type Storage struct {
	root string
}

func NewStorage(root string) (*Storage, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", root)
	}
	return &Storage{root: root}, nil
}

func (s *Storage) ListFiles(_ context.Context) ([]*File, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", s.root, err)
	}

	var files []*File
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		files = append(files, &File{
			meta: aqfs.FileMeta{
				Path:  aqfs.NewPath(entry.Name()),
				Mtime: info.ModTime().UTC(),
			},
			realPath: filepath.Join(s.root, entry.Name()),
		})
	}
	return files, nil
}

func (s *Storage) CreateFile(ctx context.Context, file aqfs.File) error {
	content, err := file.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("read source %s: %w", file.Meta().Path, err)
	}

	meta := file.Meta()
	realPath := s.realPath(meta.Path)
	if err := os.WriteFile(realPath, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", realPath, err)
	}
	if err := os.Chtimes(realPath, meta.Mtime, meta.Mtime); err != nil {
		return fmt.Errorf("set mtime %s: %w", realPath, err)
	}
	return nil
}

func (s *Storage) RemoveFile(_ context.Context, file *File) error {
	if err := os.Remove(file.realPath); err != nil {
		return fmt.Errorf("remove %s: %w", file.realPath, err)
	}
	return nil
}

func (s *Storage) CreateDir(_ context.Context, _ aqfs.FileMeta) error {
	return aqfs.ErrNotImplemented
}

func (s *Storage) realPath(path aqfs.Path) string {
	return filepath.Join(s.root, filepath.FromSlash(path.String()))
}

var _ aqfs.Storage[*File] = (*Storage)(nil)
