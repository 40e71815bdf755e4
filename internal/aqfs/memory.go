package aqfs

import (
	"context"
	"sort"
	"sync"
)

// MemFile is an in-memory File over a byte slice.
type MemFile struct {
	meta FileMeta
	data []byte
}

func NewMemFile(meta FileMeta, data []byte) *MemFile {
	return &MemFile{meta: meta, data: data}
}

func (f *MemFile) Meta() FileMeta {
	return f.meta
}

func (f *MemFile) ReadAll(_ context.Context) ([]byte, error) {
	out := make([]byte, len(f.data))
	copy(out, f.data)
	return out, nil
}

// MemStorage keeps files in a map keyed by canonical path. It is the
// reference Storage implementation and backs most tests.
type MemStorage struct {
	mu    sync.RWMutex
	files map[string]*MemFile
}

func NewMemStorage() *MemStorage {
	return &MemStorage{files: make(map[string]*MemFile)}
}

func (s *MemStorage) ListFiles(_ context.Context) ([]*MemFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	files := make([]*MemFile, 0, len(s.files))
	for _, f := range s.files {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].meta.Path.String() < files[j].meta.Path.String()
	})
	return files, nil
}

func (s *MemStorage) CreateFile(ctx context.Context, file File) error {
	data, err := file.ReadAll(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[file.Meta().Path.String()] = NewMemFile(file.Meta(), data)
	return nil
}

func (s *MemStorage) RemoveFile(_ context.Context, file *MemFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, file.Meta().Path.String())
	return nil
}

func (s *MemStorage) CreateDir(_ context.Context, _ FileMeta) error {
	return ErrNotImplemented
}

var _ Storage[*MemFile] = (*MemStorage)(nil)
