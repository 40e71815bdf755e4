// Package aqfs defines the value model and the capability contract that
// every storage backend satisfies, plus an in-memory reference backend.
package aqfs

import (
	"context"
	"time"
)

// FileMeta describes a logical file. Identity for journal replay is the
// path alone; the modification time is informational.
type FileMeta struct {
	Path  Path
	Mtime time.Time
}

// File is a handle to a logical file. ReadAll may re-fetch the content
// from the backing store on every call; callers must not assume it is
// cheap or cached.
type File interface {
	Meta() FileMeta
	ReadAll(ctx context.Context) ([]byte, error)
}

// Storage is the contract every backend implements. F is the backend's
// own file type, which lets two statically paired backends (as in the
// syncer) keep their concrete types. CreateFile still accepts any File so
// content can flow between backends that share no concrete type.
type Storage[F File] interface {
	// ListFiles returns every file currently present in the backend.
	ListFiles(ctx context.Context) ([]F, error)

	// CreateFile stores a copy of file, reading its full content once.
	CreateFile(ctx context.Context, file File) error

	// RemoveFile deletes file from the backend.
	RemoveFile(ctx context.Context, file F) error

	// CreateDir creates a directory at meta.Path. Backends without a
	// directory concept return ErrNotImplemented.
	CreateDir(ctx context.Context, meta FileMeta) error
}
