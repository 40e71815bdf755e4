// Package syncer replicates files between two storage backends through
// the abstract contract alone.
package syncer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aqfs-io/aqfs/internal/aqfs"
)

// Syncer pairs two backends that need not share a concrete file type.
type Syncer[F0, F1 aqfs.File] struct {
	st0 aqfs.Storage[F0]
	st1 aqfs.Storage[F1]
}

func New[F0, F1 aqfs.File](st0 aqfs.Storage[F0], st1 aqfs.Storage[F1]) *Syncer[F0, F1] {
	return &Syncer[F0, F1]{st0: st0, st1: st1}
}

// Sync copies every file from each side to the other, unconditionally.
// No existence or content check happens before a copy, so syncing two
// already-identical backends still rewrites every file on both sides and
// journaled backends accumulate a new segment per file per direction.
// The two passes are not atomic with each other or with concurrent
// external writers; a mid-sync change may be seen by one pass and missed
// by the other.
func (s *Syncer[F0, F1]) Sync(ctx context.Context) error {
	if err := copyAll(ctx, s.st0, s.st1); err != nil {
		return fmt.Errorf("sync forward: %w", err)
	}
	if err := copyAll(ctx, s.st1, s.st0); err != nil {
		return fmt.Errorf("sync reverse: %w", err)
	}
	return nil
}

func copyAll[FS, FD aqfs.File](ctx context.Context, src aqfs.Storage[FS], dst aqfs.Storage[FD]) error {
	files, err := src.ListFiles(ctx)
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := dst.CreateFile(ctx, f); err != nil {
			return fmt.Errorf("copy %s: %w", f.Meta().Path, err)
		}
	}
	slog.Debug("sync pass", "files", len(files))
	return nil
}
