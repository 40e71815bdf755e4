package remote

import (
	"context"
	"fmt"

	"github.com/aqfs-io/aqfs/internal/aqfs"
)

// File is a lazily-reading handle bound to a content object. Every
// ReadAll fetches the object again through the shared client; nothing is
// cached.
type File struct {
	meta       aqfs.FileMeta
	contentKey string
	client     ObjectClient
}

func (f *File) Meta() aqfs.FileMeta {
	return f.meta
}

func (f *File) ReadAll(ctx context.Context) ([]byte, error) {
	body, err := f.client.GetObject(ctx, f.contentKey)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.meta.Path, err)
	}
	return body, nil
}

var _ aqfs.File = (*File)(nil)
