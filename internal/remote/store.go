package remote

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aqfs-io/aqfs/internal/aqfs"
	"github.com/aqfs-io/aqfs/internal/journal"
)

// Store implements the storage contract over an object store by replaying
// an append-only journal. Segments are immutable and uniquely keyed, so
// concurrent writers never conflict at the storage layer; when two
// writers race on one path, the replayed winner is the record whose
// segment key sorts last. There is no compare-and-swap and no fencing.
type Store struct {
	client ObjectClient
}

func NewStore(client ObjectClient) *Store {
	return &Store{client: client}
}

// ListFiles reconstructs the current path-to-file mapping: list all
// segment keys, sort ascending for replay order, fetch every segment
// concurrently as an all-or-nothing batch, then fold the concatenated
// records. One unreadable or undecodable segment fails the whole call;
// the caller never sees a partial snapshot.
func (s *Store) ListFiles(ctx context.Context) ([]*File, error) {
	keys, err := s.client.ListKeys(ctx, journal.SegmentPrefix)
	if err != nil {
		return nil, fmt.Errorf("list segments: %w", err)
	}
	sort.Strings(keys)

	segments := make([]*journal.Segment, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			body, err := s.client.GetObject(gctx, key)
			if err != nil {
				return fmt.Errorf("fetch segment %s: %w", key, err)
			}
			seg, err := journal.Decode(body)
			if err != nil {
				return fmt.Errorf("segment %s: %w", key, err)
			}
			segments[i] = seg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshot := make(map[string]*File)
	for _, seg := range segments {
		for _, rec := range seg.Records {
			path := aqfs.NewPath(rec.Path...)
			switch rec.Op {
			case journal.OpCreate:
				snapshot[path.String()] = &File{
					meta:       aqfs.FileMeta{Path: path, Mtime: rec.Mtime},
					contentKey: rec.ContentKey,
					client:     s.client,
				}
			case journal.OpRemove:
				delete(snapshot, path.String())
			default:
				return nil, fmt.Errorf("%w: unknown op %q in record %s", aqfs.ErrCodec, rec.Op, rec.Key)
			}
		}
	}

	files := make([]*File, 0, len(snapshot))
	for _, f := range snapshot {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].meta.Path.String() < files[j].meta.Path.String()
	})
	slog.Debug("journal replay", "segments", len(keys), "files", len(files))
	return files, nil
}

// CreateFile buffers the file's full content, writes it under a fresh
// random content key, then appends a single-record create segment. The
// two PUTs are independent: a failure between them leaves an unreferenced
// content object behind, which this store never reclaims. Retrying after
// an ambiguous failure may duplicate the logical record.
func (s *Store) CreateFile(ctx context.Context, file aqfs.File) error {
	content, err := file.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("read source %s: %w", file.Meta().Path, err)
	}

	contentKey := journal.NewContentKey()
	if err := s.client.PutObject(ctx, contentKey, content); err != nil {
		return fmt.Errorf("put content: %w", err)
	}

	rec := journal.NewCreateRecord(file.Meta(), contentKey, time.Now())
	return s.appendSegment(ctx, rec)
}

// RemoveFile appends a tombstone segment for the file's path. The path is
// not checked for existence first, so removing an absent path succeeds
// and merely adds a no-op-at-replay record; content objects are never
// deleted.
func (s *Store) RemoveFile(ctx context.Context, file *File) error {
	rec := journal.NewRemoveRecord(file.Meta(), time.Now())
	return s.appendSegment(ctx, rec)
}

func (s *Store) CreateDir(_ context.Context, _ aqfs.FileMeta) error {
	return aqfs.ErrNotImplemented
}

func (s *Store) appendSegment(ctx context.Context, records ...journal.Record) error {
	seg := &journal.Segment{Records: records}
	body, err := seg.Encode()
	if err != nil {
		return err
	}

	key := journal.NewSegmentKey(time.Now())
	if err := s.client.PutObject(ctx, key, body); err != nil {
		return fmt.Errorf("put segment: %w", err)
	}
	slog.Debug("journal append", "key", key, "records", len(records))
	return nil
}

var _ aqfs.Storage[*File] = (*Store)(nil)
