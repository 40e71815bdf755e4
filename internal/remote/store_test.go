package remote

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqfs-io/aqfs/internal/aqfs"
	"github.com/aqfs-io/aqfs/internal/journal"
)

// fakeClient is an in-memory ObjectClient with fault injection.
type fakeClient struct {
	mu            sync.Mutex
	objects       map[string][]byte
	failGet       map[string]bool
	failPutPrefix string
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		objects: make(map[string][]byte),
		failGet: make(map[string]bool),
	}
}

func (c *fakeClient) GetObject(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet[key] {
		return nil, fmt.Errorf("%w: get %q: injected failure", aqfs.ErrRemoteBackend, key)
	}
	body, ok := c.objects[key]
	if !ok {
		return nil, fmt.Errorf("%w: get %q: no such object", aqfs.ErrRemoteBackend, key)
	}
	out := make([]byte, len(body))
	copy(out, body)
	return out, nil
}

func (c *fakeClient) PutObject(_ context.Context, key string, body []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failPutPrefix != "" && strings.HasPrefix(key, c.failPutPrefix) {
		return fmt.Errorf("%w: put %q: injected failure", aqfs.ErrRemoteBackend, key)
	}
	stored := make([]byte, len(body))
	copy(stored, body)
	c.objects[key] = stored
	return nil
}

func (c *fakeClient) ListKeys(_ context.Context, prefix string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var keys []string
	for key := range c.objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (c *fakeClient) countKeys(t *testing.T, prefix string) int {
	t.Helper()
	keys, err := c.ListKeys(context.Background(), prefix)
	require.NoError(t, err)
	return len(keys)
}

func memFile(path string, mtime time.Time, content string) *aqfs.MemFile {
	return aqfs.NewMemFile(aqfs.FileMeta{Path: aqfs.ParsePath(path), Mtime: mtime}, []byte(content))
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	store := NewStore(client)

	mtime := time.Date(2024, 4, 2, 9, 15, 0, 123456789, time.UTC)
	require.NoError(t, store.CreateFile(ctx, memFile("dir/hello.txt", mtime, "hello world")))

	files, err := store.ListFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)

	meta := files[0].Meta()
	assert.Equal(t, "dir/hello.txt", meta.Path.String())
	assert.True(t, meta.Mtime.Equal(mtime))

	content, err := files[0].ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello world"), content)

	// One content blob, one single-record segment.
	assert.Equal(t, 1, client.countKeys(t, journal.ContentPrefix))
	assert.Equal(t, 1, client.countKeys(t, journal.SegmentPrefix))
}

func TestStoreRemoval(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	store := NewStore(client)

	require.NoError(t, store.CreateFile(ctx, memFile("a.txt", time.Now(), "a")))

	files, err := store.ListFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)

	require.NoError(t, store.RemoveFile(ctx, files[0]))

	files, err = store.ListFiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, files)

	// Tombstoning appends a segment but never erases the content blob.
	assert.Equal(t, 2, client.countKeys(t, journal.SegmentPrefix))
	assert.Equal(t, 1, client.countKeys(t, journal.ContentPrefix))
}

func TestStoreRemoveAbsentPathSucceeds(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	store := NewStore(client)

	ghost := &File{
		meta:   aqfs.FileMeta{Path: aqfs.ParsePath("never/existed"), Mtime: time.Now()},
		client: client,
	}
	require.NoError(t, store.RemoveFile(ctx, ghost))

	files, err := store.ListFiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Equal(t, 1, client.countKeys(t, journal.SegmentPrefix))
}

func TestStoreReplayDeterminism(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	store := NewStore(client)

	for i := 0; i < 10; i++ {
		f := memFile(fmt.Sprintf("f%d", i), time.Now(), fmt.Sprintf("content %d", i))
		require.NoError(t, store.CreateFile(ctx, f))
	}

	snapshot := func() map[string]aqfs.FileMeta {
		files, err := store.ListFiles(ctx)
		require.NoError(t, err)
		out := make(map[string]aqfs.FileMeta, len(files))
		for _, f := range files {
			out[f.Meta().Path.String()] = f.Meta()
		}
		return out
	}

	first := snapshot()
	second := snapshot()
	require.Len(t, first, 10)
	assert.Equal(t, first, second)
}

func putSegment(t *testing.T, client *fakeClient, key string, recs ...journal.Record) {
	t.Helper()
	seg := &journal.Segment{Records: recs}
	body, err := seg.Encode()
	require.NoError(t, err)
	require.NoError(t, client.PutObject(context.Background(), journal.SegmentPrefix+key, body))
}

func TestStoreLastKeyWins(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	store := NewStore(client)

	path := aqfs.ParsePath("contested")
	now := time.Now().UTC()
	meta1 := aqfs.FileMeta{Path: path, Mtime: now}
	meta3 := aqfs.FileMeta{Path: path, Mtime: now.Add(time.Hour)}

	require.NoError(t, client.PutObject(ctx, "data/c1", []byte("first")))
	require.NoError(t, client.PutObject(ctx, "data/c3", []byte("third")))

	// k1 create < k2 remove: reconstruction excludes the path.
	putSegment(t, client, "00000000000001-a", journal.NewCreateRecord(meta1, "data/c1", now))
	putSegment(t, client, "00000000000002-b", journal.NewRemoveRecord(meta1, now))

	files, err := store.ListFiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, files)

	// k3 create > k2: the path is back with the later record's meta.
	putSegment(t, client, "00000000000003-c", journal.NewCreateRecord(meta3, "data/c3", now))

	files, err = store.ListFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.True(t, files[0].Meta().Mtime.Equal(meta3.Mtime))

	content, err := files[0].ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("third"), content)
}

func TestStoreIntraSegmentOrder(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	store := NewStore(client)

	path := aqfs.ParsePath("p")
	now := time.Now().UTC()
	meta := aqfs.FileMeta{Path: path, Mtime: now}
	require.NoError(t, client.PutObject(ctx, "data/v1", []byte("v1")))
	require.NoError(t, client.PutObject(ctx, "data/v2", []byte("v2")))

	// Later records within one segment override earlier ones.
	putSegment(t, client, "00000000000001-a",
		journal.NewCreateRecord(meta, "data/v1", now),
		journal.NewCreateRecord(meta, "data/v2", now),
	)

	files, err := store.ListFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)

	content, err := files[0].ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), content)
}

func TestStoreListFailsAtomicallyOnFetchError(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	store := NewStore(client)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.CreateFile(ctx, memFile(fmt.Sprintf("f%d", i), time.Now(), "x")))
	}

	keys, err := client.ListKeys(ctx, journal.SegmentPrefix)
	require.NoError(t, err)
	require.Len(t, keys, 5)
	client.failGet[keys[2]] = true

	files, err := store.ListFiles(ctx)
	assert.ErrorIs(t, err, aqfs.ErrRemoteBackend)
	assert.Nil(t, files, "a failed batch must never yield partial results")
}

func TestStoreListFailsAtomicallyOnDecodeError(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	store := NewStore(client)

	require.NoError(t, store.CreateFile(ctx, memFile("good", time.Now(), "x")))
	require.NoError(t, client.PutObject(ctx, journal.SegmentPrefix+"00000000000000-corrupt", []byte("{broken")))

	files, err := store.ListFiles(ctx)
	assert.ErrorIs(t, err, aqfs.ErrCodec)
	assert.Nil(t, files)
}

func TestStoreCreateIsNotIdempotent(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	store := NewStore(client)

	mtime := time.Now()
	require.NoError(t, store.CreateFile(ctx, memFile("same", mtime, "same content")))
	require.NoError(t, store.CreateFile(ctx, memFile("same", mtime, "same content")))

	// Each create mints a fresh blob and a fresh segment even for an
	// identical logical file.
	assert.Equal(t, 2, client.countKeys(t, journal.ContentPrefix))
	assert.Equal(t, 2, client.countKeys(t, journal.SegmentPrefix))

	files, err := store.ListFiles(ctx)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestStoreCreateLeaksContentWhenSegmentPutFails(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	client.failPutPrefix = journal.SegmentPrefix
	store := NewStore(client)

	err := store.CreateFile(ctx, memFile("orphan", time.Now(), "x"))
	require.ErrorIs(t, err, aqfs.ErrRemoteBackend)

	// The content blob landed before the segment PUT failed and stays
	// behind unreferenced.
	assert.Equal(t, 1, client.countKeys(t, journal.ContentPrefix))
	assert.Equal(t, 0, client.countKeys(t, journal.SegmentPrefix))
}

func TestStoreCreateDirNotImplemented(t *testing.T) {
	store := NewStore(newFakeClient())
	err := store.CreateDir(context.Background(), aqfs.FileMeta{Path: aqfs.ParsePath("dir")})
	assert.ErrorIs(t, err, aqfs.ErrNotImplemented)
}

func TestFileReadAllRefetches(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	store := NewStore(client)

	require.NoError(t, store.CreateFile(ctx, memFile("live", time.Now(), "v1")))

	files, err := store.ListFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	file := files[0]

	content, err := file.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), content)

	// Mutate the underlying object out of band; the handle is lazy and
	// must observe the new bytes.
	client.mu.Lock()
	client.objects[file.contentKey] = []byte("v2")
	client.mu.Unlock()

	content, err = file.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), content)
}
