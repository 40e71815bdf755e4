// Package journal defines the append-only record format of the remote
// store and the key scheme that gives segments a total replay order.
package journal

import (
	"time"

	"github.com/aqfs-io/aqfs/internal/aqfs"
)

// Op tags a record's operation variant.
type Op string

const (
	// OpCreate inserts or overwrites the file at the record's path.
	OpCreate Op = "create"
	// OpRemove tombstones the record's path. Prior content objects are
	// never erased.
	OpRemove Op = "remove"
)

// Record is a single journal entry. ContentKey is set for create records
// only.
type Record struct {
	Op         Op        `json:"op"`
	Path       []string  `json:"path"`
	Mtime      time.Time `json:"mtime"`
	ContentKey string    `json:"contentKey,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Key        string    `json:"key"`
}

// Segment is an ordered batch of records, serialized as one immutable
// remote object.
type Segment struct {
	Records []Record `json:"records"`
}

// NewCreateRecord builds a create record binding meta's path to a content
// object.
func NewCreateRecord(meta aqfs.FileMeta, contentKey string, now time.Time) Record {
	return Record{
		Op:         OpCreate,
		Path:       meta.Path.Segments(),
		Mtime:      meta.Mtime.UTC(),
		ContentKey: contentKey,
		Timestamp:  now.UTC(),
		Key:        NewRecordKey(now),
	}
}

// NewRemoveRecord builds a tombstone record for meta's path.
func NewRemoveRecord(meta aqfs.FileMeta, now time.Time) Record {
	return Record{
		Op:        OpRemove,
		Path:      meta.Path.Segments(),
		Mtime:     meta.Mtime.UTC(),
		Timestamp: now.UTC(),
		Key:       NewRecordKey(now),
	}
}
