package journal

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// SegmentPrefix is the object-key namespace for journal segments.
	// Listing under it and sorting the keys ascending recovers full
	// replay order.
	SegmentPrefix = "journal/"

	// ContentPrefix is the object-key namespace for content blobs. Blob
	// keys are purely random and carry no temporal meaning.
	ContentPrefix = "data/"
)

// timeKeyFormat renders UTC seconds; nanoseconds are appended zero-padded
// so the key stays fixed width and string order equals time order.
const timeKeyFormat = "20060102150405"

func hexID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// NewRecordKey mints a sortable key for ts: a fixed-width timestamp
// followed by a 128-bit random disambiguator. Keys from distinct instants
// sort chronologically; concurrent writers in the same tick get distinct
// keys in an arbitrary but stable relative order.
func NewRecordKey(ts time.Time) string {
	ts = ts.UTC()
	return fmt.Sprintf("%s%09d-%s", ts.Format(timeKeyFormat), ts.Nanosecond(), hexID())
}

// NewSegmentKey mints the remote object key for a segment written at ts.
func NewSegmentKey(ts time.Time) string {
	return SegmentPrefix + NewRecordKey(ts)
}

// NewContentKey mints a random content-blob key.
func NewContentKey() string {
	return ContentPrefix + hexID()
}
