package journal

import (
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordKeyFixedWidth(t *testing.T) {
	// 14 digits of seconds, 9 of nanos, a dash, 32 hex chars.
	const wantLen = 14 + 9 + 1 + 32

	times := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 1, time.UTC),
		time.Date(2024, 12, 31, 23, 59, 59, 999999999, time.UTC),
	}
	for _, ts := range times {
		assert.Len(t, NewRecordKey(ts), wantLen, "ts %v", ts)
	}
}

func TestSegmentKeysSortChronologically(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	var keys []string
	for i := 0; i < 100; i++ {
		keys = append(keys, NewSegmentKey(base.Add(time.Duration(i)*time.Nanosecond)))
	}

	assert.True(t, sort.StringsAreSorted(keys), "segment keys must sort in creation order")
}

func TestRecordKeysUniqueWithinSameTick(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 123456789, time.UTC)
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		key := NewRecordKey(ts)
		require.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}

func TestSegmentKeyPrefix(t *testing.T) {
	key := NewSegmentKey(time.Now())
	assert.True(t, strings.HasPrefix(key, SegmentPrefix))
}

func TestContentKey(t *testing.T) {
	key := NewContentKey()
	assert.True(t, strings.HasPrefix(key, ContentPrefix))
	assert.Len(t, key, len(ContentPrefix)+32)
	assert.NotEqual(t, key, NewContentKey())
}
