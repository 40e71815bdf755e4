package journal

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/aqfs-io/aqfs/internal/aqfs"
)

// Encode serializes the segment losslessly, preserving record order.
func (s *Segment) Encode() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: encode segment: %v", aqfs.ErrCodec, err)
	}
	return data, nil
}

// Decode parses a segment object's body back into its record list.
func Decode(data []byte) (*Segment, error) {
	var s Segment
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: decode segment: %v", aqfs.ErrCodec, err)
	}
	return &s, nil
}
