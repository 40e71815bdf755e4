package aqfs

import "strings"

// Path identifies a logical file as an ordered sequence of non-empty
// segments. The canonical string form joins segments with "/" and doubles
// as the map key for "current state of this file".
type Path struct {
	segments []string
}

// NewPath builds a Path from its segments, dropping empty ones.
func NewPath(segments ...string) Path {
	elems := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			elems = append(elems, s)
		}
	}
	return Path{segments: elems}
}

// ParsePath splits a "/"-joined string back into a Path.
func ParsePath(s string) Path {
	return NewPath(strings.Split(s, "/")...)
}

// Segments returns a copy of the path's segments.
func (p Path) Segments() []string {
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

func (p Path) String() string {
	return strings.Join(p.segments, "/")
}

func (p Path) IsZero() bool {
	return len(p.segments) == 0
}

// Equal reports whether both paths have the same segment sequence.
func (p Path) Equal(other Path) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}
	for i, s := range p.segments {
		if s != other.segments[i] {
			return false
		}
	}
	return true
}
