package aqfs

import "errors"

var (
	// ErrNotImplemented is returned when a backend does not support the
	// requested capability. Backends must surface it instead of silently
	// succeeding.
	ErrNotImplemented = errors.New("not implemented")

	// ErrRemoteBackend wraps failures of the remote object-store client.
	ErrRemoteBackend = errors.New("remote backend failure")

	// ErrCodec marks a journal segment that failed to encode or decode.
	ErrCodec = errors.New("codec failure")
)
