package digest

import (
	"io"
)

// Hashable is a uniform hash/validate contract over heterogeneous sources;
// callers do not need to know whether they hold a path or an open stream.
type Hashable interface {
	Hash() (string, error)
	Validate(expectedDigest string) (bool, error)
}

type pathHashable struct {
	path   string
	hasher Hasher
}

// NewPathHashable returns a Hashable backed by a filesystem path. The path is
// opened on each Hash or Validate call and closed before the call returns.
func NewPathHashable(path string, hasher Hasher) Hashable {
	return pathHashable{path: path, hasher: hasher}
}

func (h pathHashable) Hash() (string, error) {
	return h.hasher.HashPath(h.path)
}

func (h pathHashable) Validate(expectedDigest string) (bool, error) {
	return h.hasher.ValidatePath(h.path, expectedDigest)
}

type streamHashable struct {
	stream io.Reader
	hasher Hasher
}

// NewStreamHashable returns a Hashable over an already-open stream. The
// stream is consumed from its current position and is never closed or
// rewound; the caller owns position and closing.
func NewStreamHashable(stream io.Reader, hasher Hasher) Hashable {
	return streamHashable{stream: stream, hasher: hasher}
}

func (h streamHashable) Hash() (string, error) {
	return h.hasher.HashStream(h.stream)
}

func (h streamHashable) Validate(expectedDigest string) (bool, error) {
	actualDigest, err := h.hasher.HashStream(h.stream)
	if err != nil {
		return false, err
	}

	return Equal(expectedDigest, actualDigest), nil
}
