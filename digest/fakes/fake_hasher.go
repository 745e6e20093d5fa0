package fakes

import (
	"io"
)

type FakeHasher struct {
	HashStreamDigest string
	HashStreamErr    error
	HashStreamCount  int

	HashPathDigests map[string]string
	HashPathErrs    map[string]error
	HashedPaths     []string

	ValidateStreamResult bool

	ValidatePathResults map[string]bool
	ValidatePathErrs    map[string]error
	ValidatedPaths      []string
	ValidatedDigests    []string

	VerifyStreamErr error
	VerifyPathErrs  map[string]error
	VerifiedPaths   []string
}

func NewFakeHasher() *FakeHasher {
	return &FakeHasher{
		HashPathDigests:     map[string]string{},
		HashPathErrs:        map[string]error{},
		ValidatePathResults: map[string]bool{},
		ValidatePathErrs:    map[string]error{},
		VerifyPathErrs:      map[string]error{},
	}
}

func (h *FakeHasher) HashStream(stream io.Reader) (string, error) {
	h.HashStreamCount++
	return h.HashStreamDigest, h.HashStreamErr
}

func (h *FakeHasher) HashPath(path string) (string, error) {
	h.HashedPaths = append(h.HashedPaths, path)
	if err := h.HashPathErrs[path]; err != nil {
		return "", err
	}
	return h.HashPathDigests[path], nil
}

func (h *FakeHasher) ValidateStream(stream io.Reader, expectedDigest string) bool {
	return h.ValidateStreamResult
}

func (h *FakeHasher) ValidatePath(path string, expectedDigest string) (bool, error) {
	h.ValidatedPaths = append(h.ValidatedPaths, path)
	h.ValidatedDigests = append(h.ValidatedDigests, expectedDigest)
	if err := h.ValidatePathErrs[path]; err != nil {
		return false, err
	}
	return h.ValidatePathResults[path], nil
}

func (h *FakeHasher) VerifyStream(stream io.Reader, expectedDigest string) error {
	return h.VerifyStreamErr
}

func (h *FakeHasher) VerifyPath(path string, expectedDigest string) error {
	h.VerifiedPaths = append(h.VerifiedPaths, path)
	return h.VerifyPathErrs[path]
}
