package digest

import (
	"io"
	"os"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type Hasher interface {
	HashStream(stream io.Reader) (string, error)
	HashPath(path string) (string, error)

	// ValidateStream collapses read failures into a false result rather
	// than reporting them; the stream was handed over already open, so the
	// caller is asking a yes/no question about known-good data.
	ValidateStream(stream io.Reader, expectedDigest string) bool
	ValidatePath(path string, expectedDigest string) (bool, error)

	// VerifyStream and VerifyPath treat a mismatch as an error
	// (*MismatchError) for callers wanting fail-fast semantics.
	VerifyStream(stream io.Reader, expectedDigest string) error
	VerifyPath(path string, expectedDigest string) error
}

type hasher struct {
	fs     boshsys.FileSystem
	logger boshlog.Logger
	logTag string
}

func NewHasher(fs boshsys.FileSystem, logger boshlog.Logger) Hasher {
	return hasher{
		fs:     fs,
		logger: logger,
		logTag: "hasher",
	}
}

func (h hasher) HashStream(stream io.Reader) (string, error) {
	return ComputeDigest(stream)
}

func (h hasher) HashPath(path string) (string, error) {
	file, err := h.fs.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return "", bosherr.WrapErrorf(err, "Opening file '%s' for digest calculation", path)
	}
	defer file.Close()

	h.logger.Debug(h.logTag, "Hashing file '%s'", path)

	return ComputeDigest(file)
}

func (h hasher) ValidateStream(stream io.Reader, expectedDigest string) bool {
	actualDigest, err := ComputeDigest(stream)
	if err != nil {
		return false
	}

	return Equal(expectedDigest, actualDigest)
}

func (h hasher) ValidatePath(path string, expectedDigest string) (bool, error) {
	actualDigest, err := h.HashPath(path)
	if err != nil {
		return false, err
	}

	return Equal(expectedDigest, actualDigest), nil
}

func (h hasher) VerifyStream(stream io.Reader, expectedDigest string) error {
	actualDigest, err := h.HashStream(stream)
	if err != nil {
		return err
	}

	return h.verify(expectedDigest, actualDigest)
}

func (h hasher) VerifyPath(path string, expectedDigest string) error {
	actualDigest, err := h.HashPath(path)
	if err != nil {
		return err
	}

	return h.verify(expectedDigest, actualDigest)
}

func (h hasher) verify(expectedDigest, actualDigest string) error {
	if !Equal(expectedDigest, actualDigest) {
		return &MismatchError{
			ExpectedDigest: expectedDigest,
			ActualDigest:   actualDigest,
		}
	}

	return nil
}
