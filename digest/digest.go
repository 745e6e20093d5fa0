package digest

import (
	"crypto/sha1"
	"fmt"
	"io"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

// ChunkSize is the number of bytes read from a stream per iteration of the
// digest loop. Memory usage of one computation is bounded by this regardless
// of stream length.
const ChunkSize = 8192

// ComputeDigest consumes stream until end-of-stream and returns the SHA-1
// digest of its contents as a lowercase hex string. The stream is not closed.
// A short read is not terminal; only io.EOF ends the loop. Any other read
// error is returned immediately and no digest is produced.
func ComputeDigest(stream io.Reader) (string, error) {
	hash := sha1.New()
	buffer := make([]byte, ChunkSize)

	for {
		n, err := stream.Read(buffer)
		if n > 0 {
			hash.Write(buffer[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", bosherr.WrapError(err, "Reading stream for digest calculation")
		}
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

// Equal reports whether two hex digest strings match, ignoring ASCII letter
// case. No whitespace trimming, no prefix matching.
func Equal(expectedDigest, actualDigest string) bool {
	return strings.EqualFold(expectedDigest, actualDigest)
}

func HashStream(stream io.Reader) (string, error) {
	return defaultHasher().HashStream(stream)
}

func HashPath(path string) (string, error) {
	return defaultHasher().HashPath(path)
}

func ValidateStream(stream io.Reader, expectedDigest string) bool {
	return defaultHasher().ValidateStream(stream, expectedDigest)
}

func ValidatePath(path string, expectedDigest string) (bool, error) {
	return defaultHasher().ValidatePath(path, expectedDigest)
}

func defaultHasher() Hasher {
	logger := boshlog.NewLogger(boshlog.LevelNone)
	return NewHasher(boshsys.NewOsFileSystem(logger), logger)
}
