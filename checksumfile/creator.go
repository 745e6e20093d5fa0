package checksumfile

import (
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	boshdigest "github.com/cloudfoundry/bosh-file-digest/digest"
)

const creatorLogTag = "checksumFileCreator"

type Creator struct {
	hasher boshdigest.Hasher
	fs     boshsys.FileSystem
	logger boshlog.Logger
}

func NewCreator(hasher boshdigest.Hasher, fs boshsys.FileSystem, logger boshlog.Logger) Creator {
	return Creator{
		hasher: hasher,
		fs:     fs,
		logger: logger,
	}
}

// Create hashes each file and writes the manifest. It fails on the first
// file that cannot be hashed; callers wanting per-file tolerance should hash
// files individually and assemble entries themselves.
func (c Creator) Create(manifestPath string, filePaths []string) error {
	entries := make([]Entry, 0, len(filePaths))

	for _, path := range filePaths {
		digest, err := c.hasher.HashPath(path)
		if err != nil {
			return bosherr.WrapErrorf(err, "Hashing '%s'", path)
		}

		entries = append(entries, Entry{Digest: digest, Path: path})
	}

	c.logger.Debug(creatorLogTag, "Writing %d checksums to '%s'", len(entries), manifestPath)

	err := c.fs.WriteFileString(manifestPath, Format(entries))
	if err != nil {
		return bosherr.WrapErrorf(err, "Writing checksum file '%s'", manifestPath)
	}

	return nil
}
