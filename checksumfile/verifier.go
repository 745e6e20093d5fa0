package checksumfile

import (
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	boshdigest "github.com/cloudfoundry/bosh-file-digest/digest"
)

const verifierLogTag = "checksumFileVerifier"

type VerifyStatus string

const (
	VerifyStatusPassed  VerifyStatus = "passed"
	VerifyStatusFailed  VerifyStatus = "failed"
	VerifyStatusMissing VerifyStatus = "missing"
)

type VerifyResult struct {
	Path   string
	Status VerifyStatus

	// Set for failed entries: *digest.MismatchError on a digest mismatch,
	// a wrapped read error otherwise.
	Err error
}

type Verifier struct {
	hasher boshdigest.Hasher
	fs     boshsys.FileSystem
	logger boshlog.Logger
}

func NewVerifier(hasher boshdigest.Hasher, fs boshsys.FileSystem, logger boshlog.Logger) Verifier {
	return Verifier{
		hasher: hasher,
		fs:     fs,
		logger: logger,
	}
}

// Verify checks every entry of the manifest against the filesystem and
// reports one result per entry. Only a manifest that cannot be read or
// parsed is the function's own error.
func (v Verifier) Verify(manifestPath string) ([]VerifyResult, error) {
	contents, err := v.fs.ReadFileString(manifestPath)
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Reading checksum file '%s'", manifestPath)
	}

	entries, err := Parse(contents)
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Parsing checksum file '%s'", manifestPath)
	}

	v.logger.Debug(verifierLogTag, "Verifying %d checksums from '%s'", len(entries), manifestPath)

	results := make([]VerifyResult, 0, len(entries))

	for _, entry := range entries {
		results = append(results, v.verifyEntry(entry))
	}

	return results, nil
}

func (v Verifier) verifyEntry(entry Entry) VerifyResult {
	if !v.fs.FileExists(entry.Path) {
		return VerifyResult{Path: entry.Path, Status: VerifyStatusMissing}
	}

	actualDigest, err := v.hasher.HashPath(entry.Path)
	if err != nil {
		return VerifyResult{Path: entry.Path, Status: VerifyStatusFailed, Err: err}
	}

	if !boshdigest.Equal(entry.Digest, actualDigest) {
		return VerifyResult{
			Path:   entry.Path,
			Status: VerifyStatusFailed,
			Err: &boshdigest.MismatchError{
				ExpectedDigest: entry.Digest,
				ActualDigest:   actualDigest,
			},
		}
	}

	return VerifyResult{Path: entry.Path, Status: VerifyStatusPassed}
}
