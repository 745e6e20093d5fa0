// Package checksumfile reads and writes sha1sum style checksum manifests:
// one "<digest>  <path>" line per file, separated by two spaces.
package checksumfile

import (
	"fmt"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
)

const separator = "  "

type Entry struct {
	Digest string
	Path   string
}

func Parse(contents string) ([]Entry, error) {
	var entries []Entry

	for i, line := range strings.Split(contents, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.SplitN(line, separator, 2)
		if len(parts) != 2 || parts[1] == "" {
			return nil, bosherr.Errorf("Parsing checksum line %d: expected '<digest>  <path>' but got '%s'", i+1, line)
		}

		if !isHexDigest(parts[0]) {
			return nil, bosherr.Errorf("Parsing checksum line %d: '%s' is not a 40 character hex digest", i+1, parts[0])
		}

		entries = append(entries, Entry{Digest: parts[0], Path: parts[1]})
	}

	return entries, nil
}

func Format(entries []Entry) string {
	var out strings.Builder

	for _, entry := range entries {
		fmt.Fprintf(&out, "%s%s%s\n", strings.ToLower(entry.Digest), separator, entry.Path)
	}

	return out.String()
}

func isHexDigest(s string) bool {
	if len(s) != 40 {
		return false
	}

	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}

	return true
}
