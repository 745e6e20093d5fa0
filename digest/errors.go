package digest

import (
	"fmt"
)

// MismatchError records a digest comparison that did not match. It is
// returned only by the Verify variants; Validate reports a mismatch as a
// plain false result.
type MismatchError struct {
	ExpectedDigest string
	ActualDigest   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf(`Expected digest "%s" but computed "%s"`, e.ExpectedDigest, e.ActualDigest)
}
