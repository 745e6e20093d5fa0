package matchers

import (
	"fmt"
)

func MatchDigest(expectedDigest string) *DigestMatcher {
	if !isHexDigest(expectedDigest) {
		panic(fmt.Sprintf("MatchDigest requires a 40 character hex digest. Got: %s", expectedDigest))
	}
	return &DigestMatcher{
		ExpectedDigest: expectedDigest,
	}
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
