package matchers

import (
	"fmt"

	"github.com/onsi/gomega/format"

	boshdigest "github.com/cloudfoundry/bosh-file-digest/digest"
)

// DigestMatcher asserts that a string is a well-formed SHA-1 hex digest and
// equals the expected digest under ASCII case-insensitive comparison.
type DigestMatcher struct {
	ExpectedDigest string
}

func (matcher *DigestMatcher) Match(actual interface{}) (success bool, err error) {
	actualDigest, ok := actual.(string)
	if !ok {
		return false, fmt.Errorf("MatchDigest matcher expects a string. Got:%s", format.Object(actual, 1))
	}

	if !isHexDigest(actualDigest) {
		return false, nil
	}

	return boshdigest.Equal(matcher.ExpectedDigest, actualDigest), nil
}

func (matcher *DigestMatcher) FailureMessage(actual interface{}) (message string) {
	return format.Message(actual, "to equal digest (ignoring case)", matcher.ExpectedDigest)
}

func (matcher *DigestMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	return format.Message(actual, "not to equal digest (ignoring case)", matcher.ExpectedDigest)
}
