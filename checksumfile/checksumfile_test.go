package checksumfile_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/cloudfoundry/bosh-file-digest/checksumfile"
)

var _ = Describe("Parse", func() {
	It("parses digest and path pairs", func() {
		contents := "da39a3ee5e6b4b0d3255bfef95601890afd80709  empty.txt\n" +
			"0a0a9f2a6772942557ab5355d76af442f8f65e01  dir/hello.txt\n"

		entries, err := checksumfile.Parse(contents)
		Expect(err).ToNot(HaveOccurred())
		Expect(entries).To(Equal([]checksumfile.Entry{
			{Digest: "da39a3ee5e6b4b0d3255bfef95601890afd80709", Path: "empty.txt"},
			{Digest: "0a0a9f2a6772942557ab5355d76af442f8f65e01", Path: "dir/hello.txt"},
		}))
	})

	It("skips blank lines", func() {
		contents := "\nda39a3ee5e6b4b0d3255bfef95601890afd80709  empty.txt\n\n  \n"

		entries, err := checksumfile.Parse(contents)
		Expect(err).ToNot(HaveOccurred())
		Expect(entries).To(HaveLen(1))
	})

	It("keeps paths containing further double spaces intact", func() {
		contents := "da39a3ee5e6b4b0d3255bfef95601890afd80709  odd  name.txt\n"

		entries, err := checksumfile.Parse(contents)
		Expect(err).ToNot(HaveOccurred())
		Expect(entries[0].Path).To(Equal("odd  name.txt"))
	})

	It("returns an error for a line without the separator", func() {
		_, err := checksumfile.Parse("da39a3ee5e6b4b0d3255bfef95601890afd80709 empty.txt\n")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Parsing checksum line 1"))
	})

	It("returns an error for a malformed digest", func() {
		_, err := checksumfile.Parse("zz39a3ee5e6b4b0d3255bfef95601890afd80709  empty.txt\n")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("not a 40 character hex digest"))

		_, err = checksumfile.Parse("da39a3ee  empty.txt\n")
		Expect(err).To(HaveOccurred())
	})

	It("reports the line number of the offending line", func() {
		contents := "da39a3ee5e6b4b0d3255bfef95601890afd80709  empty.txt\nbogus-line\n"

		_, err := checksumfile.Parse(contents)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("line 2"))
	})
})

var _ = Describe("Format", func() {
	It("renders one line per entry with a trailing newline", func() {
		out := checksumfile.Format([]checksumfile.Entry{
			{Digest: "da39a3ee5e6b4b0d3255bfef95601890afd80709", Path: "empty.txt"},
			{Digest: "0a0a9f2a6772942557ab5355d76af442f8f65e01", Path: "hello.txt"},
		})

		Expect(out).To(Equal("da39a3ee5e6b4b0d3255bfef95601890afd80709  empty.txt\n" +
			"0a0a9f2a6772942557ab5355d76af442f8f65e01  hello.txt\n"))
	})

	It("lowercases digests", func() {
		out := checksumfile.Format([]checksumfile.Entry{
			{Digest: "DA39A3EE5E6B4B0D3255BFEF95601890AFD80709", Path: "empty.txt"},
		})

		Expect(out).To(HavePrefix("da39a3ee5e6b4b0d3255bfef95601890afd80709"))
	})

	It("renders no output for no entries", func() {
		Expect(checksumfile.Format(nil)).To(Equal(""))
	})

	It("round-trips through Parse", func() {
		entries := []checksumfile.Entry{
			{Digest: "da39a3ee5e6b4b0d3255bfef95601890afd80709", Path: "empty.txt"},
		}

		parsed, err := checksumfile.Parse(checksumfile.Format(entries))
		Expect(err).ToNot(HaveOccurred())
		Expect(parsed).To(Equal(entries))
	})
})
