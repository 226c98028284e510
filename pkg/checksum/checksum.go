// Package checksum computes and compares the digests Maven repositories
// publish next to each file (".sha1", ".md5").
package checksum

import (
	"crypto/md5"
	"crypto/sha1"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"
)

// ErrMismatch is wrapped by every [MismatchError].
var ErrMismatch = errors.New("checksum mismatch")

// Algorithm is a digest algorithm and the sidecar extension carrying it.
type Algorithm struct {
	Name string // e.g. "SHA-1"
	Ext  string // sidecar extension without dot, e.g. "sha1"
	New  func() hash.Hash
}

// Supported algorithms.
var (
	SHA1 = Algorithm{Name: "SHA-1", Ext: "sha1", New: sha1.New}
	MD5  = Algorithm{Name: "MD5", Ext: "md5", New: md5.New}
)

// Algorithms lists the algorithms in the order sidecars are tried.
var Algorithms = []Algorithm{SHA1, MD5}

// MismatchError reports a file whose digest differs from its sidecar.
type MismatchError struct {
	Algorithm string
	Want      string // published
	Got       string // computed
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: %s expected %s, got %s", ErrMismatch, e.Algorithm, e.Want, e.Got)
}

func (e *MismatchError) Unwrap() error { return ErrMismatch }

// File computes the hex digest of the file at path for each algorithm in a
// single pass. The result is keyed by [Algorithm.Ext].
func File(path string, algs ...Algorithm) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Reader(f, algs...)
}

// Reader is like [File] but digests everything read from r.
func Reader(r io.Reader, algs ...Algorithm) (map[string]string, error) {
	hashes := make([]hash.Hash, len(algs))
	writers := make([]io.Writer, len(algs))
	for i, a := range algs {
		hashes[i] = a.New()
		writers[i] = hashes[i]
	}
	if _, err := io.Copy(io.MultiWriter(writers...), r); err != nil {
		return nil, err
	}

	sums := make(map[string]string, len(algs))
	for i, a := range algs {
		sums[a.Ext] = fmt.Sprintf("%x", hashes[i].Sum(nil))
	}
	return sums, nil
}

// ParseSidecar extracts the digest from the content of a checksum file.
//
// Repositories publish several shapes: the bare hex digest, "digest  filename"
// (sha1sum/md5sum output), or "MD5 (file) = digest" (BSD style). The digest
// is returned lower-cased.
func ParseSidecar(data []byte) (string, error) {
	s := strings.TrimSpace(string(data))
	if s == "" {
		return "", errors.New("empty checksum file")
	}
	if i := strings.LastIndex(s, "= "); i >= 0 && strings.Contains(s[:i], "(") {
		s = strings.TrimSpace(s[i+2:])
	}
	if fields := strings.Fields(s); len(fields) > 0 {
		s = fields[0]
	}
	s = strings.ToLower(s)
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return "", fmt.Errorf("malformed checksum %q", s)
		}
	}
	return s, nil
}

// Compare checks a computed digest against a published one.
func Compare(alg Algorithm, want, got string) error {
	if !strings.EqualFold(want, got) {
		return &MismatchError{Algorithm: alg.Name, Want: want, Got: got}
	}
	return nil
}
