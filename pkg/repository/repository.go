package repository

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/funtime/mvnfetch/pkg/artifact"
	"github.com/funtime/mvnfetch/pkg/errors"
)

const (
	// DefaultID is the id given to the single remote repository.
	DefaultID = "remote-repo"

	// DefaultLayout is the Maven 2 repository layout.
	DefaultLayout = "default"

	// DefaultLocalDir is the local repository directory, relative to the
	// working directory.
	DefaultLocalDir = "local-repo"
)

// Remote describes a remote repository and the policy applied to it.
type Remote struct {
	ID     string
	Layout string
	URL    string
	Policy Policy
}

// NewRemote creates a descriptor for rawURL with the default id and layout.
// The URL must parse and carry a scheme; a trailing slash is dropped.
func NewRemote(rawURL string, policy Policy) (*Remote, error) {
	if err := errors.ValidateRepositoryURL(rawURL); err != nil {
		return nil, err
	}
	return &Remote{
		ID:     DefaultID,
		Layout: DefaultLayout,
		URL:    strings.TrimRight(rawURL, "/"),
		Policy: policy,
	}, nil
}

// Scheme returns the lower-cased URL scheme, used to select a transport.
func (r *Remote) Scheme() string {
	u, err := url.Parse(r.URL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Scheme)
}

// String returns "id (url)".
func (r *Remote) String() string {
	return r.ID + " (" + r.URL + ")"
}

// Local is the on-disk artifact cache.
type Local struct {
	dir string
}

// NewLocal returns a local repository rooted at dir. If dir is empty,
// [DefaultLocalDir] is used. Nothing is created on disk.
func NewLocal(dir string) *Local {
	if dir == "" {
		dir = DefaultLocalDir
	}
	return &Local{dir: dir}
}

// Dir returns the repository root as given.
func (l *Local) Dir() string { return l.dir }

// Path returns the local file for c at the given file version. The file
// always sits in the coordinate's base-version directory.
func (l *Local) Path(c artifact.Coordinate, version string) string {
	return filepath.Join(l.dir, filepath.FromSlash(c.Path(version)))
}

// ArtifactPath returns the local file for c under its own version.
func (l *Local) ArtifactPath(c artifact.Coordinate) string {
	return l.Path(c, c.Version)
}

// UpdatesDir returns the directory holding update-check bookkeeping.
func (l *Local) UpdatesDir() string {
	return filepath.Join(l.dir, ".updates")
}
