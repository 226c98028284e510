// Package artifact defines the identity of a single Maven artifact and the
// parser for its compact "group:artifact:version" form.
//
// A [Coordinate] is built once per invocation from the gav string plus the
// separate classifier and extension options, and is never modified after.
//
// # Parsing
//
// [ParseGAV] splits on the first and last colon only. Any colons between
// them stay in the artifact id, so "g:a:b:v" yields artifact id "a:b":
//
//	g, a, v, err := artifact.ParseGAV("org.example:lib:1.0")
//	coord, err := artifact.New("org.example:lib:1.0", "sources", "jar")
//
// # Layout
//
// [Coordinate.Path] returns the default (Maven 2) repository layout path,
// shared by the local repository and remote URLs:
//
//	org/example/lib/1.0/lib-1.0-sources.jar
package artifact

import (
	"strings"

	"github.com/funtime/mvnfetch/pkg/errors"
)

// SnapshotSuffix marks a version whose content may change under the same name.
const SnapshotSuffix = "-SNAPSHOT"

// Coordinate identifies one artifact file in a repository.
//
// GroupID, ArtifactID, Version and Extension are never empty in a
// coordinate returned by [New]. An empty Classifier means no classifier.
type Coordinate struct {
	GroupID    string // e.g. "org.apache.commons"
	ArtifactID string // e.g. "commons-lang3"
	Version    string // e.g. "3.14.0" or "1.0-SNAPSHOT"
	Classifier string // e.g. "sources"; empty if absent
	Extension  string // e.g. "jar"
}

// ParseGAV splits gav into group, artifact id and version.
//
// The string must contain at least two colons at distinct positions. The
// text before the first colon is the group, the text after the last colon
// is the version, and everything in between is the artifact id. Each part
// is trimmed and must be non-empty.
func ParseGAV(gav string) (group, artifactID, version string, err error) {
	first := strings.IndexByte(gav, ':')
	last := strings.LastIndexByte(gav, ':')
	if first == -1 || first == last {
		return "", "", "", errors.New(errors.ErrCodeInvalidCoordinate, "invalid GAV %q (expected group:artifact:version)", gav)
	}

	group = strings.TrimSpace(gav[:first])
	artifactID = strings.TrimSpace(gav[first+1 : last])
	version = strings.TrimSpace(gav[last+1:])
	if group == "" || artifactID == "" || version == "" {
		return "", "", "", errors.New(errors.ErrCodeInvalidCoordinate, "invalid GAV %q (empty part)", gav)
	}
	return group, artifactID, version, nil
}

// New builds a Coordinate from a gav string and the separate classifier and
// extension values. A blank classifier is treated as absent; a blank
// extension is an error. Every part is checked with
// [errors.ValidateCoordinatePart] so it is safe to use as a path segment.
func New(gav, classifier, extension string) (Coordinate, error) {
	g, a, v, err := ParseGAV(gav)
	if err != nil {
		return Coordinate{}, err
	}

	c := Coordinate{
		GroupID:    g,
		ArtifactID: a,
		Version:    v,
		Classifier: strings.TrimSpace(classifier),
		Extension:  strings.TrimSpace(extension),
	}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}

// Validate checks every part of the coordinate.
func (c Coordinate) Validate() error {
	parts := []struct{ what, value string }{
		{"group", c.GroupID},
		{"artifact id", c.ArtifactID},
		{"version", c.Version},
		{"extension", c.Extension},
	}
	for _, p := range parts {
		if err := errors.ValidateCoordinatePart(p.what, p.value); err != nil {
			return err
		}
	}
	if c.Classifier != "" {
		return errors.ValidateCoordinatePart("classifier", c.Classifier)
	}
	return nil
}

// String returns the coordinate in "group:artifact:extension[:classifier]:version" form.
func (c Coordinate) String() string {
	var b strings.Builder
	b.WriteString(c.GroupID)
	b.WriteByte(':')
	b.WriteString(c.ArtifactID)
	b.WriteByte(':')
	b.WriteString(c.Extension)
	if c.Classifier != "" {
		b.WriteByte(':')
		b.WriteString(c.Classifier)
	}
	b.WriteByte(':')
	b.WriteString(c.Version)
	return b.String()
}

// IsSnapshot reports whether the version is a SNAPSHOT version.
func (c Coordinate) IsSnapshot() bool {
	return strings.HasSuffix(c.Version, SnapshotSuffix)
}

// Filename returns the file name of the artifact for the given version.
// For SNAPSHOT artifacts the remote file may carry a timestamped version
// ("1.0-20240101.120000-3") while the directory keeps the base version.
func (c Coordinate) Filename(version string) string {
	name := c.ArtifactID + "-" + version
	if c.Classifier != "" {
		name += "-" + c.Classifier
	}
	return name + "." + c.Extension
}

// Dir returns the version directory in default layout, using '/' separators.
func (c Coordinate) Dir() string {
	return strings.ReplaceAll(c.GroupID, ".", "/") + "/" + c.ArtifactID + "/" + c.Version
}

// Path returns the default-layout path of the artifact file for the given
// version, using '/' separators.
func (c Coordinate) Path(version string) string {
	return c.Dir() + "/" + c.Filename(version)
}
