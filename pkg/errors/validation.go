package errors

import (
	"net/url"
	"strings"
	"unicode"
)

// ValidateCoordinatePart validates one part of an artifact coordinate
// (group, artifact id, version, classifier or extension).
//
// Coordinate parts become path segments inside the local repository, so the
// rules reject anything that could escape it:
//   - No empty parts
//   - No control characters
//   - No path traversal sequences or separators (.., /, \)
//   - Maximum length of 256 characters
//
// what names the part in the error message (e.g. "group", "version").
func ValidateCoordinatePart(what, part string) error {
	if part == "" {
		return New(ErrCodeInvalidCoordinate, "%s cannot be empty", what)
	}

	if len(part) > 256 {
		return New(ErrCodeInvalidCoordinate, "%s too long (max 256 characters)", what)
	}

	for _, r := range part {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidCoordinate, "%s contains invalid control characters", what)
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(part, pattern) {
			return New(ErrCodeInvalidCoordinate, "%s %q contains invalid characters: %q", what, part, pattern)
		}
	}

	return nil
}

// ValidateRepositoryURL validates a remote repository URL.
// The URL must parse and carry both a scheme and a host or path; whether the
// scheme is supported is decided later by the transport registry.
func ValidateRepositoryURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidArgument, "repository URL cannot be empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidArgument, err, "invalid repository URL %q", rawURL)
	}
	if u.Scheme == "" {
		return New(ErrCodeInvalidArgument, "repository URL %q has no scheme", rawURL)
	}
	if u.Host == "" && u.Path == "" && u.Opaque == "" {
		return New(ErrCodeInvalidArgument, "repository URL %q has no location", rawURL)
	}

	return nil
}
