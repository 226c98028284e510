// Package resolver resolves a single artifact coordinate against a single
// remote repository into a file in the local repository.
//
// # Session
//
// A [Session] is built once per run and holds everything that does not
// depend on the coordinate: the local repository, the transport registry,
// transport options and the logger. Building it performs no I/O.
//
//	session := resolver.NewSession(
//	    repository.NewLocal(""),
//	    transport.DefaultRegistry(),
//	    resolver.WithLogger(logger),
//	)
//	res, err := resolver.New(session).Resolve(ctx, coord, remote)
//
// # Caching
//
// Release artifacts already present in the local repository are served
// from it without contacting the remote, whatever the update policy: the
// update policy governs metadata, and release files never change.
//
// SNAPSHOT artifacts are re-validated when the repository's update policy
// says a check is due. The version directory's maven-metadata.xml is read
// to find the timestamped file name; the file is downloaded only if that
// name differs from the one recorded at the last check. When the check
// fails because the remote cannot be reached, a local copy is used with a
// warning.
//
// # Checksums
//
// After each download the resolver fetches the ".sha1" sidecar, falling
// back to ".md5", and compares digests. The repository's checksum policy
// decides what a mismatch (or a missing sidecar) does: "fail" aborts,
// "warn" logs and keeps the file, "ignore" skips verification entirely.
//
// # Errors
//
// Apart from an invalid coordinate (INVALID_COORDINATE), every failure is
// returned as RESOLUTION_FAILURE wrapping the cause
// ([transport.ErrNoTransport], [transport.ErrNotFound],
// [transport.ErrNetwork], [checksum.ErrMismatch], or an I/O error). No
// retry happens here; retries belong to the transport.
package resolver
