// Package repository describes where artifacts come from and where they are
// kept.
//
// # Remote repositories
//
// A [Remote] is built once per run from the repo-url option. Its [Policy]
// decides two things:
//
//   - [UpdatePolicy]: how often remote metadata (SNAPSHOT version listings)
//     is re-checked. "always" re-checks on every run and never trusts a
//     previously cached pointer.
//   - [ChecksumPolicy]: what a checksum mismatch does. "warn" logs and
//     accepts the file, "fail" aborts, "ignore" skips verification.
//
// The default policy, [DefaultPolicy], is enabled + always + warn.
//
// # Local repository
//
// A [Local] is the on-disk cache, "local-repo" relative to the working
// directory by default. Files are laid out exactly as on the remote (see
// [artifact.Coordinate.Path]). The directory is created lazily on first
// write and never cleared by this tool.
package repository
