// Package httputil provides the retry and bookkeeping helpers used by the
// transports and the resolver.
//
// # Retry
//
// [Retry] re-runs an operation with exponential backoff, but only for
// errors wrapped in [RetryableError]. Transports wrap connection failures
// and 5xx responses; a 404 is returned at once.
//
//	err := httputil.Retry(ctx, httputil.DefaultBackoff, func() error {
//	    return fetch()
//	})
//
// # Cache
//
// [Cache] is a small file-backed JSON store. Each entry is one file named
// by the SHA-256 of its key, so keys may contain any characters. The
// resolver keeps one record per SNAPSHOT metadata file in it, noting when
// the remote was last checked:
//
//	updates, _ := httputil.NewCache("local-repo/.updates", 0)
//	updates.Namespace("remote-repo:").Set("org/example/lib/1.0-SNAPSHOT", rec)
//
// Entries can also expire by age (TTL); a TTL of 0 keeps them forever.
package httputil
