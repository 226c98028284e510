// Package transport retrieves raw resources from remote repositories.
//
// A [Transport] is opened for one repository and fetches resources by their
// path relative to the repository URL. Transports are looked up by URL
// scheme in a [Registry], which maps each scheme to a [Factory]:
//
//	reg := transport.DefaultRegistry()        // http and https
//	reg.Register("file", myFileFactory)       // add a scheme
//	t, err := reg.Open(remote, transport.Options{})
//	if errors.Is(err, transport.ErrNoTransport) {
//	    // scheme not supported
//	}
//
// # HTTP
//
// The HTTP transport issues plain GET requests with a client timeout and
// retries connection failures and 5xx responses with backoff (see
// [httputil.Retry]). A 404 is reported as [ErrNotFound] at once. Retries
// are the transport's own concern; callers see only the final outcome.
package transport
