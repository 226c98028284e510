package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/funtime/mvnfetch/pkg/httputil"
	"github.com/funtime/mvnfetch/pkg/repository"
)

var (
	// ErrNotFound is returned when the resource does not exist in the repository.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for transport failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")

	// ErrNoTransport is returned when no transport is registered for a scheme.
	ErrNoTransport = errors.New("no transport for scheme")
)

// Transport fetches resources from one remote repository.
type Transport interface {
	// Get opens the resource at path, relative to the repository URL
	// and using '/' separators. The caller must close the returned reader.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Close releases resources held by the transport.
	Close() error
}

// Options configures a transport when it is opened.
type Options struct {
	Timeout   time.Duration     // per-request timeout; 0 uses the transport default
	UserAgent string            // User-Agent header; empty uses the transport default
	Headers   map[string]string // extra headers sent with every request
	Backoff   httputil.Backoff  // retry policy; zero value uses httputil.DefaultBackoff

	// OnRetry, if set, is told about each failed attempt that will be retried.
	OnRetry func(path string, attempt int, err error)
}

// Factory creates a transport for a repository.
type Factory func(remote *repository.Remote, opts Options) (Transport, error)

// Registry maps URL schemes to transport factories.
// A Registry is not safe for concurrent registration.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a registry with the HTTP transport registered for
// "http" and "https".
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("http", NewHTTP)
	r.Register("https", NewHTTP)
	return r
}

// Register associates scheme (case-insensitive) with f, replacing any
// previous factory for it.
func (r *Registry) Register(scheme string, f Factory) {
	r.factories[strings.ToLower(scheme)] = f
}

// Lookup returns the factory for scheme, if any.
func (r *Registry) Lookup(scheme string) (Factory, bool) {
	f, ok := r.factories[strings.ToLower(scheme)]
	return f, ok && f != nil
}

// Schemes returns the registered schemes, sorted.
func (r *Registry) Schemes() []string {
	schemes := make([]string, 0, len(r.factories))
	for s := range r.factories {
		schemes = append(schemes, s)
	}
	sort.Strings(schemes)
	return schemes
}

// Open creates a transport for remote using the factory registered for its
// URL scheme. An unregistered scheme fails with [ErrNoTransport].
func (r *Registry) Open(remote *repository.Remote, opts Options) (Transport, error) {
	scheme := remote.Scheme()
	f, ok := r.Lookup(scheme)
	if !ok {
		return nil, fmt.Errorf("%w %q (supported: %s)", ErrNoTransport, scheme, strings.Join(r.Schemes(), ", "))
	}
	return f(remote, opts)
}
