package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/funtime/mvnfetch/pkg/buildinfo"
	"github.com/funtime/mvnfetch/pkg/httputil"
	"github.com/funtime/mvnfetch/pkg/observability"
	"github.com/funtime/mvnfetch/pkg/repository"
)

const defaultHTTPTimeout = 30 * time.Second

// HTTP is a lightweight transport issuing GET requests against an http or
// https repository.
type HTTP struct {
	client  *http.Client
	base    string
	headers map[string]string
	backoff httputil.Backoff
	onRetry func(path string, attempt int, err error)
}

// NewHTTP creates an HTTP transport for remote. It is the [Factory]
// registered for "http" and "https" by [DefaultRegistry].
func NewHTTP(remote *repository.Remote, opts Options) (Transport, error) {
	if _, err := url.Parse(remote.URL); err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	backoff := opts.Backoff
	if backoff.Attempts <= 0 {
		backoff = httputil.DefaultBackoff
	}

	headers := map[string]string{"User-Agent": buildinfo.UserAgent()}
	if opts.UserAgent != "" {
		headers["User-Agent"] = opts.UserAgent
	}
	for k, v := range opts.Headers {
		headers[k] = v
	}

	return &HTTP{
		client:  &http.Client{Timeout: timeout},
		base:    strings.TrimRight(remote.URL, "/"),
		headers: headers,
		backoff: backoff,
		onRetry: opts.OnRetry,
	}, nil
}

// Get fetches path, retrying transient failures.
func (t *HTTP) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	u := t.base + "/" + strings.TrimLeft(path, "/")

	var body io.ReadCloser
	err := httputil.Retry(ctx, t.backoff, func() error {
		b, err := t.doRequest(ctx, u)
		if err != nil {
			return err
		}
		body = b
		return nil
	}, func(attempt int, err error) {
		if t.onRetry != nil {
			t.onRetry(path, attempt, err)
		}
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

// Close releases idle connections.
func (t *HTTP) Close() error {
	t.client.CloseIdleConnections()
	return nil
}

func (t *HTTP) doRequest(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := t.client.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, httputil.Retryable(fmt.Errorf("%w: %v", ErrNetwork, err))
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: %w", rawURL, err)
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound || code == http.StatusGone:
		return ErrNotFound
	case code == http.StatusTooManyRequests || code >= 500:
		return httputil.Retryable(fmt.Errorf("%w: status %d", ErrNetwork, code))
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
