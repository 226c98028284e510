package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/funtime/mvnfetch/pkg/observability"
)

// logHooks reports resolver, cache and HTTP events at debug level.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.ResolveHooks = (*logHooks)(nil)
	_ observability.CacheHooks   = (*logHooks)(nil)
	_ observability.HTTPHooks    = (*logHooks)(nil)
)

func (h *logHooks) OnResolveStart(_ context.Context, coord, repo string) {
	h.logger.Debug("Resolve started", "artifact", coord, "repository", repo)
}

func (h *logHooks) OnResolveComplete(_ context.Context, coord, repo string, cached bool, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Resolve failed", "artifact", coord, "repository", repo, "duration", d.Round(time.Millisecond), "err", err)
		return
	}
	h.logger.Debug("Resolve finished", "artifact", coord, "cached", cached, "duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnChecksumMismatch(_ context.Context, resource, algorithm, want, got string) {
	h.logger.Debug("Checksum mismatch", "resource", resource, "algorithm", algorithm, "want", want, "got", got)
}

func (h *logHooks) OnMaterialize(_ context.Context, dest string, size int64, err error) {
	if err != nil {
		h.logger.Debug("Copy failed", "dest", dest, "err", err)
		return
	}
	h.logger.Debug("Copied", "dest", dest, "bytes", size)
}

func (h *logHooks) OnCacheHit(_ context.Context, path string) {
	h.logger.Debug("Local repository hit", "path", path)
}

func (h *logHooks) OnCacheMiss(_ context.Context, path string) {
	h.logger.Debug("Local repository miss", "path", path)
}

func (h *logHooks) OnCacheStore(_ context.Context, path string, size int64) {
	h.logger.Debug("Local repository store", "path", path, "bytes", size)
}

func (h *logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("HTTP request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("HTTP response", "method", method, "path", path, "status", status, "duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("HTTP error", "method", method, "host", host, "path", path, "err", err)
}
