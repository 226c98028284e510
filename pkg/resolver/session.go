package resolver

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/funtime/mvnfetch/pkg/repository"
	"github.com/funtime/mvnfetch/pkg/transport"
)

// Session holds the per-run state shared by every resolution.
type Session struct {
	Local     *repository.Local
	Registry  *transport.Registry
	Transport transport.Options
	Logger    *log.Logger

	now func() time.Time
}

// Option configures a [Session].
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.Logger = l
		}
	}
}

// WithTransportOptions sets the options used when opening transports.
func WithTransportOptions(opts transport.Options) Option {
	return func(s *Session) { s.Transport = opts }
}

// WithClock overrides the time source used for update checks.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSession creates a session. A nil local repository means the default
// "local-repo" directory; a nil registry means [transport.DefaultRegistry].
// Nothing is read or written.
func NewSession(local *repository.Local, registry *transport.Registry, opts ...Option) *Session {
	if local == nil {
		local = repository.NewLocal("")
	}
	if registry == nil {
		registry = transport.DefaultRegistry()
	}
	s := &Session{
		Local:    local,
		Registry: registry,
		Logger:   log.New(io.Discard),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
