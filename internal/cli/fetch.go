package cli

import (
	"context"
	"fmt"
	"maps"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/funtime/mvnfetch/pkg/args"
	"github.com/funtime/mvnfetch/pkg/artifact"
	"github.com/funtime/mvnfetch/pkg/config"
	"github.com/funtime/mvnfetch/pkg/materialize"
	"github.com/funtime/mvnfetch/pkg/observability"
	"github.com/funtime/mvnfetch/pkg/repository"
	"github.com/funtime/mvnfetch/pkg/resolver"
)

// requestIDHeader carries the run id on every transport request.
const requestIDHeader = "X-Request-Id"

// fetchResult describes a completed fetch.
type fetchResult struct {
	Resolved *resolver.Result
	Output   string
	Written  int64
}

// fetch runs one invocation: parse the tokens, build the session, resolve
// the coordinate and copy the resolved file to the output path.
func (c *CLI) fetch(ctx context.Context, tokens []string) (*fetchResult, error) {
	runID := uuid.NewString()
	logger := loggerFromContext(ctx).With("run", runID)

	opts, duplicates, err := args.Parse(tokens)
	if err != nil {
		return nil, err
	}
	for _, key := range duplicates {
		logger.Warn("Option given more than once, using the last value", "key", key)
	}
	if unknown := opts.Unknown(); len(unknown) > 0 {
		logger.Warn("Ignoring unknown options", "keys", formatKeys(unknown))
	}
	if err := opts.CheckRequired(); err != nil {
		return nil, err
	}

	gav := opts.Optional(args.KeyGAV)
	extension := opts.Optional(args.KeyExtension)
	repoURL := opts.Optional(args.KeyRepoURL)
	output := opts.Optional(args.KeyOutput)

	coord, err := artifact.New(gav, opts.Optional(args.KeyClassifier), extension)
	if err != nil {
		return nil, err
	}

	cfg, err := c.loadConfig(opts, logger)
	if err != nil {
		return nil, err
	}

	remote, err := repository.NewRemote(repoURL, cfg.Policy)
	if err != nil {
		return nil, err
	}
	remote.ID = cfg.RepositoryID

	topts := cfg.Transport
	topts.Headers = maps.Clone(topts.Headers)
	if topts.Headers == nil {
		topts.Headers = map[string]string{}
	}
	topts.Headers[requestIDHeader] = runID
	topts.OnRetry = func(path string, attempt int, err error) {
		logger.Warn("Request failed, retrying", "path", path, "attempt", attempt, "err", err)
	}

	restore := installHooks(logger)
	defer restore()

	session := resolver.NewSession(c.localRepository(), c.Registry,
		resolver.WithLogger(logger),
		resolver.WithTransportOptions(topts),
	)

	logger.Debug("Resolving",
		"artifact", coord.String(),
		"repository", remote.String(),
		"update-policy", remote.Policy.UpdatePolicy,
		"checksum-policy", remote.Policy.ChecksumPolicy,
	)

	prog := newProgress(logger)
	// Animate only above debug level.
	spinner := newSpinner(ctx, c.Err, fmt.Sprintf("Resolving %s...", coord))
	if logger.GetLevel() > log.DebugLevel {
		spinner.Start()
	}

	res, err := resolver.New(session).Resolve(ctx, coord, remote)
	spinner.Stop()
	if err != nil {
		if spinner.Cancelled() {
			return nil, ctx.Err()
		}
		return nil, err
	}

	n, err := materialize.Copy(ctx, res.File, output)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Fetched %s", coord))

	printSuccess(c.Out, "Fetched %s", StyleHighlight.Render(coord.String()))
	printFile(c.Out, output)
	printStats(c.Out, n, res.FileVersion, res.Cached)
	if res.Cached {
		printDetail(c.Out, "Local copy: %s", res.File)
	}

	return &fetchResult{Resolved: res, Output: output, Written: n}, nil
}

// loadConfig merges the optional config file with the command-line options.
func (c *CLI) loadConfig(opts args.Options, logger *log.Logger) (config.Config, error) {
	var file *config.File
	if path := opts.Optional(args.KeyConfig); path != "" {
		f, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		if len(f.Undecoded) > 0 {
			logger.Warn("Ignoring unknown config keys", "file", path, "keys", formatKeys(f.Undecoded))
		}
		file = f
	}
	return config.Resolve(file, opts)
}

// installHooks routes observability events to the debug log for the
// duration of a fetch and returns a function restoring the no-op hooks.
func installHooks(logger *log.Logger) func() {
	h := &logHooks{logger: logger}
	observability.SetResolveHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
	return observability.Reset
}
