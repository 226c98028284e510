package resolver

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/funtime/mvnfetch/pkg/artifact"
	"github.com/funtime/mvnfetch/pkg/checksum"
	"github.com/funtime/mvnfetch/pkg/errors"
	"github.com/funtime/mvnfetch/pkg/httputil"
	"github.com/funtime/mvnfetch/pkg/materialize"
	"github.com/funtime/mvnfetch/pkg/observability"
	"github.com/funtime/mvnfetch/pkg/repository"
	"github.com/funtime/mvnfetch/pkg/transport"
)

// maxSidecarSize bounds checksum and metadata reads.
const maxSidecarSize = 1 << 20

// Result is a resolved artifact. File belongs to the local repository;
// callers copy it rather than move or modify it.
type Result struct {
	Coordinate  artifact.Coordinate
	File        string             // path in the local repository
	FileVersion string             // version naming the remote file (timestamped for SNAPSHOTs)
	Repository  *repository.Remote // repository the artifact was resolved against
	Cached      bool               // true if no download happened
	Size        int64
}

// Resolver resolves coordinates within a [Session].
type Resolver struct {
	session *Session
}

// New creates a Resolver for session.
func New(session *Session) *Resolver {
	return &Resolver{session: session}
}

// updateRecord is the update-check bookkeeping kept per SNAPSHOT file.
type updateRecord struct {
	CheckedAt   time.Time `json:"checked_at"`
	FileVersion string    `json:"file_version"`
}

// Resolve issues one resolution request for coord against remote only.
// Any failure is fatal and returned as RESOLUTION_FAILURE.
func (r *Resolver) Resolve(ctx context.Context, coord artifact.Coordinate, remote *repository.Remote) (res *Result, err error) {
	hooks := observability.Resolve()
	start := time.Now()
	hooks.OnResolveStart(ctx, coord.String(), remote.ID)
	defer func() {
		hooks.OnResolveComplete(ctx, coord.String(), remote.ID, res != nil && res.Cached, time.Since(start), err)
	}()

	res, err = r.resolve(ctx, coord, remote)
	if err != nil {
		if errors.Is(err, errors.ErrCodeInvalidCoordinate) {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeResolution, err, "resolve %s from %s", coord, remote)
	}
	return res, nil
}

func (r *Resolver) resolve(ctx context.Context, coord artifact.Coordinate, remote *repository.Remote) (*Result, error) {
	logger := r.session.Logger.With("artifact", coord.String())

	if err := coord.Validate(); err != nil {
		return nil, err
	}
	if !remote.Policy.Enabled {
		return nil, fmt.Errorf("repository %s is disabled", remote)
	}
	if remote.Layout != repository.DefaultLayout {
		return nil, fmt.Errorf("repository %s has unsupported layout %q", remote, remote.Layout)
	}

	local := r.session.Local.ArtifactPath(coord)
	result := &Result{
		Coordinate:  coord,
		File:        local,
		FileVersion: coord.Version,
		Repository:  remote,
	}
	cacheHooks := observability.Cache()

	if !coord.IsSnapshot() {
		if size, ok := fileSize(local); ok {
			logger.Debug("Found in local repository", "path", local)
			cacheHooks.OnCacheHit(ctx, local)
			result.Cached, result.Size = true, size
			return result, nil
		}
		cacheHooks.OnCacheMiss(ctx, local)
		return r.fetch(ctx, coord, remote, result)
	}

	return r.resolveSnapshot(ctx, coord, remote, result)
}

func (r *Resolver) resolveSnapshot(ctx context.Context, coord artifact.Coordinate, remote *repository.Remote, result *Result) (*Result, error) {
	logger := r.session.Logger.With("artifact", coord.String())
	cacheHooks := observability.Cache()
	local := result.File

	updates, err := httputil.NewCache(r.session.Local.UpdatesDir(), 0)
	if err != nil {
		return nil, err
	}
	updates = updates.Namespace(remote.ID + ":")
	key := coord.Path(coord.Version)

	var rec updateRecord
	if ok, err := updates.Get(key, &rec); err != nil || !ok {
		rec = updateRecord{}
	}
	size, haveLocal := fileSize(local)

	now := r.session.now()
	if haveLocal && !remote.Policy.UpdatePolicy.CheckDue(rec.CheckedAt, now) {
		logger.Debug("Update check not due", "policy", remote.Policy.UpdatePolicy, "last", rec.CheckedAt)
		cacheHooks.OnCacheHit(ctx, local)
		result.Cached, result.Size, result.FileVersion = true, size, rec.FileVersion
		return result, nil
	}

	tr, err := r.open(remote)
	if err != nil {
		return nil, err
	}
	defer tr.Close()

	fileVersion, err := r.snapshotFileVersion(ctx, tr, coord)
	if err != nil {
		if haveLocal && stderrors.Is(err, transport.ErrNetwork) {
			logger.Warn("Could not check for SNAPSHOT updates, using local copy", "err", err)
			cacheHooks.OnCacheHit(ctx, local)
			result.Cached, result.Size, result.FileVersion = true, size, rec.FileVersion
			return result, nil
		}
		return nil, err
	}
	result.FileVersion = fileVersion

	if haveLocal && rec.FileVersion == fileVersion {
		logger.Debug("Local SNAPSHOT is up to date", "version", fileVersion)
		cacheHooks.OnCacheHit(ctx, local)
		result.Cached, result.Size = true, size
	} else {
		cacheHooks.OnCacheMiss(ctx, local)
		if err := r.download(ctx, tr, coord, remote, result); err != nil {
			return nil, err
		}
	}

	if err := updates.Set(key, updateRecord{CheckedAt: now, FileVersion: fileVersion}); err != nil {
		logger.Warn("Could not record update check", "err", err)
	}
	return result, nil
}

// snapshotFileVersion reads the version-level metadata. Missing metadata
// means a non-unique snapshot whose file carries the plain version.
func (r *Resolver) snapshotFileVersion(ctx context.Context, tr transport.Transport, coord artifact.Coordinate) (string, error) {
	data, err := readResource(ctx, tr, coord.Dir()+"/"+metadataFile)
	if stderrors.Is(err, transport.ErrNotFound) {
		r.session.Logger.Debug("No SNAPSHOT metadata, assuming non-unique version", "artifact", coord.String())
		return coord.Version, nil
	}
	if err != nil {
		return "", err
	}
	md, err := parseMetadata(data)
	if err != nil {
		return "", err
	}
	return md.fileVersion(coord), nil
}

func (r *Resolver) fetch(ctx context.Context, coord artifact.Coordinate, remote *repository.Remote, result *Result) (*Result, error) {
	tr, err := r.open(remote)
	if err != nil {
		return nil, err
	}
	defer tr.Close()

	if err := r.download(ctx, tr, coord, remote, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Resolver) open(remote *repository.Remote) (transport.Transport, error) {
	return r.session.Registry.Open(remote, r.session.Transport)
}

// download fetches the artifact into a staging file next to its final
// location, verifies it, and moves it into place.
func (r *Resolver) download(ctx context.Context, tr transport.Transport, coord artifact.Coordinate, remote *repository.Remote, result *Result) error {
	resource := coord.Path(result.FileVersion)
	logger := r.session.Logger.With("artifact", coord.String())
	logger.Info("Downloading", "url", remote.URL+"/"+resource)

	body, err := tr.Get(ctx, resource)
	if err != nil {
		return err
	}
	defer body.Close()

	dir := filepath.Dir(result.File)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	staging := filepath.Join(dir, ".staging-"+filepath.Base(result.File))
	defer os.Remove(staging)

	n, err := materialize.WriteFile(ctx, staging, body)
	if err != nil {
		return err
	}
	if err := r.verify(ctx, tr, resource, staging, remote.Policy.ChecksumPolicy); err != nil {
		return err
	}
	if err := os.Rename(staging, result.File); err != nil {
		return err
	}

	observability.Cache().OnCacheStore(ctx, result.File, n)
	logger.Debug("Stored in local repository", "path", result.File, "bytes", n)
	result.Size = n
	return nil
}

// verify checks the staged file against the first available sidecar.
func (r *Resolver) verify(ctx context.Context, tr transport.Transport, resource, file string, policy repository.ChecksumPolicy) error {
	if policy == repository.ChecksumIgnore {
		return nil
	}

	sums, err := checksum.File(file, checksum.Algorithms...)
	if err != nil {
		return err
	}

	var unavailable error
	for _, alg := range checksum.Algorithms {
		data, err := readResource(ctx, tr, resource+"."+alg.Ext)
		if stderrors.Is(err, transport.ErrNotFound) {
			continue
		}
		if err != nil {
			unavailable = err
			continue
		}
		want, err := checksum.ParseSidecar(data)
		if err != nil {
			unavailable = err
			continue
		}
		got := sums[alg.Ext]
		if err := checksum.Compare(alg, want, got); err != nil {
			observability.Resolve().OnChecksumMismatch(ctx, resource, alg.Name, want, got)
			return r.checksumProblem(policy, resource, err)
		}
		r.session.Logger.Debug("Checksum verified", "resource", resource, "algorithm", alg.Name)
		return nil
	}

	if unavailable == nil {
		unavailable = stderrors.New("no checksum published")
	}
	return r.checksumProblem(policy, resource, unavailable)
}

func (r *Resolver) checksumProblem(policy repository.ChecksumPolicy, resource string, err error) error {
	if policy == repository.ChecksumFail {
		return fmt.Errorf("checksum validation failed for %s: %w", resource, err)
	}
	r.session.Logger.Warn("Checksum validation failed", "resource", resource, "err", err)
	return nil
}

func readResource(ctx context.Context, tr transport.Transport, path string) ([]byte, error) {
	body, err := tr.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return io.ReadAll(io.LimitReader(body, maxSidecarSize))
}

func fileSize(path string) (int64, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return 0, false
	}
	return info.Size(), true
}
