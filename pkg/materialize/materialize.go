// Package materialize writes resolved artifacts to their final location.
//
// Writes are atomic: content goes to a temporary file in the destination
// directory, is synced, and is then renamed over the destination. A failed
// copy never leaves a partial file behind, and an existing file is only
// replaced once the new content is complete.
package materialize

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/funtime/mvnfetch/pkg/errors"
	"github.com/funtime/mvnfetch/pkg/observability"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
	bufSize  = 64 * 1024
)

// ParentDir returns the text of dest before its final path separator.
// A destination without a separator has no directory component and fails
// with IO_FAILURE. "/file" yields "/".
func ParentDir(dest string) (string, error) {
	i := strings.LastIndexAny(dest, separators)
	if i < 0 {
		return "", errors.New(errors.ErrCodeIO, "output %q has no directory component", dest)
	}
	if i == 0 {
		return dest[:1], nil
	}
	return dest[:i], nil
}

// Copy copies the file at src to dest, creating dest's parent directory
// (and any missing intermediates) first and overwriting dest if it exists.
// It returns the number of bytes written. Every failure is IO_FAILURE.
func Copy(ctx context.Context, src, dest string) (n int64, err error) {
	defer func() { observability.Resolve().OnMaterialize(ctx, dest, n, err) }()

	dir, err := ParentDir(dest)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return 0, errors.Wrap(errors.ErrCodeIO, err, "create directory %s", dir)
	}

	in, err := os.Open(src)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeIO, err, "open %s", src)
	}
	defer in.Close()

	n, err = WriteFile(ctx, dest, in)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeIO, err, "write %s", dest)
	}
	return n, nil
}

// WriteFile atomically replaces the file at path with everything read from
// r. The parent directory must exist. The context is checked between reads.
func WriteFile(ctx context.Context, path string, r io.Reader) (int64, error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return 0, err
	}
	tmpPath := tmp.Name()
	_ = os.Chmod(tmpPath, filePerm)

	fail := func(err error) (int64, error) {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return 0, err
	}

	bw := bufio.NewWriterSize(tmp, bufSize)
	n, err := io.Copy(bw, readerWithCtx(ctx, r))
	if err != nil {
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return 0, err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return 0, err
	}
	return n, nil
}

func readerWithCtx(ctx context.Context, r io.Reader) io.Reader {
	return &ctxReader{ctx: ctx, r: r}
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *ctxReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}
