//go:build !windows

package materialize

const separators = "/"
