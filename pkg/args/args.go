// Package args turns flat key=value command-line tokens into an option map.
//
// The tool takes no positional arguments and no flags for its inputs; every
// input is a token of the form key=value, in any order:
//
//	mvnfetch gav=org.example:lib:1.0 extension=jar repo-url=https://repo.example.com/maven2 output=out/lib.jar
//
// Tokens are split on the first '='; the value keeps any further '='
// characters and is not trimmed until it is read through [Options.Require]
// or [Options.Optional].
//
// A key given more than once keeps its last value. Parse reports the keys
// that were overwritten so the caller can warn about them.
package args

import (
	"sort"
	"strings"

	"github.com/funtime/mvnfetch/pkg/errors"
)

// Option keys understood by the CLI.
const (
	KeyGAV            = "gav"
	KeyClassifier     = "classifier"
	KeyExtension      = "extension"
	KeyRepoURL        = "repo-url"
	KeyOutput         = "output"
	KeyUpdatePolicy   = "update-policy"
	KeyChecksumPolicy = "checksum-policy"
	KeyConfig         = "config"
)

// Required lists the keys every invocation must supply, in the order they
// are reported when missing.
var Required = []string{KeyGAV, KeyExtension, KeyRepoURL, KeyOutput}

// Options maps option names to their raw values.
type Options map[string]string

// Parse splits each token on its first '=' and collects the pairs.
//
// A token without '=' fails with INVALID_ARGUMENT. An empty key ("=value")
// is also rejected. The returned duplicates slice lists, sorted, every key
// that appeared more than once; the last occurrence wins.
func Parse(tokens []string) (opts Options, duplicates []string, err error) {
	opts = make(Options, len(tokens))
	seen := make(map[string]bool)

	for _, tok := range tokens {
		key, value, ok := strings.Cut(tok, "=")
		if !ok {
			return nil, nil, errors.New(errors.ErrCodeInvalidArgument, "invalid argument %q (expected key=value)", tok)
		}
		if key == "" {
			return nil, nil, errors.New(errors.ErrCodeInvalidArgument, "invalid argument %q (empty key)", tok)
		}
		if _, exists := opts[key]; exists && !seen[key] {
			seen[key] = true
			duplicates = append(duplicates, key)
		}
		opts[key] = value
	}

	sort.Strings(duplicates)
	return opts, duplicates, nil
}

// Require returns the trimmed value for key.
// A missing or blank value fails with INVALID_ARGUMENT naming the key.
func (o Options) Require(key string) (string, error) {
	v := strings.TrimSpace(o[key])
	if v == "" {
		return "", errors.New(errors.ErrCodeInvalidArgument, "please provide a non-empty %q value", key)
	}
	return v, nil
}

// Optional returns the trimmed value for key, or "" when it is absent.
func (o Options) Optional(key string) string {
	return strings.TrimSpace(o[key])
}

// CheckRequired verifies that every key in [Required] has a non-blank value.
// The first missing key, in [Required] order, is reported.
func (o Options) CheckRequired() error {
	for _, key := range Required {
		if _, err := o.Require(key); err != nil {
			return err
		}
	}
	return nil
}

// Unknown returns, sorted, the keys that the CLI does not recognise.
func (o Options) Unknown() []string {
	var unknown []string
	for key := range o {
		switch key {
		case KeyGAV, KeyClassifier, KeyExtension, KeyRepoURL, KeyOutput,
			KeyUpdatePolicy, KeyChecksumPolicy, KeyConfig:
		default:
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}
