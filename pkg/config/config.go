// Package config builds the repository policy and transport options for a
// run from an optional TOML file and the command-line options.
//
// Precedence, lowest first: built-in defaults, the file named by config=,
// then the update-policy= and checksum-policy= command-line keys.
//
// Files ending in .yaml or .yml are read as YAML with the same keys;
// anything else is TOML:
//
//	[repository]
//	id = "central-mirror"
//	enabled = true
//	update-policy = "daily"
//	checksum-policy = "fail"
//
//	[transport]
//	timeout = "30s"
//	user-agent = "mvnfetch/1.0"
//
//	[transport.headers]
//	X-Team = "build"
package config

import (
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/funtime/mvnfetch/pkg/args"
	"github.com/funtime/mvnfetch/pkg/errors"
	"github.com/funtime/mvnfetch/pkg/repository"
	"github.com/funtime/mvnfetch/pkg/transport"
)

// File is the on-disk configuration. Empty fields keep their defaults.
type File struct {
	Repository RepositorySection `toml:"repository" yaml:"repository"`
	Transport  TransportSection  `toml:"transport" yaml:"transport"`

	// Undecoded lists keys present in the file that no field consumed,
	// in dotted form ("transport.retries").
	Undecoded []string `toml:"-" yaml:"-"`
}

type RepositorySection struct {
	ID             string `toml:"id" yaml:"id"`
	Enabled        *bool  `toml:"enabled" yaml:"enabled"`
	UpdatePolicy   string `toml:"update-policy" yaml:"update-policy"`
	ChecksumPolicy string `toml:"checksum-policy" yaml:"checksum-policy"`
}

type TransportSection struct {
	Timeout   string            `toml:"timeout" yaml:"timeout"`
	UserAgent string            `toml:"user-agent" yaml:"user-agent"`
	Headers   map[string]string `toml:"headers" yaml:"headers"`
}

// knownKeys lists the keys of each section. Headers are free-form.
var knownKeys = map[string][]string{
	"repository": {"id", "enabled", "update-policy", "checksum-policy"},
	"transport":  {"timeout", "user-agent", "headers"},
}

// Config is the effective configuration of one run.
type Config struct {
	RepositoryID string
	Policy       repository.Policy
	Transport    transport.Options
}

// Default returns the configuration used when nothing is configured.
func Default() Config {
	return Config{
		RepositoryID: repository.DefaultID,
		Policy:       repository.DefaultPolicy(),
	}
}

// Load reads and decodes the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
	}

	var f *File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err = decodeYAML(data)
	default:
		f, err = decodeTOML(data)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	sort.Strings(f.Undecoded)
	return f, nil
}

func decodeTOML(data []byte) (*File, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, err
	}
	for _, k := range md.Undecoded() {
		f.Undecoded = append(f.Undecoded, k.String())
	}
	return &f, nil
}

func decodeYAML(data []byte) (*File, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	var f File
	if len(doc.Content) == 0 {
		return &f, nil
	}
	if err := doc.Decode(&f); err != nil {
		return nil, err
	}
	f.Undecoded = unknownYAMLKeys(doc.Content[0])
	return &f, nil
}

// unknownYAMLKeys walks the top two mapping levels of root.
func unknownYAMLKeys(root *yaml.Node) []string {
	if root.Kind != yaml.MappingNode {
		return nil
	}
	var unknown []string
	for i := 0; i+1 < len(root.Content); i += 2 {
		section, value := root.Content[i].Value, root.Content[i+1]
		keys, ok := knownKeys[section]
		if !ok {
			unknown = append(unknown, section)
			continue
		}
		if value.Kind != yaml.MappingNode {
			continue
		}
		for j := 0; j+1 < len(value.Content); j += 2 {
			if key := value.Content[j].Value; !slices.Contains(keys, key) {
				unknown = append(unknown, section+"."+key)
			}
		}
	}
	return unknown
}

// Resolve layers f (which may be nil) and the command-line options over
// [Default]. Bad values from the file are INVALID_CONFIG; bad values from
// the command line are INVALID_ARGUMENT.
func Resolve(f *File, opts args.Options) (Config, error) {
	cfg := Default()

	if f != nil {
		if err := cfg.applyFile(f); err != nil {
			return Config{}, err
		}
	}

	if v := opts.Optional(args.KeyUpdatePolicy); v != "" {
		p, err := repository.ParseUpdatePolicy(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Policy.UpdatePolicy = p
	}
	if v := opts.Optional(args.KeyChecksumPolicy); v != "" {
		p, err := repository.ParseChecksumPolicy(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Policy.ChecksumPolicy = p
	}
	return cfg, nil
}

func (c *Config) applyFile(f *File) error {
	r := f.Repository
	if id := strings.TrimSpace(r.ID); id != "" {
		c.RepositoryID = id
	}
	if r.Enabled != nil {
		c.Policy.Enabled = *r.Enabled
	}
	if r.UpdatePolicy != "" {
		p, err := repository.ParseUpdatePolicy(r.UpdatePolicy)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "repository.update-policy")
		}
		c.Policy.UpdatePolicy = p
	}
	if r.ChecksumPolicy != "" {
		p, err := repository.ParseChecksumPolicy(r.ChecksumPolicy)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "repository.checksum-policy")
		}
		c.Policy.ChecksumPolicy = p
	}

	t := f.Transport
	if t.Timeout != "" {
		d, err := time.ParseDuration(t.Timeout)
		if err != nil || d <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "transport.timeout: invalid duration %q", t.Timeout)
		}
		c.Transport.Timeout = d
	}
	c.Transport.UserAgent = strings.TrimSpace(t.UserAgent)
	if len(t.Headers) > 0 {
		c.Transport.Headers = make(map[string]string, len(t.Headers))
		for k, v := range t.Headers {
			c.Transport.Headers[k] = v
		}
	}
	return nil
}
