package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/funtime/mvnfetch/pkg/args"
	"github.com/funtime/mvnfetch/pkg/buildinfo"
	"github.com/funtime/mvnfetch/pkg/repository"
	"github.com/funtime/mvnfetch/pkg/transport"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives the result summary; Err receives the spinner.
	Out io.Writer
	Err io.Writer

	// LocalDir is the local repository root. Empty means "local-repo" in
	// the working directory.
	LocalDir string

	// Registry selects transports by URL scheme. Nil means the default
	// http/https registry.
	Registry *transport.Registry
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		Err:    w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself fetches an artifact.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   buildinfo.Name + " gav=<group:artifact:version> extension=<ext> repo-url=<url> output=<path> [key=value...]",
		Short: "Fetch a single Maven artifact into a file",
		Long: `mvnfetch resolves one artifact against one remote Maven repository,
caches it in ./local-repo and copies it to the output path.

Inputs are key=value tokens in any order:
  gav=<g:a:v>              artifact coordinate (required)
  extension=<ext>          packaging extension, e.g. jar or pom (required)
  repo-url=<url>           remote repository base URL (required)
  output=<path>            destination file (required)
  classifier=<c>           artifact classifier, e.g. sources
  update-policy=<p>        always, daily, never or interval:N (minutes)
  checksum-policy=<p>      fail, warn or ignore
  config=<file>            TOML or YAML repository and transport settings`,
		Example:      "  mvnfetch gav=junit:junit:4.13.2 extension=jar repo-url=https://repo.maven.apache.org/maven2 output=lib/junit.jar",
		Version:      buildinfo.Version,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, tokens []string) error {
			_, err := c.fetch(cmd.Context(), tokens)
			return err
		},
		ValidArgsFunction: func(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			keys := append(append([]string{}, args.Required...), args.KeyClassifier, args.KeyUpdatePolicy, args.KeyChecksumPolicy, args.KeyConfig)
			for i, k := range keys {
				keys[i] = k + "="
			}
			return keys, cobra.ShellCompDirectiveNoSpace
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Paths
// =============================================================================

// localRepository returns the local repository used by every command.
func (c *CLI) localRepository() *repository.Local {
	return repository.NewLocal(c.LocalDir)
}

// localRepositoryPath returns the absolute local repository path.
func (c *CLI) localRepositoryPath() (string, error) {
	return filepath.Abs(c.localRepository().Dir())
}

// formatKeys joins option keys for log output.
func formatKeys(keys []string) string {
	return strings.Join(keys, ", ")
}
