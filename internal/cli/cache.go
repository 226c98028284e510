package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// cacheCommand creates the local repository command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the local artifact repository",
		Long: `Inspect the local artifact repository.

Resolved artifacts are kept in ./local-repo using the Maven repository
layout. mvnfetch never deletes from it; remove the directory by hand to
start over.`,
	}

	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the local repository path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.localRepositoryPath()
			if err != nil {
				return fmt.Errorf("get local repository dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
