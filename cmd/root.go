// Package cmd implements the CLI commands for PostPipe using Cobra.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/postpipe/internal/config"
	"github.com/gaurav-prasanna/postpipe/internal/logging"
)

var (
	cfgFile string
	debug   bool

	// cfg is loaded before any subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "postpipe",
	Short: "PostPipe renders blog posts and link previews",
	Long: `PostPipe renders Markdown blog posts to HTML, JSON, PDF or Markdown,
resolves and highlights their code blocks, and builds OpenGraph link
previews for the pages they link to.

Usage:
  postpipe render post.md
  postpipe convert post.md --html
  postpipe og https://example.com/article`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// setup loads the configuration and installs the logger.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if debug {
		c.LogLevel = "debug"
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewWithWriter(cmd.ErrOrStderr(), c.LogLevel)
	logging.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithLogger(ctx, logger))

	cfg = c
	return nil
}
