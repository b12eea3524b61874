package cmd

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/postpipe/core"
	"github.com/gaurav-prasanna/postpipe/internal/logging"
)

var ogCmd = &cobra.Command{
	Use:   "og <url>",
	Short: "Print the OpenGraph metadata of a page",
	Long: `OG fetches a page and prints its OpenGraph title, description and image as
link_* lines, ready to paste into a post's front matter.

Example:
  postpipe og https://example.com/article`,
	Args: cobra.ExactArgs(1),
	RunE: runOG,
}

func init() {
	rootCmd.AddCommand(ogCmd)
}

func runOG(cmd *cobra.Command, args []string) error {
	rawURL := args[0]
	parsed, err := url.Parse(rawURL)
	if err != nil || !isURL(rawURL) || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}

	og, err := newPreviewer(cfg).Preview(cmd.Context(), rawURL)
	if err != nil {
		return fmt.Errorf("fetching OG data: %w", err)
	}
	logging.FromContext(cmd.Context()).Debug("fetched OG data", logging.FieldURL, rawURL, logging.FieldTitle, og.Title)

	_, err = fmt.Fprint(cmd.OutOrStdout(), formatOG(og))
	return err
}

// formatOG prints og as the link_* block used in post front matter.
func formatOG(og core.OGData) string {
	return fmt.Sprintf("\n# OpenGraph Metadata\n\nlink_url = %q\nlink_title = %q\nlink_description = %q\nlink_image = %q\n\n",
		og.URL, og.Title, og.Description, og.Image)
}
