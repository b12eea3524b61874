package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/postpipe/core/extract"
	"github.com/gaurav-prasanna/postpipe/core/render"
	"github.com/gaurav-prasanna/postpipe/internal/logging"
	"github.com/gaurav-prasanna/postpipe/preview"
)

var (
	flagPreviewBase     string
	flagPreviewExternal bool
)

var previewsCmd = &cobra.Command{
	Use:   "previews <post.md|->",
	Short: "Print OpenGraph previews for every link in a post as JSON",
	Long: `Previews renders a post, collects its outbound links and fetches the
OpenGraph metadata of each. Relative links are resolved against --base and
dropped when no base is given. Links that fail to load are skipped.

Example:
  postpipe previews posts/hello.md --base https://blog.example.com/posts/hello`,
	Args: cobra.ExactArgs(1),
	RunE: runPreviews,
}

func init() {
	rootCmd.AddCommand(previewsCmd)

	previewsCmd.Flags().StringVar(&flagPreviewBase, "base", "", "URL the post is published at, for relative links")
	previewsCmd.Flags().BoolVar(&flagPreviewExternal, "external", false, "Only preview links to other hosts")
}

func runPreviews(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	p, err := readPost(cmd, args[0])
	if err != nil {
		return err
	}

	engine, err := newEngine(cfg, "", nil)
	if err != nil {
		return err
	}
	fragment, err := render.Body(engine, p.Body)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", p.Meta.Source, err)
	}

	opts := []preview.Option{preview.WithMaxLinks(cfg.Preview.MaxLinks)}
	if flagPreviewExternal {
		opts = append(opts, preview.WithExternalOnly())
	}
	previewer := preview.New(newFetcher(cfg), extract.NewOG(), opts...)

	previews, err := previewer.Previews(ctx, fragment, flagPreviewBase)
	if err != nil {
		return fmt.Errorf("building previews: %w", err)
	}
	logging.FromContext(ctx).Info("previews ready", logging.FieldPath, p.Meta.Source, logging.FieldLinks, len(previews))

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(previews)
}
