package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/postpipe/core/markdown"
	"github.com/gaurav-prasanna/postpipe/core/render"
	"github.com/gaurav-prasanna/postpipe/internal/logging"
)

var (
	flagRenderHighlight bool
	flagRenderEngine    string
	flagRenderCodeMap   bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file|-]",
	Short: "Render a post body to an HTML fragment on stdout",
	Long: `Render converts the Markdown body of a post (front matter is skipped) into
an HTML fragment. With no argument, or "-", the post is read from stdin.

With --code-map the code blocks are not filled in: the output is JSON with the
markup and the map of code block ids to their language and text.

Examples:
  postpipe render post.md
  cat post.md | postpipe render --highlight=false
  postpipe render post.md --code-map`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().BoolVar(&flagRenderHighlight, "highlight", true, "Highlight code blocks (default from config)")
	renderCmd.Flags().StringVar(&flagRenderEngine, "engine", "", "Rendering engine: builtin or goldmark (default from config)")
	renderCmd.Flags().BoolVar(&flagRenderCodeMap, "code-map", false, "Print markup and code map as JSON instead of HTML")
}

func runRender(cmd *cobra.Command, args []string) error {
	logger := logging.FromContext(cmd.Context())

	name := stdinName
	if len(args) == 1 {
		name = args[0]
	}
	p, err := readPost(cmd, name)
	if err != nil {
		return err
	}

	if flagRenderCodeMap {
		res := markdown.Render(p.Body)
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		logger.Debug("rendered code map", logging.FieldBlocks, len(res.Code))
		return nil
	}

	h := newHighlighter(cfg, highlightEnabled(cmd, cfg, flagRenderHighlight))
	engine, err := newEngine(cfg, flagRenderEngine, h)
	if err != nil {
		return err
	}

	out, err := render.Body(engine, p.Body)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", p.Meta.Source, err)
	}
	logger.Debug("rendered post", logging.FieldPath, p.Meta.Source, logging.FieldEngine, engine.Name())

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
