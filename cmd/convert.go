// Convert orchestrates the pipeline for a post file or a URL:
// (fetch → extract → normalize →) render → write.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/postpipe/core"
	"github.com/gaurav-prasanna/postpipe/core/extract"
	"github.com/gaurav-prasanna/postpipe/core/normalize"
	"github.com/gaurav-prasanna/postpipe/core/output"
	"github.com/gaurav-prasanna/postpipe/core/render"
	"github.com/gaurav-prasanna/postpipe/internal/logging"
)

var (
	// ErrNoFormat is returned when no output format flag is given.
	ErrNoFormat = errors.New("no output format specified; use one of --html, --json, --pdf, --markdown")
	// ErrMultipleFormats is returned when more than one output format flag is given.
	ErrMultipleFormats = errors.New("only one output format may be specified at a time")
)

var (
	flagHTML      bool
	flagJSON      bool
	flagPDF       bool
	flagMarkdown  bool
	flagEngine    string
	flagOutputDir string
)

var convertCmd = &cobra.Command{
	Use:   "convert <post.md|url>",
	Short: "Convert a post or a web page to the specified output format",
	Long: `Convert renders a Markdown post to HTML, JSON, PDF or Markdown. Given a URL
instead, it fetches the page, extracts the main content and normalizes it to
Markdown first.

Examples:
  postpipe convert posts/hello.md --html
  postpipe convert posts/hello.md --json --output_dir ./out
  postpipe convert https://example.com/article --pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVar(&flagHTML, "html", false, "Output a standalone HTML page")
	convertCmd.Flags().BoolVar(&flagJSON, "json", false, "Output structured JSON")
	convertCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")
	convertCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown with front matter")

	convertCmd.Flags().StringVar(&flagEngine, "engine", "", "Rendering engine: builtin or goldmark (default from config)")
	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default from config, then current directory)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)
	input := args[0]

	if err := validateFlags(); err != nil {
		return err
	}

	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	dir := flagOutputDir
	if dir == "" {
		dir = cfg.OutputDir
	}
	writer, err := output.New(dir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	var p *core.Post
	if isURL(input) {
		p, err = fetchPost(ctx, input)
	} else {
		p, err = readPost(cmd, input)
	}
	if err != nil {
		return err
	}
	if p.Meta.Draft {
		logger.Warn("converting a draft", logging.FieldPath, p.Meta.Source)
	}

	data, err := renderer.Render(p.Body, p.Meta)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	path, err := writer.WritePost(p.Meta, data, renderer.Extension())
	if err != nil {
		return err
	}

	logger.Info("written", logging.FieldPath, path, logging.FieldFormat, renderer.Extension(), logging.FieldBytes, len(data))
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	return nil
}

// validateFlags checks that exactly one output format is selected.
func validateFlags() error {
	count := 0
	for _, f := range []bool{flagHTML, flagJSON, flagPDF, flagMarkdown} {
		if f {
			count++
		}
	}
	switch {
	case count == 0:
		return ErrNoFormat
	case count > 1:
		return ErrMultipleFormats
	}
	return nil
}

// selectRenderer returns the renderer for the chosen output format.
func selectRenderer() (core.Renderer, error) {
	switch {
	case flagPDF:
		return render.NewPDFRenderer(), nil
	case flagMarkdown:
		return render.NewMarkdownRenderer(), nil
	}

	h := newHighlighter(cfg, cfg.Highlight.Enabled)
	engine, err := newEngine(cfg, flagEngine, h)
	if err != nil {
		return nil, err
	}
	if flagJSON {
		return render.NewJSONRenderer(engine), nil
	}

	css, err := highlightCSS(cfg, h)
	if err != nil {
		return nil, err
	}
	return render.NewHTMLRenderer(engine, render.WithCSS(css)), nil
}

// fetchPost turns a web page into a post: fetch, extract the main
// content, normalize it to Markdown and take metadata from OpenGraph.
func fetchPost(ctx context.Context, rawURL string) (*core.Post, error) {
	logger := logging.FromContext(ctx)

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}

	result, err := newFetcher(cfg).Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	content, err := extract.New().Extract(result.HTML)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	body, err := normalize.New().Normalize(content)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	og, err := extract.NewOG().ExtractOG(rawURL, result.HTML)
	if err != nil {
		return nil, fmt.Errorf("extract metadata: %w", err)
	}
	logger.Debug("fetched page", logging.FieldURL, rawURL, logging.FieldTitle, og.Title, logging.FieldBytes, len(body))

	return &core.Post{
		Meta: core.PostMetadata{
			Title:   og.Title,
			Excerpt: og.Description,
			Image:   og.Image,
			Source:  rawURL,
		},
		Body: body,
	}, nil
}
