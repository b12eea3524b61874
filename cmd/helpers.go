package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/postpipe/core"
	"github.com/gaurav-prasanna/postpipe/core/extract"
	"github.com/gaurav-prasanna/postpipe/core/fetch"
	"github.com/gaurav-prasanna/postpipe/core/highlight"
	"github.com/gaurav-prasanna/postpipe/core/post"
	"github.com/gaurav-prasanna/postpipe/core/render"
	"github.com/gaurav-prasanna/postpipe/internal/config"
	"github.com/gaurav-prasanna/postpipe/preview"
)

// stdinName is the argument that reads a post from standard input.
const stdinName = "-"

// newHighlighter returns nil when highlighting is off.
func newHighlighter(c *config.Config, enabled bool) *highlight.Highlighter {
	if !enabled {
		return nil
	}
	return highlight.New(
		highlight.WithStyle(c.Highlight.Style),
		highlight.WithClasses(c.Highlight.Classes),
		highlight.WithDetect(c.Highlight.Detect),
	)
}

// highlightCSS returns the stylesheet to embed for class-based output.
func highlightCSS(c *config.Config, h *highlight.Highlighter) (string, error) {
	if h == nil || !c.Highlight.Classes {
		return "", nil
	}
	var buf bytes.Buffer
	if err := h.CSS(&buf); err != nil {
		return "", fmt.Errorf("writing highlight CSS: %w", err)
	}
	return buf.String(), nil
}

// newEngine builds the configured engine. An explicit name wins over the
// config.
func newEngine(c *config.Config, name string, h *highlight.Highlighter) (core.Engine, error) {
	if name == "" {
		name = c.Engine
	}
	return render.NewEngine(name, h)
}

func newFetcher(c *config.Config) core.Fetcher {
	return fetch.New(
		fetch.WithTimeout(c.Fetch.Timeout),
		fetch.WithUserAgent(c.Fetch.UserAgent),
	)
}

func newPreviewer(c *config.Config) *preview.Previewer {
	return preview.New(newFetcher(c), extract.NewOG(), preview.WithMaxLinks(c.Preview.MaxLinks))
}

// highlightEnabled lets --highlight override the config only when given.
func highlightEnabled(cmd *cobra.Command, c *config.Config, flag bool) bool {
	if cmd.Flags().Changed("highlight") {
		return flag
	}
	return c.Highlight.Enabled
}

// readPost reads and parses a post from a file, or from stdin for "-".
func readPost(cmd *cobra.Command, name string) (*core.Post, error) {
	var (
		src []byte
		err error
	)
	if name == "" || name == stdinName {
		name = "stdin"
		src, err = io.ReadAll(cmd.InOrStdin())
	} else {
		src, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	p, err := post.Parse(src, name)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return p, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
