// Package render provides the output renderers for the PostPipe pipeline
// and the engines that turn a Markdown body into HTML.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/gaurav-prasanna/postpipe/core"
	"github.com/gaurav-prasanna/postpipe/core/highlight"
	"github.com/gaurav-prasanna/postpipe/core/markdown"
	"github.com/gaurav-prasanna/postpipe/core/post"
)

// Engine names.
const (
	EngineBuiltin  = "builtin"
	EngineGoldmark = "goldmark"
)

// BuiltinEngine renders with the line-oriented renderer in core/markdown,
// then resolves code blocks and optionally highlights them.
type BuiltinEngine struct {
	highlighter *highlight.Highlighter
}

// NewBuiltinEngine creates a BuiltinEngine. h may be nil to skip
// highlighting.
func NewBuiltinEngine(h *highlight.Highlighter) *BuiltinEngine {
	return &BuiltinEngine{highlighter: h}
}

// Name returns "builtin".
func (e *BuiltinEngine) Name() string { return EngineBuiltin }

// Convert renders body to an HTML fragment.
func (e *BuiltinEngine) Convert(body string) (string, error) {
	out, err := highlight.Resolve(markdown.Render(body))
	if err != nil {
		return "", fmt.Errorf("resolving code blocks: %w", err)
	}
	return highlightWith(e.highlighter, out)
}

// GoldmarkEngine renders GitHub Flavored Markdown with goldmark. Its
// output uses the same language-* classes, so the same highlighter applies.
type GoldmarkEngine struct {
	md          goldmark.Markdown
	highlighter *highlight.Highlighter
}

// NewGoldmarkEngine creates a GoldmarkEngine. h may be nil.
func NewGoldmarkEngine(h *highlight.Highlighter) *GoldmarkEngine {
	return &GoldmarkEngine{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
		highlighter: h,
	}
}

// Name returns "goldmark".
func (e *GoldmarkEngine) Name() string { return EngineGoldmark }

// Convert renders body to an HTML fragment.
func (e *GoldmarkEngine) Convert(body string) (string, error) {
	var buf bytes.Buffer
	if err := e.md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("goldmark: %w", err)
	}
	return highlightWith(e.highlighter, buf.String())
}

func highlightWith(h *highlight.Highlighter, fragment string) (string, error) {
	if h == nil {
		return fragment, nil
	}
	out, err := h.Highlight(fragment)
	if err != nil {
		return "", fmt.Errorf("highlighting: %w", err)
	}
	return out, nil
}

// NewEngine returns the engine called name.
func NewEngine(name string, h *highlight.Highlighter) (core.Engine, error) {
	switch name {
	case EngineBuiltin, "":
		return NewBuiltinEngine(h), nil
	case EngineGoldmark:
		return NewGoldmarkEngine(h), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", name)
	}
}

// Body renders a post body with e, unless the body already carries
// structural markup, in which case it is returned as is.
func Body(e core.Engine, body string) (string, error) {
	if post.HasStructuralMarkup(body) {
		return body, nil
	}
	return e.Convert(body)
}
