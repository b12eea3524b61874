package highlight

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const (
	languagePrefix = "language-"
	languageNone   = "none"
)

// Highlighter runs chroma over the code elements of a fragment.
type Highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
	detect    bool
}

// Option configures a Highlighter.
type Option func(*highlighterOptions)

type highlighterOptions struct {
	style   string
	classes bool
	detect  bool
}

// WithStyle selects a chroma style by name. Unknown names fall back to
// chroma's default style.
func WithStyle(name string) Option {
	return func(o *highlighterOptions) { o.style = name }
}

// WithClasses emits CSS classes instead of inline styles.
func WithClasses(on bool) Option {
	return func(o *highlighterOptions) { o.classes = on }
}

// WithDetect enables language detection for blocks tagged language-none.
func WithDetect(on bool) Option {
	return func(o *highlighterOptions) { o.detect = on }
}

// New creates a Highlighter.
func New(opts ...Option) *Highlighter {
	o := highlighterOptions{style: "github", classes: true}
	for _, opt := range opts {
		opt(&o)
	}

	return &Highlighter{
		style: styles.Get(o.style),
		formatter: chromahtml.New(
			chromahtml.WithClasses(o.classes),
			chromahtml.PreventSurroundingPre(true),
		),
		detect: o.detect,
	}
}

// Highlight replaces the text of each `pre > code` element that names a
// known language with highlighted markup. Blocks with an unknown language
// are left as they are.
func (h *Highlighter) Highlight(fragment string) (string, error) {
	doc, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	var firstErr error
	doc.Find("pre > code").Each(func(_ int, s *goquery.Selection) {
		if firstErr != nil {
			return
		}
		lang := h.language(s)
		if lang == "" {
			return
		}
		lexer := lexers.Get(lang)
		if lexer == nil {
			return
		}

		out, err := h.format(chroma.Coalesce(lexer), s.Text())
		if err != nil {
			firstErr = fmt.Errorf("highlighting %s block: %w", lang, err)
			return
		}
		s.SetHtml(out)
		s.SetAttr("data-language", lang)
		s.Parent().AddClass("chroma")
	})
	if firstErr != nil {
		return "", firstErr
	}

	return renderFragment(doc)
}

// CSS writes the stylesheet for class-based output.
func (h *Highlighter) CSS(w io.Writer) error {
	return h.formatter.WriteCSS(w, h.style)
}

func (h *Highlighter) language(s *goquery.Selection) string {
	class, _ := s.Attr("class")
	lang := ""
	for _, c := range strings.Fields(class) {
		if strings.HasPrefix(c, languagePrefix) {
			lang = strings.TrimPrefix(c, languagePrefix)
			break
		}
	}

	if lang == "" || lang == languageNone {
		if !h.detect {
			return ""
		}
		return Detect(s.Text())
	}
	return strings.ToLower(lang)
}

func (h *Highlighter) format(lexer chroma.Lexer, code string) (string, error) {
	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", err
	}
	// Lexers with EnsureNL append a newline the block never had.
	tokens := it.Tokens()
	if n := len(tokens); n > 0 && !strings.HasSuffix(code, "\n") {
		tokens[n-1].Value = strings.TrimSuffix(tokens[n-1].Value, "\n")
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, chroma.Literator(tokens...)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
