package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/postpipe/core"
	"github.com/gaurav-prasanna/postpipe/core/excerpt"
)

// JSONRenderer produces structured JSON for a post: metadata, the body as
// Markdown, HTML and plain text, and a summary of its structure.
type JSONRenderer struct {
	engine core.Engine
}

// NewJSONRenderer creates a JSONRenderer using engine for the HTML form.
func NewJSONRenderer(engine core.Engine) *JSONRenderer {
	return &JSONRenderer{engine: engine}
}

// Render converts the body and metadata into the JSON document.
func (r *JSONRenderer) Render(body string, meta core.PostMetadata) ([]byte, error) {
	content, err := Body(r.engine, body)
	if err != nil {
		return nil, fmt.Errorf("rendering body: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parsing rendered body: %w", err)
	}

	// plainText edits the document, so take the structure first.
	structure := structureOf(doc)
	meta = withExcerpt(meta, doc)
	out := core.PostJSON{
		Metadata: meta,
		Content: core.PostContent{
			Text:     plainText(doc),
			Markdown: body,
			HTML:     content,
		},
		Structure: structure,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

func structureOf(doc *goquery.Document) core.PostStructure {
	s := core.PostStructure{
		Headings:    []core.Heading{},
		Links:       []core.Link{},
		CodeBlocks:  doc.Find("pre").Length(),
		Lists:       doc.Find("ul, ol").Length(),
		Blockquotes: doc.Find("blockquote").Length(),
	}

	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, h *goquery.Selection) {
		level := int(goquery.NodeName(h)[1] - '0')
		s.Headings = append(s.Headings, core.Heading{Level: level, Text: strings.TrimSpace(h.Text())})
	})
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		s.Links = append(s.Links, core.Link{Text: strings.TrimSpace(a.Text()), Href: href})
	})
	return s
}

var spaceRun = regexp.MustCompile(`[ \t]+`)
var blankRun = regexp.MustCompile(`\n{3,}`)

// plainText returns the text of the body with block boundaries kept as
// line breaks.
func plainText(doc *goquery.Document) string {
	doc.Find("p, h1, h2, h3, h4, h5, h6, li, blockquote, pre").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})
	doc.Find("br").ReplaceWithHtml("\n")

	text := doc.Find("body").Text()
	text = spaceRun.ReplaceAllString(text, " ")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	text = blankRun.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(text)
}

// withExcerpt fills in a missing excerpt from the body's paragraphs.
func withExcerpt(meta core.PostMetadata, doc *goquery.Document) core.PostMetadata {
	if meta.Excerpt != "" {
		return meta
	}
	var prose []string
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		prose = append(prose, p.Text())
	})
	meta.Excerpt = excerpt.New(0).Excerpt(strings.Join(prose, " "))
	return meta
}
