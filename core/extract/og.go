package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/postpipe/core"
)

// OGExtractor reads OpenGraph metadata from a page, falling back to the
// plain <title> and meta description when the og: tags are missing.
type OGExtractor struct{}

// NewOG creates an OGExtractor.
func NewOG() *OGExtractor {
	return &OGExtractor{}
}

// ExtractOG returns the OpenGraph summary of html, fetched from pageURL.
// Relative image URLs are resolved against pageURL.
func (e *OGExtractor) ExtractOG(pageURL, html string) (core.OGData, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return core.OGData{}, fmt.Errorf("parsing HTML: %w", err)
	}

	data := core.OGData{
		URL:         pageURL,
		Title:       metaContent(doc, `meta[property="og:title"]`),
		Description: metaContent(doc, `meta[property="og:description"]`),
		Image:       metaContent(doc, `meta[property="og:image"]`),
	}

	if data.Title == "" {
		data.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if data.Description == "" {
		data.Description = metaContent(doc, `meta[name="description"]`)
	}
	if data.Image != "" {
		data.Image = resolveAgainst(pageURL, data.Image)
	}

	return data, nil
}

// Title returns the page title: og:title first, then <title>.
func Title(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	if t := metaContent(doc, `meta[property="og:title"]`); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// metaContent returns the first non-empty content attribute among the
// elements matching sel.
func metaContent(doc *goquery.Document, sel string) string {
	var content string
	doc.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if v, ok := s.Attr("content"); ok && strings.TrimSpace(v) != "" {
			content = strings.TrimSpace(v)
			return false
		}
		return true
	})
	return content
}

// resolveAgainst resolves ref relative to base. It returns ref unchanged
// when either fails to parse or ref is already absolute.
func resolveAgainst(base, ref string) string {
	r, err := url.Parse(ref)
	if err != nil || r.IsAbs() {
		return ref
	}
	b, err := url.Parse(base)
	if err != nil || b.Host == "" {
		return ref
	}
	return b.ResolveReference(r).String()
}
