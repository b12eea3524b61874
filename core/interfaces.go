// Package core defines the pipeline types and interfaces for PostPipe.
// Each stage of the pipeline is a small, testable interface.
package core

import "context"

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// PostMetadata describes a single post, taken from its front matter or,
// for fetched pages, from the page itself.
type PostMetadata struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Date        string   `json:"date,omitempty"`         // YYYY-MM-DD as written
	DisplayDate string   `json:"display_date,omitempty"` // e.g. "November 1, 2025"
	Tags        []string `json:"tags,omitempty"`
	Image       string   `json:"image,omitempty"`
	Excerpt     string   `json:"excerpt,omitempty"`
	Draft       bool     `json:"draft,omitempty"`
	Source      string   `json:"source"` // file path or URL
}

// Post is a parsed post: metadata plus the raw body.
type Post struct {
	Meta PostMetadata
	Body string
}

// OGData is the OpenGraph summary of a page.
type OGData struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Heading represents a single heading found in the content.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link represents a hyperlink found in the content.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// PostContent holds the body in its different forms.
type PostContent struct {
	Text     string `json:"text"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

// PostStructure holds structural counts parsed from the body.
type PostStructure struct {
	Headings    []Heading `json:"headings"`
	Links       []Link    `json:"links"`
	CodeBlocks  int       `json:"code_blocks"`
	Lists       int       `json:"lists"`
	Blockquotes int       `json:"blockquotes"`
}

// PostJSON is the complete JSON output for a single post.
type PostJSON struct {
	Metadata  PostMetadata  `json:"metadata"`
	Content   PostContent   `json:"content"`
	Structure PostStructure `json:"structure"`
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor pulls the main content from raw HTML, stripping noise.
type Extractor interface {
	Extract(html string) (string, error)
}

// MetaExtractor pulls OpenGraph metadata out of a fetched page.
type MetaExtractor interface {
	ExtractOG(pageURL, html string) (OGData, error)
}

// Normalizer converts cleaned HTML into Markdown.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Engine converts a Markdown body into an HTML fragment.
type Engine interface {
	Convert(markdown string) (string, error)
	Name() string
}

// Renderer converts a body (and metadata) into a final output format.
type Renderer interface {
	Render(body string, meta PostMetadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".html", ".pdf").
	Extension() string
}
