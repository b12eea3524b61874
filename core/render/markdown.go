package render

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/postpipe/core"
)

// MarkdownRenderer writes the body back out as a post file: YAML front
// matter from the metadata followed by the Markdown body. Converting a
// fetched page with it produces a post ready to be edited.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

type frontMatterOut struct {
	Title   string   `yaml:"title,omitempty"`
	Slug    string   `yaml:"slug,omitempty"`
	Date    string   `yaml:"date,omitempty"`
	Tags    []string `yaml:"tags,omitempty"`
	Image   string   `yaml:"image,omitempty"`
	Excerpt string   `yaml:"excerpt,omitempty"`
	Draft   bool     `yaml:"draft,omitempty"`
	Source  string   `yaml:"source,omitempty"`
}

// Render returns the front matter and body.
func (r *MarkdownRenderer) Render(body string, meta core.PostMetadata) ([]byte, error) {
	fm, err := yaml.Marshal(frontMatterOut{
		Title:   meta.Title,
		Slug:    meta.Slug,
		Date:    meta.Date,
		Tags:    meta.Tags,
		Image:   meta.Image,
		Excerpt: meta.Excerpt,
		Draft:   meta.Draft,
		Source:  meta.Source,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(fm)
	buf.WriteString("---\n\n")
	buf.WriteString(body)
	if n := len(body); n > 0 && body[n-1] != '\n' {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
