package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/postpipe/core"
)

// pageTemplate follows the markup of the blog post viewer: title, meta
// line with date and tags, optional image, then the content.
var pageTemplate = template.Must(template.New("post").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Meta.Title}}</title>
{{- if .Meta.Excerpt}}
<meta name="description" content="{{.Meta.Excerpt}}">
<meta property="og:description" content="{{.Meta.Excerpt}}">
{{- end}}
<meta property="og:title" content="{{.Meta.Title}}">
{{- if .Meta.Image}}
<meta property="og:image" content="{{.Meta.Image}}">
{{- end}}
{{- if .CSS}}
<style>{{.CSS}}</style>
{{- end}}
</head>
<body>
<article class="post">
{{- if .Meta.Title}}
<h1 class="viewer-post-title">{{.Meta.Title}}</h1>
{{- end}}
<div class="viewer-post-meta">
{{- if .Meta.Date}}<time class="viewer-post-date" datetime="{{.Meta.Date}}">{{.Meta.DisplayDate}}</time>{{end}}
{{- if .Meta.Tags}}<div class="viewer-post-tags">{{range .Meta.Tags}}<span class="tag">{{.}}</span>{{end}}</div>{{end -}}
</div>
{{- if .Meta.Image}}
<div class="viewer-post-image"><img src="{{.Meta.Image}}" alt="{{.Meta.Title}}"></div>
{{- end}}
<div class="viewer-post-content">{{.Body}}</div>
</article>
</body>
</html>
`))

// HTMLRenderer renders a post to HTML with an Engine. By default it
// produces a standalone page; in fragment mode only the body markup.
type HTMLRenderer struct {
	engine   core.Engine
	css      string
	fragment bool
}

// HTMLOption configures an HTMLRenderer.
type HTMLOption func(*HTMLRenderer)

// WithCSS embeds a stylesheet (e.g. the highlighter's) in the page head.
func WithCSS(css string) HTMLOption {
	return func(r *HTMLRenderer) { r.css = css }
}

// AsFragment makes Render return only the body markup.
func AsFragment() HTMLOption {
	return func(r *HTMLRenderer) { r.fragment = true }
}

// NewHTMLRenderer creates an HTMLRenderer using engine.
func NewHTMLRenderer(engine core.Engine, opts ...HTMLOption) *HTMLRenderer {
	r := &HTMLRenderer{engine: engine}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type pageData struct {
	Meta core.PostMetadata
	Body template.HTML
	CSS  template.CSS
}

// Render converts the body and wraps it in the page template.
func (r *HTMLRenderer) Render(body string, meta core.PostMetadata) ([]byte, error) {
	content, err := Body(r.engine, body)
	if err != nil {
		return nil, fmt.Errorf("rendering body: %w", err)
	}
	if r.fragment {
		return []byte(content), nil
	}

	if meta.Excerpt == "" {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
		if err != nil {
			return nil, fmt.Errorf("parsing rendered body: %w", err)
		}
		meta = withExcerpt(meta, doc)
	}

	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, pageData{
		Meta: meta,
		Body: template.HTML(content), //nolint:gosec // body markup is produced by the engine
		CSS:  template.CSS(r.css),    //nolint:gosec // stylesheet comes from chroma
	})
	if err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}
