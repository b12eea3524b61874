// Package output writes rendered posts to disk. A post is written as
// <name><ext>, where the name comes from its slug or, for fetched pages,
// from its URL (https://example.com/blog/post -> example-com-blog-post).
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/gaurav-prasanna/postpipe/core"
	"github.com/gaurav-prasanna/postpipe/core/post"
)

// fallbackName is used when neither slug nor source yields a name.
const fallbackName = "post"

// Writer writes rendered output into one directory.
type Writer struct {
	OutputDir string
}

// New creates a Writer for outputDir, creating the directory if needed.
// An empty outputDir means the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{OutputDir: outputDir}, nil
}

// WritePost writes data under the post's name and returns the path.
func (w *Writer) WritePost(meta core.PostMetadata, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, NameFor(meta)+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// NameFor picks the base file name for a post.
func NameFor(meta core.PostMetadata) string {
	if meta.Slug != "" {
		return meta.Slug
	}
	if u, err := url.Parse(meta.Source); err == nil && u.Host != "" {
		if name := post.Slug(u.Host + "/" + u.Path); name != "" {
			return name
		}
	}
	return fallbackName
}
