// Package post parses post source files: optional YAML front matter
// followed by a Markdown (or HTML) body.
package post

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/postpipe/core"
)

const frontMatterDelim = "---"

// frontMatter mirrors the keys a post may declare.
type frontMatter struct {
	Title   string `yaml:"title"`
	Slug    string `yaml:"slug"`
	Date    string `yaml:"date"`
	Tags    Tags   `yaml:"tags"`
	Image   string `yaml:"image"`
	Excerpt string `yaml:"excerpt"`
	Draft   bool   `yaml:"draft"`
}

// Tags accepts either a YAML list or a comma separated string.
type Tags []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Tags) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*t = SplitTags(node.Value)
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*t = cleanTags(list)
		return nil
	default:
		return fmt.Errorf("tags: expected string or list at line %d", node.Line)
	}
}

// SplitTags splits "go, web, notes" into its trimmed, non-empty parts.
func SplitTags(s string) []string {
	return cleanTags(strings.Split(s, ","))
}

func cleanTags(in []string) []string {
	out := make([]string, 0, len(in))
	for _, tag := range in {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// Parse splits src into front matter and body. A document without a
// leading "---" line is all body.
func Parse(src []byte, source string) (*core.Post, error) {
	fm, body, err := splitFrontMatter(src)
	if err != nil {
		return nil, err
	}

	var meta frontMatter
	if len(fm) > 0 {
		if err := yaml.Unmarshal(fm, &meta); err != nil {
			return nil, fmt.Errorf("parsing front matter: %w", err)
		}
	}

	p := &core.Post{
		Meta: core.PostMetadata{
			Title:       meta.Title,
			Slug:        meta.Slug,
			Date:        meta.Date,
			DisplayDate: FormatDate(meta.Date),
			Tags:        []string(meta.Tags),
			Image:       meta.Image,
			Excerpt:     meta.Excerpt,
			Draft:       meta.Draft,
			Source:      source,
		},
		Body: body,
	}

	if p.Meta.Slug == "" {
		p.Meta.Slug = Slug(p.Meta.Title)
	}
	if p.Meta.Slug == "" && source != "" {
		p.Meta.Slug = Slug(strings.TrimSuffix(filepath.Base(source), filepath.Ext(source)))
	}
	return p, nil
}

func splitFrontMatter(src []byte) ([]byte, string, error) {
	src = bytes.TrimPrefix(src, []byte("\ufeff"))
	text := string(src)

	first, rest, found := strings.Cut(text, "\n")
	if !found || strings.TrimSpace(first) != frontMatterDelim {
		return nil, text, nil
	}

	lines := strings.Split(rest, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == frontMatterDelim {
			fm := strings.Join(lines[:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return []byte(fm), strings.TrimLeft(body, "\n"), nil
		}
	}
	return nil, "", fmt.Errorf("front matter is not closed by %q", frontMatterDelim)
}

// FormatDate turns "2025-11-01" into "November 1, 2025". Anything that is
// not a YYYY-MM-DD date is returned unchanged.
func FormatDate(s string) string {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return s
	}
	return d.Format("January 2, 2006")
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slug makes a lowercase, dash separated file name from a title.
func Slug(title string) string {
	s := slugInvalid.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}
