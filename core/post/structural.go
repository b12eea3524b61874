package post

import (
	"regexp"
	"strings"

	"golang.org/x/net/html/atom"
)

// structuralTags are the elements whose presence means a body is already
// markup and should not go through the Markdown renderer.
var structuralTags = map[atom.Atom]bool{
	atom.P:          true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Ul:         true,
	atom.Ol:         true,
	atom.Div:        true,
	atom.Blockquote: true,
	atom.Pre:        true,
	atom.Table:      true,
}

var openTagRegex = regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9]*)[\s>/]`)

// HasStructuralMarkup reports whether body already contains block-level
// HTML tags. Tags inside fenced code blocks do not count.
func HasStructuralMarkup(body string) bool {
	for _, m := range openTagRegex.FindAllStringSubmatch(stripFences(body), -1) {
		if structuralTags[atom.Lookup([]byte(strings.ToLower(m[1])))] {
			return true
		}
	}
	return false
}

// stripFences drops the lines between ``` fences.
func stripFences(body string) string {
	var b strings.Builder
	inFence := false
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if !inFence {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
