// Package markdown implements the line-oriented Markdown renderer used for
// post bodies. It has no I/O and no shared state: every call to Render
// builds its own state and returns the markup together with the raw text
// of each fenced code block.
package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

// inlineRule is a single inline substitution.
type inlineRule struct {
	pattern *regexp.Regexp
	replace string
}

// inlineRules are applied in order, each on the output of the previous one.
// Inline code is handled separately (see FormatInline).
var inlineRules = []inlineRule{
	// Bold+italic.
	{regexp.MustCompile(`\*\*\*(.+?)\*\*\*`), "<strong><em>$1</em></strong>"},
	{regexp.MustCompile(`___(.+?)___`), "<strong><em>$1</em></strong>"},
	// Bold.
	{regexp.MustCompile(`\*\*(.+?)\*\*`), "<strong>$1</strong>"},
	{regexp.MustCompile(`__(.+?)__`), "<strong>$1</strong>"},
	// Italic.
	{regexp.MustCompile(`\*(.+?)\*`), "<em>$1</em>"},
	{regexp.MustCompile(`_(.+?)_`), "<em>$1</em>"},
	// Strikethrough and highlight.
	{regexp.MustCompile(`~~(.+?)~~`), "<del>$1</del>"},
	{regexp.MustCompile(`==(.+?)==`), "<mark>$1</mark>"},
	// Links.
	{regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`), `<a href="$2" target="_blank" rel="noopener noreferrer">$1</a>`},
	// Subscript and superscript.
	{regexp.MustCompile(`~([^~\s]+)~`), "<sub>$1</sub>"},
	{regexp.MustCompile(`\^([^\^]+)\^`), "<sup>$1</sup>"},
}

var codeSpanRegex = regexp.MustCompile("`([^`]+)`")

// Code spans are swapped out for private-use placeholders while the other
// rules run, then swapped back in.
const (
	spanOpen  = "\uE000"
	spanClose = "\uE001"
)

var spanRegex = regexp.MustCompile(spanOpen + `(\d+)` + spanClose)

// FormatInline converts the inline spans of a single line of text.
// Unmatched markers are left as literal characters.
//
// The content of an inline code span is never touched by any other rule,
// so `a_b_c` or `[x](y)` inside backticks comes out as written.
func FormatInline(text string) string {
	var spans []string
	text = codeSpanRegex.ReplaceAllStringFunc(text, func(m string) string {
		spans = append(spans, "<code>"+m[1:len(m)-1]+"</code>")
		return spanOpen + strconv.Itoa(len(spans)-1) + spanClose
	})

	for _, rule := range inlineRules {
		text = rule.pattern.ReplaceAllString(text, rule.replace)
	}

	if len(spans) == 0 {
		return text
	}
	return spanRegex.ReplaceAllStringFunc(text, func(m string) string {
		idx, err := strconv.Atoi(strings.Trim(m, spanOpen+spanClose))
		if err != nil || idx >= len(spans) {
			return m
		}
		return spans[idx]
	})
}
