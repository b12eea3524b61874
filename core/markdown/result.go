package markdown

import (
	"html"
	"sort"
	"strconv"
	"strings"
)

// CodeBlock is the raw content of one fenced code block.
type CodeBlock struct {
	Language string `json:"language"`
	Text     string `json:"text"`
}

// Result is the output of one rendering pass.
type Result struct {
	// HTML is the rendered markup. Closed code blocks appear as empty
	// code elements carrying a data-code-id attribute.
	HTML string `json:"html"`
	// Code maps each data-code-id to the block's raw text.
	Code map[string]CodeBlock `json:"code"`
}

// IDs returns the code block identifiers in document order.
func (r Result) IDs() []string {
	ids := make([]string, 0, len(r.Code))
	for id := range r.Code {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return idNumber(ids[i]) < idNumber(ids[j])
	})
	return ids
}

// Resolved returns the markup with every code element filled with its
// escaped text. Elements whose id has no entry are left empty.
func (r Result) Resolved() string {
	if len(r.Code) == 0 {
		return r.HTML
	}
	pairs := make([]string, 0, 2*len(r.Code))
	for id, block := range r.Code {
		pairs = append(pairs,
			placeholder(id),
			`data-code-id="`+id+`">`+html.EscapeString(block.Text)+"</code>",
		)
	}
	return strings.NewReplacer(pairs...).Replace(r.HTML)
}

func placeholder(id string) string {
	return `data-code-id="` + id + `"></code>`
}

func idNumber(id string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(id, "code-"))
	if err != nil {
		return -1
	}
	return n
}
