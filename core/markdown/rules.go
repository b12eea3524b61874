package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

// blockRule pairs a line predicate with the handler that renders it.
// apply returns the number of lines consumed (at least one).
type blockRule struct {
	name  string
	match func(st *state, line string) bool
	apply func(st *state, lines []string, i int) int
}

const fence = "```"

var (
	orderedItemRegex   = regexp.MustCompile(`^\s*\d+\.\s+(.*)$`)
	taskItemRegex      = regexp.MustCompile(`^\s*- \[( |x|X)\] (.*)$`)
	unorderedItemRegex = regexp.MustCompile(`^(\s*)[-*+] (.*)$`)
)

// headingPrefixes are checked longest first so "#### x" is never read as
// a level-1 heading.
var headingPrefixes = []string{"###### ", "##### ", "#### ", "### ", "## ", "# "}

// blockRules is evaluated top to bottom; the first match wins.
var blockRules = []blockRule{
	{name: "fence", match: matchFence, apply: applyFence},
	{name: "code", match: matchInCode, apply: applyInCode},
	{name: "blank", match: matchBlank, apply: applyBlank},
	{name: "rule", match: matchRule, apply: applyRule},
	{name: "heading", match: matchHeading, apply: applyHeading},
	{name: "blockquote", match: matchQuote, apply: applyQuote},
	{name: "ordered-item", match: matchOrderedItem, apply: applyOrderedItem},
	{name: "task-item", match: matchTaskItem, apply: applyTaskItem},
	{name: "list-item", match: matchListItem, apply: applyListItem},
	{name: "paragraph", match: matchAny, apply: applyParagraph},
}

func matchFence(_ *state, line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), fence)
}

func applyFence(st *state, lines []string, i int) int {
	if st.open == blockCode {
		st.closeCode()
		return 1
	}
	lang := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[i]), fence))
	st.openCode(lang)
	return 1
}

func matchInCode(st *state, _ string) bool {
	return st.open == blockCode
}

func applyInCode(st *state, lines []string, i int) int {
	st.buf.WriteString(lines[i])
	st.buf.WriteByte('\n')
	return 1
}

func matchBlank(_ *state, line string) bool {
	return strings.TrimSpace(line) == ""
}

func applyBlank(st *state, _ []string, _ int) int {
	st.close()
	return 1
}

func matchRule(_ *state, line string) bool {
	switch strings.TrimSpace(line) {
	case "---", "***", "___":
		return true
	}
	return false
}

func applyRule(st *state, _ []string, _ int) int {
	st.close()
	st.out.WriteString("<hr>")
	return 1
}

func headingLevel(line string) int {
	for _, p := range headingPrefixes {
		if strings.HasPrefix(line, p) {
			return len(p) - 1
		}
	}
	return 0
}

func matchHeading(_ *state, line string) bool {
	return headingLevel(line) > 0
}

func applyHeading(st *state, lines []string, i int) int {
	level := headingLevel(lines[i])
	text := strings.TrimSpace(lines[i][level+1:])
	tag := "h" + strconv.Itoa(level)

	st.close()
	st.out.WriteString("<" + tag + ">" + FormatInline(text) + "</" + tag + ">")
	return 1
}

const quotePrefix = "> "

func matchQuote(_ *state, line string) bool {
	return strings.HasPrefix(line, quotePrefix)
}

func applyQuote(st *state, lines []string, i int) int {
	st.close()

	var parts []string
	n := 0
	for i+n < len(lines) && strings.HasPrefix(lines[i+n], quotePrefix) {
		parts = append(parts, strings.TrimPrefix(lines[i+n], quotePrefix))
		n++
	}
	st.out.WriteString("<blockquote>" + FormatInline(strings.Join(parts, "<br>")) + "</blockquote>")
	return n
}

func matchOrderedItem(_ *state, line string) bool {
	return orderedItemRegex.MatchString(line)
}

func applyOrderedItem(st *state, lines []string, i int) int {
	m := orderedItemRegex.FindStringSubmatch(lines[i])

	st.closeUnless(blockOrderedList)
	if st.open != blockOrderedList {
		st.out.WriteString("<ol>")
		st.open = blockOrderedList
	}
	st.out.WriteString("<li>" + FormatInline(m[1]) + "</li>")
	return 1
}

func matchTaskItem(_ *state, line string) bool {
	return taskItemRegex.MatchString(line)
}

func applyTaskItem(st *state, lines []string, i int) int {
	m := taskItemRegex.FindStringSubmatch(lines[i])

	st.closeUnless(blockList)
	if st.open != blockList {
		st.out.WriteString(`<ul class="task-list">`)
		st.open = blockList
	}

	checkbox := `<input type="checkbox" disabled>`
	if m[1] == "x" {
		checkbox = `<input type="checkbox" disabled checked>`
	}
	st.out.WriteString(`<li class="task-item">` + checkbox + " " + FormatInline(m[2]) + "</li>")
	return 1
}

func matchListItem(_ *state, line string) bool {
	return unorderedItemRegex.MatchString(line)
}

func applyListItem(st *state, lines []string, i int) int {
	m := unorderedItemRegex.FindStringSubmatch(lines[i])

	st.closeUnless(blockList)
	if st.open != blockList {
		st.out.WriteString("<ul>")
		st.open = blockList
	}
	st.depth = len(m[1]) / 2
	st.out.WriteString(`<li class="depth-` + strconv.Itoa(st.depth) + `">` + FormatInline(m[2]) + "</li>")
	return 1
}

func matchAny(_ *state, _ string) bool {
	return true
}

func applyParagraph(st *state, lines []string, i int) int {
	st.closeUnless(blockParagraph)
	if st.open != blockParagraph {
		st.out.WriteString("<p>")
		st.open = blockParagraph
	}
	st.out.WriteString(FormatInline(strings.TrimSpace(lines[i])) + " ")
	return 1
}
