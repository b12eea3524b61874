package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockRuleOrder(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, len(blockRules))
	for _, r := range blockRules {
		names = append(names, r.name)
	}

	assert.Equal(t, []string{
		"fence", "code", "blank", "rule", "heading", "blockquote",
		"ordered-item", "task-item", "list-item", "paragraph",
	}, names)
}

func TestBlockRuleMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		rule string
	}{
		{"```go", "fence"},
		{"   ```", "fence"},
		{"", "blank"},
		{"   ", "blank"},
		{"---", "rule"},
		{" *** ", "rule"},
		{"# One", "heading"},
		{"#### Four", "heading"},
		{"> quote", "blockquote"},
		{">no space", "paragraph"},
		{"12. twelve", "ordered-item"},
		{"- [ ] open", "task-item"},
		{"  - [x] nested", "task-item"},
		{"- item", "list-item"},
		{"    + deep", "list-item"},
		{"-nospace", "paragraph"},
		{"**bold** start", "paragraph"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.line, func(t *testing.T) {
			t.Parallel()

			st := &state{code: make(map[string]CodeBlock)}
			var got string
			for _, r := range blockRules {
				if r.match(st, testCase.line) {
					got = r.name
					break
				}
			}
			assert.Equal(t, testCase.rule, got)
		})
	}
}

func TestCodeRuleShadowsOthers(t *testing.T) {
	t.Parallel()

	st := &state{code: make(map[string]CodeBlock), open: blockCode}
	for _, line := range []string{"# heading", "- item", "", "> quote"} {
		var got string
		for _, r := range blockRules {
			if r.match(st, line) {
				got = r.name
				break
			}
		}
		assert.Equal(t, "code", got, line)
	}
}

func TestStateClose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		open     blockKind
		expected string
	}{
		{blockNone, ""},
		{blockParagraph, "</p>"},
		{blockList, "</ul>"},
		{blockOrderedList, "</ol>"},
		{blockCode, ""},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.open.String(), func(t *testing.T) {
			t.Parallel()

			st := &state{open: testCase.open, depth: 3}
			st.close()

			assert.Equal(t, testCase.expected, st.out.String())
			if testCase.open != blockCode {
				assert.Equal(t, blockNone, st.open)
				assert.Zero(t, st.depth)
			}
		})
	}
}
