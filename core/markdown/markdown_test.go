package markdown_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/postpipe/core/markdown"
)

func TestFormatInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bold italic", "***bold italic***", "<strong><em>bold italic</em></strong>"},
		{"bold italic underscores", "___both___", "<strong><em>both</em></strong>"},
		{"bold", "a **b** c", "a <strong>b</strong> c"},
		{"bold underscores", "__b__", "<strong>b</strong>"},
		{"italic", "*i*", "<em>i</em>"},
		{"bold then italic", "**b** and *i*", "<strong>b</strong> and <em>i</em>"},
		{"strikethrough", "~~gone~~", "<del>gone</del>"},
		{"highlight", "==hi==", "<mark>hi</mark>"},
		{"inline code", "run `ls`", "run <code>ls</code>"},
		{
			"link",
			"[site](https://example.com)",
			`<a href="https://example.com" target="_blank" rel="noopener noreferrer">site</a>`,
		},
		{"subscript", "H~2~O", "H<sub>2</sub>O"},
		{"subscript needs no whitespace", "~a b~", "~a b~"},
		{"superscript", "x^2^", "x<sup>2</sup>"},
		{"strike before subscript", "~~a~~ and ~b~", "<del>a</del> and <sub>b</sub>"},
		{"unmatched marker", "unmatched *star", "unmatched *star"},
		{"plain text", "nothing here", "nothing here"},
		{"empty", "", ""},
		{"code protects underscores", "`a_b_c`", "<code>a_b_c</code>"},
		{"code protects links", "`[x](y)`", "<code>[x](y)</code>"},
		{"code protects carets and tildes", "`~a~ ^b^`", "<code>~a~ ^b^</code>"},
		{"code inside bold", "**`x`**", "<strong><code>x</code></strong>"},
		{"two code spans", "`a` and `*b*`", "<code>a</code> and <code>*b*</code>"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, markdown.FormatInline(testCase.input))
		})
	}
}

func TestRenderBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name: "end to end",
			input: "# Title\n\nSome **bold** and *italic* text.\n\n- item one\n- item two",
			expected: "<h1>Title</h1>" +
				"<p>Some <strong>bold</strong> and <em>italic</em> text. </p>" +
				`<ul><li class="depth-0">item one</li><li class="depth-0">item two</li></ul>`,
		},
		{
			name:     "paragraph lines joined with spaces",
			input:    "one\ntwo",
			expected: "<p>one two </p>",
		},
		{
			name:     "heading precedence",
			input:    "#### Four",
			expected: "<h4>Four</h4>",
		},
		{
			name:     "all heading levels",
			input:    "# 1\n## 2\n### 3\n#### 4\n##### 5\n###### 6",
			expected: "<h1>1</h1><h2>2</h2><h3>3</h3><h4>4</h4><h5>5</h5><h6>6</h6>",
		},
		{
			name:     "heading needs a space",
			input:    "#tag",
			expected: "<p>#tag </p>",
		},
		{
			name:     "blockquote continuation",
			input:    "> one\n> two",
			expected: "<blockquote>one<br>two</blockquote>",
		},
		{
			name:     "blockquote then paragraph",
			input:    "> quoted **bit**\nafter",
			expected: "<blockquote>quoted <strong>bit</strong></blockquote><p>after </p>",
		},
		{
			name:  "task items",
			input: "- [x] done\n- [ ] todo",
			expected: `<ul class="task-list">` +
				`<li class="task-item"><input type="checkbox" disabled checked> done</li>` +
				`<li class="task-item"><input type="checkbox" disabled> todo</li>` +
				`</ul>`,
		},
		{
			name:  "uppercase X is not checked",
			input: "- [X] shouting",
			expected: `<ul class="task-list">` +
				`<li class="task-item"><input type="checkbox" disabled> shouting</li>` +
				`</ul>`,
		},
		{
			name:  "task item joins open list",
			input: "- plain\n- [x] done",
			expected: `<ul><li class="depth-0">plain</li>` +
				`<li class="task-item"><input type="checkbox" disabled checked> done</li></ul>`,
		},
		{
			name:  "nested depth",
			input: "- a\n  - b\n    - c\n   - d",
			expected: `<ul><li class="depth-0">a</li><li class="depth-1">b</li>` +
				`<li class="depth-2">c</li><li class="depth-1">d</li></ul>`,
		},
		{
			name:     "all bullet markers",
			input:    "- a\n* b\n+ c",
			expected: `<ul><li class="depth-0">a</li><li class="depth-0">b</li><li class="depth-0">c</li></ul>`,
		},
		{
			name:     "ordered list",
			input:    "1. one\n2. *two*",
			expected: "<ol><li>one</li><li><em>two</em></li></ol>",
		},
		{
			name:     "ordered then unordered",
			input:    "1. one\n- two",
			expected: `<ol><li>one</li></ol><ul><li class="depth-0">two</li></ul>`,
		},
		{
			name:     "list then paragraph",
			input:    "- a\ntext",
			expected: `<ul><li class="depth-0">a</li></ul><p>text </p>`,
		},
		{
			name:     "paragraph then list",
			input:    "text\n- a",
			expected: `<p>text </p><ul><li class="depth-0">a</li></ul>`,
		},
		{
			name:     "horizontal rules",
			input:    "a\n---\nb\n***\n___",
			expected: "<p>a </p><hr><p>b </p><hr><hr>",
		},
		{
			name:     "blank lines only",
			input:    "\n\n  \n",
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "unterminated fence",
			input:    "```py\nprint(1)",
			expected: "<pre><code>print(1)\n</code></pre>",
		},
		{
			name:     "unterminated fence keeps whitespace",
			input:    "intro\n```\n  a  \n\n",
			expected: "<p>intro </p><pre><code>  a  \n\n\n</code></pre>",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			res := markdown.Render(testCase.input)
			assert.Equal(t, testCase.expected, res.HTML)
		})
	}
}

func TestRenderCodeBlocks(t *testing.T) {
	t.Parallel()

	t.Run("language and content", func(t *testing.T) {
		t.Parallel()

		res := markdown.Render("text\n```go\nfunc main() {\n\tx := 1\n}\n```\nafter")

		assert.Equal(t,
			`<p>text </p><pre><code class="language-go" data-code-id="code-0"></code></pre><p>after </p>`,
			res.HTML)
		require.Contains(t, res.Code, "code-0")
		assert.Equal(t, markdown.CodeBlock{Language: "go", Text: "func main() {\n\tx := 1\n}"}, res.Code["code-0"])
	})

	t.Run("no language", func(t *testing.T) {
		t.Parallel()

		res := markdown.Render("```\nplain\n```")

		assert.Equal(t, `<pre><code class="language-none" data-code-id="code-0"></code></pre>`, res.HTML)
		assert.Equal(t, "", res.Code["code-0"].Language)
	})

	t.Run("whitespace preserved except one trailing newline", func(t *testing.T) {
		t.Parallel()

		res := markdown.Render("```\n  leading\ntrailing  \n\n```")

		assert.Equal(t, "  leading\ntrailing  \n", res.Code["code-0"].Text)
	})

	t.Run("markers inside code are not rendered", func(t *testing.T) {
		t.Parallel()

		res := markdown.Render("```md\n# not a heading\n- not a list\n**raw**\n```")

		assert.NotContains(t, res.HTML, "<h1>")
		assert.Equal(t, "# not a heading\n- not a list\n**raw**", res.Code["code-0"].Text)
	})

	t.Run("fence closes open blocks", func(t *testing.T) {
		t.Parallel()

		res := markdown.Render("- item\n```sh\nls\n```")

		assert.Equal(t,
			`<ul><li class="depth-0">item</li></ul><pre><code class="language-sh" data-code-id="code-0"></code></pre>`,
			res.HTML)
	})

	t.Run("ids are unique and ordered", func(t *testing.T) {
		t.Parallel()

		var src strings.Builder
		for i := 0; i < 12; i++ {
			src.WriteString("```\nblock\n```\n")
		}
		res := markdown.Render(src.String())

		ids := res.IDs()
		require.Len(t, ids, 12)
		assert.Equal(t, "code-0", ids[0])
		assert.Equal(t, "code-11", ids[11])
		for _, id := range ids {
			assert.Equal(t, 1, strings.Count(res.HTML, `data-code-id="`+id+`"`))
		}
	})
}

func TestResolved(t *testing.T) {
	t.Parallel()

	res := markdown.Render("```go\nif a < b {}\n```\n```\nsecond\n```")

	assert.Equal(t,
		`<pre><code class="language-go" data-code-id="code-0">if a &lt; b {}</code></pre>`+
			`<pre><code class="language-none" data-code-id="code-1">second</code></pre>`,
		res.Resolved())
}

func TestRenderPlainTextIsOneParagraph(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"just words",
		"several lines\nof plain\ntext",
		"with **bold** and [a link](https://example.com)",
	}

	for _, input := range inputs {
		var want strings.Builder
		want.WriteString("<p>")
		for _, line := range strings.Split(input, "\n") {
			want.WriteString(markdown.FormatInline(line) + " ")
		}
		want.WriteString("</p>")

		assert.Equal(t, want.String(), markdown.Render(input).HTML, input)
	}
}

func TestRenderIsStable(t *testing.T) {
	t.Parallel()

	src := "# T\n\n> q\n> r\n\n```js\nlet x = 1;\n```\n\n1. a\n- [x] b\n- c\n\n~~s~~ ==h== H~2~O x^2^"

	first := markdown.Render(src)
	second := markdown.Render(src)

	assert.Equal(t, first, second)
}

func TestRenderConcurrent(t *testing.T) {
	t.Parallel()

	docs := []string{
		"```go\nfmt.Println(1)\n```",
		"# A\n\ntext",
		"- a\n- b",
	}
	want := make([]markdown.Result, len(docs))
	for i, d := range docs {
		want[i] = markdown.Render(d)
	}

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		for i, d := range docs {
			wg.Add(1)
			go func(i int, d string) {
				defer wg.Done()
				assert.Equal(t, want[i], markdown.Render(d))
			}(i, d)
		}
	}
	wg.Wait()
}
