package markdown

import (
	"strconv"
	"strings"
)

// blockKind is the block currently open in a rendering pass.
// Exactly one kind is open at a time.
type blockKind int

const (
	blockNone blockKind = iota
	blockParagraph
	blockList
	blockOrderedList
	blockCode
)

func (k blockKind) String() string {
	switch k {
	case blockParagraph:
		return "paragraph"
	case blockList:
		return "unordered-list"
	case blockOrderedList:
		return "ordered-list"
	case blockCode:
		return "code-block"
	default:
		return "none"
	}
}

// state is scoped to a single Render call.
type state struct {
	out   strings.Builder
	open  blockKind
	depth int

	lang   string
	buf    strings.Builder
	code   map[string]CodeBlock
	nextID int
}

// Render converts a document into markup. It never fails: anything it
// does not recognise ends up as paragraph text.
func Render(src string) Result {
	st := &state{code: make(map[string]CodeBlock)}
	lines := strings.Split(src, "\n")

	for i := 0; i < len(lines); {
		i += st.dispatch(lines, i)
	}
	st.finish()

	return Result{HTML: st.out.String(), Code: st.code}
}

// dispatch runs the first matching rule and returns how many lines it
// consumed.
func (st *state) dispatch(lines []string, i int) int {
	line := lines[i]
	for _, r := range blockRules {
		if r.match(st, line) {
			return r.apply(st, lines, i)
		}
	}
	// The paragraph rule matches everything, so this is not reached.
	return 1
}

// close ends the open paragraph or list. An open code block is left
// alone; only a fence or end of input closes it.
func (st *state) close() {
	switch st.open {
	case blockParagraph:
		st.out.WriteString("</p>")
	case blockList:
		st.out.WriteString("</ul>")
	case blockOrderedList:
		st.out.WriteString("</ol>")
	case blockCode:
		return
	case blockNone:
	}
	st.open = blockNone
	st.depth = 0
}

// closeUnless closes the open block unless it is of kind k.
func (st *state) closeUnless(k blockKind) {
	if st.open != k {
		st.close()
	}
}

func (st *state) openCode(lang string) {
	st.close()
	st.open = blockCode
	st.lang = lang
	st.buf.Reset()
}

func (st *state) closeCode() {
	id := "code-" + strconv.Itoa(st.nextID)
	st.nextID++

	class := "language-none"
	if st.lang != "" {
		class = "language-" + st.lang
	}
	st.code[id] = CodeBlock{
		Language: st.lang,
		Text:     strings.TrimSuffix(st.buf.String(), "\n"),
	}
	st.out.WriteString(`<pre><code class="` + class + `" data-code-id="` + id + `"></code></pre>`)

	st.open = blockNone
	st.lang = ""
	st.buf.Reset()
}

// finish closes whatever is still open at end of input. An unterminated
// code block is emitted inline with its buffer as-is.
func (st *state) finish() {
	if st.open == blockCode {
		st.out.WriteString("<pre><code>" + st.buf.String() + "</code></pre>")
		st.open = blockNone
		st.buf.Reset()
		return
	}
	st.close()
}
