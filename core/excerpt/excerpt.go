// Package excerpt derives the short summary shown on a post card when the
// post's front matter has none. Words are whitespace-separated runs.
package excerpt

import "strings"

// DefaultWords is the excerpt length used when none is configured.
const DefaultWords = 40

// ellipsis marks an excerpt that was cut short.
const ellipsis = "…"

// Excerpter splits text into fixed-size word chunks.
type Excerpter struct {
	Words int // words per chunk
}

// New creates an Excerpter. Defaults to DefaultWords if words <= 0.
func New(words int) *Excerpter {
	if words <= 0 {
		words = DefaultWords
	}
	return &Excerpter{Words: words}
}

// Chunks splits text into slices of at most Words words, each joined by
// single spaces.
func (e *Excerpter) Chunks(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	for i := 0; i < len(words); i += e.Words {
		end := i + e.Words
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}

// Excerpt returns the first chunk of text, with an ellipsis when more
// text follows.
func (e *Excerpter) Excerpt(text string) string {
	chunks := e.Chunks(text)
	switch len(chunks) {
	case 0:
		return ""
	case 1:
		return chunks[0]
	default:
		return strings.TrimRight(chunks[0], ".,;:") + ellipsis
	}
}
