package highlight

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// detectCandidates limits the classifier to languages likely in a post.
var detectCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile",
}

// Detect guesses the language of a code block. It returns a lowercase
// name usable as a lexer name, or "" when code is empty.
func Detect(code string) string {
	content := []byte(code)
	if len(strings.TrimSpace(code)) == 0 {
		return ""
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return strings.ToLower(lang)
	}

	if langs := enry.GetLanguagesByClassifier("", content, detectCandidates); len(langs) > 0 {
		return strings.ToLower(langs[0])
	}
	return ""
}
