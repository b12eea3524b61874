// Package highlight post-processes rendered post markup: it fills code
// elements with the text the renderer kept aside and runs syntax
// highlighting over them.
package highlight

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/gaurav-prasanna/postpipe/core/markdown"
)

const codeIDAttr = "data-code-id"

var pendingCode = cascadia.MustCompile("code[" + codeIDAttr + "]")

// Resolve sets the text of every pending code element in res.HTML from
// res.Code. Each entry is consumed: it is deleted from res.Code once its
// element has been filled. Elements without an entry are left empty.
func Resolve(res markdown.Result) (string, error) {
	if len(res.Code) == 0 {
		return res.HTML, nil
	}

	doc, err := parseFragment(res.HTML)
	if err != nil {
		return "", err
	}

	doc.FindMatcher(pendingCode).Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr(codeIDAttr)
		block, ok := res.Code[id]
		if !ok {
			return
		}
		s.SetText(block.Text)
		s.RemoveAttr(codeIDAttr)
		delete(res.Code, id)
	})

	return renderFragment(doc)
}

// parseFragment parses an HTML fragment into a document whose body holds
// the fragment.
func parseFragment(fragment string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parsing fragment: %w", err)
	}
	return doc, nil
}

func renderFragment(doc *goquery.Document) (string, error) {
	out, err := doc.Find("body").First().Html()
	if err != nil {
		return "", fmt.Errorf("serializing fragment: %w", err)
	}
	return out, nil
}
