package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/postpipe/core"
)

// PDFRenderer exports a post as a printable PDF. It walks the Markdown
// body line by line with the same block markers the HTML renderer knows
// (headings, lists, task items, quotes, rules, fences) and strips inline
// markers from the text.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

var (
	pdfOrderedItem = regexp.MustCompile(`^\d+\.\s+`)
	pdfTaskItem    = regexp.MustCompile(`^[-*+] \[( |x|X)\] `)
	pdfListItem    = regexp.MustCompile(`^[-*+] `)
)

// Render converts the body into PDF bytes.
func (r *PDFRenderer) Render(body string, meta core.PostMetadata) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if meta.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, tr(meta.Title), "", "L", false)
		pdf.Ln(2)
	}

	byline := meta.DisplayDate
	if len(meta.Tags) > 0 {
		if byline != "" {
			byline += "  |  "
		}
		byline += strings.Join(meta.Tags, ", ")
	}
	if byline != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr(byline), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(6)

	lines := strings.Split(body, "\n")
	inCode := false

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inCode = !inCode
			pdf.Ln(2)
			if inCode {
				if lang := strings.TrimSpace(trimmed[3:]); lang != "" {
					pdf.SetFont("Helvetica", "I", 8)
					pdf.SetTextColor(120, 120, 120)
					pdf.MultiCell(0, 4, tr(lang), "", "L", false)
					pdf.SetTextColor(0, 0, 0)
				}
			}
			continue
		}

		if inCode {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, tr(strings.ReplaceAll(line, "\t", "    ")), "", "L", true)
			continue
		}

		switch {
		case trimmed == "":
			pdf.Ln(3)

		case trimmed == "---" || trimmed == "***" || trimmed == "___":
			pdf.Ln(2)
			y := pdf.GetY()
			pdf.SetDrawColor(200, 200, 200)
			pdf.Line(10, y, 200, y)
			pdf.Ln(3)

		case strings.HasPrefix(line, "#"):
			level := 0
			for level < len(line) && line[level] == '#' {
				level++
			}
			if level < len(line) && line[level] == ' ' {
				renderHeading(pdf, tr(cleanInlineMarkdown(line[level+1:])), level)
			} else {
				renderParagraph(pdf, tr(cleanInlineMarkdown(line)))
			}

		case strings.HasPrefix(line, "> "):
			var quote []string
			for ; i < len(lines) && strings.HasPrefix(lines[i], "> "); i++ {
				quote = append(quote, cleanInlineMarkdown(lines[i][2:]))
			}
			i--
			pdf.SetFont("Helvetica", "I", 10)
			pdf.SetTextColor(80, 80, 80)
			pdf.SetLeftMargin(16)
			pdf.MultiCell(0, 5, tr(strings.Join(quote, "\n")), "L", "L", false)
			pdf.SetLeftMargin(10)
			pdf.SetTextColor(0, 0, 0)

		case pdfTaskItem.MatchString(trimmed):
			m := pdfTaskItem.FindStringSubmatch(trimmed)
			box := "[ ] "
			if m[1] == "x" {
				box = "[x] "
			}
			renderListItem(pdf, tr(box+cleanInlineMarkdown(trimmed[len(m[0]):])), indentOf(line))

		case pdfListItem.MatchString(trimmed):
			renderListItem(pdf, tr("• "+cleanInlineMarkdown(trimmed[2:])), indentOf(line))

		case pdfOrderedItem.MatchString(trimmed):
			renderListItem(pdf, tr(cleanInlineMarkdown(trimmed)), indentOf(line))

		default:
			renderParagraph(pdf, tr(cleanInlineMarkdown(line)))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func indentOf(line string) int {
	return (len(line) - len(strings.TrimLeft(line, " "))) / 2
}

func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(2)
}

func renderParagraph(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, text, "", "L", false)
}

func renderListItem(pdf *gofpdf.Fpdf, text string, depth int) {
	left, _, _, _ := pdf.GetMargins()
	pdf.SetLeftMargin(left + float64(depth)*5)
	pdf.SetX(left + float64(depth)*5)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, text, "", "L", false)
	pdf.SetLeftMargin(left)
}

var (
	pdfStrongEm = regexp.MustCompile(`(\*\*\*|___|\*\*|__)(.+?)(\*\*\*|___|\*\*|__)`)
	pdfEm       = regexp.MustCompile(`(?:^|\s)[*_]([^*_]+)[*_](?:\s|$)`)
	pdfMarks    = regexp.MustCompile(`(~~|==)(.+?)(~~|==)`)
	pdfCode     = regexp.MustCompile("`([^`]+)`")
	pdfLink     = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)
	pdfSubSup   = regexp.MustCompile(`[~^]([^~^\s]+)[~^]`)
)

// cleanInlineMarkdown strips inline Markdown formatting for PDF output.
// Links keep their text and URL.
func cleanInlineMarkdown(text string) string {
	text = pdfCode.ReplaceAllString(text, "$1")
	text = pdfStrongEm.ReplaceAllString(text, "$2")
	text = pdfEm.ReplaceAllString(text, " $1 ")
	text = pdfMarks.ReplaceAllString(text, "$2")
	text = pdfLink.ReplaceAllString(text, "$1 ($2)")
	text = pdfSubSup.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
