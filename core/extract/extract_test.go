package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/postpipe/core"
	"github.com/gaurav-prasanna/postpipe/core/extract"
)

func TestExtractOG(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pageURL  string
		html     string
		expected core.OGData
	}{
		{
			name:    "all og tags",
			pageURL: "https://example.com/post",
			html: `<html><head>
				<meta property="og:title" content="OG Title">
				<meta property="og:description" content="OG description">
				<meta property="og:image" content="https://cdn.example.com/a.png">
				<title>Fallback</title>
			</head></html>`,
			expected: core.OGData{
				URL:         "https://example.com/post",
				Title:       "OG Title",
				Description: "OG description",
				Image:       "https://cdn.example.com/a.png",
			},
		},
		{
			name:    "root relative image",
			pageURL: "https://example.com/blog/post?x=1",
			html:    `<meta property="og:image" content="/img/card.jpg">`,
			expected: core.OGData{
				URL:   "https://example.com/blog/post?x=1",
				Image: "https://example.com/img/card.jpg",
			},
		},
		{
			name:    "fallbacks",
			pageURL: "http://example.org",
			html: `<html><head><title> Plain Title </title>
				<meta name="description" content="Plain description"></head></html>`,
			expected: core.OGData{
				URL:         "http://example.org",
				Title:       "Plain Title",
				Description: "Plain description",
			},
		},
		{
			name:    "single quoted attributes",
			pageURL: "https://example.com",
			html:    `<meta property='og:title' content='Quoted'>`,
			expected: core.OGData{
				URL:   "https://example.com",
				Title: "Quoted",
			},
		},
		{
			name:     "nothing found",
			pageURL:  "https://example.com",
			html:     `<p>no head</p>`,
			expected: core.OGData{URL: "https://example.com"},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := extract.NewOG().ExtractOG(testCase.pageURL, testCase.html)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestExtract(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<nav>menu</nav>
		<article><h1>Post</h1><p>Body</p><script>x()</script></article>
		<footer>foot</footer>
	</body></html>`

	got, err := extract.New().Extract(html)
	require.NoError(t, err)

	assert.Contains(t, got, "<h1>Post</h1>")
	assert.Contains(t, got, "<p>Body</p>")
	assert.NotContains(t, got, "menu")
	assert.NotContains(t, got, "x()")
	assert.NotContains(t, got, "foot")
}

func TestTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "OG", extract.Title(`<meta property="og:title" content="OG"><title>T</title>`))
	assert.Equal(t, "T", extract.Title(`<title>T</title>`))
	assert.Equal(t, "", extract.Title(`<p>x</p>`))
}
