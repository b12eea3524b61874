package preview

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/postpipe/core/extract"
	"github.com/gaurav-prasanna/postpipe/core/fetch"
)

func TestLinks(t *testing.T) {
	t.Parallel()

	fragment := `<p>` +
		`<a href="https://example.com/a">a</a>` +
		`<a href="https://example.com/a/#top">a again</a>` +
		`<a href="/b">relative</a>` +
		`<a href="mailto:me@example.com">mail</a>` +
		`<a href="#section">anchor</a>` +
		`<a href="javascript:void(0)">js</a>` +
		`<a href="https://example.com/logo.png">image</a>` +
		`<a href="ftp://example.com/file">ftp</a>` +
		`<a href="">empty</a>` +
		`</p>`

	t.Run("with base", func(t *testing.T) {
		t.Parallel()
		links, err := Links(fragment, "https://blog.example.org/posts/one")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/a", "https://blog.example.org/b"}, links)
	})

	t.Run("without base", func(t *testing.T) {
		t.Parallel()
		links, err := Links(fragment, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/a"}, links)
	})
}

func TestRules(t *testing.T) {
	t.Parallel()

	assert.True(t, IsStaticAsset("https://x.com/a/B.JPG"))
	assert.False(t, IsStaticAsset("https://x.com/a/post"))
	assert.True(t, IsSameHost("https://x.com/a", "x.com"))
	assert.False(t, IsSameHost("https://y.com/a", "x.com"))
	assert.Equal(t, "https://x.com/a", NormalizeURL("https://x.com/a/#frag"))
	assert.Equal(t, "https://x.com/", NormalizeURL("https://x.com/"))
}

func TestQueue(t *testing.T) {
	t.Parallel()

	q := NewQueue()
	assert.True(t, q.Add("a"))
	assert.True(t, q.Add("b"))
	assert.False(t, q.Add("a"))
	assert.Equal(t, 2, q.Len())

	var got []string
	for q.HasNext() {
		got = append(got, q.Next())
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

func newSite(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	for _, name := range []string{"one", "two", "three"} {
		name := name
		mux.HandleFunc("/"+name, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprintf(w, `<html><head>`+
				`<meta property="og:title" content="Page %s">`+
				`<meta property="og:image" content="/img/%s.png">`+
				`</head><body></body></html>`, name, name)
		})
	}
	mux.HandleFunc("/broken", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestPreviews(t *testing.T) {
	t.Parallel()

	srv := newSite(t)
	fragment := fmt.Sprintf(
		`<a href="%[1]s/one">1</a><a href="%[1]s/broken">x</a><a href="%[1]s/two">2</a><a href="%[1]s/one">dup</a>`,
		srv.URL)

	p := New(fetch.New(), extract.NewOG())
	previews, err := p.Previews(context.Background(), fragment, "")
	require.NoError(t, err)

	require.Len(t, previews, 2)
	assert.Equal(t, "Page one", previews[0].Title)
	assert.Equal(t, srv.URL+"/img/one.png", previews[0].Image)
	assert.Equal(t, srv.URL+"/two", previews[1].URL)
}

func TestPreviewsMaxLinks(t *testing.T) {
	t.Parallel()

	srv := newSite(t)
	fragment := fmt.Sprintf(`<a href="%[1]s/one">1</a><a href="%[1]s/two">2</a><a href="%[1]s/three">3</a>`, srv.URL)

	p := New(fetch.New(), extract.NewOG(), WithMaxLinks(2))
	previews, err := p.Previews(context.Background(), fragment, "")
	require.NoError(t, err)

	require.Len(t, previews, 2)
	assert.Equal(t, "Page two", previews[1].Title)
}

func TestPreviewsExternalOnly(t *testing.T) {
	t.Parallel()

	srv := newSite(t)
	fragment := `<a href="/one">internal</a>`

	p := New(fetch.New(), extract.NewOG(), WithExternalOnly())
	previews, err := p.Previews(context.Background(), fragment, srv.URL+"/post")
	require.NoError(t, err)
	assert.Empty(t, previews)
}

func TestPreviewsCancelled(t *testing.T) {
	t.Parallel()

	srv := newSite(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(fetch.New(), extract.NewOG())
	_, err := p.Previews(ctx, `<a href="`+srv.URL+`/one">1</a>`, "")
	assert.ErrorIs(t, err, context.Canceled)
}
