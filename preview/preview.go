// Package preview builds OpenGraph link previews for the outbound links
// of a rendered post.
package preview

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/postpipe/core"
	"github.com/gaurav-prasanna/postpipe/internal/logging"
)

// DefaultMaxLinks caps how many links are fetched per post.
const DefaultMaxLinks = 20

// Previewer fetches the pages a post links to and extracts their
// OpenGraph summaries.
type Previewer struct {
	fetcher      core.Fetcher
	meta         core.MetaExtractor
	maxLinks     int
	externalOnly bool
}

// Option configures a Previewer.
type Option func(*Previewer)

// WithMaxLinks sets the link cap. Values below 1 keep the default.
func WithMaxLinks(n int) Option {
	return func(p *Previewer) {
		if n > 0 {
			p.maxLinks = n
		}
	}
}

// WithExternalOnly skips links that point back at the base host.
func WithExternalOnly() Option {
	return func(p *Previewer) { p.externalOnly = true }
}

// New creates a Previewer.
func New(fetcher core.Fetcher, meta core.MetaExtractor, opts ...Option) *Previewer {
	p := &Previewer{
		fetcher:  fetcher,
		meta:     meta,
		maxLinks: DefaultMaxLinks,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Links returns the unique previewable links in an HTML fragment, in
// document order. Relative links are resolved against baseURL; with an
// empty baseURL they are dropped.
func Links(fragment, baseURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var base *url.URL
	if baseURL != "" {
		base, err = url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("parsing base URL: %w", err)
		}
	}

	queue := NewQueue()
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		link := resolveLink(href, base)
		if link == "" || IsStaticAsset(link) {
			return
		}
		queue.Add(NormalizeURL(link))
	})
	return queue.All(), nil
}

// Previews fetches up to the configured number of links found in fragment
// and returns their OpenGraph data in link order. Links that fail to fetch
// or parse are logged and skipped.
func (p *Previewer) Previews(ctx context.Context, fragment, baseURL string) ([]core.OGData, error) {
	logger := logging.FromContext(ctx)

	links, err := Links(fragment, baseURL)
	if err != nil {
		return nil, err
	}

	if p.externalOnly && baseURL != "" {
		if base, err := url.Parse(baseURL); err == nil {
			kept := links[:0]
			for _, l := range links {
				if !IsSameHost(l, base.Host) {
					kept = append(kept, l)
				}
			}
			links = kept
		}
	}

	if len(links) > p.maxLinks {
		logger.Warn("too many links, truncating", logging.FieldLinks, len(links), "max", p.maxLinks)
		links = links[:p.maxLinks]
	}

	previews := make([]core.OGData, 0, len(links))
	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return previews, err
		}

		og, err := p.preview(ctx, link)
		if err != nil {
			logger.Warn("skipping link", logging.FieldURL, link, logging.FieldError, err)
			continue
		}
		previews = append(previews, og)
	}

	logger.Debug("built previews", logging.FieldLinks, len(previews))
	return previews, nil
}

// Preview fetches a single page and extracts its OpenGraph data.
func (p *Previewer) Preview(ctx context.Context, pageURL string) (core.OGData, error) {
	return p.preview(ctx, pageURL)
}

func (p *Previewer) preview(ctx context.Context, pageURL string) (core.OGData, error) {
	result, err := p.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return core.OGData{}, fmt.Errorf("fetch: %w", err)
	}
	og, err := p.meta.ExtractOG(result.URL, result.HTML)
	if err != nil {
		return core.OGData{}, fmt.Errorf("extract: %w", err)
	}
	return og, nil
}
