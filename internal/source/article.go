package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"clovasummary/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

//nolint:gochecknoglobals // Ordered selector list, read-only.
var contentSelectors = []string{
	"article p",
	"#dic_area",
	"#articleBodyContents",
	"main p",
	"p",
}

// FetchArticle downloads a page and extracts its title and body text.
func (f *Fetcher) FetchArticle(ctx context.Context, rawURL string) (domain.Article, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return domain.Article{}, errors.New("article URL is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return domain.Article{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := f.httpClient.Do(req) //nolint:gosec // User supplied article URL
	if err != nil {
		return domain.Article{}, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err = resp.Body.Close(); err != nil {
			f.log.ErrorContext(ctx, "Failed to close response body",
				"error", err,
				"articleURL", rawURL,
				"operation", "FetchArticle")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return domain.Article{}, fmt.Errorf("do request: unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return domain.Article{}, fmt.Errorf("create document from reader: %w", err)
	}

	article := domain.Article{
		URL:     rawURL,
		Title:   articleTitle(doc),
		Content: articleContent(doc),
	}

	if published, ok := doc.Find("meta[property='article:published_time']").Attr("content"); ok {
		if t, parseErr := time.Parse(time.RFC3339, strings.TrimSpace(published)); parseErr == nil {
			article.Published = t
		}
	}

	if article.Content == "" {
		return domain.Article{}, fmt.Errorf("no article text found at %q", rawURL)
	}

	f.log.DebugContext(ctx, "Article is fetched",
		"articleURL", rawURL,
		"title", article.Title,
		"contentLength", len(article.Content))

	return article, nil
}

func articleTitle(doc *goquery.Document) string {
	if content, ok := doc.Find("meta[property='og:title']").Attr("content"); ok {
		if title := strings.TrimSpace(content); title != "" {
			return title
		}
	}

	return strings.TrimSpace(doc.Find("title").First().Text())
}

func articleContent(doc *goquery.Document) string {
	doc.Find("script, style, noscript").Remove()

	for _, selector := range contentSelectors {
		var parts []string

		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			html, err := s.Html()
			if err != nil {
				return
			}
			if text := htmlToText(html); text != "" {
				parts = append(parts, text)
			}
		})

		if len(parts) > 0 {
			return strings.Join(parts, "\n")
		}
	}

	if content, ok := doc.Find("meta[property='og:description']").Attr("content"); ok {
		return strings.TrimSpace(content)
	}

	return ""
}
