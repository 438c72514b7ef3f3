package source

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"

	defaultFetchTimeout = 30 * time.Second
)

// Fetcher turns web pages and feeds into articles ready for summarization.
type Fetcher struct {
	httpClient *http.Client
	feedParser *gofeed.Parser
	log        *slog.Logger
}

func NewFetcher(httpClient *http.Client, log *slog.Logger) *Fetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultFetchTimeout}
	}

	feedParser := gofeed.NewParser()
	feedParser.Client = httpClient
	feedParser.UserAgent = userAgent

	return &Fetcher{
		httpClient: httpClient,
		feedParser: feedParser,
		log:        log,
	}
}

// htmlToText flattens an HTML fragment into plain text, one line per block.
func htmlToText(fragment string) string {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}

	doc.Find("script, style").Remove()
	doc.Find("br").Each(func(_ int, br *goquery.Selection) {
		br.ReplaceWithHtml("\n")
	})
	doc.Find("p, div, li, h1, h2, h3, h4").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return strings.TrimSpace(doc.Text())
}
