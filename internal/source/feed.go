package source

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"clovasummary/internal/domain"

	"github.com/mmcdole/gofeed"
)

// FetchFeed returns up to limit of the newest feed items, newest first.
// A limit of zero or less returns every item.
func (f *Fetcher) FetchFeed(ctx context.Context, feedURL string, limit int) ([]domain.Article, error) {
	feedURL = strings.TrimSpace(feedURL)
	if feedURL == "" {
		return nil, errors.New("feed URL is empty")
	}

	parsed, err := f.feedParser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed by URL %q: %w", feedURL, err)
	}

	articles := make([]domain.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		article, ok := f.feedItemArticle(ctx, feedURL, item)
		if !ok {
			continue
		}
		articles = append(articles, article)
	}

	slices.SortStableFunc(articles, func(a, b domain.Article) int {
		return b.Published.Compare(a.Published)
	})

	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}

	f.log.DebugContext(ctx, "Feed is fetched",
		"feedURL", feedURL,
		"feedTitle", strings.TrimSpace(parsed.Title),
		"itemCount", len(parsed.Items),
		"articleCount", len(articles))

	return articles, nil
}

func (f *Fetcher) feedItemArticle(
	ctx context.Context,
	feedURL string,
	item *gofeed.Item,
) (domain.Article, bool) {
	itemURL := strings.TrimSpace(item.Link)
	itemTitle := strings.TrimSpace(item.Title)

	if itemURL == "" {
		f.log.WarnContext(ctx, "Skipping feed item with empty URL",
			"feedURL", feedURL,
			"itemTitle", itemTitle)

		return domain.Article{}, false
	}

	content := htmlToText(item.Content)
	if content == "" {
		content = htmlToText(item.Description)
	}

	var published time.Time
	if item.PublishedParsed != nil {
		published = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		published = *item.UpdatedParsed
	}

	return domain.Article{
		URL:       itemURL,
		Title:     itemTitle,
		Content:   content,
		Published: published,
	}, true
}
