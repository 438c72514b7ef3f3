package digest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"clovasummary/internal/domain"
	"clovasummary/internal/summarizer"
)

type articleSource interface {
	FetchArticle(ctx context.Context, rawURL string) (domain.Article, error)
	FetchFeed(ctx context.Context, feedURL string, limit int) ([]domain.Article, error)
}

type summaryStore interface {
	AddSummary(ctx context.Context, record domain.SummaryRecord) (int64, error)
	HasSummary(ctx context.Context, url string) (bool, error)
}

// Labels recorded next to every stored summary.
type Labels struct {
	Language string
	Model    string
}

// Service fetches articles, summarizes them one request at a time and
// records the results.
type Service struct {
	source     articleSource
	summarizer summarizer.Summarizer
	store      summaryStore
	labels     Labels
	log        *slog.Logger
}

func New(
	src articleSource,
	s summarizer.Summarizer,
	store summaryStore,
	labels Labels,
	log *slog.Logger,
) *Service {
	return &Service{
		source:     src,
		summarizer: s,
		store:      store,
		labels:     labels,
		log:        log,
	}
}

// SummarizeText summarizes caller supplied text and records it without a URL.
func (s *Service) SummarizeText(ctx context.Context, title, content string) (domain.SummaryRecord, error) {
	return s.summarize(ctx, domain.Article{Title: title, Content: content})
}

func (s *Service) SummarizeArticle(ctx context.Context, rawURL string) (domain.SummaryRecord, error) {
	article, err := s.source.FetchArticle(ctx, rawURL)
	if err != nil {
		return domain.SummaryRecord{}, fmt.Errorf("fetch article: %w", err)
	}

	return s.summarize(ctx, article)
}

// SummarizeFeed summarizes the newest items of a feed that have no stored
// summary yet. An item failure does not stop the remaining items; all
// failures are joined into the returned error.
func (s *Service) SummarizeFeed(ctx context.Context, feedURL string, limit int) ([]domain.SummaryRecord, error) {
	articles, err := s.source.FetchFeed(ctx, feedURL, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	var records []domain.SummaryRecord
	var errs []error

	for _, article := range articles {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}

		seen, hasErr := s.store.HasSummary(ctx, article.URL)
		if hasErr != nil {
			errs = append(errs, fmt.Errorf("check %q: %w", article.URL, hasErr))
			continue
		}
		if seen {
			s.log.DebugContext(ctx, "Skipping already summarized article",
				"feedURL", feedURL,
				"articleURL", article.URL)
			continue
		}

		record, summarizeErr := s.summarize(ctx, article)
		if summarizeErr != nil {
			s.log.WarnContext(ctx, "Failed to summarize feed item",
				"error", summarizeErr,
				"feedURL", feedURL,
				"articleURL", article.URL)

			errs = append(errs, fmt.Errorf("summarize %q: %w", article.URL, summarizeErr))
			continue
		}

		records = append(records, record)
	}

	s.log.InfoContext(ctx, "Feed is summarized",
		"feedURL", feedURL,
		"articleCount", len(articles),
		"summaryCount", len(records),
		"errorCount", len(errs))

	return records, errors.Join(errs...)
}

func (s *Service) summarize(ctx context.Context, article domain.Article) (domain.SummaryRecord, error) {
	summary, err := s.summarizer.Summarize(ctx, summarizer.Input{
		Title:     article.Title,
		Text:      article.Content,
		SourceURL: article.URL,
	})
	if err != nil {
		return domain.SummaryRecord{}, fmt.Errorf("summarize: %w", err)
	}

	record := domain.SummaryRecord{
		URL:      article.URL,
		Title:    article.Title,
		Language: s.labels.Language,
		Model:    s.labels.Model,
		Summary:  summary,
	}

	id, err := s.store.AddSummary(ctx, record)
	if err != nil {
		return record, fmt.Errorf("store summary: %w", err)
	}
	record.ID = id

	return record, nil
}
