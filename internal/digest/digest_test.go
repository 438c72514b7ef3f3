package digest_test

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"clovasummary/internal/database"
	"clovasummary/internal/digest"
	"clovasummary/internal/domain"
	"clovasummary/internal/summarizer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	article  domain.Article
	articles []domain.Article
	err      error
}

func (s *stubSource) FetchArticle(_ context.Context, rawURL string) (domain.Article, error) {
	if s.err != nil {
		return domain.Article{}, s.err
	}
	a := s.article
	a.URL = rawURL
	return a, nil
}

func (s *stubSource) FetchFeed(_ context.Context, _ string, limit int) ([]domain.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit > 0 && len(s.articles) > limit {
		return s.articles[:limit], nil
	}
	return s.articles, nil
}

type stubSummarizer struct {
	mu     sync.Mutex
	inputs []summarizer.Input
	failOn string
}

func (s *stubSummarizer) Summarize(_ context.Context, input summarizer.Input) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inputs = append(s.inputs, input)
	if input.SourceURL != "" && input.SourceURL == s.failOn {
		return "", errors.New("boom")
	}

	return "summary of " + input.Title, nil
}

func newStore(t *testing.T) *database.Database {
	t.Helper()

	db, err := database.New(context.Background(), filepath.Join(t.TempDir(), "digest.sqlite"), slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func labels() digest.Labels {
	return digest.Labels{Language: "ko", Model: "news"}
}

func TestSummarizeText(t *testing.T) {
	sum := &stubSummarizer{}
	store := newStore(t)
	svc := digest.New(&stubSource{}, sum, store, labels(), slog.New(slog.DiscardHandler))

	record, err := svc.SummarizeText(context.Background(), "hello", "test")
	require.NoError(t, err)

	assert.Equal(t, "summary of hello", record.Summary)
	assert.NotZero(t, record.ID)
	assert.Equal(t, "ko", record.Language)
	require.Len(t, sum.inputs, 1)
	assert.Equal(t, summarizer.Input{Title: "hello", Text: "test"}, sum.inputs[0])

	stored, err := store.ListSummaries(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "summary of hello", stored[0].Summary)
}

func TestSummarizeArticle(t *testing.T) {
	src := &stubSource{article: domain.Article{Title: "Rates", Content: "Rates are unchanged."}}
	svc := digest.New(src, &stubSummarizer{}, newStore(t), labels(), slog.New(slog.DiscardHandler))

	record, err := svc.SummarizeArticle(context.Background(), "https://news.example/1")
	require.NoError(t, err)
	assert.Equal(t, "https://news.example/1", record.URL)
	assert.Equal(t, "summary of Rates", record.Summary)
}

func TestSummarizeArticleFetchError(t *testing.T) {
	sum := &stubSummarizer{}
	svc := digest.New(&stubSource{err: errors.New("offline")}, sum, newStore(t), labels(), slog.New(slog.DiscardHandler))

	_, err := svc.SummarizeArticle(context.Background(), "https://news.example/1")
	require.Error(t, err)
	assert.Empty(t, sum.inputs)
}

func TestSummarizeFeedSkipsKnownAndCollectsErrors(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	_, err := store.AddSummary(ctx, domain.SummaryRecord{
		URL: "https://news.example/1", Language: "ko", Model: "news", Summary: "old",
	})
	require.NoError(t, err)

	src := &stubSource{articles: []domain.Article{
		{URL: "https://news.example/1", Title: "Known"},
		{URL: "https://news.example/2", Title: "Broken"},
		{URL: "https://news.example/3", Title: "Fresh"},
	}}
	sum := &stubSummarizer{failOn: "https://news.example/2"}
	svc := digest.New(src, sum, store, labels(), slog.New(slog.DiscardHandler))

	records, err := svc.SummarizeFeed(ctx, "https://news.example/rss", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "https://news.example/2")

	require.Len(t, records, 1)
	assert.Equal(t, "https://news.example/3", records[0].URL)
	assert.Len(t, sum.inputs, 2)

	again, err := svc.SummarizeFeed(ctx, "https://news.example/rss", 0)
	require.Error(t, err)
	assert.Empty(t, again)
	assert.Len(t, sum.inputs, 3)
}

func TestSummarizeFeedFetchError(t *testing.T) {
	svc := digest.New(&stubSource{err: errors.New("offline")}, &stubSummarizer{}, newStore(t), labels(), slog.New(slog.DiscardHandler))

	records, err := svc.SummarizeFeed(context.Background(), "https://news.example/rss", 5)
	require.Error(t, err)
	assert.Nil(t, records)
}
