package summarizer

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"clovasummary/internal/clova"
)

type recordingClient struct {
	reqs    []clova.SummaryRequest
	summary string
	err     error
}

func (c *recordingClient) GetSummary(_ context.Context, req clova.SummaryRequest) (string, error) {
	c.reqs = append(c.reqs, req)
	return c.summary, c.err
}

func testOption() clova.Option {
	return clova.Option{
		Language:     clova.Korean,
		Model:        clova.News,
		Tone:         clova.TonePoliteFormal,
		SummaryCount: 3,
	}
}

func TestNormalizeText(t *testing.T) {
	in := "  First   line https://example.com/a?b=c \n\n\t second\tline  \n   \n"
	want := "First line\nsecond line"

	if got := NormalizeText(in); got != want {
		t.Fatalf("unexpected normalized text: got %q want %q", got, want)
	}
}

func TestNormalizeTextOnlyURLs(t *testing.T) {
	if got := NormalizeText("https://example.com www.example.org"); got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
}

func TestClovaSummarizerBuildsRequest(t *testing.T) {
	client := &recordingClient{summary: "요약"}
	s := NewClovaSummarizer(client, testOption(), slog.New(slog.DiscardHandler))

	got, err := s.Summarize(context.Background(), Input{
		Title:     "  제목 ",
		Text:      "본문   내용 https://news.example/1",
		SourceURL: "https://news.example/1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "요약" {
		t.Fatalf("unexpected summary: %q", got)
	}

	if len(client.reqs) != 1 {
		t.Fatalf("expected one request, got %d", len(client.reqs))
	}

	req := client.reqs[0]
	if req.Document.Title != "제목" || req.Document.Content != "본문 내용" {
		t.Fatalf("unexpected document: %+v", req.Document)
	}
	if req.Option != testOption() {
		t.Fatalf("unexpected option: %+v", req.Option)
	}
}

func TestClovaSummarizerPassesEmptyContentThrough(t *testing.T) {
	client := &recordingClient{summary: ""}
	s := NewClovaSummarizer(client, testOption(), slog.New(slog.DiscardHandler))

	if _, err := s.Summarize(context.Background(), Input{Title: "t"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.reqs) != 1 {
		t.Fatalf("expected empty content to still be sent")
	}
}

func TestClovaSummarizerWrapsClientErrors(t *testing.T) {
	apiErr := &clova.APIError{StatusCode: 400, Body: "bad"}
	s := NewClovaSummarizer(&recordingClient{err: apiErr}, testOption(), slog.New(slog.DiscardHandler))

	_, err := s.Summarize(context.Background(), Input{Title: "t", Text: "x"})

	var got *clova.APIError
	if !errors.As(err, &got) {
		t.Fatalf("expected APIError in chain, got %v", err)
	}
	if got.StatusCode != 400 {
		t.Fatalf("unexpected status: %d", got.StatusCode)
	}
}

func TestNewOpenAISummarizerRequiresKey(t *testing.T) {
	if _, err := NewOpenAISummarizer("  ", testOption()); err == nil {
		t.Fatalf("expected error for empty API key")
	}
}

func TestOpenAISummarizerRejectsEmptyInput(t *testing.T) {
	s, err := NewOpenAISummarizer("sk-test", testOption())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err = s.Summarize(context.Background(), Input{Text: " https://example.com "}); err == nil {
		t.Fatalf("expected error for empty input")
	}
}

func TestOpenAISummarizerInstructions(t *testing.T) {
	opt := testOption()
	opt.SummaryCount = 0
	s, err := NewOpenAISummarizer("sk-test", opt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Summarize the document in exactly 1 sentence(s)."
	if got := s.instructions(); len(got) < len(want) || got[:len(want)] != want {
		t.Fatalf("unexpected instructions: %q", got)
	}
}

func TestClovaSummarizerNilLogger(t *testing.T) {
	s := NewClovaSummarizer(&recordingClient{summary: "ok"}, testOption(), nil)

	got, err := s.Summarize(context.Background(), Input{Title: "t", Text: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" {
		t.Fatalf("unexpected summary: %q", got)
	}
}
