package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"clovasummary/internal/clova"
)

type summaryGetter interface {
	GetSummary(ctx context.Context, req clova.SummaryRequest) (string, error)
}

// ClovaSummarizer sends every input as one Clova summarization request.
type ClovaSummarizer struct {
	client summaryGetter
	option clova.Option
	log    *slog.Logger
}

// NewClovaSummarizer builds the engine; a nil log discards output.
func NewClovaSummarizer(client summaryGetter, option clova.Option, log *slog.Logger) *ClovaSummarizer {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &ClovaSummarizer{
		client: client,
		option: option,
		log:    log,
	}
}

// Summarize does not reject empty text; the API validates content itself.
func (s *ClovaSummarizer) Summarize(ctx context.Context, input Input) (string, error) {
	req := clova.NewSummaryRequest(
		clova.Document{
			Title:   strings.TrimSpace(input.Title),
			Content: NormalizeText(input.Text),
		},
		s.option,
	)

	summary, err := s.client.GetSummary(ctx, req)
	if err != nil {
		return "", fmt.Errorf("get summary: %w", err)
	}

	s.log.DebugContext(ctx, "Summary is produced",
		"engine", "clova",
		"sourceURL", input.SourceURL,
		"language", s.option.Language.String(),
		"model", s.option.Model.String())

	return summary, nil
}
