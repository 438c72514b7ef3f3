package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clovasummary/internal/clova"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
)

const (
	openAIMaxOutputTokens int64 = 2048

	openAIPromptTemplate = `Summarize the document in exactly %d sentence(s).

Rules:
- Write in %s.
- Tone: %s.
- Keep dates, numbers and names that matter.
- No lists, no links, no emojis.
- Output only the summary sentences.`
)

//nolint:gochecknoglobals // Read-only lookup table.
var openAIToneHints = map[clova.Tone]string{
	clova.ToneOriginal:      "keep the register of the original text",
	clova.TonePoliteCasual:  "polite and conversational",
	clova.TonePoliteFormal:  "polite and formal",
	clova.ToneNominalEnding: "terse, sentences ending in nouns",
}

// OpenAISummarizer calls OpenAI's Responses API with the same option set the
// Clova engine uses.
type OpenAISummarizer struct {
	client openai.Client
	option clova.Option
}

func NewOpenAISummarizer(apiKey string, opt clova.Option, opts ...option.RequestOption) (*OpenAISummarizer, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("api key is empty")
	}

	return &OpenAISummarizer{
		client: openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...),
		option: opt,
	}, nil
}

func (s *OpenAISummarizer) Summarize(ctx context.Context, input Input) (string, error) {
	text := NormalizeText(input.Text)
	if text == "" {
		return "", errors.New("input is empty")
	}

	var prompt strings.Builder
	if title := strings.TrimSpace(input.Title); title != "" {
		prompt.WriteString("Title:\n")
		prompt.WriteString(title)
		prompt.WriteString("\n")
	}
	if sourceURL := strings.TrimSpace(input.SourceURL); sourceURL != "" {
		prompt.WriteString("Source:\n")
		prompt.WriteString(sourceURL)
		prompt.WriteString("\n")
	}
	prompt.WriteString("Content:\n")
	prompt.WriteString(text)

	resp, err := s.client.Responses.New(ctx, responses.ResponseNewParams{
		Model:           openai.ChatModelGPT5Mini2025_08_07,
		MaxOutputTokens: openai.Int(openAIMaxOutputTokens),
		Reasoning: responses.ReasoningParam{
			Effort: openai.ReasoningEffortLow,
		},
		Instructions: openai.String(s.instructions()),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(prompt.String()),
		},
	})
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}

	if resp.Status == "incomplete" {
		return "", fmt.Errorf("response is incomplete (reason = %s)", resp.IncompleteDetails.Reason)
	}

	summary := strings.TrimSpace(resp.OutputText())
	if summary == "" {
		return "", fmt.Errorf("output text is missing (status = %s)", resp.Status)
	}

	return summary, nil
}

func (s *OpenAISummarizer) instructions() string {
	count := max(s.option.SummaryCount, 1)

	tone, ok := openAIToneHints[s.option.Tone]
	if !ok {
		tone = openAIToneHints[clova.ToneOriginal]
	}

	return fmt.Sprintf(openAIPromptTemplate, count, s.option.Language.String(), tone)
}
