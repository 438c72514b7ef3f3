package clova

import (
	"fmt"
	"strconv"
	"strings"
)

// Language selects the language of the document and of the produced summary.
type Language string

const (
	Korean   Language = "ko"
	Japanese Language = "ja"
)

// Model selects the vendor-side summarization profile.
// News is tuned for news articles, General for everything else.
type Model string

const (
	General Model = "general"
	News    Model = "news"
)

// Tone controls the grammatical register of the generated sentences.
type Tone int

const (
	ToneOriginal Tone = iota
	TonePoliteCasual
	TonePoliteFormal
	ToneNominalEnding
)

func (l Language) Value() string { return string(l) }

func (l Language) String() string {
	switch l {
	case Korean:
		return "korean"
	case Japanese:
		return "japanese"
	default:
		return string(l)
	}
}

func (m Model) Value() string { return string(m) }

func (m Model) String() string { return string(m) }

func (t Tone) Value() int { return int(t) }

func (t Tone) String() string {
	switch t {
	case ToneOriginal:
		return "original"
	case TonePoliteCasual:
		return "polite-casual"
	case TonePoliteFormal:
		return "polite-formal"
	case ToneNominalEnding:
		return "nominal-ending"
	default:
		return strconv.Itoa(int(t))
	}
}

// ParseLanguage accepts either the wire code ("ko") or the name ("korean").
func ParseLanguage(raw string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "ko", "korean":
		return Korean, nil
	case "ja", "japanese":
		return Japanese, nil
	default:
		return "", fmt.Errorf("unknown language %q", raw)
	}
}

func ParseModel(raw string) (Model, error) {
	switch Model(strings.ToLower(strings.TrimSpace(raw))) {
	case General:
		return General, nil
	case News:
		return News, nil
	default:
		return "", fmt.Errorf("unknown model %q", raw)
	}
}

// ParseTone accepts either the numeric code ("2") or the name ("polite-formal").
func ParseTone(raw string) (Tone, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))

	for t := ToneOriginal; t <= ToneNominalEnding; t++ {
		if raw == t.String() || raw == strconv.Itoa(t.Value()) {
			return t, nil
		}
	}

	return 0, fmt.Errorf("unknown tone %q", raw)
}

type Document struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Option struct {
	Language     Language `json:"language"`
	Model        Model    `json:"model"`
	Tone         Tone     `json:"tone"`
	SummaryCount int      `json:"summaryCount"`
}

// SummaryRequest is the body of a single summarization call.
type SummaryRequest struct {
	Document Document `json:"document"`
	Option   Option   `json:"option"`
}

// NewSummaryRequest assembles a request as given. Nothing is defaulted or
// validated locally: the API rejects bad counts and empty content itself.
func NewSummaryRequest(doc Document, opt Option) SummaryRequest {
	return SummaryRequest{
		Document: doc,
		Option:   opt,
	}
}
