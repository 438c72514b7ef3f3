package summarizer

import (
	"context"
	"strings"

	"mvdan.cc/xurls/v2"
)

// Input describes the payload for a summary request.
type Input struct {
	// Title is sent alongside the text; engines may use it as context.
	Title string
	// Text contains the original plain text to summarise.
	Text string
	// SourceURL is optional metadata that helps the engine reference the origin.
	SourceURL string
}

// Summarizer produces a single summary for a given input text.
type Summarizer interface {
	Summarize(ctx context.Context, input Input) (string, error)
}

//nolint:gochecknoglobals // Compiled once, safe for concurrent use.
var urlRe = xurls.Relaxed()

// NormalizeText drops URLs and collapses whitespace, keeping one line per
// non-empty paragraph.
func NormalizeText(text string) string {
	text = urlRe.ReplaceAllString(text, "")

	var lines []string
	for line := range strings.SplitSeq(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
