package clova_test

import (
	"encoding/json"
	"testing"

	"clovasummary/internal/clova"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryRequestJSON(t *testing.T) {
	req := clova.NewSummaryRequest(
		clova.Document{Title: "hello", Content: "test"},
		clova.Option{
			Language:     clova.Korean,
			Model:        clova.News,
			Tone:         clova.ToneOriginal,
			SummaryCount: 2,
		},
	)

	got, err := json.Marshal(req)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"document": {"title": "hello", "content": "test"},
		"option": {"language": "ko", "model": "news", "tone": 0, "summaryCount": 2}
	}`, string(got))
}

func TestSummaryRequestJSONEncodesPrimitives(t *testing.T) {
	req := clova.NewSummaryRequest(
		clova.Document{Title: "タイトル", Content: "本文"},
		clova.Option{
			Language:     clova.Japanese,
			Model:        clova.General,
			Tone:         clova.ToneNominalEnding,
			SummaryCount: 5,
		},
	)

	got, err := json.Marshal(req)
	require.NoError(t, err)

	var raw map[string]map[string]any
	require.NoError(t, json.Unmarshal(got, &raw))

	assert.Equal(t, "ja", raw["option"]["language"])
	assert.Equal(t, "general", raw["option"]["model"])
	assert.InDelta(t, 3, raw["option"]["tone"], 0)
	assert.InDelta(t, 5, raw["option"]["summaryCount"], 0)
	assert.Equal(t, "タイトル", raw["document"]["title"])
}

func TestEnumValues(t *testing.T) {
	assert.Equal(t, "ko", clova.Korean.Value())
	assert.Equal(t, "ja", clova.Japanese.Value())
	assert.Equal(t, "general", clova.General.Value())
	assert.Equal(t, "news", clova.News.Value())
	assert.Equal(t, 0, clova.ToneOriginal.Value())
	assert.Equal(t, 1, clova.TonePoliteCasual.Value())
	assert.Equal(t, 2, clova.TonePoliteFormal.Value())
	assert.Equal(t, 3, clova.ToneNominalEnding.Value())
}

func TestNewSummaryRequestPassesThroughUnvalidatedValues(t *testing.T) {
	req := clova.NewSummaryRequest(
		clova.Document{Title: "t"},
		clova.Option{Language: clova.Korean, Model: clova.General, SummaryCount: 0},
	)

	assert.Empty(t, req.Document.Content)
	assert.Zero(t, req.Option.SummaryCount)
}

func TestParseLanguage(t *testing.T) {
	for raw, want := range map[string]clova.Language{
		"ko":       clova.Korean,
		" Korean ": clova.Korean,
		"ja":       clova.Japanese,
		"JAPANESE": clova.Japanese,
	} {
		got, err := clova.ParseLanguage(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := clova.ParseLanguage("en")
	require.Error(t, err)
}

func TestParseModel(t *testing.T) {
	got, err := clova.ParseModel("NEWS")
	require.NoError(t, err)
	assert.Equal(t, clova.News, got)

	_, err = clova.ParseModel("legal")
	require.Error(t, err)
}

func TestParseTone(t *testing.T) {
	got, err := clova.ParseTone("2")
	require.NoError(t, err)
	assert.Equal(t, clova.TonePoliteFormal, got)

	got, err = clova.ParseTone("nominal-ending")
	require.NoError(t, err)
	assert.Equal(t, clova.ToneNominalEnding, got)

	_, err = clova.ParseTone("4")
	require.Error(t, err)
}
