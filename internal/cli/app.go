package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"clovasummary/internal/clova"
	"clovasummary/internal/config"
	"clovasummary/internal/database"
	"clovasummary/internal/digest"
	"clovasummary/internal/source"
	"clovasummary/internal/summarizer"
)

const (
	engineClova  = "clova"
	engineOpenAI = "openai"
)

// app carries process state shared by the subcommands.
type app struct {
	cfg      config.Config
	settings clova.Settings
	log      *slog.Logger
	level    *slog.LevelVar

	// Option overrides from flags; empty means "use config".
	language string
	model    string
	tone     string
	count    int
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return 0, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}
	return level, nil
}

func (a *app) summaryOption() (clova.Option, error) {
	cfg := a.cfg
	if a.language != "" {
		cfg.Language = a.language
	}
	if a.model != "" {
		cfg.Model = a.model
	}
	if a.tone != "" {
		cfg.Tone = a.tone
	}
	if a.count != 0 {
		cfg.SummaryCount = a.count
	}

	return cfg.SummaryOption()
}

func (a *app) newSummarizer(ctx context.Context, opt clova.Option) (summarizer.Summarizer, error) {
	switch strings.ToLower(strings.TrimSpace(a.cfg.Engine)) {
	case engineClova, "":
		client := clova.New(a.settings, &http.Client{Timeout: a.cfg.ClovaTimeout}, a.log)

		a.log.DebugContext(ctx, "Clova summarizer is initialized",
			"engine", engineClova,
			"timeout", a.cfg.ClovaTimeout)

		return summarizer.NewClovaSummarizer(client, opt, a.log), nil
	case engineOpenAI:
		s, err := summarizer.NewOpenAISummarizer(a.cfg.OpenAIAPIKey, opt)
		if err != nil {
			return nil, fmt.Errorf("create OpenAI summarizer: %w", err)
		}

		a.log.DebugContext(ctx, "OpenAI summarizer is initialized",
			"engine", engineOpenAI)

		return s, nil
	default:
		return nil, fmt.Errorf("unknown SUMMARY_ENGINE %q", a.cfg.Engine)
	}
}

// newDigest wires the summarizer, fetcher and database. The returned close
// function releases the database.
func (a *app) newDigest(ctx context.Context) (*digest.Service, func(), error) {
	opt, err := a.summaryOption()
	if err != nil {
		return nil, nil, err
	}

	s, err := a.newSummarizer(ctx, opt)
	if err != nil {
		return nil, nil, err
	}

	db, err := a.openDatabase(ctx)
	if err != nil {
		return nil, nil, err
	}

	svc := digest.New(
		source.NewFetcher(nil, a.log),
		s,
		db,
		digest.Labels{Language: opt.Language.Value(), Model: opt.Model.Value()},
		a.log,
	)

	return svc, a.closer(ctx, db), nil
}

func (a *app) openDatabase(ctx context.Context) (*database.Database, error) {
	db, err := database.New(ctx, a.cfg.DBPath, a.log)
	if err != nil {
		return nil, fmt.Errorf("initialize db: %w", err)
	}

	return db, nil
}

func (a *app) closer(ctx context.Context, db *database.Database) func() {
	return func() {
		if err := db.Close(); err != nil {
			a.log.ErrorContext(ctx, "Failed to close db",
				"error", err,
				"dbPath", a.cfg.DBPath)
		}
	}
}
