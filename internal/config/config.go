package config

import (
	"fmt"
	"time"

	"clovasummary/internal/clova"

	"github.com/caarlos0/env/v11"
)

// Config holds process-wide settings. Clova credentials are deliberately
// absent: the client resolves them per call through Settings.
type Config struct {
	ClovaTimeout    time.Duration `env:"CLOVA_TIMEOUT"     envDefault:"30s"`
	DBPath          string        `env:"DB_PATH"           envDefault:"db.sqlite"`
	LogLevel        string        `env:"LOG_LEVEL"         envDefault:"info"`
	Engine          string        `env:"SUMMARY_ENGINE"    envDefault:"clova"`
	OpenAIAPIKey    string        `env:"OPENAI_API_KEY"`
	Language        string        `env:"SUMMARY_LANGUAGE"  envDefault:"ko"`
	Model           string        `env:"SUMMARY_MODEL"     envDefault:"news"`
	Tone            string        `env:"SUMMARY_TONE"      envDefault:"0"`
	SummaryCount    int           `env:"SUMMARY_COUNT"     envDefault:"3"`
	DigestFeeds     []string      `env:"DIGEST_FEEDS"`
	DigestSchedule  string        `env:"DIGEST_SCHEDULE"   envDefault:"0 * * * *"`
	DigestItemLimit int           `env:"DIGEST_ITEM_LIMIT" envDefault:"5"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SummaryOption parses the configured summary defaults.
func (c Config) SummaryOption() (clova.Option, error) {
	language, err := clova.ParseLanguage(c.Language)
	if err != nil {
		return clova.Option{}, fmt.Errorf("parse SUMMARY_LANGUAGE: %w", err)
	}

	model, err := clova.ParseModel(c.Model)
	if err != nil {
		return clova.Option{}, fmt.Errorf("parse SUMMARY_MODEL: %w", err)
	}

	tone, err := clova.ParseTone(c.Tone)
	if err != nil {
		return clova.Option{}, fmt.Errorf("parse SUMMARY_TONE: %w", err)
	}

	return clova.Option{
		Language:     language,
		Model:        model,
		Tone:         tone,
		SummaryCount: c.SummaryCount,
	}, nil
}
