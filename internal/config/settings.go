package config

import (
	"os"
	"strings"

	"clovasummary/internal/clova"
)

// EnvVars maps settings keys to the environment variables backing them.
//
//nolint:gochecknoglobals // Read-only lookup table.
var EnvVars = map[string]string{
	clova.URLKey:          "CLOVA_URL",
	clova.ClientIDKey:     "CLOVA_CLIENT_ID",
	clova.ClientSecretKey: "CLOVA_CLIENT_SECRET",
}

// EnvSettings reads settings from the process environment at lookup time.
type EnvSettings struct{}

func (EnvSettings) Get(key string) (string, bool) {
	name, ok := EnvVars[key]
	if !ok {
		return "", false
	}

	v, ok := os.LookupEnv(name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}

	return v, true
}

// MapSettings serves settings from a fixed map.
type MapSettings map[string]string

func (m MapSettings) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
