package clova

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Settings keys resolved on every call.
const (
	URLKey          = "clova.url"
	ClientIDKey     = "clova.client.id"
	ClientSecretKey = "clova.client.secret"
)

const (
	headerAPIKeyID = "X-NCP-APIGW-API-KEY-ID"
	headerAPIKey   = "X-NCP-APIGW-API-KEY"

	maxResponseBytes = 1 << 20
)

// Settings resolves configuration values by key.
type Settings interface {
	Get(key string) (string, bool)
}

// Client calls the Clova summarization endpoint.
// It holds no per-call state and is safe for concurrent use.
type Client struct {
	settings   Settings
	httpClient *http.Client
	log        *slog.Logger
}

type summaryResponse struct {
	Summary *string `json:"summary"`
}

type credentials struct {
	url    string
	id     string
	secret string
}

// ErrResponseTooLarge reports a response body over the read limit.
var ErrResponseTooLarge = fmt.Errorf("response body exceeds %d bytes", maxResponseBytes)

// New builds a client. A nil httpClient falls back to a copy of
// http.DefaultClient and a nil log discards output. Redirects are never
// followed: a 3xx is returned to the caller as an APIError.
func New(settings Settings, httpClient *http.Client, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	noRedirect := *httpClient
	noRedirect.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &Client{
		settings:   settings,
		httpClient: &noRedirect,
		log:        log,
	}
}

// GetSummary sends req and returns the summary text exactly as received.
func (c *Client) GetSummary(ctx context.Context, req SummaryRequest) (string, error) {
	creds, err := c.resolve()
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("clova: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, creds.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("clova: create request: %w", err)
	}

	httpReq.Header.Set(headerAPIKeyID, creds.id)
	httpReq.Header.Set(headerAPIKey, creds.secret)
	httpReq.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "Sending summary request",
		"language", req.Option.Language.String(),
		"model", req.Option.Model.String(),
		"tone", req.Option.Tone.String(),
		"summaryCount", req.Option.SummaryCount,
		"contentLength", len(req.Document.Content))

	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.WarnContext(ctx, "Summary request failed",
			"error", err,
			"elapsed", time.Since(start))

		return "", &TransportError{Err: err}
	}
	defer func() {
		if err = resp.Body.Close(); err != nil {
			c.log.ErrorContext(ctx, "Failed to close response body",
				"error", err,
				"operation", "GetSummary")
		}
	}()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	tooLarge := len(respBody) > maxResponseBytes
	if tooLarge {
		respBody = respBody[:maxResponseBytes]
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.WarnContext(ctx, "Summary request rejected",
			"statusCode", resp.StatusCode,
			"elapsed", time.Since(start))

		return "", &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if tooLarge {
		return "", &DecodingError{Err: ErrResponseTooLarge, Body: truncate(string(respBody))}
	}

	var decoded summaryResponse
	if err = json.Unmarshal(respBody, &decoded); err != nil {
		return "", &DecodingError{Err: err, Body: string(respBody)}
	}

	if decoded.Summary == nil {
		return "", &DecodingError{Err: errors.New("summary field is missing"), Body: string(respBody)}
	}

	c.log.DebugContext(ctx, "Summary is received",
		"summaryLength", len(*decoded.Summary),
		"elapsed", time.Since(start))

	return *decoded.Summary, nil
}

func (c *Client) resolve() (credentials, error) {
	var creds credentials

	for _, s := range []struct {
		key string
		dst *string
	}{
		{URLKey, &creds.url},
		{ClientIDKey, &creds.id},
		{ClientSecretKey, &creds.secret},
	} {
		if c.settings == nil {
			return credentials{}, &ConfigurationError{Key: s.key}
		}

		v, ok := c.settings.Get(s.key)
		v = strings.TrimSpace(v)
		if !ok || v == "" {
			return credentials{}, &ConfigurationError{Key: s.key}
		}

		*s.dst = v
	}

	return creds, nil
}
