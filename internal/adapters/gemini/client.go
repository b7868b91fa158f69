// Package gemini is a small client for the Gemini generateContent endpoint
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"lunacycle/internal/platform/config"
	perr "lunacycle/internal/platform/errors"
	"lunacycle/internal/platform/logger"
)

const (
	endpointDefault  = "https://generativelanguage.googleapis.com/v1beta"
	modelDefault     = "gemini-2.5-flash"
	defaultTimeout   = 30 * time.Second
	defaultMaxRetry  = 1
	defaultRetryBase = 500 * time.Millisecond

	// EmptyReply is returned when the model answers with no text parts
	EmptyReply = "AI returned an empty response."
)

// Options configures the Client
type Options struct {
	APIKey   string
	Model    string
	Endpoint string
	Timeout  time.Duration

	// MaxRetries bounds retries of transient failures (network, 5xx)
	MaxRetries int
	RetryBase  time.Duration
}

// FromConfig reads API_KEY, MODEL, ENDPOINT and TIMEOUT from cfg (usually prefixed GEMINI_)
func FromConfig(cfg config.Conf) Options {
	return Options{
		APIKey:   cfg.MayString("API_KEY", ""),
		Model:    cfg.MayString("MODEL", modelDefault),
		Endpoint: cfg.MayString("ENDPOINT", endpointDefault),
		Timeout:  cfg.MayDuration("TIMEOUT", defaultTimeout),
	}
}

// Client calls generateContent with a system instruction and a single user turn
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	sleep func(time.Duration)
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.Model == "" {
		o.Model = modelDefault
	}
	if o.Endpoint == "" {
		o.Endpoint = endpointDefault
	}
	o.Endpoint = strings.TrimSuffix(o.Endpoint, "/")
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	} else if o.MaxRetries == 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("gemini"),
		sleep: time.Sleep,
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateContentRequest struct {
	Contents          []content `json:"contents"`
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate sends prompt with the given system instruction and returns the
// candidate text parts joined by newlines
func (c *Client) Generate(ctx context.Context, system, prompt string) (string, error) {
	body := generateContentRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	}
	if system != "" {
		body.SystemInstruction = &content{Parts: []part{{Text: system}}}
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "gemini encode request")
	}

	attempts := 0
	for {
		text, err := c.call(ctx, raw)
		if err == nil || !perr.Retryable(err) || attempts >= c.opts.MaxRetries || ctx.Err() != nil {
			return text, err
		}
		back := c.opts.RetryBase << uint(attempts)
		c.log.Warn().Err(err).Dur("retry_in", back).Int("attempt", attempts).Msg("gemini transient error retrying")
		c.sleep(back)
		attempts++
	}
}

func (c *Client) call(ctx context.Context, raw []byte) (string, error) {
	url := c.opts.Endpoint + "/models/" + c.opts.Model + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "gemini new request failed")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.opts.APIKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "cannot reach the AI service")
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Str("model", c.opts.Model).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("gemini http response")

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", perr.TooManyf("AI service is rate limited, try again later")
	case resp.StatusCode >= 500:
		return "", perr.Unavailablef("AI service unavailable (%d)", resp.StatusCode)
	case resp.StatusCode >= 300:
		// bad key or rejected prompt; keep a short tail for the operator only
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.log.Error().Int("status", resp.StatusCode).Str("body", string(tail)).Msg("gemini rejected request")
		return "", perr.Upstreamf("AI service rejected the request (%d)", resp.StatusCode)
	}

	var out generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUpstream, "AI service returned a malformed response")
	}
	return joinText(out), nil
}

// joinText concatenates every text part of every candidate
func joinText(r generateContentResponse) string {
	var parts []string
	for _, cand := range r.Candidates {
		for _, p := range cand.Content.Parts {
			if t := strings.TrimSpace(p.Text); t != "" {
				parts = append(parts, t)
			}
		}
	}
	if len(parts) == 0 {
		return EmptyReply
	}
	return strings.Join(parts, "\n")
}
