// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/l3montree-dev/incidentscan/imaging"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"
)

const (
	DefaultMaxImages = 5
	// upper bound for a completion response, error bodies are cut much earlier
	maxResponseBytes  = 8 << 20
	maxErrorBodyBytes = 4 << 10
)

type ClientConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
	MaxImages int
	// process wide budget for upstream calls, zero disables it
	RequestsPerMinute int
	HTTPClient        *http.Client
}

// Client talks to an OpenAI compatible chat completions endpoint.
// It sends all images of a form in a single request and never retries.
type Client struct {
	cfg        ClientConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Model == "" {
		cfg.Model = "gpt-4o"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 4096
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if cfg.MaxImages <= 0 {
		cfg.MaxImages = DefaultMaxImages
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), cfg.RequestsPerMinute)
	}

	return &Client{cfg: cfg, httpClient: httpClient, limiter: limiter}
}

func (c *Client) MaxImages() int {
	return c.cfg.MaxImages
}

type imageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	MaxTokens      int               `json:"max_tokens"`
	Temperature    float64           `json:"temperature"`
	ResponseFormat map[string]string `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

func (c *Client) buildRequest(spec *FieldSpec, payloads []imaging.Payload) chatRequest {
	parts := make([]contentPart, 0, len(payloads)+1)
	parts = append(parts, contentPart{Type: "text", Text: spec.Prompt()})
	for _, p := range payloads {
		parts = append(parts, contentPart{Type: "image_url", ImageURL: &imageURL{URL: p.DataURI(), Detail: "high"}})
	}

	return chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a careful transcriber. You answer with a single JSON object."},
			{Role: "user", Content: parts},
		},
		MaxTokens:      c.cfg.MaxTokens,
		ResponseFormat: map[string]string{"type": "json_object"},
	}
}

// Extract runs one extraction round trip for all payloads of a single form.
func (c *Client) Extract(ctx context.Context, spec *FieldSpec, payloads []imaging.Payload) (Document, error) {
	if spec == nil {
		return Document{}, failures.New(failures.KindInvalidInput, errors.New("no field specification"))
	}
	if len(payloads) == 0 {
		return Document{}, failures.New(failures.KindInvalidInput, errors.New("no images provided"))
	}
	if len(payloads) > c.cfg.MaxImages {
		return Document{}, failures.Newf(failures.KindInvalidInput, "%d images provided, at most %d are allowed", len(payloads), c.cfg.MaxImages)
	}
	if c.cfg.APIKey == "" {
		return Document{}, failures.New(failures.KindMisconfigured, errors.New("OPENAI_API_KEY is not set"))
	}
	if c.limiter != nil && !c.limiter.Allow() {
		return Document{}, failures.New(failures.KindQuotaExceeded, errors.New("upstream request budget exhausted"))
	}

	ctx, span := otel.Tracer("incidentscan/extraction").Start(ctx, "extraction.request")
	defer span.End()
	span.SetAttributes(
		attribute.String("extraction.model", c.cfg.Model),
		attribute.String("extraction.schema_version", spec.Version),
		attribute.Int("extraction.images", len(payloads)),
	)

	doc, err := c.roundTrip(ctx, spec, payloads)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(failures.KindOf(err)))
		return Document{}, err
	}
	span.SetAttributes(attribute.Int("extraction.filled_fields", doc.FilledFields()))
	return doc, nil
}

func (c *Client) roundTrip(ctx context.Context, spec *FieldSpec, payloads []imaging.Payload) (Document, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(c.buildRequest(spec, payloads))
	if err != nil {
		return Document{}, failures.Wrap(failures.KindInternal, err, "could not marshal completion request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return Document{}, failures.Wrap(failures.KindMisconfigured, err, "could not build completion request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Document{}, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		// the body is logged for operators, never handed to callers
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		slog.Warn("extraction service returned an error", "status", resp.StatusCode, "body", string(snippet), "duration", time.Since(start))
		return Document{}, failures.Newf(KindForStatus(resp.StatusCode), "extraction service responded with status %d", resp.StatusCode)
	}

	var completion chatResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&completion); err != nil {
		if ctx.Err() != nil {
			return Document{}, classifyTransportError(err)
		}
		return Document{}, failures.Wrap(failures.KindParseFailure, err, "could not decode completion envelope")
	}
	if len(completion.Choices) == 0 {
		return Document{}, failures.New(failures.KindParseFailure, errors.New("completion has no choices"))
	}

	choice := completion.Choices[0]
	slog.Info("extraction completed",
		"model", c.cfg.Model,
		"images", len(payloads),
		"promptTokens", completion.Usage.PromptTokens,
		"completionTokens", completion.Usage.CompletionTokens,
		"finishReason", choice.FinishReason,
		"duration", time.Since(start),
	)

	obj, raw, err := ParseContent(choice.Message.Content)
	if err != nil {
		return Document{}, err
	}
	return Reconcile(spec, obj, raw), nil
}

// KindForStatus maps an upstream http status onto the failure taxonomy.
func KindForStatus(status int) failures.Kind {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return failures.KindAuthenticationFailure
	case status == http.StatusTooManyRequests, status == http.StatusPaymentRequired:
		return failures.KindQuotaExceeded
	case status == http.StatusBadRequest,
		status == http.StatusRequestEntityTooLarge,
		status == http.StatusUnsupportedMediaType,
		status == http.StatusUnprocessableEntity:
		return failures.KindInvalidInput
	case status == http.StatusNotFound:
		// unknown model or wrong base url
		return failures.KindMisconfigured
	default:
		return failures.KindUpstreamUnavailable
	}
}

func classifyTransportError(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return failures.Wrap(failures.KindUpstreamUnavailable, err, "extraction service timed out")
	case errors.Is(err, context.Canceled):
		return failures.Wrap(failures.KindUpstreamUnavailable, err, "extraction was cancelled")
	case errors.As(err, &netErr) && netErr.Timeout():
		return failures.Wrap(failures.KindUpstreamUnavailable, err, "extraction service timed out")
	default:
		return failures.Wrap(failures.KindUpstreamUnavailable, err, "could not reach extraction service")
	}
}
