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
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/l3montree-dev/incidentscan/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completion(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}, "finish_reason": "stop"},
		},
		"usage": map[string]int{"prompt_tokens": 1200, "completion_tokens": 300},
	})
	return string(b)
}

func testPayloads(n int) []imaging.Payload {
	payloads := make([]imaging.Payload, n)
	for i := range payloads {
		payloads[i] = imaging.Payload{Format: "jpeg", MIMEType: "image/jpeg", Data: []byte{0xff, 0xd8, byte(i)}}
	}
	return payloads
}

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate ...func(*ClientConfig)) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := ClientConfig{APIKey: "sk-test", BaseURL: srv.URL, Timeout: 2 * time.Second}
	for _, m := range mutate {
		m(&cfg)
	}
	return NewClient(cfg)
}

func TestExtractSuccess(t *testing.T) {
	var received chatRequest
	var rawRequest map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.NoError(t, json.Unmarshal(body, &rawRequest))
		require.NoError(t, json.Unmarshal(body, &received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completion("```json\n{\"act_number\":\"2024-15\",\"date\":\"05/03/2024\",\"commander\":\"illegible\"}\n```")))
	})

	doc, err := client.Extract(context.Background(), specV2, testPayloads(3))
	require.NoError(t, err)

	assert.Equal(t, "v2", doc.SchemaVersion)
	assert.Equal(t, `"2024-15"`, string(doc.Fields["act_number"]))
	assert.Equal(t, `"illegible"`, string(doc.Fields["commander"]))
	assert.Equal(t, "null", string(doc.Fields["address"]))

	// a single request carries the prompt and all images
	assert.Equal(t, "gpt-4o", received.Model)
	assert.Equal(t, 4096, received.MaxTokens)
	assert.Equal(t, "json_object", received.ResponseFormat["type"])
	messages := rawRequest["messages"].([]any)
	user := messages[1].(map[string]any)
	parts := user["content"].([]any)
	assert.Len(t, parts, 4)
	assert.Equal(t, "text", parts[0].(map[string]any)["type"])
	for _, p := range parts[1:] {
		part := p.(map[string]any)
		assert.Equal(t, "image_url", part["type"])
		assert.Contains(t, part["image_url"].(map[string]any)["url"], "data:image/jpeg;base64,")
	}
}

func TestExtractStatusMapping(t *testing.T) {
	cases := []struct {
		status int
		want   failures.Kind
	}{
		{status: http.StatusUnauthorized, want: failures.KindAuthenticationFailure},
		{status: http.StatusForbidden, want: failures.KindAuthenticationFailure},
		{status: http.StatusTooManyRequests, want: failures.KindQuotaExceeded},
		{status: http.StatusBadRequest, want: failures.KindInvalidInput},
		{status: http.StatusRequestEntityTooLarge, want: failures.KindInvalidInput},
		{status: http.StatusNotFound, want: failures.KindMisconfigured},
		{status: http.StatusInternalServerError, want: failures.KindUpstreamUnavailable},
		{status: http.StatusServiceUnavailable, want: failures.KindUpstreamUnavailable},
	}

	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided: sk-secret"}}`))
			})

			_, err := client.Extract(context.Background(), specV2, testPayloads(1))
			require.Error(t, err)
			assert.Equal(t, tc.want, failures.KindOf(err))
			assert.NotContains(t, failures.UserMessage(failures.KindOf(err)), "sk-secret")
			assert.NotContains(t, err.Error(), "sk-secret")
		})
	}
}

func TestExtractTimeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, func(cfg *ClientConfig) {
		cfg.Timeout = 50 * time.Millisecond
	})

	_, err := client.Extract(context.Background(), specV2, testPayloads(1))
	assert.Equal(t, failures.KindUpstreamUnavailable, failures.KindOf(err))
}

func TestExtractParseFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(completion("I am sorry, the photo is too blurry.")))
	})

	_, err := client.Extract(context.Background(), specV2, testPayloads(1))
	assert.Equal(t, failures.KindParseFailure, failures.KindOf(err))
	assert.True(t, failures.Retryable(failures.KindOf(err)))
}

func TestExtractNoChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.Extract(context.Background(), specV2, testPayloads(1))
	assert.Equal(t, failures.KindParseFailure, failures.KindOf(err))
}

func TestExtractRejectsBeforeCallingUpstream(t *testing.T) {
	var calls atomic.Int32
	handler := func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(completion(`{}`)))
	}

	t.Run("no images", func(t *testing.T) {
		client := newTestClient(t, handler)
		_, err := client.Extract(context.Background(), specV2, nil)
		assert.Equal(t, failures.KindInvalidInput, failures.KindOf(err))
	})

	t.Run("too many images", func(t *testing.T) {
		client := newTestClient(t, handler)
		_, err := client.Extract(context.Background(), specV2, testPayloads(6))
		assert.Equal(t, failures.KindInvalidInput, failures.KindOf(err))
	})

	t.Run("missing api key is a configuration error", func(t *testing.T) {
		client := newTestClient(t, handler, func(cfg *ClientConfig) { cfg.APIKey = "" })
		_, err := client.Extract(context.Background(), specV2, testPayloads(1))
		assert.Equal(t, failures.KindMisconfigured, failures.KindOf(err))
	})

	assert.Equal(t, int32(0), calls.Load())
}

func TestExtractUpstreamBudget(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(completion(`{"act_number":"1"}`)))
	}, func(cfg *ClientConfig) { cfg.RequestsPerMinute = 1 })

	_, err := client.Extract(context.Background(), specV2, testPayloads(1))
	require.NoError(t, err)

	_, err = client.Extract(context.Background(), specV2, testPayloads(1))
	assert.Equal(t, failures.KindQuotaExceeded, failures.KindOf(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestKindForStatus(t *testing.T) {
	assert.Equal(t, failures.KindQuotaExceeded, KindForStatus(http.StatusTooManyRequests))
	assert.Equal(t, failures.KindUpstreamUnavailable, KindForStatus(http.StatusBadGateway))
	assert.Equal(t, failures.KindUpstreamUnavailable, KindForStatus(http.StatusGatewayTimeout))
}
