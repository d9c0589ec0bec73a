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

package middlewares

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l3montree-dev/incidentscan/shared"
)

func TestCallerMiddleware(t *testing.T) {
	proxies := ParseTrustedProxies([]string{"192.0.2.0/24"})

	cases := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		expected   string
	}{
		{
			name:       "auth proxy user",
			remoteAddr: "192.0.2.10:52100",
			headers:    map[string]string{"X-Auth-Request-User": "capitan", "X-Forwarded-User": "other"},
			expected:   "capitan",
		},
		{
			name:       "forwarded user",
			remoteAddr: "192.0.2.10:52100",
			headers:    map[string]string{"X-Forwarded-User": " teniente "},
			expected:   "teniente",
		},
		{
			name:       "client ip behind the proxy without a user",
			remoteAddr: "192.0.2.10:52100",
			expected:   "192.0.2.10",
		},
		{
			name:       "user header from an untrusted client",
			remoteAddr: "203.0.113.7:40000",
			headers:    map[string]string{"X-Auth-Request-User": "capitan"},
			expected:   "203.0.113.7",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			e := echo.New()
			e.IPExtractor = ipExtractor(proxies)
			ctx := e.NewContext(req, httptest.NewRecorder())

			var caller string
			err := CallerMiddleware(proxies)(func(ctx echo.Context) error {
				caller = shared.GetCaller(ctx)
				return nil
			})(ctx)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, caller)
		})
	}
}

func TestParseTrustedProxies(t *testing.T) {
	ranges := ParseTrustedProxies([]string{"10.0.0.0/8", "192.0.2.5", "2001:db8::1", "not-an-ip"})
	require.Len(t, ranges, 3)
	assert.Equal(t, "10.0.0.0/8", ranges[0].String())
	assert.Equal(t, "192.0.2.5/32", ranges[1].String())
	assert.Equal(t, "2001:db8::1/128", ranges[2].String())
}

func TestRateLimitIgnoresSpoofedCallerHeaders(t *testing.T) {
	e := Server(testConfig())
	e.POST("/api/v1/extractions/", func(ctx echo.Context) error {
		return ctx.NoContent(http.StatusNoContent)
	}, RateLimit(NewRateLimiter(2, time.Minute)))

	codes := make([]int, 0, 20)
	for i := range 20 {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/extractions/", nil)
		req.RemoteAddr = "203.0.113.7:40000"
		req.Header.Set("X-Auth-Request-User", fmt.Sprintf("bombero-%d", i))
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent}, codes[:2])
	for _, code := range codes[2:] {
		assert.Equal(t, http.StatusTooManyRequests, code)
	}
}

func TestRateLimitTrustsProxyUsers(t *testing.T) {
	cfg := testConfig()
	cfg.TrustedProxies = []string{"192.0.2.1"}
	e := Server(cfg)
	e.POST("/api/v1/extractions/", func(ctx echo.Context) error {
		return ctx.NoContent(http.StatusNoContent)
	}, RateLimit(NewRateLimiter(1, time.Minute)))

	send := func(user string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/extractions/", nil)
		req.RemoteAddr = "192.0.2.1:8080"
		req.Header.Set("X-Auth-Request-User", user)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, send("capitan"))
	assert.Equal(t, http.StatusTooManyRequests, send("capitan"))
	assert.Equal(t, http.StatusNoContent, send("teniente"))
}
