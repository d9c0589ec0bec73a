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
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l3montree-dev/incidentscan/config"
	"github.com/l3montree-dev/incidentscan/dtos"
	"github.com/l3montree-dev/incidentscan/failures"
)

func testConfig() config.AppConfig {
	return config.AppConfig{
		FrontendURL:         "http://localhost:3000",
		Environment:         "test",
		RequestBodyLimitRaw: "1K",
	}
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dtos.ErrorDTO {
	t.Helper()
	var body dtos.ErrorDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestServer(t *testing.T) {
	e := Server(testConfig())
	e.GET("/api/v1/ping/", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "pong")
	})
	e.POST("/api/v1/echo/", func(ctx echo.Context) error {
		var body map[string]any
		if err := ctx.Bind(&body); err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, body)
	})
	e.GET("/api/v1/panic/", func(ctx echo.Context) error {
		panic("boom")
	})
	e.GET("/api/v1/missing/", func(ctx echo.Context) error {
		return failures.New(failures.KindNotFound, errors.New("record not found"))
	})

	t.Run("should set the security headers on every response", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/api/v1/ping", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "1; mode=block", rec.Header().Get("X-XSS-Protection"))
		assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
		assert.Equal(t, contentSecurityPolicy, rec.Header().Get("Content-Security-Policy"))
		assert.Equal(t, permissionsPolicy, rec.Header().Get("Permissions-Policy"))
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("should answer unknown routes with an error body", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/api/v1/nothing/", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", decodeError(t, rec).Code)
	})

	t.Run("should map plain failures to their status", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/api/v1/missing/", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "not_found", body.Code)
		assert.NotContains(t, body.Error, "record not found")
	})

	t.Run("should turn panics into internal errors", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/api/v1/panic/", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "internal", body.Code)
		assert.False(t, body.Retryable)
	})

	t.Run("should reject bodies above the limit", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/api/v1/echo/", `{"data":"`+strings.Repeat("a", 2048)+`"}`)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, "invalid_input", decodeError(t, rec).Code)
	})
}

func TestErrorBodyKeepsControllerBody(t *testing.T) {
	expected := dtos.ErrorDTO{Error: "msg", Code: "parse_failure", Retryable: true}
	code, body := errorBody(echo.NewHTTPError(http.StatusInternalServerError, expected))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, expected, body)
}
