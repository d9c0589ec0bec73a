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

package controllers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l3montree-dev/incidentscan/dtos"
	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/l3montree-dev/incidentscan/shared"
)

func newJSONContext(method, target, body string) (shared.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func withID(ctx shared.Context, id string) shared.Context {
	ctx.SetParamNames("id")
	ctx.SetParamValues(id)
	return ctx
}

// requireHTTPError asserts the handler failed with the public body of kind.
func requireHTTPError(t *testing.T, err error, kind failures.Kind) dtos.ErrorDTO {
	t.Helper()
	var he *echo.HTTPError
	require.True(t, errors.As(err, &he), "expected an echo error, got %v", err)
	assert.Equal(t, failures.HTTPStatus(kind), he.Code)
	body, ok := he.Message.(dtos.ErrorDTO)
	require.True(t, ok)
	assert.Equal(t, string(kind), body.Code)
	assert.Equal(t, failures.UserMessage(kind), body.Error)
	return body
}

func multipartBody(t *testing.T, fields map[string]string, files map[string][][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, val := range fields {
		require.NoError(t, w.WriteField(key, val))
	}
	for field, contents := range files {
		for i, content := range contents {
			part, err := w.CreateFormFile(field, field+"-"+string(rune('a'+i))+".jpg")
			require.NoError(t, err)
			_, err = part.Write(content)
			require.NoError(t, err)
		}
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestToHTTPError(t *testing.T) {
	t.Run("upstream details never reach the body", func(t *testing.T) {
		err := toHTTPError(failures.Wrap(failures.KindAuthenticationFailure, errors.New("Incorrect API key provided: sk-secret"), "upstream rejected"))
		body := requireHTTPError(t, err, failures.KindAuthenticationFailure)
		assert.False(t, body.Retryable)
		assert.NotContains(t, body.Error, "sk-secret")

		var he *echo.HTTPError
		require.True(t, errors.As(err, &he))
		assert.Contains(t, he.Internal.Error(), "sk-secret")
	})

	t.Run("plain errors are internal", func(t *testing.T) {
		requireHTTPError(t, toHTTPError(errors.New("boom")), failures.KindInternal)
	})

	t.Run("canceled requests count as upstream unavailable", func(t *testing.T) {
		body := requireHTTPError(t, toHTTPError(errors.Wrap(context.DeadlineExceeded, "extract")), failures.KindUpstreamUnavailable)
		assert.True(t, body.Retryable)
	})

	t.Run("echo errors pass through", func(t *testing.T) {
		original := echo.NewHTTPError(http.StatusTeapot)
		assert.Same(t, original, toHTTPError(original))
	})
}

func TestReadUpload(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodPost, "/extractions/", `{"image":"data:image/jpeg;base64,/9j/AA==","images":["/9j/AQ=="],"schemaVersion":"v1"}`)
		version, sources, err := readUpload(ctx)
		require.NoError(t, err)
		assert.Equal(t, "v1", version)
		require.Len(t, sources, 2)
		assert.Equal(t, []byte{0xff, 0xd8, 0xff, 0x00}, sources[0].Data)
		assert.Equal(t, "image-2", sources[1].Name)
	})

	t.Run("json with broken data uri", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodPost, "/extractions/", `{"images":["data:image/jpeg,notbase64"]}`)
		_, _, err := readUpload(ctx)
		requireHTTPError(t, err, failures.KindInvalidInput)
	})

	t.Run("multipart", func(t *testing.T) {
		body, contentType := multipartBody(t, map[string]string{"schemaVersion": "v2"}, map[string][][]byte{
			"images": {[]byte("first"), []byte("second")},
		})
		req := httptest.NewRequest(http.MethodPost, "/extractions/", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		ctx := echo.New().NewContext(req, httptest.NewRecorder())

		version, sources, err := readUpload(ctx)
		require.NoError(t, err)
		assert.Equal(t, "v2", version)
		require.Len(t, sources, 2)
		assert.Equal(t, []byte("first"), sources[0].Data)
		assert.Equal(t, "images-a.jpg", sources[0].Name)
	})
}
