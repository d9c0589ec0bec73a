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

package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 50 {
		img.Set(x, height/2, color.Black)
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestScaledDimensions(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{name: "portrait phone photo", width: 3000, height: 4000, wantW: 1536, wantH: 2048},
		{name: "landscape", width: 4032, height: 3024, wantW: 2048, wantH: 1536},
		{name: "already small", width: 800, height: 600, wantW: 800, wantH: 600},
		{name: "exactly the bound", width: 2048, height: 100, wantW: 2048, wantH: 100},
		{name: "extreme strip", width: 10000, height: 2, wantW: 2048, wantH: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, h := ScaledDimensions(tc.width, tc.height, 2048)
			assert.Equal(t, tc.wantW, w)
			assert.Equal(t, tc.wantH, h)
		})
	}
}

func TestNormalize(t *testing.T) {
	n := NewNormalizer(Options{})

	t.Run("bounds the longer edge of a large photo", func(t *testing.T) {
		payload, err := n.Normalize(Source{Name: "form.jpg", Data: encodeJPEG(t, 3000, 4000)})
		require.NoError(t, err)

		assert.Equal(t, 2048, payload.Height)
		assert.InDelta(t, 1536, payload.Width, 1)
		assert.Equal(t, 3000, payload.OriginalWidth)
		assert.Equal(t, "jpeg", payload.SourceFormat)

		cfg, format, err := image.DecodeConfig(bytes.NewReader(payload.Data))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
		assert.Equal(t, payload.Width, cfg.Width)
		assert.Equal(t, payload.Height, cfg.Height)
	})

	t.Run("re-encodes png as jpeg without scaling", func(t *testing.T) {
		payload, err := n.Normalize(Source{Name: "scan.png", Data: encodePNG(t, 300, 200)})
		require.NoError(t, err)
		assert.Equal(t, "png", payload.SourceFormat)
		assert.Equal(t, "image/jpeg", payload.MIMEType)
		assert.Equal(t, 300, payload.Width)
		assert.Equal(t, 200, payload.Height)
		assert.True(t, strings.HasPrefix(payload.DataURI(), "data:image/jpeg;base64,"))
	})

	t.Run("undecodable bytes are an unsupported format", func(t *testing.T) {
		_, err := n.Normalize(Source{Name: "notes.txt", Data: []byte("this is not an image")})
		require.Error(t, err)
		assert.Equal(t, failures.KindUnsupportedImageFormat, failures.KindOf(err))
	})

	t.Run("empty input is invalid", func(t *testing.T) {
		_, err := n.Normalize(Source{Name: "empty"})
		assert.Equal(t, failures.KindInvalidInput, failures.KindOf(err))
	})

	t.Run("oversized input is rejected before decoding", func(t *testing.T) {
		small := NewNormalizer(Options{MaxBytes: 10})
		_, err := small.Normalize(Source{Name: "big", Data: encodePNG(t, 10, 10)})
		assert.Equal(t, failures.KindInvalidInput, failures.KindOf(err))
	})
}

func TestNormalizeAll(t *testing.T) {
	n := NewNormalizer(Options{MaxDimension: 100})

	t.Run("keeps input order", func(t *testing.T) {
		payloads, err := n.NormalizeAll(context.Background(), []Source{
			{Name: "a", Data: encodePNG(t, 400, 200)},
			{Name: "b", Data: encodePNG(t, 50, 50)},
			{Name: "c", Data: encodePNG(t, 200, 400)},
		})
		require.NoError(t, err)
		require.Len(t, payloads, 3)
		assert.Equal(t, "a", payloads[0].Name)
		assert.Equal(t, 100, payloads[0].Width)
		assert.Equal(t, 50, payloads[0].Height)
		assert.Equal(t, "b", payloads[1].Name)
		assert.Equal(t, 50, payloads[1].Width)
		assert.Equal(t, "c", payloads[2].Name)
		assert.Equal(t, 100, payloads[2].Height)
	})

	t.Run("fails when one image fails", func(t *testing.T) {
		_, err := n.NormalizeAll(context.Background(), []Source{
			{Name: "a", Data: encodePNG(t, 10, 10)},
			{Name: "b", Data: []byte("garbage")},
		})
		assert.Equal(t, failures.KindUnsupportedImageFormat, failures.KindOf(err))
	})
}

func TestDecodeDataURI(t *testing.T) {
	raw := encodePNG(t, 2, 2)
	encoded := base64.StdEncoding.EncodeToString(raw)

	t.Run("data uri", func(t *testing.T) {
		src, err := DecodeDataURI("img", "data:image/png;base64,"+encoded)
		require.NoError(t, err)
		assert.Equal(t, raw, src.Data)
	})

	t.Run("bare base64", func(t *testing.T) {
		src, err := DecodeDataURI("img", encoded)
		require.NoError(t, err)
		assert.Equal(t, raw, src.Data)
	})

	t.Run("missing padding", func(t *testing.T) {
		src, err := DecodeDataURI("img", strings.TrimRight(encoded, "="))
		require.NoError(t, err)
		assert.Equal(t, raw, src.Data)
	})

	t.Run("not base64", func(t *testing.T) {
		_, err := DecodeDataURI("img", "data:image/png,rawbytes")
		assert.Equal(t, failures.KindInvalidInput, failures.KindOf(err))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := DecodeDataURI("img", "  ")
		assert.Equal(t, failures.KindInvalidInput, failures.KindOf(err))
	})
}
