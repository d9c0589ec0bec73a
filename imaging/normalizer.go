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

// Package imaging prepares photographed forms for the extraction service.
// Images are decoded, bounded to a maximum edge length and re-encoded as jpeg.
package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/jpeg"
	"log/slog"

	// registered decoders
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/l3montree-dev/incidentscan/failures"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultMaxDimension = 2048
	DefaultQuality      = 70
	DefaultMaxBytes     = 10 << 20
	// guards against decompression bombs
	maxPixels = 120_000_000
)

type Options struct {
	MaxDimension int
	Quality      int
	MaxBytes     int
	Parallelism  int
}

type Source struct {
	Name string
	Data []byte
}

type Payload struct {
	Name           string `json:"name"`
	Format         string `json:"format"`
	MIMEType       string `json:"mimeType"`
	SourceFormat   string `json:"sourceFormat"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	OriginalWidth  int    `json:"originalWidth"`
	OriginalHeight int    `json:"originalHeight"`
	Data           []byte `json:"-"`
}

func (p Payload) DataURI() string {
	return "data:" + p.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(p.Data)
}

type Normalizer struct {
	opts Options
}

func NewNormalizer(opts Options) *Normalizer {
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = DefaultMaxDimension
	}
	if opts.Quality <= 0 || opts.Quality > 100 {
		opts.Quality = DefaultQuality
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = 2
	}
	return &Normalizer{opts: opts}
}

func (n *Normalizer) Options() Options {
	return n.opts
}

func (n *Normalizer) Normalize(src Source) (Payload, error) {
	if len(src.Data) == 0 {
		return Payload{}, failures.Newf(failures.KindInvalidInput, "image %q is empty", src.Name)
	}
	if len(src.Data) > n.opts.MaxBytes {
		return Payload{}, failures.Newf(failures.KindInvalidInput, "image %q exceeds %d bytes", src.Name, n.opts.MaxBytes)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(src.Data))
	if err != nil {
		return Payload{}, failures.Wrap(failures.KindUnsupportedImageFormat, err, "could not read image header")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > maxPixels {
		return Payload{}, failures.Newf(failures.KindInvalidInput, "image %q has unsupported dimensions %dx%d", src.Name, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(src.Data))
	if err != nil {
		return Payload{}, failures.Wrap(failures.KindUnsupportedImageFormat, err, "could not decode image")
	}

	bounds := img.Bounds()
	width, height := ScaledDimensions(bounds.Dx(), bounds.Dy(), n.opts.MaxDimension)

	// jpeg has no alpha channel, transparent regions become white
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	if width == bounds.Dx() && height == bounds.Dy() {
		draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Over)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: n.opts.Quality}); err != nil {
		return Payload{}, failures.Wrap(failures.KindInternal, err, "could not encode jpeg")
	}

	slog.Debug("normalized image", "name", src.Name, "format", format, "from", [2]int{bounds.Dx(), bounds.Dy()}, "to", [2]int{width, height}, "bytes", buf.Len())

	return Payload{
		Name:           src.Name,
		Format:         "jpeg",
		MIMEType:       "image/jpeg",
		SourceFormat:   format,
		Width:          width,
		Height:         height,
		OriginalWidth:  bounds.Dx(),
		OriginalHeight: bounds.Dy(),
		Data:           buf.Bytes(),
	}, nil
}

// NormalizeAll keeps the order of the sources.
func (n *Normalizer) NormalizeAll(ctx context.Context, sources []Source) ([]Payload, error) {
	payloads := make([]Payload, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(n.opts.Parallelism)
	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := n.Normalize(src)
			if err != nil {
				return err
			}
			payloads[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return payloads, nil
}

// ScaledDimensions bounds the longer edge to maxEdge and keeps the aspect ratio.
func ScaledDimensions(width, height, maxEdge int) (int, int) {
	if width <= maxEdge && height <= maxEdge {
		return width, height
	}
	if width >= height {
		h := (height*maxEdge + width/2) / width
		return maxEdge, atLeastOne(h)
	}
	w := (width*maxEdge + height/2) / height
	return atLeastOne(w), maxEdge
}

func atLeastOne(i int) int {
	if i < 1 {
		return 1
	}
	return i
}
