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

package services

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/l3montree-dev/incidentscan/config"
	"github.com/l3montree-dev/incidentscan/extraction"
	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/l3montree-dev/incidentscan/imaging"
	"github.com/l3montree-dev/incidentscan/monitoring"
	"github.com/l3montree-dev/incidentscan/shared"
)

type extractionService struct {
	normalizer     shared.ImageNormalizer
	client         shared.ExtractionClient
	defaultVersion string
}

func NewExtractionService(normalizer shared.ImageNormalizer, client shared.ExtractionClient, cfg config.AppConfig) *extractionService {
	version := cfg.SchemaVersion
	if !extraction.IsKnownVersion(version) {
		slog.Warn("unknown default schema version, falling back", "configured", version, "default", extraction.DefaultVersion)
		version = extraction.DefaultVersion
	}
	return &extractionService{
		normalizer:     normalizer,
		client:         client,
		defaultVersion: version,
	}
}

func (s *extractionService) DefaultVersion() string {
	return s.defaultVersion
}

func (s *extractionService) Extract(ctx context.Context, version string, sources []imaging.Source) (doc extraction.Document, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			monitoring.ExtractionFailures.WithLabelValues(string(failures.KindOf(err))).Inc()
			return
		}
		monitoring.ExtractionDuration.Observe(time.Since(start).Seconds())
		monitoring.ExtractionImages.Observe(float64(len(sources)))
		monitoring.ExtractionFilledFields.Observe(float64(doc.FilledFields()))
	}()

	if version == "" {
		version = s.defaultVersion
	}
	spec, err := extraction.Lookup(version)
	if err != nil {
		return extraction.Document{}, err
	}

	// reject before spending time on decoding
	switch {
	case len(sources) == 0:
		return extraction.Document{}, failures.Newf(failures.KindInvalidInput, "no images provided")
	case len(sources) > s.client.MaxImages():
		return extraction.Document{}, failures.Newf(failures.KindInvalidInput, "%d images exceed the limit of %d", len(sources), s.client.MaxImages())
	}

	normalizeCtx, span := otel.Tracer("incidentscan/services").Start(ctx, "extraction.normalize",
		trace.WithAttributes(attribute.Int("images", len(sources))))
	payloads, err := s.normalizer.NormalizeAll(normalizeCtx, sources)
	span.End()
	if err != nil {
		return extraction.Document{}, err
	}

	var before, after int
	for i := range payloads {
		before += len(sources[i].Data)
		after += len(payloads[i].Data)
	}
	if before > after {
		monitoring.ImageBytesSaved.Add(float64(before - after))
	}
	slog.Debug("images normalized", "count", len(payloads), "bytesBefore", before, "bytesAfter", after)

	doc, err = s.client.Extract(ctx, spec, payloads)
	if err != nil {
		return extraction.Document{}, err
	}
	if len(doc.Warnings) > 0 {
		slog.Info("extraction does not match the schema", "version", spec.Version, "warnings", doc.Warnings)
	}
	return doc, nil
}
