// Copyright (C) 2024 Tim Bastin, l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package services

import (
	"net/http"

	"go.uber.org/fx"

	"github.com/l3montree-dev/incidentscan/common"
	"github.com/l3montree-dev/incidentscan/config"
	"github.com/l3montree-dev/incidentscan/extraction"
	"github.com/l3montree-dev/incidentscan/imaging"
	"github.com/l3montree-dev/incidentscan/shared"
)

func NewImageNormalizer(cfg config.AppConfig) *imaging.Normalizer {
	return imaging.NewNormalizer(imaging.Options{
		MaxDimension: cfg.ImageMaxDimension,
		Quality:      cfg.ImageJPEGQuality,
		MaxBytes:     cfg.ImageMaxBytes,
	})
}

// NewExtractionClient never fails. A missing API key is reported on the
// first extraction so the server still starts.
func NewExtractionClient(cfg config.AppConfig, httpClient *http.Client) *extraction.Client {
	return extraction.NewClient(extraction.ClientConfig{
		APIKey:            cfg.OpenAIAPIKey,
		BaseURL:           cfg.OpenAIBaseURL,
		Model:             cfg.Model,
		MaxTokens:         cfg.MaxTokens,
		Timeout:           cfg.ExtractionTimeout,
		MaxImages:         cfg.MaxImages,
		RequestsPerMinute: cfg.UpstreamPerMinute,
		HTTPClient:        httpClient,
	})
}

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(common.NewOutgoingHTTPClient),
	fx.Provide(fx.Annotate(NewImageNormalizer, fx.As(new(shared.ImageNormalizer)))),
	fx.Provide(fx.Annotate(NewExtractionClient, fx.As(new(shared.ExtractionClient)))),
	fx.Provide(fx.Annotate(NewExtractionService, fx.As(new(shared.ExtractionService)))),
	fx.Provide(fx.Annotate(NewIncidentService, fx.As(new(shared.IncidentService)))),
	fx.Provide(fx.Annotate(NewStatisticsService, fx.As(new(shared.StatisticsService)))),
)
