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

package router

import (
	"time"

	"go.uber.org/fx"

	"github.com/l3montree-dev/incidentscan/config"
	"github.com/l3montree-dev/incidentscan/middlewares"
)

// one limiter for every extracting route, a caller shares the budget across them
func NewRateLimiter(cfg config.AppConfig) *middlewares.RateLimiter {
	return middlewares.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
}

var Module = fx.Options(
	fx.Provide(NewRateLimiter),
	fx.Provide(NewAPIV1Router),
	fx.Provide(NewExtractionRouter),
	fx.Provide(NewIncidentRouter),
	fx.Provide(NewStatisticsRouter),
	// routes are registered by constructing the routers
	fx.Invoke(func(ExtractionRouter, IncidentRouter, StatisticsRouter) {}),
)
