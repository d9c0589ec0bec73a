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

package tests

import (
	"testing"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/l3montree-dev/incidentscan/config"
	"github.com/l3montree-dev/incidentscan/controllers"
	"github.com/l3montree-dev/incidentscan/database/repositories"
	"github.com/l3montree-dev/incidentscan/services"
	"github.com/l3montree-dev/incidentscan/shared"
)

type TestApp struct {
	fx.In

	DB shared.DB

	// Services
	ExtractionService shared.ExtractionService
	IncidentService   shared.IncidentService
	StatisticsService shared.StatisticsService

	// Controllers
	IncidentController   *controllers.IncidentController
	ExtractionController *controllers.ExtractionController

	// Repositories
	IncidentRepository       shared.IncidentRepository
	VehicleRepository        shared.VehicleRepository
	InvolvedPersonRepository shared.InvolvedPersonRepository
	InstitutionRepository    shared.InstitutionRepository
	IncidentEventRepository  shared.IncidentEventRepository
	StatisticsRepository     shared.StatisticsRepository
}

type TestAppOptions struct {
	// Additional FX options to include
	ExtraOptions []fx.Option
	// Whether to suppress FX logging
	SuppressLogs bool
	// Base url of a fake OpenAI-compatible server, empty leaves extraction unconfigured
	UpstreamURL string
}

// TestConfig is the configuration the test app runs with.
func TestConfig(upstreamURL string) config.AppConfig {
	cfg := config.FromEnv()
	cfg.OpenAIBaseURL = upstreamURL
	cfg.OpenAIAPIKey = "sk-test"
	cfg.ExtractionTimeout = 5 * time.Second
	cfg.UpstreamPerMinute = 600
	if upstreamURL == "" {
		cfg.OpenAIAPIKey = ""
	}
	return cfg
}

func NewTestApp(t *testing.T, db shared.DB, opts *TestAppOptions) (*TestApp, *fxtest.App, error) {
	if opts == nil {
		opts = &TestAppOptions{SuppressLogs: true}
	}

	var app TestApp

	fxOptions := []fx.Option{
		fx.Supply(db),
		fx.Supply(TestConfig(opts.UpstreamURL)),

		// Use the same modules as production
		repositories.Module,
		services.Module,
		controllers.Module,
		fx.Populate(&app),
	}

	if len(opts.ExtraOptions) > 0 {
		fxOptions = append(fxOptions, opts.ExtraOptions...)
	}

	if opts.SuppressLogs {
		fxOptions = append(fxOptions, fx.NopLogger)
	}

	fxApp := fxtest.New(t, fxOptions...)

	if err := fxApp.Err(); err != nil {
		return nil, nil, err
	}

	fxApp.RequireStart()

	return &app, fxApp, nil
}
