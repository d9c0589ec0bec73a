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

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/l3montree-dev/incidentscan/cmd/incidentscan/api"
	"github.com/l3montree-dev/incidentscan/config"
	"github.com/l3montree-dev/incidentscan/controllers"
	"github.com/l3montree-dev/incidentscan/database"
	"github.com/l3montree-dev/incidentscan/database/repositories"
	"github.com/l3montree-dev/incidentscan/monitoring"
	"github.com/l3montree-dev/incidentscan/router"
	"github.com/l3montree-dev/incidentscan/services"
	"github.com/l3montree-dev/incidentscan/shared"
)

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	cfg := config.FromEnv()
	monitoring.InitSentry(cfg)
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			monitoring.RecoverAndAlert("panic in main", err)
			monitoring.Flush()
			panic(r)
		}
	}()

	ctx := context.Background()
	shutdownTracing, err := monitoring.InitTracing(ctx, cfg.TracesExporter)
	if err != nil {
		slog.Error("could not init tracing", "err", err)
		os.Exit(1)
	}

	db, pool, err := database.Connect(ctx)
	if err != nil {
		slog.Error("failed to setup database connection", "err", err)
		os.Exit(1)
	}

	if !cfg.DisableAutoMigrate {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "err", err)
			os.Exit(1)
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	if cfg.OpenAIAPIKey == "" {
		slog.Warn("OPENAI_API_KEY is not set, extractions will fail until it is configured")
	}

	fx.New(
		api.Module(cfg, db, pool, shutdownTracing),
		repositories.Module,
		services.Module,
		controllers.Module,
		router.Module,
	).Run()
}
