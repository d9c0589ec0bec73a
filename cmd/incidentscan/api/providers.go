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

package api

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"github.com/l3montree-dev/incidentscan/config"
	"github.com/l3montree-dev/incidentscan/monitoring"
	"github.com/l3montree-dev/incidentscan/shared"
)

// Module provides the server and the infrastructure main opened before fx
// took over. shutdownTracing flushes pending spans on stop.
func Module(cfg config.AppConfig, db shared.DB, pool *pgxpool.Pool, shutdownTracing func(context.Context) error) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(NewServer),
		// hooks run in reverse order on stop, so this runs after the server is down
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{
				OnStop: func(ctx context.Context) error {
					pool.Close()
					monitoring.Flush()
					return shutdownTracing(ctx)
				},
			})
		}),
	)
}
