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

package commands

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/l3montree-dev/incidentscan/database"
	"github.com/l3montree-dev/incidentscan/database/repositories"
	"github.com/l3montree-dev/incidentscan/shared"
	"github.com/l3montree-dev/incidentscan/services"
)

func connect(ctx context.Context) (shared.DB, *pgxpool.Pool, error) {
	db, pool, err := database.Connect(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not connect to database")
	}
	return db, pool, nil
}

func newIncidentService(db shared.DB) shared.IncidentService {
	return services.NewIncidentService(
		repositories.NewIncidentRepository(db),
		repositories.NewVehicleRepository(db),
		repositories.NewInvolvedPersonRepository(db),
		repositories.NewInstitutionRepository(db),
		repositories.NewIncidentEventRepository(db),
	)
}
