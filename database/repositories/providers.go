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

package repositories

import (
	"github.com/l3montree-dev/incidentscan/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewIncidentRepository, fx.As(new(shared.IncidentRepository)))),
	fx.Provide(fx.Annotate(NewVehicleRepository, fx.As(new(shared.VehicleRepository)))),
	fx.Provide(fx.Annotate(NewInvolvedPersonRepository, fx.As(new(shared.InvolvedPersonRepository)))),
	fx.Provide(fx.Annotate(NewInstitutionRepository, fx.As(new(shared.InstitutionRepository)))),
	fx.Provide(fx.Annotate(NewIncidentEventRepository, fx.As(new(shared.IncidentEventRepository)))),
	fx.Provide(fx.Annotate(NewStatisticsRepository, fx.As(new(shared.StatisticsRepository)))),
)
