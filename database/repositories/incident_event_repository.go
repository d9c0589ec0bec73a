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

package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/l3montree-dev/incidentscan/database/models"
)

type incidentEventRepository struct {
	*GormRepository[uuid.UUID, models.IncidentEvent]
	db *gorm.DB
}

func NewIncidentEventRepository(db *gorm.DB) *incidentEventRepository {
	return &incidentEventRepository{
		GormRepository: newGormRepository[uuid.UUID, models.IncidentEvent](db),
		db:             db,
	}
}

func (r *incidentEventRepository) ListByIncident(ctx context.Context, incidentID uuid.UUID) ([]models.IncidentEvent, error) {
	events := []models.IncidentEvent{}
	err := r.db.WithContext(ctx).Where("incident_id = ?", incidentID).Order("created_at ASC").Find(&events).Error
	return events, classify(err)
}
