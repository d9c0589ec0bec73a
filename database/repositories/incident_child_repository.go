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
	"github.com/l3montree-dev/incidentscan/utils"
)

// childRow is implemented by every child collection model.
type childRow interface {
	utils.Tabler
	models.IncidentVehicle | models.IncidentInvolvedPerson | models.IncidentInstitution
}

type incidentChildRepository[T childRow] struct {
	*GormRepository[uuid.UUID, T]
	db *gorm.DB
	// assigns the parent and the position before insert
	attach func(row *T, incidentID uuid.UUID, position int)
}

func NewVehicleRepository(db *gorm.DB) *incidentChildRepository[models.IncidentVehicle] {
	return newIncidentChildRepository(db, func(row *models.IncidentVehicle, incidentID uuid.UUID, position int) {
		row.ID = uuid.Nil
		row.IncidentID = incidentID
		row.Position = position
	})
}

func NewInvolvedPersonRepository(db *gorm.DB) *incidentChildRepository[models.IncidentInvolvedPerson] {
	return newIncidentChildRepository(db, func(row *models.IncidentInvolvedPerson, incidentID uuid.UUID, position int) {
		row.ID = uuid.Nil
		row.IncidentID = incidentID
		row.Position = position
	})
}

func NewInstitutionRepository(db *gorm.DB) *incidentChildRepository[models.IncidentInstitution] {
	return newIncidentChildRepository(db, func(row *models.IncidentInstitution, incidentID uuid.UUID, position int) {
		row.ID = uuid.Nil
		row.IncidentID = incidentID
		row.Position = position
	})
}

func newIncidentChildRepository[T childRow](db *gorm.DB, attach func(row *T, incidentID uuid.UUID, position int)) *incidentChildRepository[T] {
	return &incidentChildRepository[T]{
		GormRepository: newGormRepository[uuid.UUID, T](db),
		db:             db,
		attach:         attach,
	}
}

// Replace swaps the whole collection of an incident. Rows get fresh ids and
// dense positions in slice order. Running it twice with the same rows leaves
// the same collection behind.
func (r *incidentChildRepository[T]) Replace(ctx context.Context, tx *gorm.DB, incidentID uuid.UUID, rows []T) error {
	replace := func(tx *gorm.DB) error {
		var zero T
		if err := tx.Where("incident_id = ?", incidentID).Delete(&zero).Error; err != nil {
			return classify(err)
		}
		insert := make([]T, len(rows))
		copy(insert, rows)
		for i := range insert {
			r.attach(&insert[i], incidentID, i)
		}
		return r.CreateBatch(ctx, tx, insert)
	}

	// nested transactions become savepoints, so a failing collection never
	// takes the caller's transaction with it
	return classify(r.GetDB(ctx, tx).Transaction(replace))
}

func (r *incidentChildRepository[T]) ListByIncident(ctx context.Context, incidentID uuid.UUID) ([]T, error) {
	rows := []T{}
	err := r.db.WithContext(ctx).Where("incident_id = ?", incidentID).Order("position ASC").Find(&rows).Error
	return rows, classify(err)
}
