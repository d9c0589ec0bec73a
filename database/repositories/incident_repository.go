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
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/l3montree-dev/incidentscan/database/models"
	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/l3montree-dev/incidentscan/shared"
)

// columns matched by the free text search, all of them indexed
var searchColumns = []string{"act_number", "address", "commander"}

type incidentRepository struct {
	*GormRepository[uuid.UUID, models.Incident]
	db *gorm.DB
}

func NewIncidentRepository(db *gorm.DB) *incidentRepository {
	return &incidentRepository{
		GormRepository: newGormRepository[uuid.UUID, models.Incident](db),
		db:             db,
	}
}

func (r *incidentRepository) Create(ctx context.Context, tx *gorm.DB, incident *models.Incident) error {
	return classify(r.GetDB(ctx, tx).Omit(clause.Associations).Create(incident).Error)
}

// SaveRoot overwrites every root column. It never inserts, so a concurrently
// deleted incident stays deleted.
func (r *incidentRepository) SaveRoot(ctx context.Context, tx *gorm.DB, incident *models.Incident) error {
	res := r.GetDB(ctx, tx).
		Model(incident).
		Select("*").
		Omit(clause.Associations, "id", "created_at", "created_by").
		Updates(incident)
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return failures.Newf(failures.KindNotFound, "incident %s does not exist", incident.ID)
	}
	return nil
}

func (r *incidentRepository) Read(ctx context.Context, id uuid.UUID) (models.Incident, error) {
	var incident models.Incident
	err := r.db.WithContext(ctx).
		Preload("Vehicles", orderByPosition).
		Preload("InvolvedPeople", orderByPosition).
		Preload("Institutions", orderByPosition).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&incident, "id = ?", id).Error
	return incident, classify(err)
}

func (r *incidentRepository) ReadRoot(ctx context.Context, tx *gorm.DB, id uuid.UUID) (models.Incident, error) {
	var incident models.Incident
	err := r.GetDB(ctx, tx).First(&incident, "id = ?", id).Error
	return incident, classify(err)
}

func (r *incidentRepository) List(ctx context.Context, filter shared.IncidentFilter, pageInfo shared.PageInfo) (shared.Paged[models.Incident], error) {
	q := r.db.WithContext(ctx).Model(&models.Incident{})

	if filter.From != nil {
		q = q.Where("report_date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("report_date <= ?", *filter.To)
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		conditions := make([]string, len(searchColumns))
		args := make([]any, len(searchColumns))
		for i, col := range searchColumns {
			conditions[i] = "lower(" + col + `) LIKE ? ESCAPE '\'`
			args[i] = pattern
		}
		q = q.Where("("+strings.Join(conditions, " OR ")+")", args...)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return shared.Paged[models.Incident]{}, classify(err)
	}

	incidents := []models.Incident{}
	err := pageInfo.ApplyOnDB(q).Order("created_at DESC").Order("id").Find(&incidents).Error
	if err != nil {
		return shared.Paged[models.Incident]{}, classify(err)
	}
	return shared.NewPaged(pageInfo, total, incidents), nil
}

func (r *incidentRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	err := r.db.WithContext(ctx).Model(&models.Incident{}).Order("created_at ASC").Pluck("id", &ids).Error
	return ids, classify(err)
}

// Delete removes the children and the root in one transaction.
func (r *incidentRepository) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	remove := func(tx *gorm.DB) error {
		for _, child := range []any{
			&models.IncidentVehicle{},
			&models.IncidentInvolvedPerson{},
			&models.IncidentInstitution{},
			&models.IncidentEvent{},
		} {
			if err := tx.Where("incident_id = ?", id).Delete(child).Error; err != nil {
				return classify(err)
			}
		}
		res := tx.Where("id = ?", id).Delete(&models.Incident{})
		if res.Error != nil {
			return classify(res.Error)
		}
		if res.RowsAffected == 0 {
			return failures.Newf(failures.KindNotFound, "incident %s does not exist", id)
		}
		return nil
	}

	if tx != nil {
		return remove(tx.WithContext(ctx))
	}
	return classify(r.Transaction(ctx, remove))
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
