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

	"gorm.io/gorm"

	"github.com/l3montree-dev/incidentscan/database/models"
	"github.com/l3montree-dev/incidentscan/dtos"
)

// columns the aggregates are computed from
var statisticsColumns = []string{
	"id", "state", "created_at", "act_number", "report_date", "call_time", "arrival_time",
	"address", "nature", "commander", "company_commander",
	"injured_count", "involved_count", "affected_count",
}

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) *statisticsRepository {
	return &statisticsRepository{
		db: db,
	}
}

func between(db *gorm.DB, from, to *string) *gorm.DB {
	if from != nil {
		db = db.Where("report_date >= ?", *from)
	}
	if to != nil {
		db = db.Where("report_date <= ?", *to)
	}
	return db
}

func (r *statisticsRepository) CountIncidents(ctx context.Context, from, to *string) (int64, error) {
	var count int64
	err := between(r.db.WithContext(ctx).Model(&models.Incident{}), from, to).Count(&count).Error
	return count, classify(err)
}

func (r *statisticsRepository) CountInvolvedPeople(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.IncidentInvolvedPerson{}).Count(&count).Error
	return count, classify(err)
}

func (r *statisticsRepository) RecentIncidents(ctx context.Context, limit int) ([]models.Incident, error) {
	incidents := []models.Incident{}
	err := r.db.WithContext(ctx).Select(statisticsColumns).Order("created_at DESC").Limit(limit).Find(&incidents).Error
	return incidents, classify(err)
}

func (r *statisticsRepository) TopAddresses(ctx context.Context, limit int) ([]dtos.KeyCountDTO, error) {
	rows := []dtos.KeyCountDTO{}
	err := r.db.WithContext(ctx).Model(&models.Incident{}).
		Select("address AS key, COUNT(*) AS count").
		Where("address IS NOT NULL AND address <> ''").
		Group("address").
		Order("count DESC").Order("address ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, classify(err)
}

// CountByMonth groups the incidents with a report date in [from, to] by
// their YYYY-MM prefix.
func (r *statisticsRepository) CountByMonth(ctx context.Context, from, to string) (map[string]int64, error) {
	var rows []struct {
		Month string
		Count int64
	}
	err := between(r.db.WithContext(ctx).Model(&models.Incident{}), &from, &to).
		Select("substr(report_date, 1, 7) AS month, COUNT(*) AS count").
		Group("substr(report_date, 1, 7)").
		Scan(&rows).Error
	if err != nil {
		return nil, classify(err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Month] = row.Count
	}
	return counts, nil
}

func (r *statisticsRepository) IncidentsBetween(ctx context.Context, from, to *string) ([]models.Incident, error) {
	incidents := []models.Incident{}
	err := between(r.db.WithContext(ctx).Select(statisticsColumns), from, to).Order("report_date ASC").Find(&incidents).Error
	return incidents, classify(err)
}
