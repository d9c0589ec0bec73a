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
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l3montree-dev/incidentscan/database/models"
	"github.com/l3montree-dev/incidentscan/dtos"
	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/l3montree-dev/incidentscan/shared"
	"github.com/l3montree-dev/incidentscan/utils"
)

func seedIncident(t *testing.T, repo *incidentRepository, mutate func(*models.Incident)) models.Incident {
	t.Helper()
	incident := models.Incident{SchemaVersion: "v2", State: dtos.IncidentStateSaved}
	if mutate != nil {
		mutate(&incident)
	}
	require.NoError(t, repo.Create(context.Background(), nil, &incident))
	return incident
}

func TestIncidentRepositoryChildren(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	incidents := NewIncidentRepository(db)
	vehicles := NewVehicleRepository(db)
	people := NewInvolvedPersonRepository(db)
	institutions := NewInstitutionRepository(db)

	incident := seedIncident(t, incidents, func(i *models.Incident) {
		i.ActNumber = utils.Ptr("2024-15")
	})
	require.NotEqual(t, uuid.Nil, incident.ID)

	rows := []models.IncidentVehicle{
		{Plate: utils.Ptr("AB-CD-12"), Brand: utils.Ptr("Toyota")},
		{Plate: utils.Ptr("XY-ZZ-99")},
	}

	t.Run("replacing twice with the same rows leaves the same collection", func(t *testing.T) {
		require.NoError(t, vehicles.Replace(ctx, nil, incident.ID, rows))
		first, err := vehicles.ListByIncident(ctx, incident.ID)
		require.NoError(t, err)

		require.NoError(t, vehicles.Replace(ctx, nil, incident.ID, rows))
		second, err := vehicles.ListByIncident(ctx, incident.ID)
		require.NoError(t, err)

		require.Len(t, second, 2)
		for i := range first {
			assert.Equal(t, first[i].Plate, second[i].Plate)
			assert.Equal(t, first[i].Position, second[i].Position)
			assert.Equal(t, i, second[i].Position)
		}
		// the input is not modified
		assert.Equal(t, uuid.Nil, rows[0].IncidentID)
	})

	t.Run("an empty replace clears the collection", func(t *testing.T) {
		require.NoError(t, people.Replace(ctx, nil, incident.ID, []models.IncidentInvolvedPerson{{Name: utils.Ptr("Juan")}}))
		require.NoError(t, people.Replace(ctx, nil, incident.ID, nil))
		list, err := people.ListByIncident(ctx, incident.ID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("read preloads the children in order", func(t *testing.T) {
		require.NoError(t, institutions.Replace(ctx, nil, incident.ID, []models.IncidentInstitution{
			{Type: models.InstitutionCarabineros, Present: utils.Ptr(true)},
			{Type: models.InstitutionSAMU, MobileUnit: utils.Ptr("M-12")},
		}))

		read, err := incidents.Read(ctx, incident.ID)
		require.NoError(t, err)
		require.Len(t, read.Vehicles, 2)
		assert.Equal(t, "AB-CD-12", *read.Vehicles[0].Plate)
		require.Len(t, read.Institutions, 2)
		assert.Equal(t, models.InstitutionSAMU, read.Institutions[1].Type)
	})

	t.Run("delete removes every child row", func(t *testing.T) {
		events := NewIncidentEventRepository(db)
		require.NoError(t, events.Create(ctx, nil, &models.IncidentEvent{IncidentID: incident.ID, Type: dtos.EventTypeSave}))

		require.NoError(t, incidents.Delete(ctx, nil, incident.ID))

		for _, table := range []string{"incident_vehicles", "incident_involved_people", "incident_institutions", "incident_events"} {
			var count int64
			require.NoError(t, db.Table(table).Where("incident_id = ?", incident.ID).Count(&count).Error)
			assert.Zero(t, count, table)
		}
		_, err := incidents.Read(ctx, incident.ID)
		assert.Equal(t, failures.KindNotFound, failures.KindOf(err))

		err = incidents.Delete(ctx, nil, incident.ID)
		assert.Equal(t, failures.KindNotFound, failures.KindOf(err))
	})
}

func TestIncidentRepositorySaveRoot(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewIncidentRepository(db)

	incident := seedIncident(t, repo, func(i *models.Incident) {
		i.Address = utils.Ptr("Av. Brasil 100")
		i.Commander = utils.Ptr("Cap. Soto")
		i.CreatedBy = "alice"
	})

	incident.Address = utils.Ptr("Av. Argentina 200")
	// nil overwrites as well
	incident.Commander = nil
	incident.CreatedBy = "mallory"
	incident.State = dtos.IncidentStateEdited
	require.NoError(t, repo.SaveRoot(ctx, nil, &incident))

	read, err := repo.ReadRoot(ctx, nil, incident.ID)
	require.NoError(t, err)
	assert.Equal(t, "Av. Argentina 200", *read.Address)
	assert.Nil(t, read.Commander)
	assert.Equal(t, dtos.IncidentStateEdited, read.State)
	assert.Equal(t, "alice", read.CreatedBy)

	missing := models.Incident{Model: models.Model{ID: uuid.New()}, SchemaVersion: "v2"}
	err = repo.SaveRoot(ctx, nil, &missing)
	assert.Equal(t, failures.KindNotFound, failures.KindOf(err))
}

func TestIncidentRepositoryList(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewIncidentRepository(db)

	seedIncident(t, repo, func(i *models.Incident) {
		i.ReportDate = utils.Ptr("2024-01-10")
		i.Address = utils.Ptr("Av. Brasil 100")
	})
	seedIncident(t, repo, func(i *models.Incident) {
		i.ReportDate = utils.Ptr("2024-02-05")
		i.Commander = utils.Ptr("Cap. Brasileño")
	})
	seedIncident(t, repo, func(i *models.Incident) {
		i.ReportDate = utils.Ptr("2024-03-01")
		i.ActNumber = utils.Ptr("100%")
	})

	list := func(filter shared.IncidentFilter, page shared.PageInfo) shared.Paged[models.Incident] {
		t.Helper()
		paged, err := repo.List(ctx, filter, page)
		require.NoError(t, err)
		return paged
	}
	all := shared.PageInfo{Page: 1, PageSize: 10}

	assert.EqualValues(t, 3, list(shared.IncidentFilter{}, all).Total)

	ranged := list(shared.IncidentFilter{From: utils.Ptr("2024-01-15"), To: utils.Ptr("2024-02-29")}, all)
	require.Len(t, ranged.Data, 1)
	assert.Equal(t, "2024-02-05", *ranged.Data[0].ReportDate)

	// search is case insensitive and spans address and commander
	searched := list(shared.IncidentFilter{Search: "BRASIL"}, all)
	assert.EqualValues(t, 2, searched.Total)

	// like wildcards are matched literally
	literal := list(shared.IncidentFilter{Search: "0%"}, all)
	require.Len(t, literal.Data, 1)
	assert.Equal(t, "100%", *literal.Data[0].ActNumber)

	paged := list(shared.IncidentFilter{}, shared.PageInfo{Page: 2, PageSize: 2})
	assert.EqualValues(t, 3, paged.Total)
	assert.Len(t, paged.Data, 1)

	ids, err := repo.ListIDs(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 3)
}

func TestStatisticsRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	incidents := NewIncidentRepository(db)
	people := NewInvolvedPersonRepository(db)
	stats := NewStatisticsRepository(db)

	first := seedIncident(t, incidents, func(i *models.Incident) {
		i.ReportDate = utils.Ptr("2024-01-10")
		i.Address = utils.Ptr("Av. Brasil 100")
	})
	seedIncident(t, incidents, func(i *models.Incident) {
		i.ReportDate = utils.Ptr("2024-01-20")
		i.Address = utils.Ptr("Av. Brasil 100")
	})
	seedIncident(t, incidents, func(i *models.Incident) {
		i.ReportDate = utils.Ptr("2024-02-01")
		i.Address = utils.Ptr("Calle Prat 5")
	})
	require.NoError(t, people.Replace(ctx, nil, first.ID, []models.IncidentInvolvedPerson{{Name: utils.Ptr("a")}, {Name: utils.Ptr("b")}}))

	total, err := stats.CountIncidents(ctx, nil, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	february, err := stats.CountIncidents(ctx, utils.Ptr("2024-02-01"), nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, february)

	peopleCount, err := stats.CountInvolvedPeople(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, peopleCount)

	top, err := stats.TopAddresses(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, dtos.KeyCountDTO{Key: "Av. Brasil 100", Count: 2}, top[0])

	byMonth, err := stats.CountByMonth(ctx, "2024-01-01", "2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"2024-01": 2, "2024-02": 1}, byMonth)

	recent, err := stats.RecentIncidents(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	january, err := stats.IncidentsBetween(ctx, utils.Ptr("2024-01-01"), utils.Ptr("2024-01-31"))
	require.NoError(t, err)
	assert.Len(t, january, 2)
}
