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
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l3montree-dev/incidentscan/database/models"
	"github.com/l3montree-dev/incidentscan/dtos"
	"github.com/l3montree-dev/incidentscan/extraction"
	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/l3montree-dev/incidentscan/imaging"
	"github.com/l3montree-dev/incidentscan/shared"
	"github.com/l3montree-dev/incidentscan/transformer"
	"github.com/l3montree-dev/incidentscan/utils"
)

const formContent = `{
	"act_number": "2024-15",
	"date": "05/03/2024",
	"time": "23:50",
	"arrival_time": "00:05",
	"address": "Av. Brasil 100",
	"commander": "J. Pérez",
	"nature": "Incendio estructural",
	"vehicles": [{"plate": "AB-CD-12", "brand": "Toyota"}, {"patente": "XY-ZZ-99"}],
	"involved_people": [{"name": "Ana Rojas", "age": "34"}],
	"institutions_present": {"carabineros": {"present": true, "precinct": "2da Comisaría"}}
}`

func newDocument(t *testing.T, content string) extraction.Document {
	t.Helper()
	spec, err := extraction.Lookup("v2")
	require.NoError(t, err)
	doc, err := extraction.NewDocument(spec, []byte(content))
	require.NoError(t, err)
	return doc
}

func countRows(t *testing.T, db shared.DB, model any, incidentID any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where("incident_id = ?", incidentID).Count(&n).Error)
	return n
}

func TestIncidentLifecycleIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	db, _, terminate := InitDatabaseContainer()
	defer terminate()

	app, _, err := NewTestApp(t, db, nil)
	require.NoError(t, err)
	ctx := context.Background()

	created, err := app.IncidentService.Create(ctx, "jperez", newDocument(t, formContent))
	require.NoError(t, err)
	require.False(t, created.Incomplete())
	id := created.Incident.ID

	t.Run("should store root and children", func(t *testing.T) {
		incident, err := app.IncidentService.Get(ctx, id)
		require.NoError(t, err)

		assert.Equal(t, dtos.IncidentStateSaved, incident.State)
		assert.Equal(t, "2024-03-05", *incident.ReportDate)
		assert.Len(t, incident.Vehicles, 2)
		assert.Len(t, incident.InvolvedPeople, 1)
		assert.Equal(t, 34, *incident.InvolvedPeople[0].Age)
		assert.NotEmpty(t, incident.Institutions)
		assert.NotEmpty(t, incident.RawExtraction)
	})

	t.Run("should edit the root and keep the audit trail", func(t *testing.T) {
		root := transformer.RootToDTO(created.Incident)
		root.Address = utils.Ptr("Calle Prat 5")
		updated, err := app.IncidentService.Update(ctx, "mlopez", id, dtos.UpdateIncidentRequest{
			IncidentRootDTO: root,
			Justification:   utils.Ptr("address was misread"),
		})
		require.NoError(t, err)
		assert.Equal(t, dtos.IncidentStateEdited, updated.State)
		assert.Equal(t, "Calle Prat 5", *updated.Address)

		events, err := app.IncidentService.Events(ctx, id)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("should remap from the stored raw extraction", func(t *testing.T) {
		result, err := app.IncidentService.Remap(ctx, "cli", id)
		require.NoError(t, err)

		assert.Equal(t, dtos.IncidentStateReextracted, result.Incident.State)
		// the raw extraction still has the original address
		assert.Equal(t, "Av. Brasil 100", *result.Incident.Address)
		assert.EqualValues(t, 2, countRows(t, db, &models.IncidentVehicle{}, id))
	})

	t.Run("should find the incident by search and date range", func(t *testing.T) {
		filter, err := shared.NewIncidentFilter("2024-03-01", "2024-03-31", "brasil")
		require.NoError(t, err)
		paged, err := app.IncidentService.List(ctx, filter, shared.PageInfo{Page: 1, PageSize: 10})
		require.NoError(t, err)

		assert.EqualValues(t, 1, paged.Total)
		require.Len(t, paged.Data, 1)
		assert.Equal(t, id, paged.Data[0].ID)
	})

	t.Run("should aggregate the month", func(t *testing.T) {
		monthly, err := app.StatisticsService.Monthly(ctx, "2024-03")
		require.NoError(t, err)

		assert.EqualValues(t, 1, monthly.TotalIncidents)
		assert.InDelta(t, 15, monthly.AvgResponseMinutes, 0.001)
		assert.Equal(t, 100, monthly.CompletenessPercentage)
	})

	t.Run("should delete root and children", func(t *testing.T) {
		require.NoError(t, app.IncidentService.Delete(ctx, "jperez", id))

		_, err := app.IncidentService.Get(ctx, id)
		assert.Equal(t, failures.KindNotFound, failures.KindOf(err))
		assert.Zero(t, countRows(t, db, &models.IncidentVehicle{}, id))
		assert.Zero(t, countRows(t, db, &models.IncidentInvolvedPerson{}, id))
		assert.Zero(t, countRows(t, db, &models.IncidentEvent{}, id))
	})
}

func TestSchemaConstraintsIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	db, _, terminate := InitDatabaseContainer()
	defer terminate()

	app, _, err := NewTestApp(t, db, nil)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("report_date only accepts iso dates", func(t *testing.T) {
		err := db.Exec(`INSERT INTO incidents (id, schema_version, report_date) VALUES (gen_random_uuid(), 'v2', '05/03/2024')`).Error
		assert.Error(t, err)
	})

	t.Run("deleting the root cascades to the children", func(t *testing.T) {
		created, err := app.IncidentService.Create(ctx, "jperez", newDocument(t, formContent))
		require.NoError(t, err)
		id := created.Incident.ID

		require.NoError(t, db.Exec(`DELETE FROM incidents WHERE id = ?`, id).Error)

		assert.Zero(t, countRows(t, db, &models.IncidentVehicle{}, id))
		assert.Zero(t, countRows(t, db, &models.IncidentInstitution{}, id))
	})

	t.Run("children of a missing incident are rejected", func(t *testing.T) {
		created, err := app.IncidentService.Create(ctx, "jperez", newDocument(t, formContent))
		require.NoError(t, err)
		require.NoError(t, app.IncidentService.Delete(ctx, "jperez", created.Incident.ID))

		_, err = app.IncidentService.Remap(ctx, "cli", created.Incident.ID)
		assert.Equal(t, failures.KindNotFound, failures.KindOf(err))
	})
}

func encodePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for x := 0; x < 64; x++ {
		img.Set(x, x%48, color.Black)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestScanIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	db, _, terminate := InitDatabaseContainer()
	defer terminate()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := json.Marshal(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": formContent}, "finish_reason": "stop"},
			},
		})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer upstream.Close()

	app, _, err := NewTestApp(t, db, &TestAppOptions{SuppressLogs: true, UpstreamURL: upstream.URL})
	require.NoError(t, err)
	ctx := context.Background()

	doc, err := app.ExtractionService.Extract(ctx, "", []imaging.Source{{Name: "front.png", Data: encodePNG(t)}})
	require.NoError(t, err)
	assert.Equal(t, extraction.DefaultVersion, doc.SchemaVersion)

	result, err := app.IncidentService.Create(ctx, "jperez", doc)
	require.NoError(t, err)
	assert.False(t, result.Incomplete())
	assert.Equal(t, "2024-15", *result.Incident.ActNumber)
	assert.Len(t, result.Incident.Vehicles, 2)
}
