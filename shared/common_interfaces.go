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

package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/l3montree-dev/incidentscan/database/models"
	"github.com/l3montree-dev/incidentscan/dtos"
	"github.com/l3montree-dev/incidentscan/extraction"
	"github.com/l3montree-dev/incidentscan/imaging"
)

type IncidentRepository interface {
	Transaction(ctx context.Context, fn func(tx DB) error) error
	// Create and SaveRoot only touch the incidents table.
	Create(ctx context.Context, tx DB, incident *models.Incident) error
	SaveRoot(ctx context.Context, tx DB, incident *models.Incident) error
	// Read preloads all child collections.
	Read(ctx context.Context, id uuid.UUID) (models.Incident, error)
	ReadRoot(ctx context.Context, tx DB, id uuid.UUID) (models.Incident, error)
	List(ctx context.Context, filter IncidentFilter, pageInfo PageInfo) (Paged[models.Incident], error)
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	Delete(ctx context.Context, tx DB, id uuid.UUID) error
}

// IncidentChildRepository manages one child collection of an incident.
type IncidentChildRepository[T any] interface {
	// Replace deletes every row of the incident and inserts rows in one transaction.
	Replace(ctx context.Context, tx DB, incidentID uuid.UUID, rows []T) error
	ListByIncident(ctx context.Context, incidentID uuid.UUID) ([]T, error)
}

type VehicleRepository = IncidentChildRepository[models.IncidentVehicle]
type InvolvedPersonRepository = IncidentChildRepository[models.IncidentInvolvedPerson]
type InstitutionRepository = IncidentChildRepository[models.IncidentInstitution]

type IncidentEventRepository interface {
	Create(ctx context.Context, tx DB, event *models.IncidentEvent) error
	ListByIncident(ctx context.Context, incidentID uuid.UUID) ([]models.IncidentEvent, error)
}

type StatisticsRepository interface {
	// from and to are inclusive ISO dates, nil means unbounded
	CountIncidents(ctx context.Context, from, to *string) (int64, error)
	CountInvolvedPeople(ctx context.Context) (int64, error)
	RecentIncidents(ctx context.Context, limit int) ([]models.Incident, error)
	TopAddresses(ctx context.Context, limit int) ([]dtos.KeyCountDTO, error)
	// keyed by YYYY-MM
	CountByMonth(ctx context.Context, from, to string) (map[string]int64, error)
	IncidentsBetween(ctx context.Context, from, to *string) ([]models.Incident, error)
}

type ExtractionClient interface {
	Extract(ctx context.Context, spec *extraction.FieldSpec, payloads []imaging.Payload) (extraction.Document, error)
	MaxImages() int
}

type ImageNormalizer interface {
	NormalizeAll(ctx context.Context, sources []imaging.Source) ([]imaging.Payload, error)
}

type ExtractionService interface {
	// Extract normalizes the images and asks the model for the fields of the
	// given schema version. An empty version selects the configured default.
	Extract(ctx context.Context, version string, sources []imaging.Source) (extraction.Document, error)
	DefaultVersion() string
}

type IncidentService interface {
	Create(ctx context.Context, actor string, doc extraction.Document) (CreateResult, error)
	Get(ctx context.Context, id uuid.UUID) (models.Incident, error)
	List(ctx context.Context, filter IncidentFilter, pageInfo PageInfo) (Paged[models.Incident], error)
	Update(ctx context.Context, actor string, id uuid.UUID, req dtos.UpdateIncidentRequest) (models.Incident, error)
	Reextract(ctx context.Context, actor string, id uuid.UUID, doc extraction.Document) (CreateResult, error)
	Remap(ctx context.Context, actor string, id uuid.UUID) (CreateResult, error)
	Delete(ctx context.Context, actor string, id uuid.UUID) error
	Events(ctx context.Context, id uuid.UUID) ([]models.IncidentEvent, error)
}

type StatisticsService interface {
	Dashboard(ctx context.Context, now time.Time) (dtos.DashboardStatisticsDTO, error)
	Monthly(ctx context.Context, month string) (dtos.MonthlyStatisticsDTO, error)
}

// ChildError is a child collection that could not be written. The incident
// root exists regardless.
type ChildError struct {
	Collection string
	Err        error
}

type CreateResult struct {
	Incident    models.Incident
	ChildErrors []ChildError
}

func (r CreateResult) Incomplete() bool {
	return len(r.ChildErrors) > 0
}
