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

package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/l3montree-dev/incidentscan/database/models"
	"github.com/l3montree-dev/incidentscan/dtos"
	"github.com/l3montree-dev/incidentscan/extraction"
	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/l3montree-dev/incidentscan/monitoring"
	"github.com/l3montree-dev/incidentscan/normalize"
	"github.com/l3montree-dev/incidentscan/shared"
	"github.com/l3montree-dev/incidentscan/statemachine"
	"github.com/l3montree-dev/incidentscan/transformer"
)

const (
	CollectionVehicles       = "vehicles"
	CollectionInvolvedPeople = "involved_people"
	CollectionInstitutions   = "institutions"
)

type incidentService struct {
	incidentRepository       shared.IncidentRepository
	vehicleRepository        shared.VehicleRepository
	involvedPersonRepository shared.InvolvedPersonRepository
	institutionRepository    shared.InstitutionRepository
	eventRepository          shared.IncidentEventRepository
}

func NewIncidentService(
	incidentRepository shared.IncidentRepository,
	vehicleRepository shared.VehicleRepository,
	involvedPersonRepository shared.InvolvedPersonRepository,
	institutionRepository shared.InstitutionRepository,
	eventRepository shared.IncidentEventRepository,
) *incidentService {
	return &incidentService{
		incidentRepository:       incidentRepository,
		vehicleRepository:        vehicleRepository,
		involvedPersonRepository: involvedPersonRepository,
		institutionRepository:    institutionRepository,
		eventRepository:          eventRepository,
	}
}

// transitionFailure hides the state machine error behind a user facing kind.
func transitionFailure(err error) error {
	if errors.Is(err, statemachine.ErrInvalidTransition) {
		return failures.Wrap(failures.KindInvalidInput, err, "transition not allowed")
	}
	return err
}

// Create stores the root and its audit event first. The child collections
// are written afterwards, each on its own. A failing collection is reported
// in the result and leaves the root in place.
func (s *incidentService) Create(ctx context.Context, actor string, doc extraction.Document) (shared.CreateResult, error) {
	mapped, err := normalize.Map(doc)
	if err != nil {
		return shared.CreateResult{}, err
	}

	incident := mapped.Incident
	event, err := statemachine.Apply(&incident, dtos.EventTypeSave, actor, nil)
	if err != nil {
		return shared.CreateResult{}, transitionFailure(err)
	}
	incident.CreatedBy = actor

	err = s.incidentRepository.Transaction(ctx, func(tx shared.DB) error {
		if err := s.incidentRepository.Create(ctx, tx, &incident); err != nil {
			return err
		}
		event.IncidentID = incident.ID
		return s.eventRepository.Create(ctx, tx, &event)
	})
	if err != nil {
		return shared.CreateResult{}, s.persistenceFailure(incident.ID, "create", err)
	}
	monitoring.IncidentTransitions.WithLabelValues(string(event.Type)).Inc()

	childErrors := s.replaceChildren(ctx, incident.ID, mapped)
	return shared.CreateResult{
		Incident:    s.readBack(ctx, incident, mapped),
		ChildErrors: childErrors,
	}, nil
}

func (s *incidentService) Get(ctx context.Context, id uuid.UUID) (models.Incident, error) {
	return s.incidentRepository.Read(ctx, id)
}

func (s *incidentService) List(ctx context.Context, filter shared.IncidentFilter, pageInfo shared.PageInfo) (shared.Paged[models.Incident], error) {
	return s.incidentRepository.List(ctx, filter, pageInfo)
}

// Update overwrites the root columns. Child collections and the stored
// extraction are left untouched.
func (s *incidentService) Update(ctx context.Context, actor string, id uuid.UUID, req dtos.UpdateIncidentRequest) (models.Incident, error) {
	err := s.incidentRepository.Transaction(ctx, func(tx shared.DB) error {
		incident, err := s.incidentRepository.ReadRoot(ctx, tx, id)
		if err != nil {
			return err
		}
		transformer.ApplyRootDTO(&incident, req.IncidentRootDTO)

		event, err := statemachine.Apply(&incident, dtos.EventTypeEdit, actor, req.Justification)
		if err != nil {
			return transitionFailure(err)
		}
		if err := s.incidentRepository.SaveRoot(ctx, tx, &incident); err != nil {
			return err
		}
		return s.eventRepository.Create(ctx, tx, &event)
	})
	if err != nil {
		return models.Incident{}, s.persistenceFailure(id, string(dtos.EventTypeEdit), err)
	}
	monitoring.IncidentTransitions.WithLabelValues(string(dtos.EventTypeEdit)).Inc()

	return s.incidentRepository.Read(ctx, id)
}

// Reextract replaces the root and all child collections with a new extraction.
func (s *incidentService) Reextract(ctx context.Context, actor string, id uuid.UUID, doc extraction.Document) (shared.CreateResult, error) {
	return s.overwrite(ctx, actor, id, dtos.EventTypeReextract, func(models.Incident) (normalize.Mapped, error) {
		return normalize.Map(doc)
	})
}

// Remap runs the current mapping on the stored raw extraction again.
func (s *incidentService) Remap(ctx context.Context, actor string, id uuid.UUID) (shared.CreateResult, error) {
	return s.overwrite(ctx, actor, id, dtos.EventTypeRemap, func(existing models.Incident) (normalize.Mapped, error) {
		return normalize.Remap(existing.SchemaVersion, existing.RawExtraction)
	})
}

func (s *incidentService) overwrite(ctx context.Context, actor string, id uuid.UUID, eventType dtos.IncidentEventType, mapping func(existing models.Incident) (normalize.Mapped, error)) (shared.CreateResult, error) {
	var mapped normalize.Mapped
	var incident models.Incident

	err := s.incidentRepository.Transaction(ctx, func(tx shared.DB) error {
		existing, err := s.incidentRepository.ReadRoot(ctx, tx, id)
		if err != nil {
			return err
		}
		mapped, err = mapping(existing)
		if err != nil {
			return err
		}

		incident = mapped.Incident
		incident.Model = existing.Model
		incident.State = existing.State
		incident.CreatedBy = existing.CreatedBy

		event, err := statemachine.Apply(&incident, eventType, actor, nil)
		if err != nil {
			return transitionFailure(err)
		}
		if err := s.incidentRepository.SaveRoot(ctx, tx, &incident); err != nil {
			return err
		}
		return s.eventRepository.Create(ctx, tx, &event)
	})
	if err != nil {
		return shared.CreateResult{}, s.persistenceFailure(id, string(eventType), err)
	}
	monitoring.IncidentTransitions.WithLabelValues(string(eventType)).Inc()

	childErrors := s.replaceChildren(ctx, id, mapped)
	return shared.CreateResult{
		Incident:    s.readBack(ctx, incident, mapped),
		ChildErrors: childErrors,
	}, nil
}

// Delete removes the incident with all children and events. The delete
// event is only logged since it would be removed together with the incident.
func (s *incidentService) Delete(ctx context.Context, actor string, id uuid.UUID) error {
	err := s.incidentRepository.Transaction(ctx, func(tx shared.DB) error {
		incident, err := s.incidentRepository.ReadRoot(ctx, tx, id)
		if err != nil {
			return err
		}
		event, err := statemachine.Apply(&incident, dtos.EventTypeDelete, actor, nil)
		if err != nil {
			return transitionFailure(err)
		}
		if err := s.incidentRepository.Delete(ctx, tx, id); err != nil {
			return err
		}
		slog.Info("incident deleted", "id", id, "actor", actor, "from", event.FromState, "actNumber", incident.ActNumber)
		return nil
	})
	if err != nil {
		return s.persistenceFailure(id, string(dtos.EventTypeDelete), err)
	}
	monitoring.IncidentTransitions.WithLabelValues(string(dtos.EventTypeDelete)).Inc()
	return nil
}

func (s *incidentService) Events(ctx context.Context, id uuid.UUID) ([]models.IncidentEvent, error) {
	if _, err := s.incidentRepository.ReadRoot(ctx, nil, id); err != nil {
		return nil, err
	}
	return s.eventRepository.ListByIncident(ctx, id)
}

func (s *incidentService) replaceChildren(ctx context.Context, incidentID uuid.UUID, mapped normalize.Mapped) []shared.ChildError {
	var childErrors []shared.ChildError
	collect := func(collection string, err error) {
		if err == nil {
			return
		}
		monitoring.IncidentChildFailures.WithLabelValues(collection).Inc()
		monitoring.AlertIncident(incidentID, "replace_"+collection, "could not replace "+collection, err)
		childErrors = append(childErrors, shared.ChildError{
			Collection: collection,
			Err:        ensureKind(err, failures.KindPersistenceFailure),
		})
	}

	collect(CollectionVehicles, s.vehicleRepository.Replace(ctx, nil, incidentID, mapped.Vehicles))
	collect(CollectionInvolvedPeople, s.involvedPersonRepository.Replace(ctx, nil, incidentID, mapped.People))
	collect(CollectionInstitutions, s.institutionRepository.Replace(ctx, nil, incidentID, mapped.Institutions))
	return childErrors
}

// readBack loads the stored incident. If that fails the in memory version is
// returned, the write itself already succeeded.
func (s *incidentService) readBack(ctx context.Context, incident models.Incident, mapped normalize.Mapped) models.Incident {
	stored, err := s.incidentRepository.Read(ctx, incident.ID)
	if err == nil {
		return stored
	}
	slog.Warn("could not read back incident", "id", incident.ID, "err", err)
	incident.Vehicles = mapped.Vehicles
	incident.InvolvedPeople = mapped.People
	incident.Institutions = mapped.Institutions
	return incident
}

// persistenceFailure alerts on unexpected store errors. Failures that carry
// a kind already (not found, invalid input) pass through.
func (s *incidentService) persistenceFailure(incidentID uuid.UUID, operation string, err error) error {
	switch failures.KindOf(err) {
	case failures.KindPersistenceFailure, failures.KindInternal:
		if errors.Is(err, context.Canceled) {
			return err
		}
		monitoring.AlertIncident(incidentID, operation, "could not "+operation+" incident", err)
		return ensureKind(err, failures.KindPersistenceFailure)
	}
	return err
}

func ensureKind(err error, kind failures.Kind) error {
	if failures.KindOf(err) == failures.KindInternal {
		return failures.New(kind, err)
	}
	return err
}
