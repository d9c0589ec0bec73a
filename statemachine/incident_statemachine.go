// Copyright (C) 2025 l3montree GmbH
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

package statemachine

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/l3montree-dev/incidentscan/database/models"
	"github.com/l3montree-dev/incidentscan/dtos"
)

var ErrInvalidTransition = errors.New("invalid incident state transition")

var transitions = map[dtos.IncidentState]map[dtos.IncidentEventType]dtos.IncidentState{
	dtos.IncidentStateDraft: {
		dtos.EventTypeSave: dtos.IncidentStateSaved,
	},
	dtos.IncidentStateSaved: {
		dtos.EventTypeEdit:      dtos.IncidentStateEdited,
		dtos.EventTypeReextract: dtos.IncidentStateReextracted,
		dtos.EventTypeRemap:     dtos.IncidentStateReextracted,
		dtos.EventTypeDelete:    dtos.IncidentStateDeleted,
	},
	dtos.IncidentStateEdited: {
		dtos.EventTypeEdit:      dtos.IncidentStateEdited,
		dtos.EventTypeReextract: dtos.IncidentStateReextracted,
		dtos.EventTypeRemap:     dtos.IncidentStateReextracted,
		dtos.EventTypeDelete:    dtos.IncidentStateDeleted,
	},
	dtos.IncidentStateReextracted: {
		dtos.EventTypeEdit:      dtos.IncidentStateEdited,
		dtos.EventTypeReextract: dtos.IncidentStateReextracted,
		dtos.EventTypeRemap:     dtos.IncidentStateReextracted,
		dtos.EventTypeDelete:    dtos.IncidentStateDeleted,
	},
	// deleted is terminal
}

// Transition returns the state an incident in state from reaches by event.
func Transition(from dtos.IncidentState, event dtos.IncidentEventType) (dtos.IncidentState, error) {
	// rows written before the state column existed have no state
	if from == "" {
		from = dtos.IncidentStateSaved
	}
	to, ok := transitions[from][event]
	if !ok {
		return "", errors.Wrap(ErrInvalidTransition, fmt.Sprintf("%s cannot handle %s", from, event))
	}
	return to, nil
}

// Apply moves the incident to its next state and returns the event that
// records the change.
func Apply(incident *models.Incident, eventType dtos.IncidentEventType, actor string, justification *string) (models.IncidentEvent, error) {
	from := incident.State
	if from == "" {
		// not persisted yet
		from = dtos.IncidentStateDraft
	}
	to, err := Transition(from, eventType)
	if err != nil {
		return models.IncidentEvent{}, err
	}
	incident.State = to
	incident.UpdatedBy = actor
	return models.IncidentEvent{
		IncidentID:    incident.ID,
		Type:          eventType,
		Actor:         actor,
		SchemaVersion: incident.SchemaVersion,
		FromState:     from,
		ToState:       to,
		Justification: justification,
	}, nil
}
