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

package dtos

type IncidentState string

const (
	// only exists as an extraction response, never persisted
	IncidentStateDraft       IncidentState = "draft"
	IncidentStateSaved       IncidentState = "saved"
	IncidentStateEdited      IncidentState = "edited"
	IncidentStateReextracted IncidentState = "reextracted"
	IncidentStateDeleted     IncidentState = "deleted"
)

type IncidentEventType string

const (
	EventTypeSave      IncidentEventType = "save"
	EventTypeEdit      IncidentEventType = "edit"
	EventTypeReextract IncidentEventType = "reextract"
	// re-runs the mapping on the stored raw extraction
	EventTypeRemap  IncidentEventType = "remap"
	EventTypeDelete IncidentEventType = "delete"
)
