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

package transformer

import (
	"github.com/l3montree-dev/incidentscan/dtos"
	"github.com/l3montree-dev/incidentscan/extraction"
	"github.com/l3montree-dev/incidentscan/normalize"
)

// DocumentToDraftDTO renders an unsaved extraction. The preview shows the
// columns the draft would be stored in.
func DocumentToDraftDTO(doc extraction.Document) (dtos.ExtractionDraftDTO, error) {
	mapped, err := normalize.Map(doc)
	if err != nil {
		return dtos.ExtractionDraftDTO{}, err
	}
	preview := mapped.Incident
	preview.State = dtos.IncidentStateDraft
	preview.Vehicles = mapped.Vehicles
	preview.InvolvedPeople = mapped.People
	preview.Institutions = mapped.Institutions

	warnings := doc.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return dtos.ExtractionDraftDTO{
		State:         dtos.IncidentStateDraft,
		SchemaVersion: doc.SchemaVersion,
		Data:          doc.Fields,
		Unknown:       doc.Unknown,
		Raw:           doc.Raw,
		Warnings:      warnings,
		FilledFields:  doc.FilledFields(),
		Empty:         doc.Empty(),
		Preview:       IncidentToDTO(preview),
	}, nil
}

func FieldDefToDTO(f extraction.FieldDef) dtos.FieldDefDTO {
	var children []dtos.FieldDefDTO
	for _, c := range f.Children {
		children = append(children, FieldDefToDTO(c))
	}
	return dtos.FieldDefDTO{
		Key:      f.Key,
		Label:    f.Label,
		Kind:     string(f.Kind),
		Hint:     f.Hint,
		Children: children,
	}
}

// FieldSpecToDTO describes a schema version. The prompt and the JSON schema
// are only included when detailed is set.
func FieldSpecToDTO(spec *extraction.FieldSpec, defaultVersion string, detailed bool) dtos.FieldSpecDTO {
	fields := make([]dtos.FieldDefDTO, len(spec.Fields))
	for i, f := range spec.Fields {
		fields[i] = FieldDefToDTO(f)
	}
	dto := dtos.FieldSpecDTO{
		Version: spec.Version,
		Default: spec.Version == defaultVersion,
		Fields:  fields,
		Columns: normalize.ColumnPaths(spec.Version),
	}
	if detailed {
		dto.Prompt = spec.Prompt()
		dto.Schema = spec.JSONSchema()
	}
	return dto
}
