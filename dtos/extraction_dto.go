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

import "encoding/json"

// ExtractionRequest is the JSON form of an upload. Image is accepted for
// single photo clients, Images for everything else.
type ExtractionRequest struct {
	Images        []string `json:"images" validate:"omitempty,dive,required"`
	Image         string   `json:"image"`
	SchemaVersion string   `json:"schemaVersion" validate:"omitempty,max=16"`
}

func (r ExtractionRequest) AllImages() []string {
	images := make([]string, 0, len(r.Images)+1)
	if r.Image != "" {
		images = append(images, r.Image)
	}
	return append(images, r.Images...)
}

// ExtractionDraftDTO is an extraction that has not been saved. Data holds
// every field of the schema version, absent ones as null.
type ExtractionDraftDTO struct {
	State         IncidentState              `json:"state"`
	SchemaVersion string                     `json:"schemaVersion"`
	Data          map[string]json.RawMessage `json:"data"`
	Unknown       map[string]json.RawMessage `json:"unknown"`
	// the model response, to be sent back unchanged when saving
	Raw          json.RawMessage `json:"raw"`
	Warnings     []string        `json:"warnings"`
	FilledFields int             `json:"filledFields"`
	// true when the model returned no keys at all
	Empty bool `json:"empty"`
	// the draft as it would be stored
	Preview IncidentDTO `json:"preview"`
}

type FieldDefDTO struct {
	Key      string        `json:"key"`
	Label    string        `json:"label"`
	Kind     string        `json:"kind"`
	Hint     string        `json:"hint,omitempty"`
	Children []FieldDefDTO `json:"children,omitempty"`
}

type FieldSpecDTO struct {
	Version string        `json:"version"`
	Default bool          `json:"default"`
	Fields  []FieldDefDTO `json:"fields"`
	// dotted paths that land in a typed column
	Columns []string `json:"columns"`
	Prompt  string   `json:"prompt,omitempty"`
	Schema  any      `json:"schema,omitempty"`
}
