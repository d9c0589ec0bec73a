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

package extraction

import (
	"bytes"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaBaseURL = "https://incidentscan.l3montree.com/schemas/"

// JSONSchema describes the shape the model is expected to return.
// Every leaf may be null or the illegible sentinel and unknown keys are allowed.
func (s *FieldSpec) JSONSchema() map[string]any {
	return map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"$id":                  schemaBaseURL + s.Version + ".json",
		"title":                "incident report " + s.Version,
		"type":                 "object",
		"properties":           properties(s.Fields),
		"additionalProperties": true,
	}
}

func properties(fields []FieldDef) map[string]any {
	props := make(map[string]any, len(fields))
	for _, f := range fields {
		props[f.Key] = fieldSchema(f)
	}
	return props
}

func fieldSchema(f FieldDef) map[string]any {
	switch f.Kind {
	case FieldInteger:
		return map[string]any{"type": []any{"integer", "number", "string", "null"}}
	case FieldBoolean:
		return map[string]any{"type": []any{"boolean", "string", "null"}}
	case FieldObject:
		return map[string]any{
			// institutions may be reported as plain flags or patrol numbers
			"type":       []any{"object", "boolean", "string", "null"},
			"properties": properties(f.Children),
		}
	case FieldArray:
		return map[string]any{
			"type": []any{"array", "null"},
			"items": map[string]any{
				"type":       "object",
				"properties": properties(f.Children),
			},
		}
	default:
		return map[string]any{"type": []any{"string", "number", "null"}}
	}
}

func (s *FieldSpec) compiledSchema() (*jsonschema.Schema, error) {
	s.schemaOnce.Do(func() {
		url := schemaBaseURL + s.Version + ".json"
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(url, s.JSONSchema()); err != nil {
			s.schemaErr = err
			return
		}
		s.schema, s.schemaErr = compiler.Compile(url)
	})
	return s.schema, s.schemaErr
}

// Validate returns human readable findings. An empty slice means the
// document matches the schema. Findings are warnings, they never reject
// an extraction.
func (s *FieldSpec) Validate(raw []byte) []string {
	schema, err := s.compiledSchema()
	if err != nil {
		return []string{"schema unavailable: " + err.Error()}
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return []string{"document is not valid json"}
	}

	if err := schema.Validate(inst); err != nil {
		return validationFindings(err.Error())
	}
	return nil
}

func validationFindings(msg string) []string {
	lines := strings.Split(msg, "\n")
	findings := make([]string, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		// first line only names the schema
		if i == 0 && len(lines) > 1 {
			continue
		}
		line = strings.TrimPrefix(line, "- ")
		if line != "" {
			findings = append(findings, line)
		}
	}
	return findings
}
