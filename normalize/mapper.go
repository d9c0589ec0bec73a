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

package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/datatypes"

	"github.com/l3montree-dev/incidentscan/database/models"
	"github.com/l3montree-dev/incidentscan/extraction"
	"github.com/l3montree-dev/incidentscan/failures"
)

// Mapped is an extraction laid out on the relational schema. Nothing is
// persisted yet.
type Mapped struct {
	Incident     models.Incident
	Vehicles     []models.IncidentVehicle
	People       []models.IncidentInvolvedPerson
	Institutions []models.IncidentInstitution
	// values that have no column, keyed by their dotted path
	Unmapped map[string]json.RawMessage
}

// Map coerces a reconciled document onto the incident tables.
func Map(doc extraction.Document) (Mapped, error) {
	table, ok := bindings[doc.SchemaVersion]
	if !ok {
		return Mapped{}, failures.Newf(failures.KindInvalidInput, "no column mapping for schema version %q", doc.SchemaVersion)
	}

	m := Mapped{
		Incident: models.Incident{SchemaVersion: doc.SchemaVersion},
		Unmapped: map[string]json.RawMessage{},
	}

	for _, key := range sortedKeys(doc.Fields) {
		raw := doc.Fields[key]
		switch key {
		case "vehicles":
			m.Vehicles = mapRows(key, raw, vehicleFields, vehicleAliases, m.Unmapped)
			for i := range m.Vehicles {
				m.Vehicles[i].Position = i
			}
		case "involved_people":
			m.People = mapRows(key, raw, personFields, personAliases, m.Unmapped)
			for i := range m.People {
				m.People[i].Position = i
			}
		case "institutions_present":
			m.Institutions = mapInstitutions(key, raw, m.Unmapped)
		default:
			m.apply(table, key, raw)
		}
	}
	for key, val := range doc.Unknown {
		m.Unmapped[key] = val
	}

	if len(doc.Raw) > 0 {
		m.Incident.RawExtraction = datatypes.JSON(doc.Raw)
	}
	if len(m.Unmapped) > 0 {
		b, err := json.Marshal(m.Unmapped)
		if err != nil {
			return Mapped{}, failures.Wrap(failures.KindInternal, err, "could not encode unmapped fields")
		}
		m.Incident.UnmappedFields = datatypes.JSON(b)
	}
	return m, nil
}

// Remap re-runs the mapping on a stored raw extraction without calling the
// extraction service again.
func Remap(version string, raw []byte) (Mapped, error) {
	spec, err := extraction.Lookup(version)
	if err != nil {
		return Mapped{}, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Mapped{}, failures.Newf(failures.KindInvalidInput, "incident has no stored extraction")
	}
	obj, rawJSON, err := extraction.ParseContent(string(raw))
	if err != nil {
		return Mapped{}, errors.Wrap(err, "could not parse stored extraction")
	}
	return Map(extraction.Reconcile(spec, obj, rawJSON))
}

func (m *Mapped) apply(table map[string]setter, path string, raw json.RawMessage) {
	if set, ok := table[path]; ok {
		if !set(&m.Incident, raw) {
			m.Unmapped[path] = raw
		}
		return
	}
	// nested objects are flattened into dotted paths
	if obj, ok := asObject(raw); ok && hasPathPrefix(table, path+".") {
		for _, key := range sortedKeys(obj) {
			m.apply(table, path+"."+extraction.CanonicalKey(Fold(key)), obj[key])
		}
		return
	}
	if !extraction.IsNull(raw) {
		m.Unmapped[path] = raw
	}
}

func mapRows[T any](path string, raw json.RawMessage, fields map[string]rowSetter[T], aliases map[string]string, unmapped map[string]json.RawMessage) []T {
	if extraction.IsNull(raw) {
		return nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		unmapped[path] = raw
		return nil
	}

	rows := make([]T, 0, len(entries))
	for i, entry := range entries {
		entryPath := fmt.Sprintf("%s[%d]", path, i)
		obj, ok := asObject(entry)
		if !ok {
			if !extraction.IsNull(entry) {
				unmapped[entryPath] = entry
			}
			continue
		}

		var row T
		filled := false
		for _, key := range sortedKeys(obj) {
			val := obj[key]
			name := canonical(key, aliases)
			set, known := fields[name]
			if _, exact := obj[name]; name != key && exact {
				// an exact spelling of the same field wins
				known = false
			}
			if !known || !set(&row, val) {
				if !extraction.IsNull(val) {
					unmapped[entryPath+"."+key] = val
				}
				continue
			}
			if !extraction.IsNull(val) {
				filled = true
			}
		}
		// blank lines on the form are not rows
		if filled {
			rows = append(rows, row)
		}
	}
	return rows
}

func asObject(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

func hasPathPrefix(table map[string]setter, prefix string) bool {
	for path := range table {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
