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
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/l3montree-dev/incidentscan/database/models"
	"github.com/l3montree-dev/incidentscan/extraction"
	"github.com/l3montree-dev/incidentscan/utils"
)

var institutionOrder = []models.InstitutionType{
	models.InstitutionCarabineros,
	models.InstitutionSAMU,
	models.InstitutionMunicipalSecurity,
	models.InstitutionChilquinta,
	models.InstitutionEsval,
	models.InstitutionGasStation,
	models.InstitutionOther,
}

var institutionAliases = map[string]models.InstitutionType{
	"carabineros":         models.InstitutionCarabineros,
	"carabinero":          models.InstitutionCarabineros,
	"police":              models.InstitutionCarabineros,
	"policia":             models.InstitutionCarabineros,
	"samu":                models.InstitutionSAMU,
	"ambulance":           models.InstitutionSAMU,
	"ambulancia":          models.InstitutionSAMU,
	"municipal_security":  models.InstitutionMunicipalSecurity,
	"seguridad_municipal": models.InstitutionMunicipalSecurity,
	"seguridad_ciudadana": models.InstitutionMunicipalSecurity,
	"chilquinta":          models.InstitutionChilquinta,
	"esval":               models.InstitutionEsval,
	"gas_station":         models.InstitutionGasStation,
	"gas":                 models.InstitutionGasStation,
	"empresa_de_gas":      models.InstitutionGasStation,
	"other":               models.InstitutionOther,
	"otra":                models.InstitutionOther,
	"otro":                models.InstitutionOther,
}

var institutionDetailAliases = map[string]string{
	"presente":    "present",
	"grado":       "rank",
	"comisaria":   "precinct",
	"mobile_unit": "unit_number",
	"movil":       "unit_number",
	"patrol":      "unit_number",
	"name":        "entity_name",
	"nombre":      "entity_name",
}

// InstitutionType resolves a loosely spelled institution name.
func InstitutionType(name string) (models.InstitutionType, bool) {
	t, ok := institutionAliases[extraction.CanonicalKey(Fold(name))]
	return t, ok
}

// mapInstitutions accepts the object form keyed by institution, a list of
// institution names and a list of detail objects carrying a type.
func mapInstitutions(path string, raw json.RawMessage, unmapped map[string]json.RawMessage) []models.IncidentInstitution {
	if extraction.IsNull(raw) {
		return nil
	}

	var rows []models.IncidentInstitution
	if obj, ok := asObject(raw); ok {
		for _, key := range sortedKeys(obj) {
			if row, keep := institutionRow(path+"."+key, key, obj[key], unmapped); keep {
				rows = append(rows, row)
			}
		}
	} else {
		var entries []json.RawMessage
		if err := json.Unmarshal(raw, &entries); err != nil {
			unmapped[path] = raw
			return nil
		}
		for i, entry := range entries {
			entryPath := fmt.Sprintf("%s[%d]", path, i)
			if row, keep := institutionEntry(entryPath, entry, unmapped); keep {
				rows = append(rows, row)
			}
		}
	}

	slices.SortStableFunc(rows, func(a, b models.IncidentInstitution) int {
		if c := cmp.Compare(slices.Index(institutionOrder, a.Type), slices.Index(institutionOrder, b.Type)); c != 0 {
			return c
		}
		return cmp.Compare(utils.SafeDereference(a.EntityName), utils.SafeDereference(b.EntityName))
	})
	for i := range rows {
		rows[i].Position = i
	}
	return rows
}

func institutionEntry(path string, entry json.RawMessage, unmapped map[string]json.RawMessage) (models.IncidentInstitution, bool) {
	switch v := decode(entry).(type) {
	case string:
		if isSentinel(v) {
			unmapped[path] = entry
			return models.IncidentInstitution{}, false
		}
		row := newInstitution(v)
		row.Present = utils.Ptr(true)
		return row, true
	case map[string]any:
		obj, _ := asObject(entry)
		name := CoerceString(firstOf(obj, "type", "institution"))
		if name == nil {
			unmapped[path] = entry
			return models.IncidentInstitution{}, false
		}
		return institutionRow(path, *name, entry, unmapped)
	case nil:
		return models.IncidentInstitution{}, false
	}
	unmapped[path] = entry
	return models.IncidentInstitution{}, false
}

func newInstitution(name string) models.IncidentInstitution {
	t, ok := InstitutionType(name)
	if !ok {
		return models.IncidentInstitution{Type: models.InstitutionOther, EntityName: utils.EmptyThenNil(strings.TrimSpace(name))}
	}
	return models.IncidentInstitution{Type: t}
}

// institutionRow reads the value of one institution. A row is only kept when
// presence is known or details were written down.
func institutionRow(path, name string, raw json.RawMessage, unmapped map[string]json.RawMessage) (models.IncidentInstitution, bool) {
	row := newInstitution(name)

	switch v := decode(raw).(type) {
	case nil:
		return row, false
	case bool:
		row.Present = &v
	case json.Number:
		row.Present = utils.Ptr(true)
		row.MobileUnit = utils.Ptr(v.String())
	case string:
		if isSentinel(v) {
			unmapped[path] = raw
			return row, false
		}
		if b := parseBoolText(v); b != nil {
			row.Present = b
			break
		}
		row.Present = utils.Ptr(true)
		if row.Type == models.InstitutionOther && row.EntityName == nil {
			row.EntityName = utils.Ptr(strings.TrimSpace(v))
		} else {
			row.MobileUnit = utils.Ptr(strings.TrimSpace(v))
		}
	case map[string]any:
		obj, _ := asObject(raw)
		for _, key := range sortedKeys(obj) {
			val := obj[key]
			var ok bool
			switch canonical(key, institutionDetailAliases) {
			case "present":
				ok = assignBool(&row.Present, val)
			case "rank":
				ok = assignText(&row.Rank, val)
			case "precinct":
				ok = assignText(&row.Precinct, val)
			case "unit_number":
				ok = assignText(&row.MobileUnit, val)
			case "entity_name":
				var entity *string
				ok = assignText(&entity, val)
				if entity != nil {
					row.EntityName = entity
				}
			case "type", "institution":
				continue
			}
			if !ok && !extraction.IsNull(val) {
				unmapped[path+"."+key] = val
			}
		}
		hasDetail := row.Rank != nil || row.Precinct != nil || row.MobileUnit != nil
		if row.Present == nil && hasDetail {
			row.Present = utils.Ptr(true)
		}
		if row.Present == nil && !hasDetail {
			return row, false
		}
	default:
		unmapped[path] = raw
		return row, false
	}
	return row, true
}

func firstOf(obj map[string]json.RawMessage, keys ...string) json.RawMessage {
	for _, k := range keys {
		if v, ok := obj[k]; ok {
			return v
		}
	}
	return nil
}
