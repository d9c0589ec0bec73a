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
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/l3montree-dev/incidentscan/database/models"
	"github.com/l3montree-dev/incidentscan/extraction"
)

// setter stores one extracted value on the incident. It reports false when
// the value carried information the column cannot represent.
type setter func(inc *models.Incident, raw json.RawMessage) bool

func assignText(dst **string, raw json.RawMessage) bool {
	*dst = CoerceString(raw)
	return *dst != nil || extraction.IsNull(raw)
}

func assignInt(dst **int, raw json.RawMessage) bool {
	*dst = CoerceInt(raw)
	return *dst != nil || extraction.IsNull(raw)
}

func assignBool(dst **bool, raw json.RawMessage) bool {
	*dst = CoerceBool(raw)
	return *dst != nil || extraction.IsNull(raw)
}

func assignDate(dst **string, raw json.RawMessage) bool {
	*dst = NormalizeDate(raw)
	return *dst != nil || extraction.IsNull(raw)
}

func assignClock(dst **string, raw json.RawMessage) bool {
	*dst = NormalizeTime(raw)
	return *dst != nil || extraction.IsNull(raw)
}

func text(field func(*models.Incident) **string) setter {
	return func(inc *models.Incident, raw json.RawMessage) bool { return assignText(field(inc), raw) }
}

func integer(field func(*models.Incident) **int) setter {
	return func(inc *models.Incident, raw json.RawMessage) bool { return assignInt(field(inc), raw) }
}

func flag(field func(*models.Incident) **bool) setter {
	return func(inc *models.Incident, raw json.RawMessage) bool { return assignBool(field(inc), raw) }
}

func date(field func(*models.Incident) **string) setter {
	return func(inc *models.Incident, raw json.RawMessage) bool { return assignDate(field(inc), raw) }
}

func clock(field func(*models.Incident) **string) setter {
	return func(inc *models.Incident, raw json.RawMessage) bool { return assignClock(field(inc), raw) }
}

// root column bindings keyed by the dotted field path
var v1Bindings = map[string]setter{
	"act_number":        text(func(i *models.Incident) **string { return &i.ActNumber }),
	"ticket_number":     text(func(i *models.Incident) **string { return &i.TicketNumber }),
	"date":              date(func(i *models.Incident) **string { return &i.ReportDate }),
	"time":              clock(func(i *models.Incident) **string { return &i.CallTime }),
	"address":           text(func(i *models.Incident) **string { return &i.Address }),
	"corner":            text(func(i *models.Incident) **string { return &i.CrossStreet }),
	"area":              text(func(i *models.Incident) **string { return &i.Neighborhood }),
	"box":               text(func(i *models.Incident) **string { return &i.BoxNumber }),
	"nature":            text(func(i *models.Incident) **string { return &i.Nature }),
	"origin":            text(func(i *models.Incident) **string { return &i.Origin }),
	"cause":             text(func(i *models.Incident) **string { return &i.Cause }),
	"damage":            text(func(i *models.Incident) **string { return &i.Damage }),
	"commander":         text(func(i *models.Incident) **string { return &i.Commander }),
	"company_commander": text(func(i *models.Incident) **string { return &i.CompanyCommander }),
	"total_volunteers":  integer(func(i *models.Incident) **int { return &i.TotalVolunteers }),
	"safety_officer":    text(func(i *models.Incident) **string { return &i.SafetyOfficer }),
	"observations":      text(func(i *models.Incident) **string { return &i.Observations }),
}

func buildV2Bindings() map[string]setter {
	b := maps.Clone(v1Bindings)
	b["arrival_time"] = clock(func(i *models.Incident) **string { return &i.ArrivalTime })
	b["return_time"] = clock(func(i *models.Incident) **string { return &i.ReturnTime })
	b["district"] = text(func(i *models.Incident) **string { return &i.District })
	b["rural"] = flag(func(i *models.Incident) **bool { return &i.Rural })
	b["injured_count"] = integer(func(i *models.Incident) **int { return &i.InjuredCount })
	b["involved_count"] = integer(func(i *models.Incident) **int { return &i.InvolvedCount })
	b["affected_count"] = integer(func(i *models.Incident) **int { return &i.AffectedCount })
	b["insurance.company"] = text(func(i *models.Incident) **string { return &i.InsuranceCompany })
	b["insurance.policy_number"] = text(func(i *models.Incident) **string { return &i.InsurancePolicyNumber })
	b["other_observations"] = text(func(i *models.Incident) **string { return &i.OtherObservations })
	for n := 1; n <= 8; n++ {
		b[fmt.Sprintf("company_attendance.company_%d", n)] = integer(func(i *models.Incident) **int { return i.AttendanceCompany(n) })
	}
	return b
}

var bindings = map[string]map[string]setter{
	"v1": v1Bindings,
	"v2": buildV2Bindings(),
}

// ColumnPaths lists the field paths that land in a root column for version.
func ColumnPaths(version string) []string {
	table := bindings[version]
	return slices.Sorted(maps.Keys(table))
}

type rowSetter[T any] func(row *T, raw json.RawMessage) bool

var vehicleFields = map[string]rowSetter[models.IncidentVehicle]{
	"brand":   func(v *models.IncidentVehicle, raw json.RawMessage) bool { return assignText(&v.Brand, raw) },
	"model":   func(v *models.IncidentVehicle, raw json.RawMessage) bool { return assignText(&v.VehicleModel, raw) },
	"plate":   func(v *models.IncidentVehicle, raw json.RawMessage) bool { return assignText(&v.Plate, raw) },
	"driver":  func(v *models.IncidentVehicle, raw json.RawMessage) bool { return assignText(&v.DriverName, raw) },
	"run":     func(v *models.IncidentVehicle, raw json.RawMessage) bool { return assignText(&v.DriverRun, raw) },
	"company": func(v *models.IncidentVehicle, raw json.RawMessage) bool { return assignText(&v.Company, raw) },
}

var vehicleAliases = map[string]string{
	"marca":         "brand",
	"modelo":        "model",
	"patente":       "plate",
	"license_plate": "plate",
	"conductor":     "driver",
	"driver_name":   "driver",
	"rut":           "run",
	"driver_run":    "run",
	"compania":      "company",
}

var personFields = map[string]rowSetter[models.IncidentInvolvedPerson]{
	"name":      func(p *models.IncidentInvolvedPerson, raw json.RawMessage) bool { return assignText(&p.Name, raw) },
	"run":       func(p *models.IncidentInvolvedPerson, raw json.RawMessage) bool { return assignText(&p.Run, raw) },
	"age":       func(p *models.IncidentInvolvedPerson, raw json.RawMessage) bool { return assignInt(&p.Age, raw) },
	"address":   func(p *models.IncidentInvolvedPerson, raw json.RawMessage) bool { return assignText(&p.Address, raw) },
	"insurance": func(p *models.IncidentInvolvedPerson, raw json.RawMessage) bool { return assignText(&p.Insurance, raw) },
	"diagnosis": func(p *models.IncidentInvolvedPerson, raw json.RawMessage) bool { return assignText(&p.Diagnosis, raw) },
	"attended_by_132": func(p *models.IncidentInvolvedPerson, raw json.RawMessage) bool {
		return assignBool(&p.ReceivedMedicalAttention, raw)
	},
	"observation": func(p *models.IncidentInvolvedPerson, raw json.RawMessage) bool { return assignText(&p.Observation, raw) },
	"status":      func(p *models.IncidentInvolvedPerson, raw json.RawMessage) bool { return assignText(&p.Status, raw) },
}

var personAliases = map[string]string{
	"nombre":                     "name",
	"rut":                        "run",
	"national_id":                "run",
	"edad":                       "age",
	"domicilio":                  "address",
	"direccion":                  "address",
	"prevision":                  "insurance",
	"diagnostico":                "diagnosis",
	"atendido_por_132":           "attended_by_132",
	"received_medical_attention": "attended_by_132",
	"observacion":                "observation",
	"estado":                     "status",
}

func canonical(key string, aliases map[string]string) string {
	k := extraction.CanonicalKey(Fold(key))
	if alias, ok := aliases[k]; ok {
		return alias
	}
	return k
}
