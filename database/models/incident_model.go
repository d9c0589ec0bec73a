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

package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/l3montree-dev/incidentscan/dtos"
)

// Incident is the root record of one digitized emergency form.
type Incident struct {
	Model
	State         dtos.IncidentState `json:"state" gorm:"type:text;not null;default:'saved';index"`
	SchemaVersion string             `json:"schemaVersion" gorm:"type:text;not null"`

	ActNumber    *string `json:"actNumber" gorm:"type:text;index"`
	TicketNumber *string `json:"ticketNumber" gorm:"type:text"`
	// ISO 8601 calendar date, YYYY-MM-DD
	ReportDate   *string `json:"reportDate" gorm:"type:text;index"`
	CallTime     *string `json:"callTime" gorm:"type:text"`
	ArrivalTime  *string `json:"arrivalTime" gorm:"type:text"`
	ReturnTime   *string `json:"returnTime" gorm:"type:text"`

	Address      *string `json:"address" gorm:"type:text"`
	CrossStreet  *string `json:"crossStreet" gorm:"type:text"`
	Neighborhood *string `json:"neighborhood" gorm:"type:text"`
	District     *string `json:"district" gorm:"type:text"`
	Rural        *bool   `json:"rural"`
	BoxNumber    *string `json:"boxNumber" gorm:"type:text"`

	Nature *string `json:"nature" gorm:"type:text"`
	Origin *string `json:"origin" gorm:"type:text"`
	Cause  *string `json:"cause" gorm:"type:text"`
	Damage *string `json:"damage" gorm:"type:text"`

	Commander        *string `json:"commander" gorm:"type:text"`
	CompanyCommander *string `json:"companyCommander" gorm:"type:text"`
	SafetyOfficer    *string `json:"safetyOfficer" gorm:"type:text"`
	TotalVolunteers  *int    `json:"totalVolunteers"`

	InjuredCount  *int `json:"injuredCount"`
	InvolvedCount *int `json:"involvedCount"`
	AffectedCount *int `json:"affectedCount"`

	InsuranceCompany      *string `json:"insuranceCompany" gorm:"type:text"`
	InsurancePolicyNumber *string `json:"insurancePolicyNumber" gorm:"type:text"`

	AttendanceCompany1 *int `json:"attendanceCompany1" gorm:"column:attendance_company_1"`
	AttendanceCompany2 *int `json:"attendanceCompany2" gorm:"column:attendance_company_2"`
	AttendanceCompany3 *int `json:"attendanceCompany3" gorm:"column:attendance_company_3"`
	AttendanceCompany4 *int `json:"attendanceCompany4" gorm:"column:attendance_company_4"`
	AttendanceCompany5 *int `json:"attendanceCompany5" gorm:"column:attendance_company_5"`
	AttendanceCompany6 *int `json:"attendanceCompany6" gorm:"column:attendance_company_6"`
	AttendanceCompany7 *int `json:"attendanceCompany7" gorm:"column:attendance_company_7"`
	AttendanceCompany8 *int `json:"attendanceCompany8" gorm:"column:attendance_company_8"`

	Observations      *string `json:"observations" gorm:"type:text"`
	OtherObservations *string `json:"otherObservations" gorm:"type:text"`

	// exact model output of the last extraction
	RawExtraction  datatypes.JSON `json:"rawExtraction"`
	UnmappedFields datatypes.JSON `json:"unmappedFields"`

	CreatedBy string `json:"createdBy" gorm:"type:text"`
	UpdatedBy string `json:"updatedBy" gorm:"type:text"`

	Vehicles       []IncidentVehicle        `json:"vehicles" gorm:"foreignKey:IncidentID;references:ID;constraint:OnDelete:CASCADE;"`
	InvolvedPeople []IncidentInvolvedPerson `json:"involvedPeople" gorm:"foreignKey:IncidentID;references:ID;constraint:OnDelete:CASCADE;"`
	Institutions   []IncidentInstitution    `json:"institutions" gorm:"foreignKey:IncidentID;references:ID;constraint:OnDelete:CASCADE;"`
	Events         []IncidentEvent          `json:"events" gorm:"foreignKey:IncidentID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (Incident) TableName() string {
	return "incidents"
}

// AttendanceCompany returns a pointer to the attendance column of company n, 1 based.
func (i *Incident) AttendanceCompany(n int) **int {
	switch n {
	case 1:
		return &i.AttendanceCompany1
	case 2:
		return &i.AttendanceCompany2
	case 3:
		return &i.AttendanceCompany3
	case 4:
		return &i.AttendanceCompany4
	case 5:
		return &i.AttendanceCompany5
	case 6:
		return &i.AttendanceCompany6
	case 7:
		return &i.AttendanceCompany7
	case 8:
		return &i.AttendanceCompany8
	}
	return nil
}

type IncidentVehicle struct {
	Model
	IncidentID   uuid.UUID `json:"incidentId" gorm:"type:uuid;not null;index"`
	Position     int       `json:"position" gorm:"not null;default:0"`
	Brand        *string   `json:"brand" gorm:"type:text"`
	VehicleModel *string   `json:"model" gorm:"column:model;type:text"`
	Plate        *string   `json:"plate" gorm:"type:text"`
	DriverName   *string   `json:"driverName" gorm:"type:text"`
	DriverRun    *string   `json:"driverRun" gorm:"type:text"`
	Company      *string   `json:"company" gorm:"type:text"`
}

func (IncidentVehicle) TableName() string {
	return "incident_vehicles"
}

type IncidentInvolvedPerson struct {
	Model
	IncidentID               uuid.UUID `json:"incidentId" gorm:"type:uuid;not null;index"`
	Position                 int       `json:"position" gorm:"not null;default:0"`
	Name                     *string   `json:"name" gorm:"type:text"`
	Run                      *string   `json:"run" gorm:"type:text"`
	Age                      *int      `json:"age"`
	Address                  *string   `json:"address" gorm:"type:text"`
	Insurance                *string   `json:"insurance" gorm:"type:text"`
	Diagnosis                *string   `json:"diagnosis" gorm:"type:text"`
	ReceivedMedicalAttention *bool     `json:"receivedMedicalAttention"`
	Observation              *string   `json:"observation" gorm:"type:text"`
	Status                   *string   `json:"status" gorm:"type:text"`
}

func (IncidentInvolvedPerson) TableName() string {
	return "incident_involved_people"
}

type InstitutionType string

const (
	InstitutionCarabineros       InstitutionType = "carabineros"
	InstitutionSAMU              InstitutionType = "samu"
	InstitutionMunicipalSecurity InstitutionType = "municipal_security"
	InstitutionChilquinta        InstitutionType = "chilquinta"
	InstitutionEsval             InstitutionType = "esval"
	InstitutionGasStation        InstitutionType = "gas_station"
	InstitutionOther             InstitutionType = "other"
)

type IncidentInstitution struct {
	Model
	IncidentID uuid.UUID       `json:"incidentId" gorm:"type:uuid;not null;index"`
	Position   int             `json:"position" gorm:"not null;default:0"`
	Type       InstitutionType `json:"type" gorm:"type:text;not null"`
	Present    *bool           `json:"present"`
	Rank       *string         `json:"rank" gorm:"type:text"`
	Precinct   *string         `json:"precinct" gorm:"type:text"`
	MobileUnit *string         `json:"mobileUnit" gorm:"type:text"`
	EntityName *string         `json:"entityName" gorm:"type:text"`
}

func (IncidentInstitution) TableName() string {
	return "incident_institutions"
}

type IncidentEvent struct {
	Model
	IncidentID    uuid.UUID              `json:"incidentId" gorm:"type:uuid;not null;index"`
	Type          dtos.IncidentEventType `json:"type" gorm:"type:text;not null"`
	Actor         string                 `json:"actor" gorm:"type:text"`
	SchemaVersion string                 `json:"schemaVersion" gorm:"type:text"`
	FromState     dtos.IncidentState     `json:"fromState" gorm:"type:text"`
	ToState       dtos.IncidentState     `json:"toState" gorm:"type:text"`
	Justification *string                `json:"justification" gorm:"type:text"`
}

func (IncidentEvent) TableName() string {
	return "incident_events"
}
