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

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type VehicleDTO struct {
	ID         uuid.UUID `json:"id"`
	Position   int       `json:"position"`
	Brand      *string   `json:"brand"`
	Model      *string   `json:"model"`
	Plate      *string   `json:"plate"`
	DriverName *string   `json:"driverName"`
	DriverRun  *string   `json:"driverRun"`
	Company    *string   `json:"company"`
}

type InvolvedPersonDTO struct {
	ID                       uuid.UUID `json:"id"`
	Position                 int       `json:"position"`
	Name                     *string   `json:"name"`
	Run                      *string   `json:"run"`
	Age                      *int      `json:"age"`
	Address                  *string   `json:"address"`
	Insurance                *string   `json:"insurance"`
	Diagnosis                *string   `json:"diagnosis"`
	ReceivedMedicalAttention *bool     `json:"receivedMedicalAttention"`
	Observation              *string   `json:"observation"`
	Status                   *string   `json:"status"`
}

type InstitutionDTO struct {
	ID         uuid.UUID `json:"id"`
	Position   int       `json:"position"`
	Type       string    `json:"type"`
	Present    *bool     `json:"present"`
	Rank       *string   `json:"rank"`
	Precinct   *string   `json:"precinct"`
	MobileUnit *string   `json:"mobileUnit"`
	EntityName *string   `json:"entityName"`
}

// IncidentRootDTO holds the editable columns of an incident.
type IncidentRootDTO struct {
	ActNumber    *string `json:"actNumber" validate:"omitempty,max=64"`
	TicketNumber *string `json:"ticketNumber" validate:"omitempty,max=64"`
	ReportDate   *string `json:"reportDate" validate:"omitempty,datetime=2006-01-02"`
	CallTime     *string `json:"callTime" validate:"omitempty,max=32"`
	ArrivalTime  *string `json:"arrivalTime" validate:"omitempty,max=32"`
	ReturnTime   *string `json:"returnTime" validate:"omitempty,max=32"`

	Address      *string `json:"address"`
	CrossStreet  *string `json:"crossStreet"`
	Neighborhood *string `json:"neighborhood"`
	District     *string `json:"district"`
	Rural        *bool   `json:"rural"`
	BoxNumber    *string `json:"boxNumber"`

	Nature *string `json:"nature"`
	Origin *string `json:"origin"`
	Cause  *string `json:"cause"`
	Damage *string `json:"damage"`

	Commander        *string `json:"commander"`
	CompanyCommander *string `json:"companyCommander"`
	SafetyOfficer    *string `json:"safetyOfficer"`
	TotalVolunteers  *int    `json:"totalVolunteers" validate:"omitempty,min=0"`

	InjuredCount  *int `json:"injuredCount" validate:"omitempty,min=0"`
	InvolvedCount *int `json:"involvedCount" validate:"omitempty,min=0"`
	AffectedCount *int `json:"affectedCount" validate:"omitempty,min=0"`

	InsuranceCompany      *string `json:"insuranceCompany"`
	InsurancePolicyNumber *string `json:"insurancePolicyNumber"`

	// company_1 to company_8, in order
	CompanyAttendance []*int `json:"companyAttendance" validate:"omitempty,max=8,dive,omitempty,min=0"`

	Observations      *string `json:"observations"`
	OtherObservations *string `json:"otherObservations"`
}

type IncidentDTO struct {
	ID            uuid.UUID     `json:"id"`
	State         IncidentState `json:"state"`
	SchemaVersion string        `json:"schemaVersion"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	CreatedBy     string        `json:"createdBy"`
	UpdatedBy     string        `json:"updatedBy"`

	IncidentRootDTO

	RawExtraction  json.RawMessage `json:"rawExtraction"`
	UnmappedFields json.RawMessage `json:"unmappedFields"`

	Vehicles       []VehicleDTO        `json:"vehicles"`
	InvolvedPeople []InvolvedPersonDTO `json:"involvedPeople"`
	Institutions   []InstitutionDTO    `json:"institutions"`
}

type IncidentSummaryDTO struct {
	ID         uuid.UUID     `json:"id"`
	State      IncidentState `json:"state"`
	ActNumber  *string       `json:"actNumber"`
	ReportDate *string       `json:"reportDate"`
	CallTime   *string       `json:"callTime"`
	Address    *string       `json:"address"`
	Nature     *string       `json:"nature"`
	Commander  *string       `json:"commander"`
	CreatedAt  time.Time     `json:"createdAt"`
}

type IncidentEventDTO struct {
	ID            uuid.UUID         `json:"id"`
	Type          IncidentEventType `json:"type"`
	Actor         string            `json:"actor"`
	SchemaVersion string            `json:"schemaVersion"`
	FromState     IncidentState     `json:"fromState"`
	ToState       IncidentState     `json:"toState"`
	Justification *string           `json:"justification"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// CreateIncidentRequest carries a reviewed extraction draft. Data is the
// object returned by the extraction endpoint, possibly edited by the user.
// Raw is the unchanged raw response of the draft.
type CreateIncidentRequest struct {
	SchemaVersion string          `json:"schemaVersion" validate:"omitempty,max=16"`
	Data          json.RawMessage `json:"data" validate:"required"`
	Raw           json.RawMessage `json:"raw"`
}

// ReextractIncidentRequest carries either a reviewed draft in Data or new
// photos in Images/Image. Data wins when both are set.
type ReextractIncidentRequest struct {
	ExtractionRequest
	Data json.RawMessage `json:"data"`
	Raw  json.RawMessage `json:"raw"`
}

type UpdateIncidentRequest struct {
	IncidentRootDTO
	Justification *string `json:"justification" validate:"omitempty,max=1024"`
}

type ChildErrorDTO struct {
	Collection string `json:"collection"`
	Error      string `json:"error"`
}

// CreateResultDTO reports a stored incident. Incomplete is set when the root
// was stored but at least one child collection was not.
type CreateResultDTO struct {
	Incident    IncidentDTO     `json:"incident"`
	Incomplete  bool            `json:"incomplete"`
	ChildErrors []ChildErrorDTO `json:"childErrors"`
}
