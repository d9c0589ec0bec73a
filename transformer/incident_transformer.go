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
	"encoding/json"

	"github.com/l3montree-dev/incidentscan/database/models"
	"github.com/l3montree-dev/incidentscan/dtos"
	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/l3montree-dev/incidentscan/shared"
	"github.com/l3montree-dev/incidentscan/utils"
)

const attendanceCompanies = 8

func VehicleToDTO(v models.IncidentVehicle) dtos.VehicleDTO {
	return dtos.VehicleDTO{
		ID:         v.ID,
		Position:   v.Position,
		Brand:      v.Brand,
		Model:      v.VehicleModel,
		Plate:      v.Plate,
		DriverName: v.DriverName,
		DriverRun:  v.DriverRun,
		Company:    v.Company,
	}
}

func InvolvedPersonToDTO(p models.IncidentInvolvedPerson) dtos.InvolvedPersonDTO {
	return dtos.InvolvedPersonDTO{
		ID:                       p.ID,
		Position:                 p.Position,
		Name:                     p.Name,
		Run:                      p.Run,
		Age:                      p.Age,
		Address:                  p.Address,
		Insurance:                p.Insurance,
		Diagnosis:                p.Diagnosis,
		ReceivedMedicalAttention: p.ReceivedMedicalAttention,
		Observation:              p.Observation,
		Status:                   p.Status,
	}
}

func InstitutionToDTO(i models.IncidentInstitution) dtos.InstitutionDTO {
	return dtos.InstitutionDTO{
		ID:         i.ID,
		Position:   i.Position,
		Type:       string(i.Type),
		Present:    i.Present,
		Rank:       i.Rank,
		Precinct:   i.Precinct,
		MobileUnit: i.MobileUnit,
		EntityName: i.EntityName,
	}
}

func RootToDTO(incident models.Incident) dtos.IncidentRootDTO {
	attendance := make([]*int, attendanceCompanies)
	for n := 1; n <= attendanceCompanies; n++ {
		attendance[n-1] = *incident.AttendanceCompany(n)
	}

	return dtos.IncidentRootDTO{
		ActNumber:             incident.ActNumber,
		TicketNumber:          incident.TicketNumber,
		ReportDate:            incident.ReportDate,
		CallTime:              incident.CallTime,
		ArrivalTime:           incident.ArrivalTime,
		ReturnTime:            incident.ReturnTime,
		Address:               incident.Address,
		CrossStreet:           incident.CrossStreet,
		Neighborhood:          incident.Neighborhood,
		District:              incident.District,
		Rural:                 incident.Rural,
		BoxNumber:             incident.BoxNumber,
		Nature:                incident.Nature,
		Origin:                incident.Origin,
		Cause:                 incident.Cause,
		Damage:                incident.Damage,
		Commander:             incident.Commander,
		CompanyCommander:      incident.CompanyCommander,
		SafetyOfficer:         incident.SafetyOfficer,
		TotalVolunteers:       incident.TotalVolunteers,
		InjuredCount:          incident.InjuredCount,
		InvolvedCount:         incident.InvolvedCount,
		AffectedCount:         incident.AffectedCount,
		InsuranceCompany:      incident.InsuranceCompany,
		InsurancePolicyNumber: incident.InsurancePolicyNumber,
		CompanyAttendance:     attendance,
		Observations:          incident.Observations,
		OtherObservations:     incident.OtherObservations,
	}
}

// ApplyRootDTO overwrites every editable root column with the values of
// root. Absent values clear the column.
func ApplyRootDTO(incident *models.Incident, root dtos.IncidentRootDTO) {
	incident.ActNumber = trimmed(root.ActNumber)
	incident.TicketNumber = trimmed(root.TicketNumber)
	incident.ReportDate = trimmed(root.ReportDate)
	incident.CallTime = trimmed(root.CallTime)
	incident.ArrivalTime = trimmed(root.ArrivalTime)
	incident.ReturnTime = trimmed(root.ReturnTime)
	incident.Address = trimmed(root.Address)
	incident.CrossStreet = trimmed(root.CrossStreet)
	incident.Neighborhood = trimmed(root.Neighborhood)
	incident.District = trimmed(root.District)
	incident.Rural = root.Rural
	incident.BoxNumber = trimmed(root.BoxNumber)
	incident.Nature = trimmed(root.Nature)
	incident.Origin = trimmed(root.Origin)
	incident.Cause = trimmed(root.Cause)
	incident.Damage = trimmed(root.Damage)
	incident.Commander = trimmed(root.Commander)
	incident.CompanyCommander = trimmed(root.CompanyCommander)
	incident.SafetyOfficer = trimmed(root.SafetyOfficer)
	incident.TotalVolunteers = root.TotalVolunteers
	incident.InjuredCount = root.InjuredCount
	incident.InvolvedCount = root.InvolvedCount
	incident.AffectedCount = root.AffectedCount
	incident.InsuranceCompany = trimmed(root.InsuranceCompany)
	incident.InsurancePolicyNumber = trimmed(root.InsurancePolicyNumber)
	for n := 1; n <= attendanceCompanies; n++ {
		var count *int
		if n <= len(root.CompanyAttendance) {
			count = root.CompanyAttendance[n-1]
		}
		*incident.AttendanceCompany(n) = count
	}
	incident.Observations = trimmed(root.Observations)
	incident.OtherObservations = trimmed(root.OtherObservations)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	return utils.EmptyThenNil(*s)
}

func IncidentToDTO(incident models.Incident) dtos.IncidentDTO {
	return dtos.IncidentDTO{
		ID:              incident.ID,
		State:           incident.State,
		SchemaVersion:   incident.SchemaVersion,
		CreatedAt:       incident.CreatedAt,
		UpdatedAt:       incident.UpdatedAt,
		CreatedBy:       incident.CreatedBy,
		UpdatedBy:       incident.UpdatedBy,
		IncidentRootDTO: RootToDTO(incident),
		RawExtraction:   rawJSON(incident.RawExtraction),
		UnmappedFields:  rawJSON(incident.UnmappedFields),
		Vehicles:        utils.Map(incident.Vehicles, VehicleToDTO),
		InvolvedPeople:  utils.Map(incident.InvolvedPeople, InvolvedPersonToDTO),
		Institutions:    utils.Map(incident.Institutions, InstitutionToDTO),
	}
}

func rawJSON(b []byte) json.RawMessage {
	if len(b) == 0 {
		return nil
	}
	return json.RawMessage(b)
}

func IncidentToSummaryDTO(incident models.Incident) dtos.IncidentSummaryDTO {
	return dtos.IncidentSummaryDTO{
		ID:         incident.ID,
		State:      incident.State,
		ActNumber:  incident.ActNumber,
		ReportDate: incident.ReportDate,
		CallTime:   incident.CallTime,
		Address:    incident.Address,
		Nature:     incident.Nature,
		Commander:  incident.Commander,
		CreatedAt:  incident.CreatedAt,
	}
}

func IncidentEventToDTO(event models.IncidentEvent) dtos.IncidentEventDTO {
	return dtos.IncidentEventDTO{
		ID:            event.ID,
		Type:          event.Type,
		Actor:         event.Actor,
		SchemaVersion: event.SchemaVersion,
		FromState:     event.FromState,
		ToState:       event.ToState,
		Justification: event.Justification,
		CreatedAt:     event.CreatedAt,
	}
}

func CreateResultToDTO(result shared.CreateResult) dtos.CreateResultDTO {
	childErrors := make([]dtos.ChildErrorDTO, len(result.ChildErrors))
	for i, ce := range result.ChildErrors {
		childErrors[i] = dtos.ChildErrorDTO{
			Collection: ce.Collection,
			Error:      failures.UserMessage(failures.KindOf(ce.Err)),
		}
	}
	return dtos.CreateResultDTO{
		Incident:    IncidentToDTO(result.Incident),
		Incomplete:  result.Incomplete(),
		ChildErrors: childErrors,
	}
}
