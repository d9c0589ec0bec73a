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

func str(key, label string) FieldDef {
	return FieldDef{Key: key, Label: label, Kind: FieldString}
}

func vehiclesField(withCompany bool) FieldDef {
	children := []FieldDef{
		str("brand", "Marca"),
		str("model", "Modelo"),
		str("plate", "Patente"),
		str("driver", "Conductor"),
		str("run", "RUN del conductor"),
	}
	if withCompany {
		children = append(children, FieldDef{Key: "company", Label: "Compañía", Kind: FieldString, Hint: "e.g. B-1"})
	}
	return FieldDef{Key: "vehicles", Label: "Vehículos involucrados", Kind: FieldArray, Children: children}
}

func involvedPeopleField() FieldDef {
	return FieldDef{Key: "involved_people", Label: "Personas involucradas", Kind: FieldArray, Children: []FieldDef{
		str("name", "Nombre"),
		str("run", "RUN"),
		{Key: "age", Label: "Edad", Kind: FieldInteger},
		str("address", "Domicilio"),
		str("insurance", "Previsión"),
		str("diagnosis", "Diagnóstico"),
		{Key: "attended_by_132", Label: "Atendido por 132", Kind: FieldBoolean, Hint: "received emergency medical attention"},
		str("observation", "Observación"),
		str("status", "Estado / destino"),
	}}
}

// first revision of the form
var specV1 = &FieldSpec{
	Version: "v1",
	Fields: []FieldDef{
		str("act_number", "N° Acto / Parte"),
		str("ticket_number", "N° Boleta"),
		{Key: "date", Label: "Fecha", Kind: FieldDate},
		{Key: "time", Label: "Hora", Kind: FieldTime},
		str("address", "Dirección del siniestro"),
		str("corner", "Esquina referencia"),
		str("area", "Sector / Población / Villa"),
		str("box", "N° Casilla"),
		str("nature", "Naturaleza del llamado"),
		str("origin", "Origen"),
		str("cause", "Causa"),
		str("damage", "Daños"),
		str("commander", "A cargo del Cuerpo"),
		str("company_commander", "A cargo de la Compañía"),
		{Key: "total_volunteers", Label: "Total voluntarios", Kind: FieldInteger},
		str("safety_officer", "Oficial de seguridad"),
		vehiclesField(true),
		involvedPeopleField(),
		{Key: "institutions_present", Label: "Instituciones presentes", Kind: FieldObject, Children: []FieldDef{
			{Key: "carabineros", Label: "Carabineros", Kind: FieldString, Hint: "patrol number or true/false"},
			{Key: "samu", Label: "SAMU", Kind: FieldString, Hint: "ambulance number or true/false"},
			{Key: "municipal_security", Label: "Seguridad municipal", Kind: FieldBoolean},
			{Key: "chilquinta", Label: "Chilquinta", Kind: FieldBoolean},
			{Key: "esval", Label: "Esval", Kind: FieldBoolean},
			{Key: "gas_station", Label: "Empresa de gas", Kind: FieldBoolean},
			str("other", "Otra institución"),
		}},
		{Key: "observations", Label: "Observaciones", Kind: FieldString, Hint: "full narrative verbatim"},
	},
}

func institutionEntry(key, label string) FieldDef {
	return FieldDef{Key: key, Label: label, Kind: FieldObject, Children: []FieldDef{
		{Key: "present", Label: "Presente", Kind: FieldBoolean},
		str("rank", "Grado a cargo"),
		str("precinct", "Comisaría / base"),
		str("unit_number", "N° móvil / patrulla"),
		str("entity_name", "Nombre de la entidad"),
	}}
}

// current revision, adds the response times, location details,
// insurance, casualty counters and the company attendance grid
var specV2 = &FieldSpec{
	Version: "v2",
	Fields: []FieldDef{
		str("act_number", "N° Acto / Parte"),
		str("ticket_number", "N° Boleta"),
		{Key: "date", Label: "Fecha", Kind: FieldDate},
		{Key: "time", Label: "Hora del llamado", Kind: FieldTime},
		{Key: "arrival_time", Label: "Hora de llegada", Kind: FieldTime},
		{Key: "return_time", Label: "Hora de regreso", Kind: FieldTime},
		str("address", "Dirección del siniestro"),
		str("corner", "Esquina referencia"),
		str("area", "Sector / Población / Villa"),
		str("district", "Comuna"),
		{Key: "rural", Label: "Sector rural", Kind: FieldBoolean},
		str("box", "N° Casilla"),
		str("nature", "Naturaleza del llamado"),
		str("origin", "Origen"),
		str("cause", "Causa"),
		str("damage", "Daños"),
		str("commander", "A cargo del Cuerpo"),
		str("company_commander", "A cargo de la Compañía"),
		{Key: "total_volunteers", Label: "Total voluntarios", Kind: FieldInteger},
		str("safety_officer", "Oficial de seguridad"),
		{Key: "injured_count", Label: "Cantidad de lesionados", Kind: FieldInteger},
		{Key: "involved_count", Label: "Cantidad de involucrados", Kind: FieldInteger},
		{Key: "affected_count", Label: "Cantidad de damnificados", Kind: FieldInteger},
		{Key: "insurance", Label: "Seguro del inmueble o vehículo", Kind: FieldObject, Children: []FieldDef{
			str("company", "Compañía de seguros"),
			str("policy_number", "N° póliza"),
		}},
		{Key: "company_attendance", Label: "Asistencia por compañía", Kind: FieldObject, Hint: "number of volunteers per company", Children: []FieldDef{
			{Key: "company_1", Label: "1ra Compañía", Kind: FieldInteger},
			{Key: "company_2", Label: "2da Compañía", Kind: FieldInteger},
			{Key: "company_3", Label: "3ra Compañía", Kind: FieldInteger},
			{Key: "company_4", Label: "4ta Compañía", Kind: FieldInteger},
			{Key: "company_5", Label: "5ta Compañía", Kind: FieldInteger},
			{Key: "company_6", Label: "6ta Compañía", Kind: FieldInteger},
			{Key: "company_7", Label: "7ma Compañía", Kind: FieldInteger},
			{Key: "company_8", Label: "8va Compañía", Kind: FieldInteger},
		}},
		vehiclesField(true),
		involvedPeopleField(),
		{Key: "institutions_present", Label: "Instituciones presentes", Kind: FieldObject, Children: []FieldDef{
			institutionEntry("carabineros", "Carabineros"),
			institutionEntry("samu", "SAMU"),
			institutionEntry("municipal_security", "Seguridad municipal"),
			institutionEntry("chilquinta", "Chilquinta"),
			institutionEntry("esval", "Esval"),
			institutionEntry("gas_station", "Empresa de gas"),
			institutionEntry("other", "Otra institución"),
		}},
		{Key: "observations", Label: "Observaciones", Kind: FieldString, Hint: "full narrative verbatim"},
		{Key: "other_observations", Label: "Otras observaciones", Kind: FieldString},
	},
}
