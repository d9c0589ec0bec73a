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

type KeyCountDTO struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

type MonthCountDTO struct {
	// YYYY-MM
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type DashboardStatisticsDTO struct {
	TotalIncidents int64 `json:"totalIncidents"`
	ThisMonth      int64 `json:"thisMonth"`
	TotalPeople    int64 `json:"totalPeople"`
	// minutes between call and arrival, rounded
	AvgResponseMinutes int                  `json:"avgResponseMinutes"`
	RecentIncidents    []IncidentSummaryDTO `json:"recentIncidents"`
	TopLocations       []KeyCountDTO        `json:"topLocations"`
	Trend              []MonthCountDTO      `json:"trend"`
}

type MonthlyStatisticsDTO struct {
	Month                  string           `json:"month"`
	TotalIncidents         int64            `json:"totalIncidents"`
	TotalInjured           int64            `json:"totalInjured"`
	TotalInvolved          int64            `json:"totalInvolved"`
	TotalAffected          int64            `json:"totalAffected"`
	AvgResponseMinutes     float64          `json:"avgResponseMinutes"`
	CompletenessPercentage int              `json:"completenessPercentage"`
	ByNature               map[string]int64 `json:"byNature"`
	ByCompanyCommander     map[string]int64 `json:"byCompanyCommander"`
}
