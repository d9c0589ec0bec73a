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

package services

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/l3montree-dev/incidentscan/database/models"
	"github.com/l3montree-dev/incidentscan/dtos"
	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/l3montree-dev/incidentscan/shared"
	"github.com/l3montree-dev/incidentscan/transformer"
	"github.com/l3montree-dev/incidentscan/utils"
)

const (
	dashboardRecent    = 5
	dashboardLocations = 5
	trendMonths        = 6
	minutesPerDay      = 24 * 60
)

type statisticsService struct {
	statisticsRepository shared.StatisticsRepository
}

func NewStatisticsService(statisticsRepository shared.StatisticsRepository) *statisticsService {
	return &statisticsService{
		statisticsRepository: statisticsRepository,
	}
}

func (s *statisticsService) Dashboard(ctx context.Context, now time.Time) (dtos.DashboardStatisticsDTO, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	firstDay := monthStart.Format(time.DateOnly)

	total, err := s.statisticsRepository.CountIncidents(ctx, nil, nil)
	if err != nil {
		return dtos.DashboardStatisticsDTO{}, err
	}
	thisMonth, err := s.statisticsRepository.CountIncidents(ctx, &firstDay, nil)
	if err != nil {
		return dtos.DashboardStatisticsDTO{}, err
	}
	people, err := s.statisticsRepository.CountInvolvedPeople(ctx)
	if err != nil {
		return dtos.DashboardStatisticsDTO{}, err
	}
	all, err := s.statisticsRepository.IncidentsBetween(ctx, nil, nil)
	if err != nil {
		return dtos.DashboardStatisticsDTO{}, err
	}
	recent, err := s.statisticsRepository.RecentIncidents(ctx, dashboardRecent)
	if err != nil {
		return dtos.DashboardStatisticsDTO{}, err
	}
	locations, err := s.statisticsRepository.TopAddresses(ctx, dashboardLocations)
	if err != nil {
		return dtos.DashboardStatisticsDTO{}, err
	}

	trendStart := monthStart.AddDate(0, -(trendMonths - 1), 0)
	trendEnd := monthStart.AddDate(0, 1, -1)
	counts, err := s.statisticsRepository.CountByMonth(ctx, trendStart.Format(time.DateOnly), trendEnd.Format(time.DateOnly))
	if err != nil {
		return dtos.DashboardStatisticsDTO{}, err
	}
	trend := make([]dtos.MonthCountDTO, 0, trendMonths)
	for m := trendStart; !m.After(monthStart); m = m.AddDate(0, 1, 0) {
		key := m.Format("2006-01")
		trend = append(trend, dtos.MonthCountDTO{Month: key, Count: counts[key]})
	}

	return dtos.DashboardStatisticsDTO{
		TotalIncidents:     total,
		ThisMonth:          thisMonth,
		TotalPeople:        people,
		AvgResponseMinutes: int(math.Round(averageResponseMinutes(all))),
		RecentIncidents:    utils.Map(recent, transformer.IncidentToSummaryDTO),
		TopLocations:       locations,
		Trend:              trend,
	}, nil
}

// Monthly aggregates the incidents whose report date falls into month
// (YYYY-MM).
func (s *statisticsService) Monthly(ctx context.Context, month string) (dtos.MonthlyStatisticsDTO, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return dtos.MonthlyStatisticsDTO{}, failures.Wrap(failures.KindInvalidInput, err, "month must be YYYY-MM")
	}
	from := start.Format(time.DateOnly)
	to := start.AddDate(0, 1, -1).Format(time.DateOnly)

	incidents, err := s.statisticsRepository.IncidentsBetween(ctx, &from, &to)
	if err != nil {
		return dtos.MonthlyStatisticsDTO{}, err
	}

	stats := dtos.MonthlyStatisticsDTO{
		Month:              month,
		TotalIncidents:     int64(len(incidents)),
		ByNature:           map[string]int64{},
		ByCompanyCommander: map[string]int64{},
	}
	complete := 0
	for _, incident := range incidents {
		stats.TotalInjured += int64(utils.OrDefault(incident.InjuredCount, 0))
		stats.TotalInvolved += int64(utils.OrDefault(incident.InvolvedCount, 0))
		stats.TotalAffected += int64(utils.OrDefault(incident.AffectedCount, 0))
		if incident.Nature != nil {
			stats.ByNature[*incident.Nature]++
		}
		if incident.CompanyCommander != nil {
			stats.ByCompanyCommander[*incident.CompanyCommander]++
		}
		if isComplete(incident) {
			complete++
		}
	}
	if len(incidents) > 0 {
		stats.CompletenessPercentage = int(math.Round(float64(complete) / float64(len(incidents)) * 100))
	}
	stats.AvgResponseMinutes = math.Round(averageResponseMinutes(incidents)*10) / 10
	return stats, nil
}

// isComplete reports whether the fields every report must carry are filled.
func isComplete(incident models.Incident) bool {
	return incident.ActNumber != nil &&
		incident.ReportDate != nil &&
		incident.CallTime != nil &&
		incident.Address != nil &&
		incident.Commander != nil
}

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

func minutesOfDay(clock *string) (int, bool) {
	if clock == nil {
		return 0, false
	}
	m := clockPattern.FindStringSubmatch(*clock)
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	if h > 23 || mins > 59 {
		return 0, false
	}
	return h*60 + mins, true
}

// responseMinutes is the time between call and arrival. An arrival before the
// call happened on the next day.
func responseMinutes(call, arrival *string) (int, bool) {
	c, ok := minutesOfDay(call)
	if !ok {
		return 0, false
	}
	a, ok := minutesOfDay(arrival)
	if !ok {
		return 0, false
	}
	diff := a - c
	if diff < 0 {
		diff += minutesPerDay
	}
	return diff, true
}

func averageResponseMinutes(incidents []models.Incident) float64 {
	sum, n := 0, 0
	for _, incident := range incidents {
		if d, ok := responseMinutes(incident.CallTime, incident.ArrivalTime); ok {
			sum += d
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
