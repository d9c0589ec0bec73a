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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/l3montree-dev/incidentscan/database/models"
	"github.com/l3montree-dev/incidentscan/dtos"
	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/l3montree-dev/incidentscan/mocks"
	"github.com/l3montree-dev/incidentscan/utils"
)

func TestResponseMinutes(t *testing.T) {
	cases := []struct {
		call, arrival string
		want          int
		ok            bool
	}{
		{call: "14:05", arrival: "14:17", want: 12, ok: true},
		{call: "23:50", arrival: "00:05", want: 15, ok: true},
		{call: "9:00", arrival: "9:00", want: 0, ok: true},
		{call: "25:00", arrival: "01:00", ok: false},
		{call: "illegible", arrival: "14:00", ok: false},
	}
	for _, tc := range cases {
		got, ok := responseMinutes(&tc.call, &tc.arrival)
		assert.Equal(t, tc.ok, ok, tc.call)
		assert.Equal(t, tc.want, got, tc.call)
	}

	_, ok := responseMinutes(nil, utils.Ptr("10:00"))
	assert.False(t, ok)
}

func TestStatisticsServiceMonthly(t *testing.T) {
	repo := mocks.NewStatisticsRepository(t)
	repo.On("IncidentsBetween", mock.Anything, utils.Ptr("2024-02-01"), utils.Ptr("2024-02-29")).Return([]models.Incident{
		{
			ActNumber:        utils.Ptr("2024-15"),
			ReportDate:       utils.Ptr("2024-02-03"),
			CallTime:         utils.Ptr("14:05"),
			ArrivalTime:      utils.Ptr("14:17"),
			Address:          utils.Ptr("Av. Brasil 100"),
			Commander:        utils.Ptr("J. Pérez"),
			Nature:           utils.Ptr("10-0"),
			CompanyCommander: utils.Ptr("R. Soto"),
			InjuredCount:     utils.Ptr(2),
			InvolvedCount:    utils.Ptr(3),
		},
		{
			ReportDate:    utils.Ptr("2024-02-10"),
			CallTime:      utils.Ptr("23:50"),
			ArrivalTime:   utils.Ptr("00:05"),
			Nature:        utils.Ptr("10-0"),
			AffectedCount: utils.Ptr(4),
		},
	}, nil)

	s := NewStatisticsService(repo)
	stats, err := s.Monthly(context.Background(), "2024-02")
	require.NoError(t, err)

	assert.Equal(t, "2024-02", stats.Month)
	assert.EqualValues(t, 2, stats.TotalIncidents)
	assert.EqualValues(t, 2, stats.TotalInjured)
	assert.EqualValues(t, 3, stats.TotalInvolved)
	assert.EqualValues(t, 4, stats.TotalAffected)
	assert.Equal(t, 50, stats.CompletenessPercentage)
	assert.InDelta(t, 13.5, stats.AvgResponseMinutes, 0.001)
	assert.Equal(t, map[string]int64{"10-0": 2}, stats.ByNature)
	assert.Equal(t, map[string]int64{"R. Soto": 1}, stats.ByCompanyCommander)
}

func TestStatisticsServiceMonthlyInvalidMonth(t *testing.T) {
	s := NewStatisticsService(mocks.NewStatisticsRepository(t))

	_, err := s.Monthly(context.Background(), "2024-13")
	assert.Equal(t, failures.KindInvalidInput, failures.KindOf(err))
}

func TestStatisticsServiceDashboard(t *testing.T) {
	repo := mocks.NewStatisticsRepository(t)
	repo.On("CountIncidents", mock.Anything, (*string)(nil), (*string)(nil)).Return(int64(12), nil)
	repo.On("CountIncidents", mock.Anything, utils.Ptr("2024-03-01"), (*string)(nil)).Return(int64(3), nil)
	repo.On("CountInvolvedPeople", mock.Anything).Return(int64(7), nil)
	repo.On("IncidentsBetween", mock.Anything, (*string)(nil), (*string)(nil)).Return([]models.Incident{
		{CallTime: utils.Ptr("10:00"), ArrivalTime: utils.Ptr("10:10")},
		{CallTime: utils.Ptr("10:00"), ArrivalTime: utils.Ptr("10:15")},
	}, nil)
	repo.On("RecentIncidents", mock.Anything, 5).Return([]models.Incident{
		{ActNumber: utils.Ptr("2024-15"), State: dtos.IncidentStateSaved},
	}, nil)
	repo.On("TopAddresses", mock.Anything, 5).Return([]dtos.KeyCountDTO{{Key: "Av. Brasil 100", Count: 4}}, nil)
	repo.On("CountByMonth", mock.Anything, "2023-10-01", "2024-03-31").Return(map[string]int64{"2024-01": 2, "2024-03": 3}, nil)

	s := NewStatisticsService(repo)
	stats, err := s.Dashboard(context.Background(), time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.EqualValues(t, 12, stats.TotalIncidents)
	assert.EqualValues(t, 3, stats.ThisMonth)
	assert.EqualValues(t, 7, stats.TotalPeople)
	// 12.5 rounds half away from zero
	assert.Equal(t, 13, stats.AvgResponseMinutes)
	require.Len(t, stats.RecentIncidents, 1)
	assert.Equal(t, "2024-15", *stats.RecentIncidents[0].ActNumber)
	assert.Equal(t, []dtos.KeyCountDTO{{Key: "Av. Brasil 100", Count: 4}}, stats.TopLocations)
	assert.Equal(t, []dtos.MonthCountDTO{
		{Month: "2023-10", Count: 0},
		{Month: "2023-11", Count: 0},
		{Month: "2023-12", Count: 0},
		{Month: "2024-01", Count: 2},
		{Month: "2024-02", Count: 0},
		{Month: "2024-03", Count: 3},
	}, stats.Trend)
}
