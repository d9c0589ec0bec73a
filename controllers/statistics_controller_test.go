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

package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/l3montree-dev/incidentscan/dtos"
	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/l3montree-dev/incidentscan/mocks"
)

func TestStatisticsControllerMonthly(t *testing.T) {
	t.Run("defaults to the current month", func(t *testing.T) {
		statisticsService := mocks.NewStatisticsService(t)
		month := time.Now().Format("2006-01")
		statisticsService.On("Monthly", mock.Anything, month).Return(dtos.MonthlyStatisticsDTO{Month: month, TotalIncidents: 4}, nil)

		ctx, rec := newJSONContext(http.MethodGet, "/statistics/monthly/", "")
		require.NoError(t, NewStatisticsController(statisticsService).Monthly(ctx))

		var body dtos.MonthlyStatisticsDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.EqualValues(t, 4, body.TotalIncidents)
	})

	t.Run("invalid month", func(t *testing.T) {
		statisticsService := mocks.NewStatisticsService(t)
		statisticsService.On("Monthly", mock.Anything, "march").Return(dtos.MonthlyStatisticsDTO{}, failures.Newf(failures.KindInvalidInput, "month must be YYYY-MM"))

		ctx, _ := newJSONContext(http.MethodGet, "/statistics/monthly/?month=march", "")
		requireHTTPError(t, NewStatisticsController(statisticsService).Monthly(ctx), failures.KindInvalidInput)
	})
}

func TestStatisticsControllerDashboard(t *testing.T) {
	statisticsService := mocks.NewStatisticsService(t)
	statisticsService.On("Dashboard", mock.Anything, mock.AnythingOfType("time.Time")).Return(dtos.DashboardStatisticsDTO{TotalIncidents: 12, AvgResponseMinutes: 13}, nil)

	ctx, rec := newJSONContext(http.MethodGet, "/statistics/dashboard/", "")
	require.NoError(t, NewStatisticsController(statisticsService).Dashboard(ctx))

	var body dtos.DashboardStatisticsDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 12, body.TotalIncidents)
	assert.Equal(t, 13, body.AvgResponseMinutes)
}
