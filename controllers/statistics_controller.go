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
	"net/http"
	"time"

	"github.com/l3montree-dev/incidentscan/shared"
)

type StatisticsController struct {
	statisticsService shared.StatisticsService
}

func NewStatisticsController(statisticsService shared.StatisticsService) *StatisticsController {
	return &StatisticsController{
		statisticsService: statisticsService,
	}
}

// @Summary Dashboard figures
// @Tags Statistics
// @Success 200 {object} dtos.DashboardStatisticsDTO
// @Router /statistics/dashboard [get]
func (c *StatisticsController) Dashboard(ctx shared.Context) error {
	stats, err := c.statisticsService.Dashboard(ctx.Request().Context(), time.Now())
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, stats)
}

// @Summary Monthly report
// @Tags Statistics
// @Param month query string false "YYYY-MM, defaults to the current month"
// @Success 200 {object} dtos.MonthlyStatisticsDTO
// @Router /statistics/monthly [get]
func (c *StatisticsController) Monthly(ctx shared.Context) error {
	month := ctx.QueryParam("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	stats, err := c.statisticsService.Monthly(ctx.Request().Context(), month)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, stats)
}
