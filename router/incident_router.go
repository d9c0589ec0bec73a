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

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/l3montree-dev/incidentscan/controllers"
	"github.com/l3montree-dev/incidentscan/middlewares"
)

type IncidentRouter struct {
	*echo.Group
}

func NewIncidentRouter(
	apiV1Router APIV1Router,
	incidentController *controllers.IncidentController,
	limiter *middlewares.RateLimiter,
) IncidentRouter {
	incidentRouter := apiV1Router.Group.Group("/incidents")
	rateLimit := middlewares.RateLimit(limiter)

	incidentRouter.GET("/", incidentController.List)
	incidentRouter.POST("/", incidentController.Create)
	incidentRouter.POST("/scan/", incidentController.Scan, rateLimit)

	incidentRouter.GET("/:id/", incidentController.Read)
	incidentRouter.PUT("/:id/", incidentController.Update)
	incidentRouter.DELETE("/:id/", incidentController.Delete)
	incidentRouter.POST("/:id/reextract/", incidentController.Reextract, rateLimit)
	incidentRouter.POST("/:id/remap/", incidentController.Remap)
	incidentRouter.GET("/:id/events/", incidentController.Events)

	return IncidentRouter{Group: incidentRouter}
}
