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

type ExtractionRouter struct {
	*echo.Group
}

func NewExtractionRouter(
	apiV1Router APIV1Router,
	extractionController *controllers.ExtractionController,
	fieldSpecController *controllers.FieldSpecController,
	limiter *middlewares.RateLimiter,
) ExtractionRouter {
	extractionRouter := apiV1Router.Group.Group("/extractions")
	extractionRouter.POST("/", extractionController.Extract, middlewares.RateLimit(limiter))

	fieldSpecRouter := apiV1Router.Group.Group("/field-specs")
	fieldSpecRouter.GET("/", fieldSpecController.List)
	fieldSpecRouter.GET("/:version/", fieldSpecController.Read)

	return ExtractionRouter{Group: extractionRouter}
}
