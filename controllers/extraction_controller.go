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

	"github.com/l3montree-dev/incidentscan/shared"
	"github.com/l3montree-dev/incidentscan/transformer"
)

type ExtractionController struct {
	extractionService shared.ExtractionService
}

func NewExtractionController(extractionService shared.ExtractionService) *ExtractionController {
	return &ExtractionController{
		extractionService: extractionService,
	}
}

// @Summary Extract a form from photos
// @Description Normalizes the photos and asks the model for every field of the schema version. Nothing is stored.
// @Tags Extractions
// @Accept json,mpfd
// @Param body body dtos.ExtractionRequest false "Photos as data uris"
// @Success 200 {object} dtos.ExtractionDraftDTO
// @Failure 400 {object} dtos.ErrorDTO
// @Failure 429 {object} dtos.ErrorDTO
// @Router /extractions [post]
func (c *ExtractionController) Extract(ctx shared.Context) error {
	version, sources, err := readUpload(ctx)
	if err != nil {
		return err
	}

	doc, err := c.extractionService.Extract(ctx.Request().Context(), version, sources)
	if err != nil {
		return toHTTPError(err)
	}

	draft, err := transformer.DocumentToDraftDTO(doc)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, draft)
}
