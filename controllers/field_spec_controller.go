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

	"github.com/l3montree-dev/incidentscan/dtos"
	"github.com/l3montree-dev/incidentscan/extraction"
	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/l3montree-dev/incidentscan/shared"
	"github.com/l3montree-dev/incidentscan/transformer"
)

type FieldSpecController struct {
	extractionService shared.ExtractionService
}

func NewFieldSpecController(extractionService shared.ExtractionService) *FieldSpecController {
	return &FieldSpecController{
		extractionService: extractionService,
	}
}

// @Summary List field specifications
// @Tags Field Specifications
// @Success 200 {array} dtos.FieldSpecDTO
// @Router /field-specs [get]
func (c *FieldSpecController) List(ctx shared.Context) error {
	versions := extraction.Versions()
	specs := make([]dtos.FieldSpecDTO, 0, len(versions))
	for _, version := range versions {
		spec, err := extraction.Lookup(version)
		if err != nil {
			return toHTTPError(err)
		}
		specs = append(specs, transformer.FieldSpecToDTO(spec, c.extractionService.DefaultVersion(), false))
	}
	return ctx.JSON(http.StatusOK, specs)
}

// @Summary Get a field specification with prompt and json schema
// @Tags Field Specifications
// @Param version path string true "Version, for example v2"
// @Success 200 {object} dtos.FieldSpecDTO
// @Router /field-specs/{version} [get]
func (c *FieldSpecController) Read(ctx shared.Context) error {
	spec, err := extraction.Lookup(shared.GetParam(ctx, "version"))
	if err != nil {
		return toHTTPError(failures.Wrap(failures.KindNotFound, err, "unknown field specification"))
	}
	return ctx.JSON(http.StatusOK, transformer.FieldSpecToDTO(spec, c.extractionService.DefaultVersion(), true))
}
