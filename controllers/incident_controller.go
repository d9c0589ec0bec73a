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

	"github.com/l3montree-dev/incidentscan/database/models"
	"github.com/l3montree-dev/incidentscan/dtos"
	"github.com/l3montree-dev/incidentscan/extraction"
	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/l3montree-dev/incidentscan/imaging"
	"github.com/l3montree-dev/incidentscan/shared"
	"github.com/l3montree-dev/incidentscan/transformer"
	"github.com/l3montree-dev/incidentscan/utils"
)

type IncidentController struct {
	incidentService   shared.IncidentService
	extractionService shared.ExtractionService
}

func NewIncidentController(incidentService shared.IncidentService, extractionService shared.ExtractionService) *IncidentController {
	return &IncidentController{
		incidentService:   incidentService,
		extractionService: extractionService,
	}
}

// documentFromDraft rebuilds a document from a draft the user reviewed.
func (c *IncidentController) documentFromDraft(version string, data, raw json.RawMessage) (extraction.Document, error) {
	if version == "" {
		version = c.extractionService.DefaultVersion()
	}
	spec, err := extraction.Lookup(version)
	if err != nil {
		return extraction.Document{}, err
	}
	doc, err := extraction.NewReviewedDocument(spec, data, raw)
	if err != nil {
		return extraction.Document{}, failures.Wrap(failures.KindInvalidInput, err, "draft data is not a json object")
	}
	return doc, nil
}

// @Summary List incidents
// @Tags Incidents
// @Param from query string false "First report date, YYYY-MM-DD"
// @Param to query string false "Last report date, YYYY-MM-DD"
// @Param search query string false "Matches act number, address or commander"
// @Param page query int false "Page, starting at 1"
// @Param pageSize query int false "Page size, at most 100"
// @Success 200 {object} object{pageSize=int,page=int,total=int,data=[]dtos.IncidentSummaryDTO}
// @Router /incidents [get]
func (c *IncidentController) List(ctx shared.Context) error {
	filter, err := shared.GetIncidentFilter(ctx)
	if err != nil {
		return toHTTPError(err)
	}

	paged, err := c.incidentService.List(ctx.Request().Context(), filter, shared.GetPageInfo(ctx))
	if err != nil {
		return toHTTPError(err)
	}

	return ctx.JSON(http.StatusOK, paged.Map(func(incident models.Incident) any {
		return transformer.IncidentToSummaryDTO(incident)
	}))
}

// @Summary Save a reviewed extraction
// @Description Stores the incident first and the child collections afterwards. A failing collection is reported in childErrors, the incident is kept.
// @Tags Incidents
// @Param body body dtos.CreateIncidentRequest true "Reviewed draft"
// @Success 201 {object} dtos.CreateResultDTO
// @Router /incidents [post]
func (c *IncidentController) Create(ctx shared.Context) error {
	var req dtos.CreateIncidentRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	doc, err := c.documentFromDraft(req.SchemaVersion, req.Data, req.Raw)
	if err != nil {
		return toHTTPError(err)
	}

	result, err := c.incidentService.Create(ctx.Request().Context(), shared.GetCaller(ctx), doc)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusCreated, transformer.CreateResultToDTO(result))
}

// @Summary Extract and save in one request
// @Tags Incidents
// @Accept json,mpfd
// @Param body body dtos.ExtractionRequest false "Photos as data uris"
// @Success 201 {object} dtos.CreateResultDTO
// @Router /incidents/scan [post]
func (c *IncidentController) Scan(ctx shared.Context) error {
	version, sources, err := readUpload(ctx)
	if err != nil {
		return err
	}

	doc, err := c.extractionService.Extract(ctx.Request().Context(), version, sources)
	if err != nil {
		return toHTTPError(err)
	}

	result, err := c.incidentService.Create(ctx.Request().Context(), shared.GetCaller(ctx), doc)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusCreated, transformer.CreateResultToDTO(result))
}

// @Summary Get an incident with its child collections
// @Tags Incidents
// @Param id path string true "Incident ID"
// @Success 200 {object} dtos.IncidentDTO
// @Router /incidents/{id} [get]
func (c *IncidentController) Read(ctx shared.Context) error {
	id, err := shared.GetIncidentID(ctx)
	if err != nil {
		return toHTTPError(err)
	}

	incident, err := c.incidentService.Get(ctx.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, transformer.IncidentToDTO(incident))
}

// @Summary Overwrite the root fields of an incident
// @Description Child collections are not changed. Fields missing in the body are cleared.
// @Tags Incidents
// @Param id path string true "Incident ID"
// @Param body body dtos.UpdateIncidentRequest true "Root fields"
// @Success 200 {object} dtos.IncidentDTO
// @Router /incidents/{id} [put]
func (c *IncidentController) Update(ctx shared.Context) error {
	id, err := shared.GetIncidentID(ctx)
	if err != nil {
		return toHTTPError(err)
	}

	var req dtos.UpdateIncidentRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	incident, err := c.incidentService.Update(ctx.Request().Context(), shared.GetCaller(ctx), id, req)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, transformer.IncidentToDTO(incident))
}

// @Summary Replace an incident with a new extraction
// @Description Accepts a reviewed draft in data or new photos. All child collections are replaced.
// @Tags Incidents
// @Accept json,mpfd
// @Param id path string true "Incident ID"
// @Param body body dtos.ReextractIncidentRequest false "Draft or photos"
// @Success 200 {object} dtos.CreateResultDTO
// @Router /incidents/{id}/reextract [post]
func (c *IncidentController) Reextract(ctx shared.Context) error {
	id, err := shared.GetIncidentID(ctx)
	if err != nil {
		return toHTTPError(err)
	}

	doc, err := c.reextractDocument(ctx)
	if err != nil {
		return err
	}

	result, err := c.incidentService.Reextract(ctx.Request().Context(), shared.GetCaller(ctx), id, doc)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, transformer.CreateResultToDTO(result))
}

func (c *IncidentController) reextractDocument(ctx shared.Context) (extraction.Document, error) {
	if isMultipart(ctx) {
		version, sources, err := readMultipart(ctx)
		if err != nil {
			return extraction.Document{}, err
		}
		return c.extract(ctx, version, sources)
	}

	var req dtos.ReextractIncidentRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return extraction.Document{}, err
	}
	if !extraction.IsNull(req.Data) {
		doc, err := c.documentFromDraft(req.SchemaVersion, req.Data, req.Raw)
		if err != nil {
			return extraction.Document{}, toHTTPError(err)
		}
		return doc, nil
	}

	sources, err := decodeImages(req.ExtractionRequest)
	if err != nil {
		return extraction.Document{}, err
	}
	return c.extract(ctx, req.SchemaVersion, sources)
}

func (c *IncidentController) extract(ctx shared.Context, version string, sources []imaging.Source) (extraction.Document, error) {
	doc, err := c.extractionService.Extract(ctx.Request().Context(), version, sources)
	if err != nil {
		return extraction.Document{}, toHTTPError(err)
	}
	return doc, nil
}

// @Summary Map the stored extraction again
// @Description Runs the current column mapping on the raw extraction without calling the model.
// @Tags Incidents
// @Param id path string true "Incident ID"
// @Success 200 {object} dtos.CreateResultDTO
// @Router /incidents/{id}/remap [post]
func (c *IncidentController) Remap(ctx shared.Context) error {
	id, err := shared.GetIncidentID(ctx)
	if err != nil {
		return toHTTPError(err)
	}

	result, err := c.incidentService.Remap(ctx.Request().Context(), shared.GetCaller(ctx), id)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, transformer.CreateResultToDTO(result))
}

// @Summary Audit trail of an incident
// @Tags Incidents
// @Param id path string true "Incident ID"
// @Success 200 {array} dtos.IncidentEventDTO
// @Router /incidents/{id}/events [get]
func (c *IncidentController) Events(ctx shared.Context) error {
	id, err := shared.GetIncidentID(ctx)
	if err != nil {
		return toHTTPError(err)
	}

	events, err := c.incidentService.Events(ctx.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, utils.Map(events, transformer.IncidentEventToDTO))
}

// @Summary Delete an incident
// @Description Removes the incident, its child collections and its events.
// @Tags Incidents
// @Param id path string true "Incident ID"
// @Success 204
// @Router /incidents/{id} [delete]
func (c *IncidentController) Delete(ctx shared.Context) error {
	id, err := shared.GetIncidentID(ctx)
	if err != nil {
		return toHTTPError(err)
	}

	if err := c.incidentService.Delete(ctx.Request().Context(), shared.GetCaller(ctx), id); err != nil {
		return toHTTPError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
