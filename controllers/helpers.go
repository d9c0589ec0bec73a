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
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/l3montree-dev/incidentscan/dtos"
	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/l3montree-dev/incidentscan/imaging"
	"github.com/l3montree-dev/incidentscan/shared"
)

// multipart parts above this size are spooled to disk by net/http
const maxMultipartMemory = 32 << 20

// toHTTPError turns any error into an echo error with the public failure
// body. The error itself stays internal and is only logged.
func toHTTPError(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return err
	}
	kind := failures.KindOf(err)
	if kind == failures.KindInternal && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		kind = failures.KindUpstreamUnavailable
	}
	body := dtos.ErrorDTO{
		Error:     failures.UserMessage(kind),
		Code:      string(kind),
		Retryable: failures.Retryable(kind),
	}
	return echo.NewHTTPError(failures.HTTPStatus(kind), body).WithInternal(err)
}

func invalidInput(err error, message string) error {
	return toHTTPError(failures.Wrap(failures.KindInvalidInput, err, message))
}

// validationError keeps the validator output, it only names request fields.
func validationError(err error) error {
	body := dtos.ErrorDTO{
		Error:   failures.UserMessage(failures.KindInvalidInput),
		Code:    string(failures.KindInvalidInput),
		Details: err.Error(),
	}
	return echo.NewHTTPError(http.StatusBadRequest, body).WithInternal(err)
}

func bindAndValidate(ctx shared.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return invalidInput(err, "could not bind request")
	}
	if err := shared.V.Struct(req); err != nil {
		return validationError(err)
	}
	return nil
}

func isMultipart(ctx shared.Context) bool {
	return strings.HasPrefix(ctx.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// readUpload collects the photos of a request. Multipart requests carry
// files in "images" (or "image") and the version in "schemaVersion", JSON
// requests use dtos.ExtractionRequest.
func readUpload(ctx shared.Context) (string, []imaging.Source, error) {
	if isMultipart(ctx) {
		return readMultipart(ctx)
	}
	var req dtos.ExtractionRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return "", nil, err
	}
	sources, err := decodeImages(req)
	return req.SchemaVersion, sources, err
}

func decodeImages(req dtos.ExtractionRequest) ([]imaging.Source, error) {
	images := req.AllImages()
	sources := make([]imaging.Source, 0, len(images))
	for i, uri := range images {
		src, err := imaging.DecodeDataURI(imageName(i), uri)
		if err != nil {
			return nil, toHTTPError(err)
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func readMultipart(ctx shared.Context) (string, []imaging.Source, error) {
	if err := ctx.Request().ParseMultipartForm(maxMultipartMemory); err != nil {
		return "", nil, invalidInput(err, "could not parse multipart form")
	}
	form := ctx.Request().MultipartForm
	version := strings.TrimSpace(ctx.FormValue("schemaVersion"))

	headers := make([]*multipart.FileHeader, 0, len(form.File["image"])+len(form.File["images"]))
	headers = append(headers, form.File["image"]...)
	headers = append(headers, form.File["images"]...)

	sources := make([]imaging.Source, 0, len(headers))
	for i, fh := range headers {
		data, err := readFormFile(fh)
		if err != nil {
			return "", nil, invalidInput(err, "could not read uploaded file")
		}
		name := fh.Filename
		if name == "" {
			name = imageName(i)
		}
		sources = append(sources, imaging.Source{Name: name, Data: data})
	}
	return version, sources, nil
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func imageName(i int) string {
	return fmt.Sprintf("image-%d", i+1)
}
