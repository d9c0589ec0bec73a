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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l3montree-dev/incidentscan/dtos"
	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/l3montree-dev/incidentscan/mocks"
)

func TestFieldSpecController(t *testing.T) {
	extractionService := mocks.NewExtractionService(t)
	extractionService.On("DefaultVersion").Return("v2")
	c := NewFieldSpecController(extractionService)

	t.Run("list", func(t *testing.T) {
		ctx, rec := newJSONContext(http.MethodGet, "/field-specs/", "")
		require.NoError(t, c.List(ctx))

		var specs []dtos.FieldSpecDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &specs))
		require.Len(t, specs, 2)
		assert.Equal(t, "v1", specs[0].Version)
		assert.False(t, specs[0].Default)
		assert.True(t, specs[1].Default)
		assert.Empty(t, specs[1].Prompt)
	})

	t.Run("read", func(t *testing.T) {
		ctx, rec := newJSONContext(http.MethodGet, "/field-specs/", "")
		ctx.SetParamNames("version")
		ctx.SetParamValues("v2")
		require.NoError(t, c.Read(ctx))

		var spec dtos.FieldSpecDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))
		assert.Equal(t, "v2", spec.Version)
		assert.NotEmpty(t, spec.Prompt)
		assert.NotNil(t, spec.Schema)
		assert.Contains(t, spec.Columns, "act_number")
	})

	t.Run("unknown version", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodGet, "/field-specs/", "")
		ctx.SetParamNames("version")
		ctx.SetParamValues("v9")
		requireHTTPError(t, c.Read(ctx), failures.KindNotFound)
	})
}
