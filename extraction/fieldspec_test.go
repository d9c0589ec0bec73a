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

package extraction

import (
	"testing"

	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	spec, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, DefaultVersion, spec.Version)

	spec, err = Lookup("v1")
	require.NoError(t, err)
	assert.Equal(t, "v1", spec.Version)

	_, err = Lookup("v99")
	assert.Equal(t, failures.KindInvalidInput, failures.KindOf(err))

	assert.Equal(t, []string{"v1", "v2"}, Versions())
	assert.True(t, IsKnownVersion("v2"))
}

func TestV2ExtendsV1(t *testing.T) {
	for _, key := range specV1.Keys() {
		_, ok := specV2.Field(key)
		assert.True(t, ok, "v2 dropped %s", key)
	}
}

func TestPrompt(t *testing.T) {
	prompt := specV2.Prompt()

	for _, key := range specV2.Keys() {
		assert.Contains(t, prompt, "- "+key+" (")
	}
	assert.Contains(t, prompt, `"illegible"`)
	assert.Contains(t, prompt, "DD/MM/YYYY")
	assert.Contains(t, prompt, "otherwise null")
	assert.Contains(t, prompt, "version: v2")
	// nested children are listed indented
	assert.Contains(t, prompt, "  - plate (")
}

func TestSchemaCompiles(t *testing.T) {
	for _, v := range Versions() {
		spec, err := Lookup(v)
		require.NoError(t, err)
		_, err = spec.compiledSchema()
		assert.NoError(t, err, v)
	}
}

func TestInstitutionShapes(t *testing.T) {
	// flags, patrol numbers and detail objects are all accepted
	warnings := specV2.Validate([]byte(`{"institutions_present":{"carabineros":"patrol 4411","samu":true,"esval":{"present":true,"unit_number":"12"}}}`))
	assert.Empty(t, warnings)
}
