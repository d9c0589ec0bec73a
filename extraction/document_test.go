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
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDocument(t *testing.T, version, content string) Document {
	t.Helper()
	spec, err := Lookup(version)
	require.NoError(t, err)
	obj, raw, err := ParseContent(content)
	require.NoError(t, err)
	return Reconcile(spec, obj, raw)
}

func TestReconcile(t *testing.T) {
	t.Run("absent fields become null", func(t *testing.T) {
		doc := mustDocument(t, "v2", `{"act_number":"77"}`)
		assert.Len(t, doc.Fields, len(specV2.Fields))
		assert.Equal(t, "null", string(doc.Fields["address"]))
		assert.Equal(t, `"77"`, string(doc.Fields["act_number"]))
	})

	t.Run("illegible sentinel is kept", func(t *testing.T) {
		doc := mustDocument(t, "v2", `{"commander":"illegible"}`)
		assert.Equal(t, `"illegible"`, string(doc.Fields["commander"]))
		assert.Equal(t, 1, doc.FilledFields())
	})

	t.Run("unknown keys go to the side channel", func(t *testing.T) {
		doc := mustDocument(t, "v1", `{"act_number":"1","weather":"rain","arrival_time":"10:20"}`)
		assert.Contains(t, doc.Unknown, "weather")
		// arrival_time only exists in v2
		assert.Contains(t, doc.Unknown, "arrival_time")
		assert.NotContains(t, doc.Fields, "weather")
	})

	t.Run("folded key spellings are recognised", func(t *testing.T) {
		doc := mustDocument(t, "v2", `{"Act Number":"5","ticket-number":"9"}`)
		assert.Equal(t, `"5"`, string(doc.Fields["act_number"]))
		assert.Equal(t, `"9"`, string(doc.Fields["ticket_number"]))
		assert.Empty(t, doc.Unknown)
	})

	t.Run("exact key wins over a folded duplicate", func(t *testing.T) {
		doc := mustDocument(t, "v2", `{"address":"Main 1","Address":"Other 2"}`)
		assert.Equal(t, `"Main 1"`, string(doc.Fields["address"]))
		assert.Contains(t, doc.Unknown, "Address")
	})

	t.Run("first folded spelling in key order wins", func(t *testing.T) {
		for range 20 {
			doc := mustDocument(t, "v2", `{"act-number":"b","Act Number":"a"}`)
			assert.Equal(t, `"a"`, string(doc.Fields["act_number"]))
			assert.Equal(t, map[string]json.RawMessage{"act-number": json.RawMessage(`"b"`)}, doc.Unknown)
		}
	})

	t.Run("empty extraction differs from a blank form", func(t *testing.T) {
		empty := mustDocument(t, "v2", `{}`)
		assert.True(t, empty.Empty())
		assert.Equal(t, 0, empty.FilledFields())

		blank := mustDocument(t, "v2", `{"act_number":null,"address":null,"vehicles":[]}`)
		assert.False(t, blank.Empty())
		assert.Equal(t, 0, blank.FilledFields())
	})

	t.Run("raw json is kept verbatim", func(t *testing.T) {
		content := `{"act_number":"1",  "unexpected":{"nested":true}}`
		doc := mustDocument(t, "v2", content)
		assert.Equal(t, content, string(doc.Raw))
		assert.Equal(t, "v2", doc.SchemaVersion)
	})
}

func TestReconcileWarnings(t *testing.T) {
	t.Run("well formed output has no warnings", func(t *testing.T) {
		doc := mustDocument(t, "v2", `{"act_number":"1","vehicles":[{"plate":"AA-11"}],"total_volunteers":12,"rural":null}`)
		assert.Empty(t, doc.Warnings)
	})

	t.Run("wrong shapes produce warnings", func(t *testing.T) {
		doc := mustDocument(t, "v2", `{"vehicles":"two cars"}`)
		require.NotEmpty(t, doc.Warnings)
		assert.True(t, strings.Contains(strings.Join(doc.Warnings, " "), "vehicles"))
	})
}

func TestNewDocument(t *testing.T) {
	spec, err := Lookup("v2")
	require.NoError(t, err)

	doc, err := NewDocument(spec, json.RawMessage(`{"address":"Av. Argentina 200"}`))
	require.NoError(t, err)
	assert.Equal(t, `"Av. Argentina 200"`, string(doc.Fields["address"]))

	_, err = NewDocument(spec, json.RawMessage(`"just a string"`))
	assert.Error(t, err)
}

func TestIsNull(t *testing.T) {
	assert.True(t, IsNull(json.RawMessage("null")))
	assert.True(t, IsNull(json.RawMessage(`""`)))
	assert.True(t, IsNull(json.RawMessage(`[]`)))
	assert.True(t, IsNull(nil))
	assert.False(t, IsNull(json.RawMessage(`false`)))
	assert.False(t, IsNull(json.RawMessage(`0`)))
	assert.False(t, IsNull(json.RawMessage(`"illegible"`)))
}

func TestNewReviewedDocument(t *testing.T) {
	spec, err := Lookup("v2")
	require.NoError(t, err)
	upstream := `{"date":"05/03/2024","address":"Calle 1","bombero_de_guardia":"Juan"}`

	t.Run("keeps the model response and its unknown keys", func(t *testing.T) {
		doc, err := NewReviewedDocument(spec,
			json.RawMessage(`{"date":"05/03/2024","address":"Calle 2","act_number":null}`),
			json.RawMessage(upstream))
		require.NoError(t, err)

		assert.JSONEq(t, upstream, string(doc.Raw))
		assert.Equal(t, `"Calle 2"`, string(doc.Fields["address"]))
		assert.Equal(t, `"Juan"`, string(doc.Unknown["bombero_de_guardia"]))
		assert.Equal(t, 3, doc.ReturnedKeys)
	})

	t.Run("keys added while reviewing win", func(t *testing.T) {
		doc, err := NewReviewedDocument(spec,
			json.RawMessage(`{"bombero_de_guardia":"Pedro"}`),
			json.RawMessage(upstream))
		require.NoError(t, err)
		assert.Equal(t, `"Pedro"`, string(doc.Unknown["bombero_de_guardia"]))
	})

	t.Run("without a raw response the draft is the extraction", func(t *testing.T) {
		doc, err := NewReviewedDocument(spec, json.RawMessage(`{"address":"Calle 2"}`), nil)
		require.NoError(t, err)
		assert.JSONEq(t, `{"address":"Calle 2"}`, string(doc.Raw))
	})

	t.Run("rejects a raw response that is not an object", func(t *testing.T) {
		_, err := NewReviewedDocument(spec, json.RawMessage(`{}`), json.RawMessage(`"no json here"`))
		assert.Error(t, err)
	})
}
