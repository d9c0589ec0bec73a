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
	"testing"

	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no fence", input: `  {"a":1}  `, want: `{"a":1}`},
		{name: "json fence", input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "plain fence", input: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "fence on one line", input: "```json{\"a\":1}```", want: `{"a":1}`},
		{name: "text around the fence", input: "Here you go:\n```json\n{\"a\":1}\n```\nDone.", want: `{"a":1}`},
		{name: "missing closing fence", input: "```json\n{\"a\":1}", want: `{"a":1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripCodeFences(tc.input))
		})
	}
}

func TestParseContent(t *testing.T) {
	plain := `{"act_number":"123","date":"05/03/2024","vehicles":[{"plate":"AB-CD-12"}]}`

	t.Run("fenced and unwrapped content parse the same", func(t *testing.T) {
		fromPlain, _, err := ParseContent(plain)
		require.NoError(t, err)
		fromFenced, _, err := ParseContent("```json\n" + plain + "\n```")
		require.NoError(t, err)
		assert.Equal(t, fromPlain, fromFenced)
	})

	t.Run("falls back to the first balanced object", func(t *testing.T) {
		obj, raw, err := ParseContent(`Sure! {"address":"Av. Brasil {esq} 123"} hope this helps`)
		require.NoError(t, err)
		assert.JSONEq(t, `"Av. Brasil {esq} 123"`, string(obj["address"]))
		assert.JSONEq(t, `{"address":"Av. Brasil {esq} 123"}`, string(raw))
	})

	t.Run("prose is a parse failure", func(t *testing.T) {
		_, _, err := ParseContent("I cannot read this form.")
		assert.Equal(t, failures.KindParseFailure, failures.KindOf(err))
	})

	t.Run("truncated json is a parse failure", func(t *testing.T) {
		_, _, err := ParseContent(`{"act_number":"12`)
		assert.Equal(t, failures.KindParseFailure, failures.KindOf(err))
	})

	t.Run("empty content is a parse failure", func(t *testing.T) {
		_, _, err := ParseContent("```json\n```")
		assert.Equal(t, failures.KindParseFailure, failures.KindOf(err))
	})

	t.Run("an array is not an object", func(t *testing.T) {
		_, _, err := ParseContent(`[1,2,3]`)
		assert.Equal(t, failures.KindParseFailure, failures.KindOf(err))
	})

	t.Run("raw keeps the exact json", func(t *testing.T) {
		_, raw, err := ParseContent("```json\n" + plain + "\n```")
		require.NoError(t, err)
		assert.True(t, json.Valid(raw))
		assert.Equal(t, plain, string(raw))
	})
}
