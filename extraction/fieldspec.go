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
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SentinelIllegible is what the model writes for fields it cannot read.
const SentinelIllegible = "illegible"

const DefaultVersion = "v2"

type FieldKind string

const (
	FieldString  FieldKind = "string"
	FieldInteger FieldKind = "integer"
	FieldBoolean FieldKind = "boolean"
	FieldDate    FieldKind = "date"
	FieldTime    FieldKind = "time"
	FieldObject  FieldKind = "object"
	FieldArray   FieldKind = "array"
)

type FieldDef struct {
	Key      string     `json:"key"`
	Label    string     `json:"label"`
	Kind     FieldKind  `json:"kind"`
	Hint     string     `json:"hint,omitempty"`
	Children []FieldDef `json:"children,omitempty"`
}

func (f FieldDef) Child(key string) (FieldDef, bool) {
	for _, c := range f.Children {
		if c.Key == key {
			return c, true
		}
	}
	return FieldDef{}, false
}

// FieldSpec is the versioned contract between the prompt, the response
// validation and the persistence mapping.
type FieldSpec struct {
	Version string     `json:"version"`
	Fields  []FieldDef `json:"fields"`

	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
}

func (s *FieldSpec) Field(key string) (FieldDef, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldDef{}, false
}

func (s *FieldSpec) Keys() []string {
	keys := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		keys[i] = f.Key
	}
	return keys
}

// Prompt renders the natural language instructions sent with the images.
func (s *FieldSpec) Prompt() string {
	var b strings.Builder
	b.WriteString("You transcribe handwritten fire department incident report forms (Bomberos de Chile).\n")
	b.WriteString("Extract every piece of information written on the form into one JSON object.\n\n")
	b.WriteString("Fields to extract:\n")
	for _, f := range s.Fields {
		writeField(&b, f, 0)
	}
	b.WriteString("\nRules:\n")
	b.WriteString("- If a field is not present on the form, set it to null.\n")
	fmt.Fprintf(&b, "- If something is written but you cannot read it, set it to the string %q.\n", SentinelIllegible)
	b.WriteString("- For checkboxes and yes/no fields use true only if marked yes, false only if marked no, otherwise null.\n")
	b.WriteString("- Dates as DD/MM/YYYY, times as HH:MM (24h).\n")
	b.WriteString("- Copy names, plates and national ids (RUN) exactly as written.\n")
	b.WriteString("- Use empty arrays when there are no vehicles or involved people.\n")
	b.WriteString("- Return ONLY valid JSON, without explanations.\n")
	fmt.Fprintf(&b, "Field specification version: %s\n", s.Version)
	return b.String()
}

func writeField(b *strings.Builder, f FieldDef, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(b, "- %s (%s)", f.Key, f.Label)
	switch f.Kind {
	case FieldArray:
		b.WriteString(": array of objects with")
	case FieldObject:
		b.WriteString(": object with")
	case FieldBoolean:
		b.WriteString(": true/false/null")
	case FieldInteger:
		b.WriteString(": number")
	case FieldDate:
		b.WriteString(": DD/MM/YYYY")
	case FieldTime:
		b.WriteString(": HH:MM")
	}
	if f.Hint != "" {
		fmt.Fprintf(b, " [%s]", f.Hint)
	}
	b.WriteString("\n")
	for _, c := range f.Children {
		writeField(b, c, depth+1)
	}
}

var registry = map[string]*FieldSpec{
	specV1.Version: specV1,
	specV2.Version: specV2,
}

// Lookup returns the spec for a version, the empty version is the default.
func Lookup(version string) (*FieldSpec, error) {
	if version == "" {
		version = DefaultVersion
	}
	spec, ok := registry[version]
	if !ok {
		return nil, failures.Newf(failures.KindInvalidInput, "unknown field specification version %q", version)
	}
	return spec, nil
}

func Versions() []string {
	versions := make([]string, 0, len(registry))
	for v := range registry {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions
}

func IsKnownVersion(version string) bool {
	return slices.Contains(Versions(), version)
}
