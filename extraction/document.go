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
	"bytes"
	"encoding/json"
	"maps"
	"slices"
	"strings"
)

var null = json.RawMessage("null")

// Document is a reconciled extraction. Fields holds every key of the spec,
// absent ones as null. Unknown holds keys the spec does not declare.
type Document struct {
	SchemaVersion string                     `json:"schemaVersion"`
	Fields        map[string]json.RawMessage `json:"fields"`
	Unknown       map[string]json.RawMessage `json:"unknown,omitempty"`
	Raw           json.RawMessage            `json:"raw"`
	Warnings      []string                   `json:"warnings,omitempty"`
	// number of keys the model returned at all
	ReturnedKeys int `json:"returnedKeys"`
}

// Reconcile maps a parsed model response onto the spec.
func Reconcile(spec *FieldSpec, obj map[string]json.RawMessage, raw []byte) Document {
	doc := Document{
		SchemaVersion: spec.Version,
		Fields:        make(map[string]json.RawMessage, len(spec.Fields)),
		Unknown:       map[string]json.RawMessage{},
		Raw:           json.RawMessage(raw),
		ReturnedKeys:  len(obj),
	}

	known := make(map[string]string, len(spec.Fields))
	for _, f := range spec.Fields {
		known[f.Key] = f.Key
		doc.Fields[f.Key] = null
	}

	// exact keys first, folded spellings only fill what is still empty
	for key, val := range obj {
		if _, ok := known[key]; ok {
			doc.Fields[key] = compact(val)
		}
	}
	for _, key := range slices.Sorted(maps.Keys(obj)) {
		val := obj[key]
		if _, ok := known[key]; ok {
			continue
		}
		k, ok := known[CanonicalKey(key)]
		if ok && IsNull(doc.Fields[k]) {
			doc.Fields[k] = compact(val)
			continue
		}
		doc.Unknown[key] = val
	}

	if len(raw) > 0 {
		doc.Warnings = spec.Validate(raw)
	}
	return doc
}

// CanonicalKey folds "Act Number" or "act-number" into "act_number".
func CanonicalKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return strings.NewReplacer(" ", "_", "-", "_", ".", "_").Replace(key)
}

func compact(val json.RawMessage) json.RawMessage {
	var buf bytes.Buffer
	if err := json.Compact(&buf, val); err != nil {
		return val
	}
	return json.RawMessage(buf.Bytes())
}

// IsNull reports whether the value carries no information.
func IsNull(val json.RawMessage) bool {
	s := strings.TrimSpace(string(val))
	switch s {
	case "", "null", `""`, "[]", "{}":
		return true
	}
	return false
}

// Empty is true when the model returned no keys at all, which differs from
// a blank form where the keys are present but null.
func (d Document) Empty() bool {
	return d.ReturnedKeys == 0
}

// FilledFields counts top level fields that carry a value.
func (d Document) FilledFields() int {
	n := 0
	for _, v := range d.Fields {
		if !IsNull(v) {
			n++
		}
	}
	return n
}

// NewDocument builds a document from a client supplied draft, for example
// after the user corrected the extracted values.
func NewDocument(spec *FieldSpec, data json.RawMessage) (Document, error) {
	obj, raw, err := ParseContent(string(data))
	if err != nil {
		return Document{}, err
	}
	return Reconcile(spec, obj, raw), nil
}

// NewReviewedDocument builds a document from a reviewed draft. Data fills the
// fields. Raw is the model response the draft was made from: it is kept
// verbatim, and its unknown keys stay unknown even though the draft no
// longer carries them.
func NewReviewedDocument(spec *FieldSpec, data, raw json.RawMessage) (Document, error) {
	doc, err := NewDocument(spec, data)
	if err != nil {
		return Document{}, err
	}
	if IsNull(raw) {
		return doc, nil
	}

	obj, rawBytes, err := ParseContent(string(raw))
	if err != nil {
		return Document{}, err
	}
	upstream := Reconcile(spec, obj, rawBytes)
	for key, val := range upstream.Unknown {
		// keys the reviewer added win
		if _, ok := doc.Unknown[key]; !ok {
			doc.Unknown[key] = val
		}
	}
	doc.Raw = upstream.Raw
	doc.Warnings = upstream.Warnings
	doc.ReturnedKeys = upstream.ReturnedKeys
	return doc, nil
}
