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

	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/pkg/errors"
)

// StripCodeFences removes a markdown code fence around the content.
// Text without a fence is returned trimmed.
func StripCodeFences(content string) string {
	s := strings.TrimSpace(content)
	start := strings.Index(s, "```")
	if start == -1 {
		return s
	}
	inner := s[start+3:]
	// drop the info string, e.g. ```json
	if nl := strings.IndexByte(inner, '\n'); nl != -1 {
		if info := strings.TrimSpace(inner[:nl]); !strings.ContainsAny(info, "{[") {
			inner = inner[nl+1:]
		}
	} else {
		inner = strings.TrimPrefix(inner, "json")
	}
	if end := strings.LastIndex(inner, "```"); end != -1 {
		inner = inner[:end]
	}
	return strings.TrimSpace(inner)
}

// ParseContent turns the model output into a json object. When the stripped
// text is not an object the first balanced object inside it is used.
func ParseContent(content string) (map[string]json.RawMessage, []byte, error) {
	stripped := StripCodeFences(content)
	if stripped == "" {
		return nil, nil, failures.New(failures.KindParseFailure, errors.New("model returned no content"))
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stripped), &obj); err == nil && obj != nil {
		return obj, []byte(stripped), nil
	}

	candidate := extractJSONObject(stripped)
	if candidate == "" {
		return nil, nil, failures.New(failures.KindParseFailure, errors.New("no json object in model output"))
	}
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil || obj == nil {
		return nil, nil, failures.Wrap(failures.KindParseFailure, err, "model output is not a json object")
	}
	return obj, []byte(candidate), nil
}

func extractJSONObject(input string) string {
	start := strings.Index(input, "{")
	if start == -1 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(input); i++ {
		ch := input[i]
		if inString {
			if escaped {
				escaped = false
				continue
			}
			if ch == '\\' {
				escaped = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
		}
	}
	return ""
}
