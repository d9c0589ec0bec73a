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

package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/l3montree-dev/incidentscan/extraction"
	"github.com/l3montree-dev/incidentscan/utils"
)

var (
	leadingNumberRe = regexp.MustCompile(`^[-+]?\d+(?:[.,]\d+)?`)
	clockRe         = regexp.MustCompile(`^(\d{1,2})\s*[:.hH]\s*(\d{2})(?:\D|$)`)
	digitsRe        = regexp.MustCompile(`^\d+$`)
)

var truthy = map[string]bool{
	"true": true, "yes": true, "y": true, "si": true, "s": true, "x": true,
	"1": true, "v": true, "✓": true, "✔": true, "presente": true, "verdadero": true,
}

var falsy = map[string]bool{
	"false": true, "no": true, "n": true, "0": true, "f": true, "falso": true, "ausente": true,
}

func decode(raw json.RawMessage) any {
	if extraction.IsNull(raw) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	return v
}

func isSentinel(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), extraction.SentinelIllegible)
}

// Fold lowercases s and strips diacritics, "Sí" becomes "si".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// CoerceString turns any scalar into text. The illegible sentinel is kept
// in its canonical spelling.
func CoerceString(raw json.RawMessage) *string {
	switch v := decode(raw).(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		if isSentinel(s) {
			return utils.Ptr(extraction.SentinelIllegible)
		}
		return &s
	case json.Number:
		return utils.Ptr(v.String())
	case bool:
		return utils.Ptr(strconv.FormatBool(v))
	case map[string]any, []any:
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return nil
		}
		return utils.Ptr(buf.String())
	}
	return nil
}

// CoerceInt accepts numbers and text starting with a number ("12 vol.").
// Fractions are rounded.
func CoerceInt(raw json.RawMessage) *int {
	var f float64
	switch v := decode(raw).(type) {
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		m := leadingNumberRe.FindString(strings.TrimSpace(v))
		if m == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", "."), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.Abs(f) > math.MaxInt32 {
		return nil
	}
	return utils.Ptr(int(math.Round(f)))
}

// CoerceBool reads checkbox like values. Anything unrecognised is unknown
// (nil), never false.
func CoerceBool(raw json.RawMessage) *bool {
	switch v := decode(raw).(type) {
	case bool:
		return &v
	case json.Number:
		switch v.String() {
		case "1":
			return utils.Ptr(true)
		case "0":
			return utils.Ptr(false)
		}
	case string:
		return parseBoolText(v)
	}
	return nil
}

func parseBoolText(s string) *bool {
	folded := Fold(s)
	if truthy[folded] {
		return utils.Ptr(true)
	}
	if falsy[folded] {
		return utils.Ptr(false)
	}
	return nil
}

// NormalizeDate rewrites DD/MM/YYYY into YYYY-MM-DD. Anything that is not
// exactly three numeric slash separated parts forming a real calendar date
// yields nil. Two digit years are read as 20YY.
func NormalizeDate(raw json.RawMessage) *string {
	s, ok := decode(raw).(string)
	if !ok {
		return nil
	}
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return nil
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if !digitsRe.MatchString(parts[i]) {
			return nil
		}
	}
	if len(parts[0]) > 2 || len(parts[1]) > 2 || (len(parts[2]) != 2 && len(parts[2]) != 4) {
		return nil
	}
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])
	if len(parts[2]) == 2 {
		year += 2000
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return nil
	}
	return utils.Ptr(fmt.Sprintf("%04d-%02d-%02d", year, month, day))
}

// NormalizeTime rewrites clock readings like "9.30" or "14h30" into HH:MM.
// Text that does not look like a clock is kept as written.
func NormalizeTime(raw json.RawMessage) *string {
	s := CoerceString(raw)
	if s == nil || *s == extraction.SentinelIllegible {
		return s
	}
	m := clockRe.FindStringSubmatch(*s)
	if m == nil {
		return s
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return s
	}
	return utils.Ptr(fmt.Sprintf("%02d:%02d", hour, minute))
}
