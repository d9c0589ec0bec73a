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

package imaging

import (
	"encoding/base64"
	"strings"

	"github.com/l3montree-dev/incidentscan/failures"
)

// DecodeDataURI accepts "data:<mime>;base64,<data>" as well as bare base64.
// The mime type is not trusted, the decoder decides the format.
func DecodeDataURI(name, uri string) (Source, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return Source{}, failures.Newf(failures.KindInvalidInput, "image %q is empty", name)
	}

	payload := uri
	if strings.HasPrefix(uri, "data:") {
		header, data, ok := strings.Cut(uri, ",")
		if !ok {
			return Source{}, failures.Newf(failures.KindInvalidInput, "image %q is not a valid data uri", name)
		}
		if !strings.HasSuffix(header, ";base64") {
			return Source{}, failures.Newf(failures.KindInvalidInput, "image %q is not base64 encoded", name)
		}
		payload = data
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// some clients strip the padding
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return Source{}, failures.Wrap(failures.KindInvalidInput, err, "could not decode base64 image")
		}
	}

	return Source{Name: name, Data: data}, nil
}
