// Copyright (C) 2025 l3montree GmbH
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

package monitoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracing(t *testing.T) {
	t.Run("should be a no-op without an exporter", func(t *testing.T) {
		shutdown, err := InitTracing(context.Background(), "")
		require.NoError(t, err)
		assert.NoError(t, shutdown(context.Background()))
	})

	t.Run("should reject unknown exporters", func(t *testing.T) {
		_, err := InitTracing(context.Background(), "zipkin")
		assert.Error(t, err)
	})

	t.Run("should install the stdout exporter", func(t *testing.T) {
		shutdown, err := InitTracing(context.Background(), "stdout")
		require.NoError(t, err)
		assert.NoError(t, shutdown(context.Background()))
	})
}
