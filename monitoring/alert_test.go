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
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l3montree-dev/incidentscan/failures"
)

func captureEvents(t *testing.T) *[]*sentry.Event {
	t.Helper()
	events := []*sentry.Event{}
	require.NoError(t, sentry.Init(sentry.ClientOptions{
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			events = append(events, event)
			// nothing leaves the test
			return nil
		},
	}))
	t.Cleanup(func() { _ = sentry.Init(sentry.ClientOptions{}) })
	return &events
}

func TestAlertIncident(t *testing.T) {
	events := captureEvents(t)
	id := uuid.MustParse("6f1c1f36-3a70-4c1e-9d64-2f8f6f0a5d11")

	AlertIncident(id, "replace_vehicles", "could not replace vehicles", failures.New(failures.KindPersistenceFailure, errors.New("deadlock detected")))

	require.Len(t, *events, 1)
	tags := (*events)[0].Tags
	assert.Equal(t, id.String(), tags["incident_id"])
	assert.Equal(t, "replace_vehicles", tags["operation"])
	assert.Equal(t, "persistence_failure", tags["kind"])
}

func TestAlertIncidentWithoutID(t *testing.T) {
	events := captureEvents(t)

	AlertIncident(uuid.Nil, "create", "could not create incident", errors.New("connection reset"))

	require.Len(t, *events, 1)
	assert.NotContains(t, (*events)[0].Tags, "incident_id")
	assert.Equal(t, "internal", (*events)[0].Tags["kind"])
}

func TestAlertWithoutError(t *testing.T) {
	events := captureEvents(t)

	Alert("gorm reported an error", nil)

	require.Len(t, *events, 1)
	assert.Equal(t, "gorm reported an error", (*events)[0].Message)
	assert.NotContains(t, (*events)[0].Tags, "kind")
}
