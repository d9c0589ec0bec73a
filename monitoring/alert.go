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
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/l3montree-dev/incidentscan/config"
	"github.com/l3montree-dev/incidentscan/failures"
)

// InitSentry is a no-op without a dsn.
func InitSentry(cfg config.AppConfig) {
	if cfg.ErrorTrackingDSN == "" {
		return
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.ErrorTrackingDSN,
		Environment:      cfg.Environment,
		Release:          config.Version,
		Debug:            cfg.Environment == "dev",
		AttachStacktrace: true,
		// form contents include names and national ids
		SendDefaultPII: false,
	})
	if err != nil {
		slog.Error("could not init error tracking", "err", err)
	}
}

func Flush() {
	sentry.Flush(5 * time.Second)
}

// Alert reports an error that needs a human. Events are tagged with the
// failure kind so quota problems and broken storage group apart.
func Alert(message string, err error) {
	capture(message, err, nil)
}

// AlertIncident reports a failed write of one incident. The incident id is a
// tag, never part of the message, so the same failure groups across incidents.
func AlertIncident(incidentID uuid.UUID, operation, message string, err error) {
	tags := map[string]string{"operation": operation}
	if incidentID != uuid.Nil {
		tags["incident_id"] = incidentID.String()
	}
	capture(message, err, tags)
}

func capture(message string, err error, tags map[string]string) {
	var evID *sentry.EventID
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		if err == nil {
			evID = sentry.CurrentHub().CaptureMessage(message)
			return
		}
		scope.SetTag("kind", string(failures.KindOf(err)))
		evID = sentry.CurrentHub().CaptureException(errors.Wrap(err, message))
	})
	slog.Error("critical error encountered", "msg", message, "error", err, "tags", tags, "id (<nil> if not sent to error tracking)", evID)
}

func RecoverAndAlert(message string, err error) {
	evID := sentry.CurrentHub().Recover(err)
	slog.Error("critical error encountered (recover)", "msg", message, "error", err, "id (<nil> if not sent to error tracking)", evID)
}
