// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var IncidentTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "incidentscan_incident_transitions_total",
	Help: "Persisted incident lifecycle events by type",
}, []string{"type"})

var IncidentChildFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "incidentscan_incident_child_failures_total",
	Help: "Child collections that could not be written after the root was saved",
}, []string{"collection"})

var RateLimitedRequests = promauto.NewCounter(prometheus.CounterOpts{
	Name: "incidentscan_rate_limited_requests_total",
	Help: "Requests rejected by the per caller rate limit",
})
