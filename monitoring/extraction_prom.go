// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ExtractionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "incidentscan_extraction_duration_seconds",
	Help:    "Duration of extraction requests including image normalization",
	Buckets: []float64{1, 2, 5, 10, 20, 30, 60, 120},
})

var ExtractionImages = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "incidentscan_extraction_images",
	Help:    "Number of images sent with one extraction request",
	Buckets: []float64{1, 2, 3, 4, 5},
})

var ExtractionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "incidentscan_extraction_failures_total",
	Help: "Failed extraction requests by failure kind",
}, []string{"kind"})

var ExtractionFilledFields = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "incidentscan_extraction_filled_fields",
	Help:    "Number of non null top level fields returned per extraction",
	Buckets: prometheus.LinearBuckets(0, 5, 10),
})

var ImageBytesSaved = promauto.NewCounter(prometheus.CounterOpts{
	Name: "incidentscan_image_bytes_saved_total",
	Help: "Bytes removed by image normalization before upload",
})
