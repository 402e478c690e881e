// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

// Package metrics holds the prometheus metrics objects exposed by the
// compiler. It does not abstract prometheus away; callers needing a
// counter or histogram reach for these variables directly.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace scopes every metric emitted by this module.
const Namespace = "tcamgen"

var registry = prometheus.NewPedanticRegistry()

var (
	// RulesLoaded counts rules successfully parsed from a rules file.
	RulesLoaded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "rules_loaded_total",
		Help:      "Number of rules successfully parsed from the input file.",
	})

	// ParseErrors counts malformed rules-file lines encountered.
	ParseErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "parse_errors_total",
		Help:      "Number of rules-file lines that failed to parse.",
	})

	// EntriesEmitted counts TCAM entries written, labeled by algorithm.
	EntriesEmitted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "entries_emitted_total",
		Help:      "Number of TCAM entries emitted, by encoding algorithm.",
	}, []string{"algorithm"})

	// EncodeDuration observes how long one range encode() call takes,
	// labeled by algorithm.
	EncodeDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "encode_duration_seconds",
		Help:      "Time to encode a single port range into ternary patterns.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"algorithm"})
)

func init() {
	MustRegister(prometheus.NewGoCollector())
	MustRegister(RulesLoaded)
	MustRegister(ParseErrors)
	MustRegister(EntriesEmitted)
	MustRegister(EncodeDuration)
}

// MustRegister registers a collector with this module's registry, panicking
// on a duplicate or invalid registration (a programming error, not a
// runtime one).
func MustRegister(c prometheus.Collector) {
	registry.MustRegister(c)
}

// Handler returns the http.Handler to serve this module's registry on
// /metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
