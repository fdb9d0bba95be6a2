// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsched

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "hwsched"

var (
	domainVertices = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "domain_vertices_total",
		Help:      "Vertices visited by the domain pass, by outcome",
	}, []string{"result"})

	domainMerges = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "domain_merges_total",
		Help:      "Sensitivity domain merges performed",
	})

	deadLogicRemoved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "dead_logic_removed_total",
		Help:      "Logic vertices removed because nothing triggers them",
	})

	domainPassDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "domain_pass_duration_seconds",
		Help:      "Time to assign domains over a whole graph",
		Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
	})

	storeSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "sentree_store_size",
		Help:      "Canonical sensitivity trees in the last store used",
	})
)

// Result labels for domainVertices.
const (
	resultPreassigned = "preassigned"
	resultAssigned    = "assigned"
	resultDeleted     = "deleted"
)
