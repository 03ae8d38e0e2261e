// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package metrics

import (
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes all distlab metrics.
const Namespace = "distlab"

func newCounterMetric(name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      name,
		Help:      help,
	})
}

// Metrics counts sample generation and redraw activity. It implements the
// observer interface of the sample cache.
type Metrics struct {
	samples,
	sourceCalls,
	sourceFailures,
	resets,
	discarded,
	redraws,
	failedRedraws prometheus.Counter
}

// New creates the counters and registers them on registerer.
func New(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		samples:        newCounterMetric("samples_generated_total", "# of samples drawn from the random source"),
		sourceCalls:    newCounterMetric("source_calls_total", "# of calls to the random source"),
		sourceFailures: newCounterMetric("source_failures_total", "# of calls to the random source that failed"),
		resets:         newCounterMetric("cache_resets_total", "# of times the sample cache was invalidated"),
		discarded:      newCounterMetric("samples_discarded_total", "# of cached samples dropped by resets"),
		redraws:        newCounterMetric("redraws_total", "# of successful redraws"),
		failedRedraws:  newCounterMetric("redraw_failures_total", "# of redraws that failed"),
	}
	var err error
	for _, c := range []prometheus.Counter{m.samples, m.sourceCalls, m.sourceFailures, m.resets, m.discarded, m.redraws, m.failedRedraws} {
		err = errors.CombineErrors(err, registerer.Register(c))
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to register counters")
	}
	return m, nil
}

// Generated records n freshly drawn samples.
func (m *Metrics) Generated(n int) {
	m.sourceCalls.Inc()
	m.samples.Add(float64(n))
}

// Failed records a source call that produced no samples.
func (m *Metrics) Failed(int) {
	m.sourceCalls.Inc()
	m.sourceFailures.Inc()
}

// Reset records an invalidation of the sample cache.
func (m *Metrics) Reset(discarded int) {
	m.resets.Inc()
	m.discarded.Add(float64(discarded))
}

// Redrawn records the outcome of one redraw.
func (m *Metrics) Redrawn(err error) {
	if err != nil {
		m.failedRedraws.Inc()
		return
	}
	m.redraws.Inc()
}
