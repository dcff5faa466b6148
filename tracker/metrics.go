package tracker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "libgroup"

// Metrics counts events seen by a Tracker. A nil *Metrics records nothing.
type Metrics struct {
	events *prometheus.CounterVec
	acks   prometheus.Counter
	groups prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "events_total",
			Help:      "Number of group events dispatched, by action.",
		}, []string{"action"}),
		acks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "acks_total",
			Help:      "Number of start events acknowledged with done.",
		}),
		groups: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "groups",
			Help:      "Number of groups tracked.",
		}),
	}
}

func (m *Metrics) event(action string) {
	if m != nil {
		m.events.WithLabelValues(action).Inc()
	}
}

func (m *Metrics) ack() {
	if m != nil {
		m.acks.Inc()
	}
}

func (m *Metrics) setGroups(n int) {
	if m != nil {
		m.groups.Set(float64(n))
	}
}
