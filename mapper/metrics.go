package mapper

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for mapping operations.
// Attach via WithMetrics; a nil Metrics disables recording.
type Metrics struct {
	EntitiesMapped    *prometheus.CounterVec
	TriplesEmitted    prometheus.Counter
	IdentifiersMinted prometheus.Counter
}

// NewMetrics creates Metrics registered on the default registry.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith creates Metrics registered on the given registerer.
// Tests pass a throwaway registry to avoid duplicate registration.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EntitiesMapped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "servicetordf_entities_mapped_total",
			Help: "Total number of entities described into a graph, by kind",
		}, []string{"kind"}),
		TriplesEmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "servicetordf_triples_emitted_total",
			Help: "Total number of distinct triples added to graphs",
		}),
		IdentifiersMinted: factory.NewCounter(prometheus.CounterOpts{
			Name: "servicetordf_identifiers_minted_total",
			Help: "Total number of skolem identifiers minted for unidentified entities",
		}),
	}
}

func (m *Metrics) entityMapped(kind string) {
	if m == nil {
		return
	}
	m.EntitiesMapped.WithLabelValues(kind).Inc()
}

func (m *Metrics) tripleEmitted() {
	if m == nil {
		return
	}
	m.TriplesEmitted.Inc()
}

func (m *Metrics) identifierMinted() {
	if m == nil {
		return
	}
	m.IdentifiersMinted.Inc()
}
