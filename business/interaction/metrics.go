package interaction

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	EventsLoggedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrimatch_interaction_events_total",
			Help: "Count of logged interaction events by type.",
		},
		[]string{"interaction_type"},
	)
)

func init() {
	prometheus.MustRegister(EventsLoggedTotal)
}
