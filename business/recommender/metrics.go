package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ColdStartServedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "nutrimatch_cold_start_served_total",
			Help: "Count of recommendation requests answered by the cold-start fallback.",
		},
	)
)

func init() {
	prometheus.MustRegister(ColdStartServedTotal)
}
