package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommendations HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "nutrimatch_recommend_latency_seconds",
		Help:    "Latency of the recommendations handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation requests served
	RecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "nutrimatch_recommend_requests_total",
		Help: "Total number of recommendation requests",
	})

	// Dataset rows dropped at load time for missing required features
	DatasetRowsDropped = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "nutrimatch_dataset_rows_dropped",
		Help: "Nutrition dataset rows dropped at load for missing required features",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		DatasetRowsDropped,
	)
}
