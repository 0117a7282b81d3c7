package benchmark

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	registry      *prometheus.Registry
	duration      *prometheus.HistogramVec
	result        *prometheus.GaugeVec
	timeouts      *prometheus.CounterVec
	disagreements prometheus.Counter
}

func NewMetrics() *Metrics {
	metrics := &Metrics{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "threemul_run_duration_seconds",
			Help:    "Duration of a counting run",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"dataset", "algorithm"}),
		result: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "threemul_run_result",
			Help: "Number of quadruples found by a counting run",
		}, []string{"dataset", "algorithm"}),
		timeouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "threemul_run_timeouts_total",
			Help: "Runs abandoned after exceeding the timeout",
		}, []string{"dataset", "algorithm"}),
		disagreements: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "threemul_disagreements_total",
			Help: "Datasets on which the algorithms produced different counts",
		}),
	}

	metrics.registry.MustRegister(metrics.duration, metrics.result, metrics.timeouts, metrics.disagreements)
	return metrics
}

func (metrics *Metrics) Observe(result Result) {
	labels := prometheus.Labels{"dataset": result.Dataset, "algorithm": string(result.Algorithm)}
	if result.TimedOut {
		metrics.timeouts.With(labels).Inc()
		return
	}
	metrics.duration.With(labels).Observe(result.Duration.Seconds())
	metrics.result.With(labels).Set(float64(result.Count))
}

func (metrics *Metrics) Registry() *prometheus.Registry {
	return metrics.registry
}

// Writes the collected metrics in the Prometheus text format, for the node exporter's textfile collector
func (metrics *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, metrics.registry)
}
