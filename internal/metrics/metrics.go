package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors updated by a single CLI run.
// It includes a counter for dispatched commands, a histogram for store I/O,
// and gauges for the collection size and the time of the last run.
type Metrics struct {
	Operations      *prometheus.CounterVec
	StoreIODuration *prometheus.HistogramVec
	Records         prometheus.Gauge
	LastRun         prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		Operations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employees_operations_total",
			Help: "Total number of dispatched commands by outcome.",
		}, []string{"command", "status"}), // status: 'success', 'rejected', 'failure'
		StoreIODuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "employees_store_io_duration_seconds",
			Help:    "Duration of reading or writing the employee file.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		Records: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "employees_records",
			Help: "Number of employee records after the last load or save.",
		}),
		LastRun: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "employees_last_run_timestamp_seconds",
			Help: "Last time a command finished.",
		}),
	}

	return metrics
}

// WriteTextfile dumps everything gathered by g into path using the text exposition
// format, so a node exporter textfile collector can pick it up.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}

	return nil
}
