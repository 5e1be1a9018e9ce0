package worker

import (
	"github.com/prometheus/client_golang/prometheus"

	"ahoy_market/internal/domain/entity"
)

// Metrics are the scan loop collectors.
type Metrics struct {
	cycles        prometheus.Counter
	cycleDuration prometheus.Histogram
	candidates    prometheus.Gauge
	outcomes      *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		cycles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ahoy_scan_cycles_total",
			Help: "Completed scan cycles.",
		}),
		cycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ahoy_scan_cycle_duration_seconds",
			Help:    "Duration of a scan, filter and buy cycle.",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		}),
		candidates: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ahoy_scan_candidates",
			Help: "Candidates admitted by the price filter in the last cycle.",
		}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ahoy_buy_outcomes_total",
			Help: "Buy decision outcomes by kind.",
		}, []string{"kind"}),
	}

	reg.MustRegister(m.cycles, m.cycleDuration, m.candidates, m.outcomes)

	for _, kind := range entity.OutcomeKinds() {
		m.outcomes.WithLabelValues(string(kind))
	}

	return m
}

func (m *Metrics) observe(report entity.CycleReport) {
	if m == nil {
		return
	}

	m.cycles.Inc()
	m.cycleDuration.Observe(report.Duration.Seconds())
	m.candidates.Set(float64(report.Candidates))

	for _, o := range report.Outcomes {
		m.outcomes.WithLabelValues(string(o.Kind)).Inc()
	}
}
