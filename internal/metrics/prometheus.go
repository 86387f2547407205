package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tdmkit/dvec/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	operatorDuration *prometheus.HistogramVec
	operatorErrors   *prometheus.CounterVec
	chunkFanout      *prometheus.HistogramVec
	workersGauge     prometheus.Gauge
	rowsIngested     prometheus.Counter
	segmentsInfilled prometheus.Counter
	vectorSegments   prometheus.Gauge
	vectorZones      prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "dvec" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "dvec"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.operatorDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "operator",
			Name:      "duration_seconds",
			Help:      "Wall time of vector operator invocations in seconds by operator.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16), // 1ms .. ~32s
		}, []string{"operator"})

		p.operatorErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "operator",
			Name:      "errors_total",
			Help:      "Total vector operator failures by operator.",
		}, []string{"operator"})

		p.chunkFanout = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "chunk",
			Name:      "fanout",
			Help:      "Chunks produced per parallel operator invocation by operator.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1 .. 2048
		}, []string{"operator"})

		p.workersGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "chunk",
			Name:      "workers",
			Help:      "Worker count used by the most recent parallel operator.",
		})

		p.rowsIngested = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "ingest",
			Name:      "rows_total",
			Help:      "Total table rows ingested into vectors.",
		})

		p.segmentsInfilled = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "ingest",
			Name:      "segments_infilled_total",
			Help:      "Total segments infilled with a default value during construction.",
		})

		p.vectorSegments = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "vector",
			Name:      "segments",
			Help:      "Segment count of the most recently constructed vector.",
		})

		p.vectorZones = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "vector",
			Name:      "zones",
			Help:      "Zone count of the most recently constructed vector.",
		})

		p.reg.MustRegister(p.operatorDuration)
		p.reg.MustRegister(p.operatorErrors)
		p.reg.MustRegister(p.chunkFanout)
		p.reg.MustRegister(p.workersGauge)
		p.reg.MustRegister(p.rowsIngested)
		p.reg.MustRegister(p.segmentsInfilled)
		p.reg.MustRegister(p.vectorSegments)
		p.reg.MustRegister(p.vectorZones)
	})
}

// OperatorMetrics implementation

// RecordOperatorDuration observes one operator invocation's wall time.
func (p *PrometheusCollector) RecordOperatorDuration(operator string, seconds float64) {
	p.ensureRegistered()
	p.operatorDuration.WithLabelValues(operator).Observe(seconds)
}

// RecordOperatorError increments the failure counter for the operator.
func (p *PrometheusCollector) RecordOperatorError(operator string) {
	p.ensureRegistered()
	p.operatorErrors.WithLabelValues(operator).Inc()
}

// ChunkMetrics implementation

// RecordChunkExecution observes one parallel operator's chunk fan-out.
func (p *PrometheusCollector) RecordChunkExecution(operator string, chunks, workers int) {
	p.ensureRegistered()
	p.chunkFanout.WithLabelValues(operator).Observe(float64(chunks))
	p.workersGauge.Set(float64(workers))
}

// IngestMetrics implementation

// RecordRowsIngested adds to the ingested row counter.
func (p *PrometheusCollector) RecordRowsIngested(rows int) {
	p.ensureRegistered()
	p.rowsIngested.Add(float64(rows))
}

// RecordSegmentsInfilled adds to the infilled segment counter.
func (p *PrometheusCollector) RecordSegmentsInfilled(segments int) {
	p.ensureRegistered()
	if segments > 0 {
		p.segmentsInfilled.Add(float64(segments))
	}
}

// RecordVectorSize sets the most recent vector shape gauges.
func (p *PrometheusCollector) RecordVectorSize(segments, zones int) {
	p.ensureRegistered()
	p.vectorSegments.Set(float64(segments))
	p.vectorZones.Set(float64(zones))
}
