package dvec

// Option configures a vector at construction time.
type Option func(*vectorOptions)

// vectorOptions holds optional construction configuration.
type vectorOptions struct {
	cfg        Config
	logger     Logger
	metrics    MetricsCollector
	timeFormat TimeFormat
	infill     float64
}

// WithConfig sets the engine configuration for the vector and every vector
// derived from it.
//
// Parameters:
//   - cfg: Engine configuration (validated by the constructor)
//
// Returns:
//   - Option: Functional option for New, FromRows and Load
//
// Example:
//
//	cfg := dvec.DefaultConfig()
//	cfg.ProcessCount = 0 // run serially
//	vec, err := dvec.New(zoning, seg, data, dvec.WithConfig(cfg))
func WithConfig(cfg Config) Option {
	return func(o *vectorOptions) {
		o.cfg = cfg
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New, FromRows and Load
func WithLogger(logger Logger) Option {
	return func(o *vectorOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New, FromRows and Load
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *vectorOptions) {
		o.metrics = metrics
	}
}

// WithTimeFormat declares the temporal normalization of the input values.
//
// Required when the segmentation carries a time-period dimension, rejected
// when it does not.
//
// Parameters:
//   - format: One of TimeFormatWeek, TimeFormatDay, TimeFormatHour
//
// Returns:
//   - Option: Functional option for New and FromRows
func WithTimeFormat(format TimeFormat) Option {
	return func(o *vectorOptions) {
		o.timeFormat = format
	}
}

// WithInfill sets the value used for segments missing from the input.
//
// Zoned vectors infill a full zone array of this value, zoneless vectors a
// single scalar. Defaults to 0.
//
// Parameters:
//   - value: Infill value
//
// Returns:
//   - Option: Functional option for New and FromRows
func WithInfill(value float64) Option {
	return func(o *vectorOptions) {
		o.infill = value
	}
}
