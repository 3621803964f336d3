package lineset

type options struct {
	description string
	subtype     Subtype
	logger      *Logger
	metrics     MetricsCollector
}

// Option configures element construction.
type Option func(*options)

// WithDescription sets a human-readable description on the element.
func WithDescription(description string) Option {
	return func(o *options) {
		o.description = description
	}
}

// WithSubtype sets the element subtype. The default is SubtypeLine.
//
// The subtype is a hint for downstream consumers (e.g. a borehole viewer
// that renders polylines as tubes); it does not change the export.
func WithSubtype(subtype Subtype) Option {
	return func(o *options) {
		o.subtype = subtype
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector sets the metrics collector.
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(metrics MetricsCollector) Option {
	return func(o *options) {
		if metrics == nil {
			metrics = NoopMetricsCollector{}
		}
		o.metrics = metrics
	}
}
