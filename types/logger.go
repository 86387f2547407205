package types

// Logger defines methods for structured logging.
//
// The signature is compatible with zap.SugaredLogger and similar structured
// loggers; each method takes a message plus alternating key-value pairs.
// The engine logs through this interface only and never writes to a concrete
// backend directly.
type Logger interface {
	// Debug logs a message at DebugLevel with the given key-value fields.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at InfoLevel with the given key-value fields.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at WarnLevel with the given key-value fields.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at ErrorLevel with the given key-value fields.
	Error(msg string, keysAndValues ...any)

	// Fatal logs a message at FatalLevel and then calls os.Exit(1), even if
	// logging at FatalLevel is disabled.
	Fatal(msg string, keysAndValues ...any)
}
