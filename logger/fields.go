package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings.
const (
	// Components
	FieldComponent = "component"
	FieldOperation = "operation"

	// Schema
	FieldFile     = "file"
	FieldLine     = "line"
	FieldPackage  = "package"
	FieldEnum     = "enum"
	FieldVariant  = "variant"
	FieldStrategy = "strategy"
	FieldCase     = "case"

	// Output
	FieldOutput  = "output"
	FieldWritten = "written"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"
	FieldKind  = "kind"

	// Counts
	FieldCount = "count"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type Watcher struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func New() *Watcher {
//	    return &Watcher{logger: logger.ComponentLogger("watch")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
// Example:
//
//	fileLogger := logger.ChildLogger(base, logger.FieldFile, path)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
