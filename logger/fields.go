package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across the generator.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"
	FieldCommand   = "command"

	// Vocabulary
	FieldNamespace = "namespace"
	FieldPackage   = "package"
	FieldName      = "name"
	FieldProperty  = "property"
	FieldID        = "id"

	// Perfect hash construction
	FieldSeed     = "seed"
	FieldAttempts = "attempts"
	FieldBuckets  = "buckets"

	// Counts and sizes
	FieldCount      = "count"
	FieldAttributes = "attributes"
	FieldElements   = "elements"
	FieldSize       = "size"

	// Files and paths
	FieldFile   = "file"
	FieldConfig = "config"
	FieldDigest = "digest"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type Loader struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewLoader() *Loader {
//	    return &Loader{
//	        logger: logger.ComponentLogger("symgen.loader"),
//	    }
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
// Example:
//
//	nsLogger := logger.ChildLogger(baseLogger, logger.FieldNamespace, "HTML5")
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
