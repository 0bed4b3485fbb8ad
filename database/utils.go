package database

import (
	"context"
	"time"
)

// Common timeout durations for database operations
const (
	// ShortTimeout for single-document reads and writes
	ShortTimeout = 5 * time.Second

	// MediumTimeout for queries returning multiple documents
	MediumTimeout = 10 * time.Second

	// LongTimeout for bulk operations and imports
	LongTimeout = 30 * time.Second
)

// ContextWithTimeout creates a context with timeout and cancel function
func ContextWithTimeout(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// WithShortTimeout creates a context with ShortTimeout
func WithShortTimeout() (context.Context, context.CancelFunc) {
	return ContextWithTimeout(ShortTimeout)
}

// WithMediumTimeout creates a context with MediumTimeout
func WithMediumTimeout() (context.Context, context.CancelFunc) {
	return ContextWithTimeout(MediumTimeout)
}

// WithLongTimeout creates a context with LongTimeout
func WithLongTimeout() (context.Context, context.CancelFunc) {
	return ContextWithTimeout(LongTimeout)
}
