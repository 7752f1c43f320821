package common

import (
	"context"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyScanJobID contextKey = "scan_job_id"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithScanJobID tags a context with the scan job being processed
func WithScanJobID(ctx context.Context, jobID string) context.Context {
	return context.WithValue(ctx, ContextKeyScanJobID, jobID)
}

// ScanJobIDFromContext extracts the scan job ID from context
func ScanJobIDFromContext(ctx context.Context) string {
	if jobID, ok := ctx.Value(ContextKeyScanJobID).(string); ok {
		return jobID
	}
	return ""
}
