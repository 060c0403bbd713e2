// Package tracing integrates observability back-ends with the mothur session
// engine to provide per-invocation tracing information. All instrumentation
// is kept in a separate package so that applications which do not require
// tracing can exclude it from their build.
package tracing
