// Package kernel contains shared value objects used across the domain model:
//
//   - UUID: entity identifier wrapping github.com/google/uuid
//   - PageSpec: validated page number/size pair for paginated listings
//
// Value objects here are immutable, validate themselves on construction, and
// reject their zero values so invariants cannot be bypassed.
package kernel
