// Package errs provides the standard error taxonomy for the order service.
// Every failure the core raises is one of a small set of classified errors,
// so callers (and the HTTP layer) can branch on errors.Is instead of string
// matching.
//
// The taxonomy:
//   - ValueIsRequiredError: a required value is missing (precondition failures)
//   - ValueIsInvalidError: a supplied value fails validation
//   - ValueIsOutOfRangeError: a numeric value lies outside its interval
//   - ObjectNotFoundError: a looked-up object does not exist
//   - VersionIsInvalidError: an optimistic concurrency conflict on write
//
// Each type follows the same pattern: a sentinel error variable (the unwrap
// target), a struct carrying the details, constructors with and without a
// cause, and Error/Unwrap methods. Messages are flattened to a single line.
package errs
