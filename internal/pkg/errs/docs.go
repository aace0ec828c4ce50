// Package errs provides the standardized error types used across the
// application: typed errors for missing, invalid, and out-of-range values
// and for failed object lookups.
//
// Each error type follows the same pattern: a sentinel error variable used
// as the errors.Is target, a struct carrying the error details, constructor
// functions with and without a cause, and Error/Unwrap methods. Messages
// are single-line; embedded newlines in values are collapsed to spaces.
package errs
