// Package errs provides standardized error types for the taxi ordering application.
// Every type follows the same pattern so callers can classify failures with
// errors.Is against a sentinel or errors.As against the concrete type.
//
// The package includes:
//   - ValueIsRequiredError: a required input is absent (invalid argument)
//   - ValueIsInvalidError: an input is present but malformed
//   - ObjectNotFoundError: a lookup by identifier found nothing
//   - InvalidStateError: an operation is not allowed in the current lifecycle state
//
// Each error type has:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
package errs
