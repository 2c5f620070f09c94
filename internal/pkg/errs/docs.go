// Package errs provides standardized error types for the fulfillment core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// The taxonomy maps one-to-one onto the failure modes the command handlers
// surface to callers:
//   - ObjectNotFoundError: a referenced entity does not resolve
//   - ValueIsInvalidError / ValueIsRequiredError / ValueIsOutOfRangeError:
//     field-level validation failures
//   - ForbiddenError: authorization denial from the access policy
//   - InvalidSubmissionError: a DNA submission rejected by scoring, carrying
//     the per-gene verdicts
//   - MalformedSubmissionError: a submission payload that could not be decoded
//   - VersionConflictError: a compare-and-set update lost against a
//     concurrent writer
package errs
