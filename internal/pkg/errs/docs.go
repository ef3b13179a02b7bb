// Package errs provides standardized error types for the repair-shop service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the error taxonomy of the order
// lifecycle core:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed or missing input (validation failures)
//   - ObjectNotFoundError: unknown order or line-item identifiers
//   - VersionConflictError: stale optimistic-concurrency version on write
//   - InvalidTransitionError: a status edge outside the allowed table
//   - GuardNotSatisfiedError: a transition precondition that did not hold
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrVersionConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// The HTTP adapter relies on the sentinels to map each error kind to a
// status code, so engine operations return these types rather than ad hoc
// strings.
package errs
