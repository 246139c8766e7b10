// Package errs provides the error taxonomy shared by the domain, application and
// adapter layers of the negotiation service.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct carrying the details
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Two coarse classes are used by callers to map failures to responses:
//   - ErrInvalidArgument: matched by ValueIsInvalidError, ValueIsOutOfRangeError
//     and ValueIsRequiredError
//   - ErrStateIsInvalid: an operation forbidden by the aggregate's lifecycle state
package errs
