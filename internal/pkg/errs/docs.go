// Package errs provides the typed errors shared by the restaurant domain and
// its adapters.
//
// Every error type unwraps to a sentinel so callers can classify failures with
// errors.Is, and carries the offending parameter name for messages:
//   - ValueIsRequiredError: a mandatory value (menu item, customer, name) is missing
//   - ValueIsInvalidError: a value breaks a business rule (negative price, wrong variant)
//   - ValueIsOutOfRangeError: a number falls outside its allowed bounds (discount percentage)
//   - ObjectNotFoundError: a lookup by identifier did not resolve
package errs
