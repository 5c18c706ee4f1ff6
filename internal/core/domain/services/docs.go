// Package services provides domain services that work across many orders
// rather than inside a single aggregate.
//
// The package includes:
//   - SalesReporter: aggregates a day's orders into sales figures
//
// Services are stateless and never touch persistence; callers load the
// orders and hand them in.
package services
