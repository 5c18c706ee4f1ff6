// Package kernel holds the value objects shared by every restaurant aggregate:
// identifiers (UUID) and the money helpers used for prices, discounts and totals.
//
// Money is represented by github.com/shopspring/decimal so that sums such as
// 15.99 + 2.00 or a 10% discount on 35.98 stay exact; rounding to cents only
// happens when an amount is rendered.
package kernel
