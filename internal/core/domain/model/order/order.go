package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// TaxRate is applied to the discounted subtotal.
var TaxRate = decimal.New(8, -2)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is what a customer ordered and where it is in the kitchen.
//
// Order follows these invariants:
//   - Must have a valid identifier and a customer reference
//   - Status only moves forward through Status.Next
//   - Subtotal, discount, tax and total are derived on every call
//   - Observers belong to this instance and are never persisted
//
// An Order is not safe for concurrent use; the application layer gives each
// request its own instance loaded inside a unit of work.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	customerName string
	createdAt    time.Time
	items        []*LineItem
	status       Status
	discount     DiscountStrategy

	observers        []subscription
	lastSubscription Subscription

	isConstructed bool
}

// NewOrder creates an empty order in Received status with no discount.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), ana, time.Now())
//	_, err = o.AddItem(chickenWithCheese, 2)
//	o.SetDiscountStrategy(tenPercentOff)
//	total := o.Total()
func NewOrder(id kernel.UUID, c *customer.Customer, createdAt time.Time) (*Order, error) {
	if err := c.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	return RestoreOrder(id, c.ID(), c.Name(), createdAt, Received, NoDiscount{}, nil)
}

// RestoreOrder rebuilds an order from persisted state. Observers are not
// part of that state and start empty.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	createdAt time.Time,
	status Status,
	discount DiscountStrategy,
	items []*LineItem,
) (*Order, error) {
	var itemsErr error
	if slices.Contains(items, nil) {
		itemsErr = errs.NewValueIsRequiredError("line item")
	}

	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		status.Validate(),
		itemsErr,
	); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		customerID:    customerID,
		customerName:  customerName,
		createdAt:     createdAt,
		items:         slices.Clone(items),
		status:        status,
		isConstructed: true,
	}
	o.SetDiscountStrategy(discount)

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID            { return o.id }
func (o *Order) CustomerID() kernel.UUID    { return o.customerID }
func (o *Order) CustomerName() string       { return o.customerName }
func (o *Order) CreatedAt() time.Time       { return o.createdAt }
func (o *Order) Status() Status             { return o.status }
func (o *Order) Discount() DiscountStrategy { return o.discount }
func (o *Order) HasDiscount() bool          { return o.discount.Kind() != DiscountNone }
func (o *Order) Items() []*LineItem         { return slices.Clone(o.items) }
func (o *Order) ItemCount() int             { return len(o.items) }

// Item finds a line by identifier.
func (o *Order) Item(lineID kernel.UUID) (*LineItem, bool) {
	idx := o.indexOf(lineID)
	if idx < 0 {
		return nil, false
	}
	return o.items[idx], true
}

// AddItem appends a new line. A nil product is a caller bug and fails
// immediately; quantity must be positive. Lines are never merged.
// Items can be added in any status.
func (o *Order) AddItem(product menu.Product, quantity int) (*LineItem, error) {
	line, err := NewLineItem(product, quantity)
	if err != nil {
		return nil, err
	}
	o.items = append(o.items, line)
	return line, nil
}

// RemoveItem deletes the line with the given identifier. It reports false
// and changes nothing when the line is not part of the order.
func (o *Order) RemoveItem(lineID kernel.UUID) bool {
	idx := o.indexOf(lineID)
	if idx < 0 {
		return false
	}
	o.items = slices.Delete(o.items, idx, idx+1)
	return true
}

// SetDiscountStrategy replaces the current strategy. nil resets to NoDiscount.
func (o *Order) SetDiscountStrategy(d DiscountStrategy) {
	if d == nil {
		d = NoDiscount{}
	}
	o.discount = d
}

// Subtotal sums every line's unit price × quantity.
func (o *Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range o.items {
		sum = sum.Add(line.Subtotal())
	}
	return sum
}

// DiscountedSubtotal is the subtotal after the discount strategy.
func (o *Order) DiscountedSubtotal() decimal.Decimal {
	return o.discount.Apply(o.Subtotal())
}

// DiscountAmount is how much the discount takes off the subtotal.
func (o *Order) DiscountAmount() decimal.Decimal {
	subtotal := o.Subtotal()
	return subtotal.Sub(o.discount.Apply(subtotal))
}

// Tax is TaxRate applied to the discounted subtotal.
func (o *Order) Tax() decimal.Decimal {
	return o.DiscountedSubtotal().Mul(TaxRate)
}

// Total is the discounted subtotal plus tax. It is not rounded.
func (o *Order) Total() decimal.Decimal {
	discounted := o.DiscountedSubtotal()
	return discounted.Add(discounted.Mul(TaxRate))
}

// NextState advances the order one step through its lifecycle and notifies
// the observers.
//
// Returns:
//   - (true, nil) when the status changed and every observer succeeded
//   - (true, err) when the status changed but observers failed; the change stands
//   - (false, nil) when the order is already Delivered; no observer is called
//   - (false, err) when the current status is invalid
func (o *Order) NextState() (bool, error) {
	next, changed, err := o.status.Next()
	if err != nil || !changed {
		return false, err
	}
	return true, o.SetStatus(next)
}

// SetStatus moves the order to target, which must be the successor of the
// current status, and notifies every observer.
func (o *Order) SetStatus(target Status) error {
	next, changed, err := o.status.Next()
	if err != nil {
		return err
	}
	if !changed || target != next {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot move from %s to %s", o.status, target),
		)
	}

	o.status = target
	return o.notifyObservers()
}

func (o *Order) indexOf(lineID kernel.UUID) int {
	return slices.IndexFunc(o.items, func(l *LineItem) bool { return l.id.IsEqual(lineID) })
}
