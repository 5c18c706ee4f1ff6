package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineItem is one line of an order: a product, possibly customized, and how
// many of it were ordered. Adding the same product twice yields two lines.
type LineItem struct {
	id       kernel.UUID
	product  menu.Product
	quantity int
}

// NewLineItem creates a line with a fresh identifier.
func NewLineItem(product menu.Product, quantity int) (*LineItem, error) {
	return RestoreLineItem(kernel.NewUUID(), product, quantity)
}

// RestoreLineItem rebuilds a line with a known identifier.
func RestoreLineItem(id kernel.UUID, product menu.Product, quantity int) (*LineItem, error) {
	var productErr, quantityErr error
	if menu.IsNil(product) {
		productErr = menu.ErrProductIsRequired
	}
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	if err := errors.Join(id.Validate(), productErr, quantityErr); err != nil {
		return nil, err
	}

	return &LineItem{id: id, product: product, quantity: quantity}, nil
}

func (l *LineItem) ID() kernel.UUID       { return l.id }
func (l *LineItem) Product() menu.Product { return l.product }
func (l *LineItem) Quantity() int         { return l.quantity }

// UnitPrice resolves the price through any customizations.
func (l *LineItem) UnitPrice() decimal.Decimal {
	return l.product.Price()
}

// Subtotal is UnitPrice × Quantity.
func (l *LineItem) Subtotal() decimal.Decimal {
	return l.UnitPrice().Mul(decimal.NewFromInt(int64(l.quantity)))
}

// String renders "2 x Grilled Chicken + Extra cheese @ $17.99 = $35.98".
func (l *LineItem) String() string {
	name := l.product.Name()
	if c, ok := l.product.(*menu.Customized); ok {
		for _, layer := range c.Customizations() {
			name += " + " + layer.Label()
		}
	}
	return fmt.Sprintf("%d x %s @ %s = %s",
		l.quantity, name, kernel.FormatCurrency(l.UnitPrice()), kernel.FormatCurrency(l.Subtotal()))
}
