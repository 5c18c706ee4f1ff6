package order

import (
	"strings"

	"restaurant/internal/core/domain/model/kernel"
)

// Receipt renders the order for people. Amounts are rounded to cents here
// and nowhere else.
//
//	Order #550e8400
//	Customer: Ana Diaz
//	Status: Received
//	Items:
//	  2 x Grilled Chicken + Extra cheese @ $17.99 = $35.98
//	Subtotal: $35.98
//	Discount (10% off): -$3.60
//	Tax: $2.59
//	Total: $34.97
func (o *Order) Receipt() string {
	var sb strings.Builder

	sb.WriteString("Order #" + o.id.Short() + "\n")
	sb.WriteString("Customer: " + o.customerName + "\n")
	sb.WriteString("Status: " + o.status.String() + "\n")
	sb.WriteString("Items:\n")
	for _, line := range o.items {
		sb.WriteString("  " + line.String() + "\n")
	}

	sb.WriteString("Subtotal: " + kernel.FormatCurrency(o.Subtotal()) + "\n")
	if o.HasDiscount() {
		sb.WriteString("Discount (" + o.discount.String() + "): -" + kernel.FormatCurrency(o.DiscountAmount()) + "\n")
	}
	sb.WriteString("Tax: " + kernel.FormatCurrency(o.Tax()) + "\n")
	sb.WriteString("Total: " + kernel.FormatCurrency(o.Total()) + "\n")

	return sb.String()
}

// String implements fmt.Stringer with the receipt.
func (o *Order) String() string {
	return o.Receipt()
}
