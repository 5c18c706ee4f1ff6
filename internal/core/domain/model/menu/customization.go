package menu

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxCustomizations bounds the number of layers on a single product.
const MaxCustomizations = 16

// ErrProductIsRequired is returned when a nil product is customized or ordered.
var ErrProductIsRequired = errs.NewValueIsRequiredError("menu item")

// CustomizationKind tells extra toppings apart from side items.
type CustomizationKind int

const (
	UnknownCustomization CustomizationKind = iota
	ExtraTopping
	SideItem
)

func (k CustomizationKind) String() string {
	switch k {
	case ExtraTopping:
		return "Extra Topping"
	case SideItem:
		return "Side Item"
	default:
		return "Unknown"
	}
}

// ParseCustomizationKind accepts "topping", "extra topping", "side" and
// "side item", case-insensitively.
func ParseCustomizationKind(s string) (CustomizationKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "topping", "extra topping", "extra_topping":
		return ExtraTopping, nil
	case "side", "side item", "side_item":
		return SideItem, nil
	}
	return UnknownCustomization, errs.NewValueIsInvalidErrorWithCause(
		"customization kind", fmt.Errorf("%q is not a known customization", s))
}

func (k CustomizationKind) Validate() error {
	if k != ExtraTopping && k != SideItem {
		return errs.NewValueIsInvalidErrorWithCause("customization kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// Customization is one priced layer: "+ Extra cheese $2.00".
type Customization struct {
	kind  CustomizationKind
	label string
	price decimal.Decimal
}

// NewCustomization validates the kind, a non-blank label and a storable surcharge.
func NewCustomization(kind CustomizationKind, label string, price decimal.Decimal) (Customization, error) {
	label = strings.TrimSpace(label)

	var labelErr error
	if label == "" {
		labelErr = errs.NewValueIsRequiredError("customization label")
	}

	if err := errors.Join(kind.Validate(), labelErr, kernel.ValidateAmount("customization price", price)); err != nil {
		return Customization{}, err
	}

	return Customization{kind: kind, label: label, price: price}, nil
}

func (c Customization) Kind() CustomizationKind { return c.kind }
func (c Customization) Label() string           { return c.label }
func (c Customization) Price() decimal.Decimal  { return c.price }

// Customized is a product with one or more customizations layered on a base
// product. Wrapping a Customized again appends a layer on the same base, so
// the chain is a flat slice walked iteratively and never nests.
//
// Customized values are immutable; every wrap returns a new value.
type Customized struct {
	base   Product
	layers []Customization
}

// Customize wraps p with c.
//
// Example:
//
//	topping, _ := menu.NewCustomization(menu.ExtraTopping, "Extra cheese", kernel.MustMoney("2.00"))
//	p, err := menu.Customize(chicken, topping)
//	p.Price()       // chicken price + 2.00
//	p.Description() // "Herb marinated grilled chicken breast, + Extra cheese"
func Customize(p Product, c Customization) (*Customized, error) {
	if IsNil(p) {
		return nil, ErrProductIsRequired
	}
	if err := c.kind.Validate(); err != nil {
		return nil, err
	}

	base := p
	var layers []Customization
	if wrapped, ok := p.(*Customized); ok {
		base = wrapped.base
		layers = wrapped.layers
	}

	if len(layers) >= MaxCustomizations {
		return nil, errs.NewValueIsOutOfRangeError("customizations", len(layers)+1, 1, MaxCustomizations)
	}

	next := make([]Customization, len(layers), len(layers)+1)
	copy(next, layers)
	next = append(next, c)

	return &Customized{base: base, layers: next}, nil
}

// WithExtraTopping wraps p with an extra topping.
func WithExtraTopping(p Product, label string, price decimal.Decimal) (*Customized, error) {
	return customizeWith(p, ExtraTopping, label, price)
}

// WithSideItem wraps p with a side item.
func WithSideItem(p Product, label string, price decimal.Decimal) (*Customized, error) {
	return customizeWith(p, SideItem, label, price)
}

func customizeWith(p Product, kind CustomizationKind, label string, price decimal.Decimal) (*Customized, error) {
	c, err := NewCustomization(kind, label, price)
	if err != nil {
		return nil, err
	}
	return Customize(p, c)
}

func (c *Customized) ID() kernel.UUID    { return c.base.ID() }
func (c *Customized) Name() string       { return c.base.Name() }
func (c *Customized) Category() Category { return c.base.Category() }

// Base returns the innermost, uncustomized product.
func (c *Customized) Base() Product { return c.base }

// Customizations returns the layers in the order they were applied.
func (c *Customized) Customizations() []Customization {
	out := make([]Customization, len(c.layers))
	copy(out, c.layers)
	return out
}

// Price is the base price plus every layer's surcharge.
func (c *Customized) Price() decimal.Decimal {
	price := c.base.Price()
	for _, layer := range c.layers {
		price = price.Add(layer.price)
	}
	return price
}

// Description appends ", + <label>" to the base description for each layer.
func (c *Customized) Description() string {
	var sb strings.Builder
	sb.WriteString(c.base.Description())
	for _, layer := range c.layers {
		sb.WriteString(", + ")
		sb.WriteString(layer.label)
	}
	return sb.String()
}

// IsNil reports whether p is nil or a typed nil pointer.
func IsNil(p Product) bool {
	switch v := p.(type) {
	case nil:
		return true
	case *Item:
		return v == nil
	case *Customized:
		return v == nil
	}
	return false
}
