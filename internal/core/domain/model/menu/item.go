package menu

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrItemIsNotConstructed is returned when an Item was not created through a constructor.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or a category constructor")

	// ErrNameIsRequired is returned for blank item names.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Product is what an order line references: a plain Item or a Customized one.
type Product interface {
	ID() kernel.UUID
	Name() string
	Price() decimal.Decimal
	Category() Category
	Description() string
}

// Item is a catalog entry. Its identity and category never change; name,
// price, description and the category flag can be edited.
//
// Items are shared by reference: editing the price of an item changes the
// subtotal of every open order line that points at it.
type Item struct {
	id          kernel.UUID
	name        string
	price       decimal.Decimal
	category    Category
	description string

	// flag holds the category specific attribute, see Category.FlagName.
	flag bool

	isConstructed bool
}

// NewItem creates an item of the given category with a fresh identifier.
//
// Example:
//
//	steak, err := menu.NewItem(menu.MainDish, "Beef Steak", kernel.MustMoney("24.99"), "Premium cut", false)
func NewItem(category Category, name string, price decimal.Decimal, description string, flag bool) (*Item, error) {
	return RestoreItem(kernel.NewUUID(), category, name, price, description, flag)
}

// RestoreItem rebuilds an item with a known identifier, e.g. from persistence.
func RestoreItem(
	id kernel.UUID,
	category Category,
	name string,
	price decimal.Decimal,
	description string,
	flag bool,
) (*Item, error) {
	item := &Item{
		description:   description,
		flag:          flag,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setCategory(category),
		item.SetName(name),
		item.SetPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// NewAppetizer creates an Appetizer.
func NewAppetizer(name string, price decimal.Decimal, description string, vegetarian bool) (*Item, error) {
	return NewItem(Appetizer, name, price, description, vegetarian)
}

// NewMainDish creates a Main Dish.
func NewMainDish(name string, price decimal.Decimal, description string, spicy bool) (*Item, error) {
	return NewItem(MainDish, name, price, description, spicy)
}

// NewBeverage creates a Beverage.
func NewBeverage(name string, price decimal.Decimal, description string, alcoholic bool) (*Item, error) {
	return NewItem(Beverage, name, price, description, alcoholic)
}

// NewDessert creates a Dessert.
func NewDessert(name string, price decimal.Decimal, description string, containsNuts bool) (*Item, error) {
	return NewItem(Dessert, name, price, description, containsNuts)
}

// Validate ensures the item was built by a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID        { return i.id }
func (i *Item) Name() string           { return i.name }
func (i *Item) Price() decimal.Decimal { return i.price }
func (i *Item) Category() Category     { return i.category }
func (i *Item) Description() string    { return i.description }

// Flag returns the raw category specific attribute.
func (i *Item) Flag() bool { return i.flag }

// SetName renames the item. Blank names are rejected.
func (i *Item) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	i.name = name
	return nil
}

// SetPrice changes the unit price. Negative, over-precise or oversized
// prices are rejected.
func (i *Item) SetPrice(price decimal.Decimal) error {
	if err := kernel.ValidateAmount("price", price); err != nil {
		return err
	}
	i.price = price
	return nil
}

func (i *Item) SetDescription(description string) {
	i.description = description
}

// SetFlag sets the category specific attribute without naming it.
func (i *Item) SetFlag(flag bool) {
	i.flag = flag
}

// IsVegetarian is meaningful for appetizers only.
func (i *Item) IsVegetarian() bool { return i.category == Appetizer && i.flag }

// IsSpicy is meaningful for main dishes only.
func (i *Item) IsSpicy() bool { return i.category == MainDish && i.flag }

// IsAlcoholic is meaningful for beverages only.
func (i *Item) IsAlcoholic() bool { return i.category == Beverage && i.flag }

// ContainsNuts is meaningful for desserts only.
func (i *Item) ContainsNuts() bool { return i.category == Dessert && i.flag }

func (i *Item) SetVegetarian(v bool) error   { return i.setVariantFlag(Appetizer, v) }
func (i *Item) SetSpicy(v bool) error        { return i.setVariantFlag(MainDish, v) }
func (i *Item) SetAlcoholic(v bool) error    { return i.setVariantFlag(Beverage, v) }
func (i *Item) SetContainsNuts(v bool) error { return i.setVariantFlag(Dessert, v) }

func (i *Item) setVariantFlag(expected Category, v bool) error {
	if i.category != expected {
		return errs.NewValueIsInvalidErrorWithCause(
			expected.FlagName(),
			fmt.Errorf("%s items have no %q attribute", i.category, expected.FlagName()),
		)
	}
	i.flag = v
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	i.category = category
	return nil
}
