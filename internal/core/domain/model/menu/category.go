package menu

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// Category is the menu section an item belongs to. It also decides which
// flag the item carries.
type Category int

const (
	// UnknownCategory is the zero value and is never valid.
	UnknownCategory Category = iota
	Appetizer
	MainDish
	Beverage
	Dessert
)

var categoryNames = map[Category]string{
	Appetizer: "Appetizer",
	MainDish:  "Main Dish",
	Beverage:  "Beverage",
	Dessert:   "Dessert",
}

var categoryFlags = map[Category]string{
	Appetizer: "vegetarian",
	MainDish:  "spicy",
	Beverage:  "alcoholic",
	Dessert:   "contains nuts",
}

// Categories lists the valid categories in menu order.
func Categories() []Category {
	return []Category{Appetizer, MainDish, Beverage, Dessert}
}

// ParseCategory accepts the display name ("Main Dish") or a short key
// ("main", "appetizer", "beverage", "dessert"), case-insensitively.
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "appetizer":
		return Appetizer, nil
	case "main", "main dish", "main_dish":
		return MainDish, nil
	case "beverage":
		return Beverage, nil
	case "dessert":
		return Dessert, nil
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause(
		"category is invalid", fmt.Errorf("%q is not a known category", s))
}

// Validate rejects UnknownCategory and out of range values.
func (c Category) Validate() error {
	if _, ok := categoryNames[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the display name, or "Unknown".
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// FlagName names the boolean attribute items of this category carry.
func (c Category) FlagName() string {
	return categoryFlags[c]
}
