package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand represents a request to put a new item on the menu.
//
// Example:
//
//	itemID := kernel.NewUUID()
//	cmd, err := NewCreateMenuItemCommand(itemID, menu.MainDish, "Grilled Chicken",
//	    kernel.MustMoney("15.99"), "Herb marinated grilled chicken breast", false)
//	if err != nil {
//	    return fmt.Errorf("invalid menu item: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	category    menu.Category
	name        string
	price       decimal.Decimal
	description string
	flag        bool

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand validates the item data. flag is the category
// attribute: vegetarian, spicy, alcoholic or contains nuts.
func NewCreateMenuItemCommand(
	itemID kernel.UUID,
	category menu.Category,
	name string,
	price decimal.Decimal,
	description string,
	flag bool,
) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{
		description: strings.TrimSpace(description),
		flag:        flag,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setCategory(category),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) ItemID() kernel.UUID     { return c.itemID }
func (c CreateMenuItemCommand) Category() menu.Category { return c.category }
func (c CreateMenuItemCommand) Name() string            { return c.name }
func (c CreateMenuItemCommand) Price() decimal.Decimal  { return c.price }
func (c CreateMenuItemCommand) Description() string     { return c.description }
func (c CreateMenuItemCommand) Flag() bool              { return c.flag }

func (c *CreateMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *CreateMenuItemCommand) setCategory(category menu.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *CreateMenuItemCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return menu.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateMenuItemCommand) setPrice(price decimal.Decimal) error {
	if err := kernel.ValidateAmount("price", price); err != nil {
		return err
	}

	c.price = price
	return nil
}
