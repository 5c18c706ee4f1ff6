package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand replaces the editable fields of a menu item.
// The category of an item never changes.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	name        string
	price       decimal.Decimal
	description string
	flag        bool

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand validates the new item data.
func NewUpdateMenuItemCommand(
	itemID kernel.UUID,
	name string,
	price decimal.Decimal,
	description string,
	flag bool,
) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
		flag:        flag,
		guard:       guard.NewConstructorGuard(),
	}

	var nameErr error
	if cmd.name == "" {
		nameErr = menu.ErrNameIsRequired
	}

	if err := errors.Join(
		itemID.Validate(),
		nameErr,
		kernel.ValidateAmount("price", price),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	cmd.itemID = itemID
	cmd.price = price
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) ItemID() kernel.UUID    { return c.itemID }
func (c UpdateMenuItemCommand) Name() string           { return c.name }
func (c UpdateMenuItemCommand) Price() decimal.Decimal { return c.price }
func (c UpdateMenuItemCommand) Description() string    { return c.description }
func (c UpdateMenuItemCommand) Flag() bool             { return c.flag }
