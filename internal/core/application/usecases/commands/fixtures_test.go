package commands_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func newTestCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer("Ana Diaz", "12 Elm Street", "555-0101")
	require.NoError(t, err)
	return c
}

func newTestItem(t *testing.T) *menu.Item {
	t.Helper()
	item, err := menu.NewMainDish("Grilled Chicken", kernel.MustMoney("15.99"), "Herb marinated grilled chicken breast", false)
	require.NoError(t, err)
	return item
}

func newTestOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), "Ana Diaz", time.Now(), status, nil, nil)
	require.NoError(t, err)
	return o
}
