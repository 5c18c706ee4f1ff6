package commands_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should open an order for the customer", func(t *testing.T) {
		ctx := t.Context()
		c := newTestCustomer(t)
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), c.ID())
		require.NoError(t, err)

		customerRepo := new(MockCustomerRepository)
		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CustomerRepository").Return(customerRepo).Once(),
			customerRepo.On("Get", ctx, c.ID()).Return(c, nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
				return o.ID() == cmd.OrderID() && o.CustomerID() == c.ID() && o.Status() == order.Received
			})).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateOrderCommandHandler(factory)

		require.NoError(t, h.Handle(ctx, cmd))
		customerRepo.AssertExpectations(t)
		orderRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
		factory.AssertExpectations(t)
	})

	t.Run("should fail for unknown customers", func(t *testing.T) {
		ctx := t.Context()
		customerID := kernel.NewUUID()
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID)
		require.NoError(t, err)

		customerRepo := new(MockCustomerRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CustomerRepository").Return(customerRepo).Once()
		customerRepo.On("Get", ctx, customerID).Return(nil, errs.NewObjectNotFoundError("customer", customerID.String())).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateOrderCommandHandler(factory)

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
		uow.AssertNotCalled(t, "OrderRepository")
	})

	t.Run("should reject a command that was not constructed", func(t *testing.T) {
		h := commands.NewCreateOrderCommandHandler(new(MockUoWFactory))

		require.ErrorIs(t, h.Handle(t.Context(), commands.CreateOrderCommand{}), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestAddOrderItemCommandHandler_Handle(t *testing.T) {
	t.Run("should add the customized item", func(t *testing.T) {
		ctx := t.Context()
		o := newTestOrder(t, order.Received)
		item := newTestItem(t)
		cheese, err := menu.NewCustomization(menu.ExtraTopping, "Extra cheese", kernel.MustMoney("2.00"))
		require.NoError(t, err)
		fries, err := menu.NewCustomization(menu.SideItem, "Fries", kernel.MustMoney("3.50"))
		require.NoError(t, err)
		cmd, err := commands.NewAddOrderItemCommand(o.ID(), item.ID(), 2, cheese, fries)
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		menuRepo := new(MockMenuRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			uow.On("MenuRepository").Return(menuRepo).Once(),
			menuRepo.On("Get", ctx, item.ID()).Return(item, nil).Once(),
			orderRepo.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAddOrderItemCommandHandler(factory)

		require.NoError(t, h.Handle(ctx, cmd))
		require.Equal(t, 1, o.ItemCount())
		line := o.Items()[0]
		assert.Equal(t, 2, line.Quantity())
		assert.True(t, line.UnitPrice().Equal(kernel.MustMoney("21.49")))
		customized, ok := line.Product().(*menu.Customized)
		require.True(t, ok)
		assert.Same(t, item, customized.Base())
		assert.Len(t, customized.Customizations(), 2)
		orderRepo.AssertExpectations(t)
		menuRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should add the plain item without customizations", func(t *testing.T) {
		ctx := t.Context()
		o := newTestOrder(t, order.Preparing)
		item := newTestItem(t)
		cmd, err := commands.NewAddOrderItemCommand(o.ID(), item.ID(), 1)
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		menuRepo := new(MockMenuRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
		uow.On("MenuRepository").Return(menuRepo).Once()
		menuRepo.On("Get", ctx, item.ID()).Return(item, nil).Once()
		orderRepo.On("Update", ctx, o).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAddOrderItemCommandHandler(factory)

		require.NoError(t, h.Handle(ctx, cmd))
		assert.Same(t, item, o.Items()[0].Product())
	})

	t.Run("should fail for unknown menu items", func(t *testing.T) {
		ctx := t.Context()
		o := newTestOrder(t, order.Received)
		itemID := kernel.NewUUID()
		cmd, err := commands.NewAddOrderItemCommand(o.ID(), itemID, 1)
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		menuRepo := new(MockMenuRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
		uow.On("MenuRepository").Return(menuRepo).Once()
		menuRepo.On("Get", ctx, itemID).Return(nil, errs.NewObjectNotFoundError("menu item", itemID.String())).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAddOrderItemCommandHandler(factory)

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
		assert.Zero(t, o.ItemCount())
		orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestNewAddOrderItemCommand(t *testing.T) {
	t.Run("should reject non positive quantities and unknown customizations", func(t *testing.T) {
		_, err := commands.NewAddOrderItemCommand(kernel.NewUUID(), kernel.NewUUID(), 0, menu.Customization{})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should cap the number of customizations", func(t *testing.T) {
		layer, err := menu.NewCustomization(menu.ExtraTopping, "Cheese", kernel.MustMoney("1"))
		require.NoError(t, err)
		layers := make([]menu.Customization, menu.MaxCustomizations+1)
		for i := range layers {
			layers[i] = layer
		}

		_, err = commands.NewAddOrderItemCommand(kernel.NewUUID(), kernel.NewUUID(), 1, layers...)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should not share the customization slice", func(t *testing.T) {
		layer, err := menu.NewCustomization(menu.SideItem, "Salad", kernel.MustMoney("3"))
		require.NoError(t, err)
		layers := []menu.Customization{layer}

		cmd, err := commands.NewAddOrderItemCommand(kernel.NewUUID(), kernel.NewUUID(), 1, layers...)
		require.NoError(t, err)
		layers[0] = menu.Customization{}

		assert.Equal(t, "Salad", cmd.Customizations()[0].Label())
	})
}

func TestRemoveOrderItemCommandHandler_Handle(t *testing.T) {
	t.Run("should remove the line", func(t *testing.T) {
		ctx := t.Context()
		o := newTestOrder(t, order.Received)
		line, err := o.AddItem(newTestItem(t), 1)
		require.NoError(t, err)
		cmd, err := commands.NewRemoveOrderItemCommand(o.ID(), line.ID())
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			orderRepo.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRemoveOrderItemCommandHandler(factory)

		require.NoError(t, h.Handle(ctx, cmd))
		assert.Zero(t, o.ItemCount())
		orderRepo.AssertExpectations(t)
	})

	t.Run("should report unknown lines as not found", func(t *testing.T) {
		ctx := t.Context()
		o := newTestOrder(t, order.Received)
		cmd, err := commands.NewRemoveOrderItemCommand(o.ID(), kernel.NewUUID())
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRemoveOrderItemCommandHandler(factory)

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
		orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestApplyDiscountCommandHandler_Handle(t *testing.T) {
	t.Run("should set the discount strategy", func(t *testing.T) {
		ctx := t.Context()
		o := newTestOrder(t, order.Received)
		cmd, err := commands.NewApplyDiscountCommand(o.ID(), order.DiscountFixed, kernel.MustMoney("5"))
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			orderRepo.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewApplyDiscountCommandHandler(factory)

		require.NoError(t, h.Handle(ctx, cmd))
		assert.Equal(t, order.DiscountFixed, o.Discount().Kind())
		assert.True(t, o.Discount().Value().Equal(kernel.MustMoney("5")))
	})
}

func TestNewApplyDiscountCommand(t *testing.T) {
	_, err := commands.NewApplyDiscountCommand(kernel.NewUUID(), order.DiscountPercentage, kernel.MustMoney("120"))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	cmd, err := commands.NewApplyDiscountCommand(kernel.NewUUID(), order.DiscountNone, kernel.MustMoney("0"))
	require.NoError(t, err)
	assert.Equal(t, order.NoDiscount{}, cmd.Discount())
}

func TestAdvanceOrderCommandHandler_Handle(t *testing.T) {
	newLogger := func() (*slog.Logger, *bytes.Buffer) {
		var buf bytes.Buffer
		return slog.New(slog.NewTextHandler(&buf, nil)), &buf
	}

	t.Run("should advance, notify in order and persist", func(t *testing.T) {
		ctx := t.Context()
		o := newTestOrder(t, order.Received)
		cmd, err := commands.NewAdvanceOrderCommand(o.ID())
		require.NoError(t, err)

		var calls []string
		console := order.ObserverFunc(func(o *order.Order) error {
			calls = append(calls, "console:"+o.Status().String())
			return nil
		})
		email := order.ObserverFunc(func(o *order.Order) error {
			calls = append(calls, "email:"+o.Status().String())
			return nil
		})

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			orderRepo.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		logger, _ := newLogger()

		h := commands.NewAdvanceOrderCommandHandler(factory, logger, console, email)

		require.NoError(t, h.Handle(ctx, cmd))
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, []string{"console:Preparing", "email:Preparing"}, calls)
		orderRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should log and skip delivered orders", func(t *testing.T) {
		ctx := t.Context()
		o := newTestOrder(t, order.Delivered)
		cmd, err := commands.NewAdvanceOrderCommand(o.ID())
		require.NoError(t, err)
		notified := false

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		logger, buf := newLogger()

		h := commands.NewAdvanceOrderCommandHandler(factory, logger, order.ObserverFunc(func(*order.Order) error {
			notified = true
			return nil
		}))

		require.NoError(t, h.Handle(ctx, cmd))
		assert.Equal(t, order.Delivered, o.Status())
		assert.False(t, notified)
		assert.Contains(t, buf.String(), "Order is already delivered")
		orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("should commit even when an observer fails", func(t *testing.T) {
		ctx := t.Context()
		o := newTestOrder(t, order.Ready)
		cmd, err := commands.NewAdvanceOrderCommand(o.ID())
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
		orderRepo.On("Update", ctx, o).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		logger, buf := newLogger()

		h := commands.NewAdvanceOrderCommandHandler(factory, logger, order.ObserverFunc(func(*order.Order) error {
			return errors.New("smtp unavailable")
		}))

		require.NoError(t, h.Handle(ctx, cmd))
		assert.Equal(t, order.Delivered, o.Status())
		assert.Contains(t, buf.String(), "smtp unavailable")
		uow.AssertExpectations(t)
	})
}

func TestAdvanceOrderCommandHandler_NotifiesOnlyAfterCommit(t *testing.T) {
	tests := []struct {
		name      string
		updateErr error
		commitErr error
	}{
		{name: "should not notify when the update fails", updateErr: errors.New("update failed")},
		{name: "should not notify when the commit fails", commitErr: errors.New("commit failed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			o := newTestOrder(t, order.Received)
			cmd, err := commands.NewAdvanceOrderCommand(o.ID())
			require.NoError(t, err)

			var notified []order.Status
			observer := order.ObserverFunc(func(o *order.Order) error {
				notified = append(notified, o.Status())
				return nil
			})

			orderRepo := new(MockOrderRepository)
			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(orderRepo).Once()
			orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
			orderRepo.On("Update", ctx, o).Return(tt.updateErr).Once()
			if tt.updateErr == nil {
				uow.On("Commit", ctx).Return(tt.commitErr).Once()
			}
			uow.On("Rollback", ctx).Return(nil).Once()
			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewAdvanceOrderCommandHandler(factory, slog.New(slog.NewTextHandler(new(bytes.Buffer), nil)), observer)

			err = h.Handle(ctx, cmd)

			require.Error(t, err)
			assert.Empty(t, notified)
			uow.AssertExpectations(t)
		})
	}
}
