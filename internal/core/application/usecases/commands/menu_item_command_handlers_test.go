package commands_test

import (
	"errors"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateMenuItemCommandHandler_Handle(t *testing.T) {
	newCommand := func(t *testing.T) commands.CreateMenuItemCommand {
		t.Helper()
		cmd, err := commands.NewCreateMenuItemCommand(kernel.NewUUID(), menu.Beverage, "Red Wine", kernel.MustMoney("8.50"), "House red", true)
		require.NoError(t, err)
		return cmd
	}

	t.Run("should add the item and commit", func(t *testing.T) {
		ctx := t.Context()
		cmd := newCommand(t)

		repo := new(MockMenuRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("MenuRepository").Return(repo).Once(),
			repo.On("Add", ctx, mock.MatchedBy(func(item *menu.Item) bool {
				return item.ID() == cmd.ItemID() && item.Name() == "Red Wine" && item.IsAlcoholic()
			})).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockMenuUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateMenuItemCommandHandler(factory)
		err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
		factory.AssertExpectations(t)
	})

	t.Run("should reject a command that was not constructed", func(t *testing.T) {
		factory := new(MockMenuUoWFactory)
		h := commands.NewCreateMenuItemCommandHandler(factory)

		err := h.Handle(t.Context(), commands.CreateMenuItemCommand{})

		require.ErrorIs(t, err, commands.ErrCreateMenuItemCommandIsNotConstructed)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should not commit when add fails", func(t *testing.T) {
		ctx := t.Context()
		addErr := errors.New("add error")

		repo := new(MockMenuRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("MenuRepository").Return(repo).Once(),
			repo.On("Add", ctx, mock.AnythingOfType("*menu.Item")).Return(addErr).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockMenuUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateMenuItemCommandHandler(factory)
		err := h.Handle(ctx, newCommand(t))

		require.ErrorIs(t, err, addErr)
		uow.AssertNotCalled(t, "Commit", ctx)
		uow.AssertExpectations(t)
	})

	t.Run("should return begin errors", func(t *testing.T) {
		ctx := t.Context()
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once()
		factory := new(MockMenuUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateMenuItemCommandHandler(factory)
		err := h.Handle(ctx, newCommand(t))

		require.EqualError(t, err, "begin error")
		uow.AssertExpectations(t)
	})
}

func TestUpdateMenuItemCommandHandler_Handle(t *testing.T) {
	t.Run("should apply every change", func(t *testing.T) {
		ctx := t.Context()
		item := newTestItem(t)
		cmd, err := commands.NewUpdateMenuItemCommand(item.ID(), "Spicy Chicken", kernel.MustMoney("16.49"), "Now with chili", true)
		require.NoError(t, err)

		repo := new(MockMenuRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("MenuRepository").Return(repo).Once(),
			repo.On("Get", ctx, item.ID()).Return(item, nil).Once(),
			repo.On("Update", ctx, item).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockMenuUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewUpdateMenuItemCommandHandler(factory)
		err = h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "Spicy Chicken", item.Name())
		assert.True(t, item.Price().Equal(kernel.MustMoney("16.49")))
		assert.Equal(t, "Now with chili", item.Description())
		assert.True(t, item.IsSpicy())
		assert.Equal(t, menu.MainDish, item.Category())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should return not found errors", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, err := commands.NewUpdateMenuItemCommand(id, "Soup", kernel.MustMoney("4"), "", false)
		require.NoError(t, err)

		repo := new(MockMenuRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("MenuRepository").Return(repo).Once()
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("menu item", id.String())).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockMenuUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewUpdateMenuItemCommandHandler(factory)
		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestRemoveMenuItemCommandHandler_Handle(t *testing.T) {
	t.Run("should remove the item and commit", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, err := commands.NewRemoveMenuItemCommand(id)
		require.NoError(t, err)

		repo := new(MockMenuRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("MenuRepository").Return(repo).Once(),
			repo.On("Remove", ctx, id).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockMenuUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRemoveMenuItemCommandHandler(factory)

		require.NoError(t, h.Handle(ctx, cmd))
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should return commit errors", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, err := commands.NewRemoveMenuItemCommand(id)
		require.NoError(t, err)

		repo := new(MockMenuRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("MenuRepository").Return(repo).Once()
		repo.On("Remove", ctx, id).Return(nil).Once()
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockMenuUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRemoveMenuItemCommandHandler(factory)

		require.EqualError(t, h.Handle(ctx, cmd), "commit error")
	})
}
