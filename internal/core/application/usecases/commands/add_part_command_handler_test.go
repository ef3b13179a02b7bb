package commands_test

import (
	"testing"

	"repairshop/internal/core/application/usecases/commands"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestAddPartCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	partID := kernel.NewUUID()
	aggregate := restoredWorkOrder(t, orderID, order.Created, 2)

	cmd, err := commands.NewAddPartCommand(
		orderID, partID, "Brake pads", "BP-1042", "NAPA", "NAPA Warehouse 3",
		2, testMoney(t, "35.00"), testMoney(t, "59.99"), 2)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate, 2).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddPartCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	parts := aggregate.Parts()
	require.Len(t, parts, 1)
	assert.Equal(t, "Brake pads", parts[0].Name())
	assert.Equal(t, "NAPA", parts[0].Vendor())
	assert.Equal(t, "BP-1042", parts[0].PartNumber())
	repo.AssertExpectations(t)
}

func TestAddPartCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	aggregate := restoredWorkOrder(t, orderID, order.Created, 9)

	cmd, err := commands.NewAddPartCommand(
		orderID, kernel.NewUUID(), "Brake pads", "", "", "",
		1, testMoney(t, "35.00"), testMoney(t, "59.99"), 8)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddPartCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrVersionConflict)
	assert.Empty(t, aggregate.Parts())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddPartCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewAddPartCommand(
		orderID, kernel.NewUUID(), "Brake pads", "", "", "",
		1, testMoney(t, "35.00"), testMoney(t, "59.99"), 1)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderId", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddPartCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
