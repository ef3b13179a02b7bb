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

func TestChangeStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	aggregate := restoredWorkOrder(t, orderID, order.Created, 3)

	cmd, err := commands.NewChangeStatusCommand(orderID, order.AppointmentScheduled, nil, 3)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate, 3).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.AppointmentScheduled, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeStatusCommandHandler_Handle_InspectionGuard(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewChangeStatusCommand(orderID, order.InspectionComplete, nil, 1)
	require.NoError(t, err)

	t.Run("blocks completion without a human note", func(t *testing.T) {
		aggregate := restoredWorkOrder(t, orderID, order.InspectionInProgress, 1)

		repo := new(MockOrderRepository)
		notes := new(MockNotesGateway)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("Get", mock.Anything, orderID).Return(aggregate, nil).Once(),
			uow.On("NotesGateway").Return(notes).Once(),
			notes.On("HasNonSystemProgressNote", mock.Anything, orderID).Return(false, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewChangeStatusCommandHandler(factory)
		err = h.Handle(ctx, cmd)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrGuardNotSatisfied)
		assert.Equal(t, order.InspectionInProgress, aggregate.Status())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("allows completion with a human note", func(t *testing.T) {
		aggregate := restoredWorkOrder(t, orderID, order.InspectionInProgress, 1)

		repo := new(MockOrderRepository)
		notes := new(MockNotesGateway)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("Get", mock.Anything, orderID).Return(aggregate, nil).Once(),
			uow.On("NotesGateway").Return(notes).Once(),
			notes.On("HasNonSystemProgressNote", mock.Anything, orderID).Return(true, nil).Once(),
			repo.On("Update", mock.Anything, aggregate, 1).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewChangeStatusCommandHandler(factory)
		err = h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, order.InspectionComplete, aggregate.Status())
	})
}

func TestChangeStatusCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	aggregate := restoredWorkOrder(t, orderID, order.Created, 5)

	cmd, err := commands.NewChangeStatusCommand(orderID, order.AppointmentScheduled, nil, 4)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrVersionConflict)
	assert.Equal(t, order.Created, aggregate.Status())
}

func TestChangeStatusCommandHandler_Handle_OnHoldWithoutNotesLookup(t *testing.T) {
	// Transitions that are not the inspection edge must not consult the
	// notes gateway at all.
	ctx := t.Context()
	orderID := kernel.NewUUID()
	aggregate := restoredWorkOrder(t, orderID, order.Created, 1)

	reason, err := order.NewHoldReason(order.HoldAwaitingApproval, "")
	require.NoError(t, err)
	cmd, err := commands.NewChangeStatusCommand(orderID, order.OnHold, &reason, 1)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate, 1).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.OnHold, aggregate.Status())
	uow.AssertNotCalled(t, "NotesGateway")
}
