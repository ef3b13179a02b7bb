package commands_test

import (
	"context"
	"testing"

	"repairshop/internal/core/application/usecases/commands"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, expectedVersion int) error {
	args := m.Called(ctx, o, expectedVersion)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllQuotesInStatus(
	ctx context.Context, status order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockNotesGateway struct{ mock.Mock }

func (m *MockNotesGateway) HasNonSystemProgressNote(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// MockUoW adds the notes gateway for the note-aware handlers.
type MockUoW struct{ MockOrderUoW }

func (m *MockUoW) NotesGateway() ports.NotesGateway {
	args := m.Called()
	return args.Get(0).(ports.NotesGateway)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func restoredWorkOrder(t *testing.T, id kernel.UUID, status order.Status, version int) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:          id,
		Version:     version,
		DocType:     order.DocWorkOrder,
		CustomerRef: kernel.NewUUID(),
		VehicleRef:  kernel.NewUUID(),
		Title:       "Brake job",
		Status:      status,
	})
	require.NoError(t, err)
	return o
}

func restoredQuote(t *testing.T, id kernel.UUID, version int, parts []order.Part, labor []order.Labor) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:          id,
		Version:     version,
		DocType:     order.DocQuote,
		CustomerRef: kernel.NewUUID(),
		VehicleRef:  kernel.NewUUID(),
		Title:       "Timing belt estimate",
		Status:      order.Quote,
		Parts:       parts,
		Labor:       labor,
	})
	require.NoError(t, err)
	return o
}
