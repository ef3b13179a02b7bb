package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "repairshop/internal/adapters/out/postgres"
	"repairshop/internal/adapters/out/postgres/notesrepo"
	"repairshop/internal/adapters/out/postgres/orderrepo"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/core/domain/services"
	"repairshop/internal/core/ports"
	"repairshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.PartDTO{},
		&orderrepo.LaborDTO{},
		&notesrepo.ProgressNoteDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_parts, order_labor, progress_notes").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.NotesGateway(), "First instance should provide notes gateway")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
	suite.NotNil(uow2.NotesGateway(), "Second instance should provide notes gateway")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	workOrder := suite.createTestWorkOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, workOrder)
	suite.Require().NoError(err)

	retrieved, err := uow.OrderRepository().Get(ctx, workOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(workOrder.ID(), retrieved.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.OrderRepository().Get(ctx, workOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(workOrder.ID(), retrieved.ID())
	suite.Equal(order.Created, retrieved.Status())
}

// TestUnitOfWork_LedgerRoundTrip verifies parts and labor survive a full
// persistence round trip with flags, order, and money values intact.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_LedgerRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	workOrder := suite.createTestWorkOrder()

	brakePad := suite.createTestPart("Brake pad set", "45.00", "120.00")
	oilFilter := suite.createTestPart("Oil filter", "4.50", "12.00")
	suite.Require().NoError(workOrder.AddPart(brakePad))
	suite.Require().NoError(workOrder.AddPart(oilFilter))
	suite.Require().NoError(workOrder.SetPartOrdered(brakePad.ID(), true))
	suite.Require().NoError(workOrder.SetPartReceived(brakePad.ID(), true))

	labor := suite.createTestLabor("Brake service", "85.00")
	suite.Require().NoError(workOrder.AddLabor(labor))

	err := uow.OrderRepository().Add(ctx, workOrder)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.OrderRepository().Get(ctx, workOrder.ID())
	suite.Require().NoError(err)

	parts := retrieved.Parts()
	suite.Require().Len(parts, 2)
	suite.Equal(brakePad.ID(), parts[0].ID(), "Parts should keep insertion order")
	suite.Equal("Brake pad set", parts[0].Name())
	suite.True(parts[0].Ordered())
	suite.True(parts[0].Received())
	suite.False(parts[1].Ordered())
	suite.True(parts[0].UnitPrice().IsEqual(brakePad.UnitPrice()))

	laborItems := retrieved.Labor()
	suite.Require().Len(laborItems, 1)
	suite.Equal("Brake service", laborItems[0].Description())
	suite.True(laborItems[0].Subtotal().IsEqual(labor.Subtotal()))
}

// TestUnitOfWork_OptimisticConcurrency verifies stale writers are rejected
// with a version conflict while the winning write advances the version.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OptimisticConcurrency() {
	ctx := context.Background()

	workOrder := suite.createTestWorkOrder()
	initialUow := suite.factory.Create()
	err := initialUow.OrderRepository().Add(ctx, workOrder)
	suite.Require().NoError(err)

	// Two readers load the same snapshot.
	uow1 := suite.factory.Create()
	copy1, err := uow1.OrderRepository().Get(ctx, workOrder.ID())
	suite.Require().NoError(err)

	uow2 := suite.factory.Create()
	copy2, err := uow2.OrderRepository().Get(ctx, workOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(copy1.Version(), copy2.Version())

	// First writer wins.
	err = copy1.SetServices([]string{"brakes"})
	suite.Require().NoError(err)
	err = uow1.OrderRepository().Update(ctx, copy1, copy1.Version())
	suite.Require().NoError(err)
	suite.Equal(copy2.Version()+1, copy1.Version(), "Winning write should bump the version")

	// Second writer is stale.
	err = copy2.SetServices([]string{"tires"})
	suite.Require().NoError(err)
	err = uow2.OrderRepository().Update(ctx, copy2, copy2.Version())
	suite.Require().ErrorIs(err, errs.ErrVersionConflict)

	// The winning write persisted.
	finalUow := suite.factory.Create()
	retrieved, err := finalUow.OrderRepository().Get(ctx, workOrder.ID())
	suite.Require().NoError(err)
	suite.Equal([]string{"brakes"}, retrieved.Services())
	suite.Equal(copy1.Version(), retrieved.Version())
}

// TestUnitOfWork_UpdateMissingOrder verifies updates against deleted rows
// surface as not found rather than version conflicts.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_UpdateMissingOrder() {
	ctx := context.Background()

	workOrder := suite.createTestWorkOrder()
	uow := suite.factory.Create()
	err := uow.OrderRepository().Add(ctx, workOrder)
	suite.Require().NoError(err)

	err = suite.db.Exec("DELETE FROM orders WHERE id = ?", workOrder.ID().Bytes()).Error
	suite.Require().NoError(err)

	err = workOrder.SetServices([]string{"diagnostics"})
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, workOrder, workOrder.Version())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestUnitOfWork_ConversionWorkflow runs a full quote conversion inside one
// transaction and verifies both documents land atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConversionWorkflow() {
	ctx := context.Background()

	quote := suite.createTestQuote()
	part := suite.createTestPart("Timing belt", "60.00", "140.00")
	suite.Require().NoError(quote.AddPart(part))
	labor := suite.createTestLabor("Belt replacement", "95.00")
	suite.Require().NoError(quote.AddLabor(labor))

	initialUow := suite.factory.Create()
	err := initialUow.OrderRepository().Add(ctx, quote)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	loaded, err := uow.OrderRepository().Get(ctx, quote.ID())
	suite.Require().NoError(err)
	expectedVersion := loaded.Version()

	converter := services.NewQuoteConverter()
	workOrderID := kernel.NewUUID()
	workOrder, err := converter.Convert(loaded, workOrderID, services.LineItemSelection{})
	suite.Require().NoError(err)

	err = uow.OrderRepository().Update(ctx, loaded, expectedVersion)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, workOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedQuote, err := newUow.OrderRepository().Get(ctx, quote.ID())
	suite.Require().NoError(err)
	suite.Equal(order.QuoteConverted, retrievedQuote.Status())
	suite.Require().NotNil(retrievedQuote.LinkedWorkOrderRef())
	suite.Equal(workOrderID, *retrievedQuote.LinkedWorkOrderRef())
	suite.Empty(retrievedQuote.Parts())
	suite.Empty(retrievedQuote.Labor())

	retrievedWorkOrder, err := newUow.OrderRepository().Get(ctx, workOrderID)
	suite.Require().NoError(err)
	suite.Len(retrievedWorkOrder.Parts(), 1)
	suite.Len(retrievedWorkOrder.Labor(), 1)
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	quote := suite.createTestQuote()
	workOrder := suite.createTestWorkOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, quote)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, workOrder)
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().Get(ctx, quote.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, quote.ID())
	suite.Require().Error(err, "Quote should not exist after rollback")

	_, err = newUow.OrderRepository().Get(ctx, workOrder.ID())
	suite.Require().Error(err, "Work order should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := suite.createTestWorkOrder()
	order2 := suite.createTestWorkOrder()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	workOrder := suite.createTestWorkOrder()

	err := uow.OrderRepository().Add(ctx, workOrder)
	suite.Require().NoError(err)

	retrieved, err := uow.OrderRepository().Get(ctx, workOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(workOrder.ID(), retrieved.ID())

	newUow := suite.factory.Create()
	retrieved, err = newUow.OrderRepository().Get(ctx, workOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(workOrder.ID(), retrieved.ID())
}

// TestUnitOfWork_NotesGateway verifies the notes gateway distinguishes
// human-authored notes from system-generated ones.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_NotesGateway() {
	ctx := context.Background()

	workOrder := suite.createTestWorkOrder()
	uow := suite.factory.Create()
	err := uow.OrderRepository().Add(ctx, workOrder)
	suite.Require().NoError(err)

	has, err := uow.NotesGateway().HasNonSystemProgressNote(ctx, workOrder.ID())
	suite.Require().NoError(err)
	suite.False(has, "No notes recorded yet")

	systemNote := notesrepo.ProgressNoteDTO{
		ID:         uuid.New(),
		OrderID:    workOrder.ID().Bytes(),
		AuthorType: "system",
		Body:       "status changed to InspectionInProgress",
		CreatedAt:  time.Now().UTC(),
	}
	err = suite.db.Create(&systemNote).Error
	suite.Require().NoError(err)

	has, err = uow.NotesGateway().HasNonSystemProgressNote(ctx, workOrder.ID())
	suite.Require().NoError(err)
	suite.False(has, "System notes should not count")

	technicianNote := notesrepo.ProgressNoteDTO{
		ID:         uuid.New(),
		OrderID:    workOrder.ID().Bytes(),
		AuthorType: "technician",
		Body:       "front pads at 2mm, rotors scored",
		CreatedAt:  time.Now().UTC(),
	}
	err = suite.db.Create(&technicianNote).Error
	suite.Require().NoError(err)

	has, err = uow.NotesGateway().HasNonSystemProgressNote(ctx, workOrder.ID())
	suite.Require().NoError(err)
	suite.True(has, "Technician notes should count")
}

// TestUnitOfWork_GetAllQuotesInStatus verifies status-filtered quote listing
// ignores work orders and quotes in other states.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_GetAllQuotesInStatus() {
	ctx := context.Background()
	uow := suite.factory.Create()

	activeQuote := suite.createTestQuote()
	err := uow.OrderRepository().Add(ctx, activeQuote)
	suite.Require().NoError(err)

	workOrder := suite.createTestWorkOrder()
	err = uow.OrderRepository().Add(ctx, workOrder)
	suite.Require().NoError(err)

	quotes, err := uow.OrderRepository().GetAllQuotesInStatus(ctx, order.Quote)
	suite.Require().NoError(err)
	suite.Require().Len(quotes, 1)
	suite.Equal(activeQuote.ID(), quotes[0].ID())
}

// createTestQuote creates a valid quote for testing purposes.
func (suite *UnitOfWorkIntegrationTestSuite) createTestQuote() *order.Order {
	quote, err := order.NewQuote(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Front brake estimate", []string{"brakes"},
	)
	suite.Require().NoError(err)
	return quote
}

// createTestWorkOrder creates a valid work order for testing purposes.
func (suite *UnitOfWorkIntegrationTestSuite) createTestWorkOrder() *order.Order {
	workOrder, err := order.NewWorkOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Scheduled maintenance", []string{"maintenance"},
	)
	suite.Require().NoError(err)
	return workOrder
}

// createTestPart creates a valid part line item for testing purposes.
func (suite *UnitOfWorkIntegrationTestSuite) createTestPart(name, unitCost, unitPrice string) order.Part {
	cost, err := kernel.MoneyFromString(unitCost)
	suite.Require().NoError(err)
	price, err := kernel.MoneyFromString(unitPrice)
	suite.Require().NoError(err)

	part, err := order.NewPart(kernel.NewUUID(), name, 1, cost, price)
	suite.Require().NoError(err)
	return part
}

// createTestLabor creates a valid hourly labor line item for testing purposes.
func (suite *UnitOfWorkIntegrationTestSuite) createTestLabor(description, rate string) order.Labor {
	rateMoney, err := kernel.MoneyFromString(rate)
	suite.Require().NoError(err)

	labor, err := order.NewLabor(
		kernel.NewUUID(), description, order.BillingHourly,
		decimal.NewFromInt(2), rateMoney,
	)
	suite.Require().NoError(err)
	return labor
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
