package cmd

import (
	"repairshop/internal/adapters/out/postgres"
	"repairshop/internal/adapters/out/taxpolicy"
	"repairshop/internal/core/application/usecases/commands"
	"repairshop/internal/core/application/usecases/queries"
	"repairshop/internal/core/ports"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	taxPolicy  ports.TaxPolicy
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	taxRate, err := decimal.NewFromString(config.TaxRate)
	if err != nil {
		return CompositionRoot{}, err
	}
	taxPolicy, err := taxpolicy.NewFixedRatePolicy(taxRate)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		taxPolicy:  taxPolicy,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeStatusCommandHandler() commands.ChangeStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAddPartCommandHandler() commands.AddPartCommandHandler {
	return commands.NewAddPartCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePartCommandHandler() commands.UpdatePartCommandHandler {
	return commands.NewUpdatePartCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemovePartCommandHandler() commands.RemovePartCommandHandler {
	return commands.NewRemovePartCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetPartFlagCommandHandler() commands.SetPartFlagCommandHandler {
	return commands.NewSetPartFlagCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateBulkAssignOrderNumberCommandHandler() commands.BulkAssignOrderNumberCommandHandler {
	return commands.NewBulkAssignOrderNumberCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddLaborCommandHandler() commands.AddLaborCommandHandler {
	return commands.NewAddLaborCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateLaborCommandHandler() commands.UpdateLaborCommandHandler {
	return commands.NewUpdateLaborCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveLaborCommandHandler() commands.RemoveLaborCommandHandler {
	return commands.NewRemoveLaborCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetServicesCommandHandler() commands.SetServicesCommandHandler {
	return commands.NewSetServicesCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConvertQuoteCommandHandler() commands.ConvertQuoteCommandHandler {
	return commands.NewConvertQuoteCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSplitWorkOrderCommandHandler() commands.SplitWorkOrderCommandHandler {
	return commands.NewSplitWorkOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateArchiveDrainedQuotesCommandHandler() commands.ArchiveDrainedQuotesCommandHandler {
	return commands.NewArchiveDrainedQuotesCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository(), c.taxPolicy)
}

func (c *CompositionRoot) CreateGetActiveWorkOrdersQueryHandler() queries.GetActiveWorkOrdersQueryHandler {
	return queries.NewGetActiveWorkOrdersQueryHandler(c.gormDB)
}

// TaxPolicy exposes the configured tax policy to adapters that price
// documents on the way out.
func (c *CompositionRoot) TaxPolicy() ports.TaxPolicy {
	return c.taxPolicy
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
