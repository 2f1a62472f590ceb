package cmd

import (
	"farmsale/internal/adapters/out/document"
	"farmsale/internal/adapters/out/share"
	"farmsale/internal/adapters/out/sqlite"
	"farmsale/internal/core/application/usecases/commands"
	"farmsale/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// CompositionRoot wires the adapters into the use case handlers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory sqlite.GormUnitOfWorkFactory
	generator  *document.HTMLInvoiceGenerator
	share      *share.ExportShareGateway
}

// NewCompositionRoot builds the object graph for the given configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	generator, err := document.NewHTMLInvoiceGenerator(config.InvoiceOutputDir, document.Seller{
		Name:        config.SellerName,
		Address:     config.SellerAddress,
		Contact:     config.SellerContact,
		BankDetails: config.SellerBankDetails,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *sqlite.NewGormUnitOfWorkFactory(gormDB),
		generator:  generator,
		share:      share.NewExportShareGateway(config.InvoiceExportDir),
	}, nil
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return commands.NewDeleteCustomerCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateCreateSessionCommandHandler() commands.CreateSessionCommandHandler {
	return commands.NewCreateSessionCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateUpdateSessionCommandHandler() commands.UpdateSessionCommandHandler {
	return commands.NewUpdateSessionCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateDeleteSessionCommandHandler() commands.DeleteSessionCommandHandler {
	return commands.NewDeleteSessionCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateRecordWeighingCommandHandler() commands.RecordWeighingCommandHandler {
	return commands.NewRecordWeighingCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateDeleteWeighingCommandHandler() commands.DeleteWeighingCommandHandler {
	return commands.NewDeleteWeighingCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateMatchUnitCommandHandler() commands.MatchUnitCommandHandler {
	return commands.NewMatchUnitCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateUnmatchOrderCommandHandler() commands.UnmatchOrderCommandHandler {
	return commands.NewUnmatchOrderCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateInvoiceOrderCommandHandler() commands.InvoiceOrderCommandHandler {
	return commands.NewInvoiceOrderCommandHandler(c.createUoWFactory(), c.generator, c.share)
}

func (c *CompositionRoot) CreateSaveInvoiceSettingsCommandHandler() commands.SaveInvoiceSettingsCommandHandler {
	return commands.NewSaveInvoiceSettingsCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateGetSessionsQueryHandler() queries.GetSessionsQueryHandler {
	return queries.NewGetSessionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWeighedUnitsQueryHandler() queries.GetWeighedUnitsQueryHandler {
	return queries.NewGetWeighedUnitsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMatchCandidatesQueryHandler() queries.GetMatchCandidatesQueryHandler {
	return queries.NewGetMatchCandidatesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSessionSummaryQueryHandler() queries.GetSessionSummaryQueryHandler {
	return queries.NewGetSessionSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNextInvoiceNumberQueryHandler() queries.GetNextInvoiceNumberQueryHandler {
	return queries.NewGetNextInvoiceNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInvoiceSettingsQueryHandler() queries.GetInvoiceSettingsQueryHandler {
	return queries.NewGetInvoiceSettingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateBuildInvoiceQueryHandler() queries.BuildInvoiceQueryHandler {
	return queries.NewBuildInvoiceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// FuncUoWFactory adapts a closure to the commands.UoWFactory interface.
type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
