package cmd

import (
	httpin "negotiation/internal/adapters/in/http"
	"negotiation/internal/adapters/out/postgres"
	"negotiation/internal/adapters/out/postgres/outboxrepo"
	"negotiation/internal/adapters/out/postgres/productrepo"
	"negotiation/internal/core/application/usecases/commands"
	"negotiation/internal/core/application/usecases/queries"
	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/ports"
	"negotiation/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	logger     *logrus.Logger
	clock      kernel.Clock
	uowFactory *postgres.GormUnitOfWorkFactory
	ids        ports.IDGenerator
	catalog    ports.ProductCatalog
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *logrus.Logger) CompositionRoot {
	clock := kernel.SystemClock{}
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		logger:     logger,
		clock:      clock,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB).WithClock(clock),
		ids:        postgres.NewSequenceIDGenerator(gormDB),
		catalog:    productrepo.NewGormProductCatalog(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.ids, c.clock)
	return &h
}

func (c *CompositionRoot) CreateAddItemCommandHandler() *commands.AddItemCommandHandler {
	h := commands.NewAddItemCommandHandler(c.orderUoWFactory(), c.ids)
	return &h
}

func (c *CompositionRoot) CreateUpdateItemCommandHandler() *commands.UpdateItemCommandHandler {
	h := commands.NewUpdateItemCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() *commands.RemoveItemCommandHandler {
	h := commands.NewRemoveItemCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateAddShipmentCommandHandler() *commands.AddShipmentCommandHandler {
	h := commands.NewAddShipmentCommandHandler(c.orderUoWFactory(), c.ids, c.catalog, c.clock)
	return &h
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() *commands.UpdateShipmentCommandHandler {
	h := commands.NewUpdateShipmentCommandHandler(c.orderUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateRemoveShipmentCommandHandler() *commands.RemoveShipmentCommandHandler {
	h := commands.NewRemoveShipmentCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreatePostProposalCommandHandler() *commands.PostProposalCommandHandler {
	h := commands.NewPostProposalCommandHandler(c.orderUoWFactory(), c.ids)
	return &h
}

func (c *CompositionRoot) CreateCloseOrderCommandHandler() *commands.CloseOrderCommandHandler {
	h := commands.NewCloseOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() *commands.CancelOrderCommandHandler {
	h := commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateExtendDeadlineCommandHandler() *commands.ExtendDeadlineCommandHandler {
	h := commands.NewExtendDeadlineCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateChangeCartStatusCommandHandler() *commands.ChangeCartStatusCommandHandler {
	h := commands.NewChangeCartStatusCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCancelExpiredOrdersCommandHandler() *commands.CancelExpiredOrdersCommandHandler {
	h := commands.NewCancelExpiredOrdersCommandHandler(c.orderUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateExportOrderItemsQueryHandler() queries.ExportOrderItemsQueryHandler {
	return queries.NewExportOrderItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		AddItem:          c.CreateAddItemCommandHandler(),
		UpdateItem:       c.CreateUpdateItemCommandHandler(),
		RemoveItem:       c.CreateRemoveItemCommandHandler(),
		AddShipment:      c.CreateAddShipmentCommandHandler(),
		UpdateShipment:   c.CreateUpdateShipmentCommandHandler(),
		RemoveShipment:   c.CreateRemoveShipmentCommandHandler(),
		PostProposal:     c.CreatePostProposalCommandHandler(),
		CloseOrder:       c.CreateCloseOrderCommandHandler(),
		CancelOrder:      c.CreateCancelOrderCommandHandler(),
		ExtendDeadline:   c.CreateExtendDeadlineCommandHandler(),
		ChangeCartStatus: c.CreateChangeCartStatusCommandHandler(),
		GetOrder:         c.CreateGetOrderQueryHandler(),
		GetOrders:        c.CreateGetOrdersQueryHandler(),
		ExportOrderItems: c.CreateExportOrderItemsQueryHandler(),
	}, c.logger)
	return httpin.NewRouter(server)
}

// CreateJobManager wires the timeout sweep and the outbox relay. relayID
// identifies this replica in claimed outbox rows.
func (c *CompositionRoot) CreateJobManager(
	publisher ports.NotificationPublisher,
	locker jobs.Locker,
	relayID string,
) *jobs.JobManager {
	timeoutJob := jobs.NewOrderTimeoutJob(
		c.CreateCancelExpiredOrdersCommandHandler(),
		locker,
		c.configs.TimeoutSweepSchedule,
		commands.DefaultExpiredBatchSize,
		c.logger,
	)
	relayJob := jobs.NewOutboxRelayJob(
		outboxrepo.NewGormOutboxStore(c.gormDB, c.clock),
		publisher,
		locker,
		relayID,
		c.configs.OutboxRelaySchedule,
		c.logger,
	)
	return jobs.NewJobManager(timeoutJob, relayJob)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
