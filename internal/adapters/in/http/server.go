package http

import (
	"context"

	"negotiation/internal/core/application/usecases/commands"
	"negotiation/internal/core/application/usecases/queries"
	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/generated/servers"

	"github.com/sirupsen/logrus"
)

// CommandHandler is satisfied by the command handlers that return nothing but an error.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler is satisfied by the command and query handlers that return a value.
type ResultHandler[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	CreateOrder      ResultHandler[commands.CreateOrderCommand, kernel.ID]
	AddItem          ResultHandler[commands.AddItemCommand, kernel.ID]
	UpdateItem       CommandHandler[commands.UpdateItemCommand]
	RemoveItem       CommandHandler[commands.RemoveItemCommand]
	AddShipment      ResultHandler[commands.AddShipmentCommand, kernel.ID]
	UpdateShipment   CommandHandler[commands.UpdateShipmentCommand]
	RemoveShipment   CommandHandler[commands.RemoveShipmentCommand]
	PostProposal     ResultHandler[commands.PostProposalCommand, kernel.ID]
	CloseOrder       CommandHandler[commands.CloseOrderCommand]
	CancelOrder      CommandHandler[commands.CancelOrderCommand]
	ExtendDeadline   CommandHandler[commands.ExtendDeadlineCommand]
	ChangeCartStatus CommandHandler[commands.ChangeCartStatusCommand]

	GetOrder         ResultHandler[queries.GetOrderQuery, queries.GetOrderQueryResponse]
	GetOrders        ResultHandler[queries.GetOrdersQuery, []queries.GetOrdersQueryResponse]
	ExportOrderItems ResultHandler[queries.ExportOrderItemsQuery, queries.ExportOrderItemsQueryResponse]
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *logrus.Entry
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger *logrus.Logger) *Server {
	return &Server{
		h:      h,
		logger: logger.WithField("component", "http"),
	}
}
