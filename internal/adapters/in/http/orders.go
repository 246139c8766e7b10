package http

import (
	"net/http"

	"negotiation/internal/core/application/usecases/commands"
	"negotiation/internal/core/application/usecases/queries"
	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/domain/model/order"
	"negotiation/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetOrders handles GET /api/v1/orders - lists orders, newest first.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	var statuses []order.Status
	if params.Status != nil {
		for _, name := range *params.Status {
			status, err := order.ParseStatus(string(name))
			if err != nil {
				return s.fail(ctx, err)
			}
			statuses = append(statuses, status)
		}
	}

	query, err := queries.NewGetOrdersQuery(statuses, optionalID(params.SupplierId), optionalID(params.BuyerId))
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.h.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = toOrderSummary(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - opens a negotiation.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	deadlineDays := 0
	if body.DeadlineDays != nil {
		deadlineDays = *body.DeadlineDays
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.ID(body.SupplierId),
		kernel.ID(body.BuyerId),
		body.AllowDirectContact != nil && *body.AllowDirectContact,
		body.Negotiable == nil || *body.Negotiable,
		deadlineDays,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedId{Id: id.Int64()})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	query, err := queries.NewGetOrderQuery(kernel.ID(orderId))
	if err != nil {
		return s.fail(ctx, err)
	}

	detail, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetail(detail))
}

// CloseOrder handles POST /api/v1/orders/{orderId}/close.
func (s *Server) CloseOrder(ctx echo.Context, orderId servers.OrderId) error {
	cmd, err := commands.NewCloseOrderCommand(kernel.ID(orderId))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.CloseOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId servers.OrderId) error {
	cmd, err := commands.NewCancelOrderCommand(kernel.ID(orderId))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ExtendDeadline handles POST /api/v1/orders/{orderId}/deadline.
func (s *Server) ExtendDeadline(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.ExtendDeadlineJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewExtendDeadlineCommand(kernel.ID(orderId), body.Days)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.ExtendDeadline.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ChangeCartStatus handles PUT /api/v1/orders/{orderId}/cart.
func (s *Server) ChangeCartStatus(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.ChangeCartStatusJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	target, err := order.ParseCartStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeCartStatusCommand(kernel.ID(orderId), target)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.ChangeCartStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// PostProposal handles POST /api/v1/orders/{orderId}/proposals.
func (s *Server) PostProposal(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.PostProposalJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	var cmd commands.PostProposalCommand
	var err error
	switch body.Author {
	case servers.NewProposalAuthorBuyer:
		var action order.BuyerActionKind
		if action, err = order.ParseBuyerAction(string(*body.Action)); err != nil {
			return s.fail(ctx, err)
		}
		cmd, err = commands.NewPostBuyerActionCommand(kernel.ID(orderId), action, kernel.ID(body.UserId), deref(body.Note))
	default:
		cmd, err = commands.NewPostSupplierNoteCommand(kernel.ID(orderId), deref(body.Note), kernel.ID(body.UserId))
	}
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.h.PostProposal.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedId{Id: id.Int64()})
}

func optionalID(v *int64) *kernel.ID {
	if v == nil {
		return nil
	}
	id := kernel.ID(*v)
	return &id
}
