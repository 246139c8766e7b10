package http

import (
	"errors"
	"net/http"

	"negotiation/internal/core/application/usecases/commands"
	"negotiation/internal/core/application/usecases/queries"
	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// AddItem handles POST /api/v1/orders/{orderId}/items.
func (s *Server) AddItem(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.AddItemJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	quantity, errQty := parseDecimal("quantity", body.Quantity)
	unitPrice, errPrice := parseDecimal("unitPrice", body.UnitPrice)
	discount, errDiscount := parseOptionalDecimal("discountPercent", body.DiscountPercent)
	extraData, errExtra := toBlob(body.ExtraData)
	if err := errors.Join(errQty, errPrice, errDiscount, errExtra); err != nil {
		return s.fail(ctx, err)
	}
	if discount == nil {
		zero := decimal.Zero
		discount = &zero
	}

	cmd, err := commands.NewAddItemCommand(
		kernel.ID(orderId),
		kernel.ID(body.ProductId),
		quantity,
		unitPrice,
		*discount,
		deref(body.Note),
		extraData,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.h.AddItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedId{Id: id.Int64()})
}

// UpdateItem handles PATCH /api/v1/orders/{orderId}/items/{itemId}. Only the
// fields present in the body change.
func (s *Server) UpdateItem(ctx echo.Context, orderId servers.OrderId, itemId servers.ItemId) error {
	var body servers.UpdateItemJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	var changes commands.ItemChanges
	var errQty, errPrice, errDiscount, errExtra error
	changes.Quantity, errQty = parseOptionalDecimal("quantity", body.Quantity)
	changes.UnitPrice, errPrice = parseOptionalDecimal("unitPrice", body.UnitPrice)
	changes.DiscountPercent, errDiscount = parseOptionalDecimal("discountPercent", body.DiscountPercent)
	changes.Note = body.Note
	if body.ExtraData != nil {
		var blob kernel.Blob
		blob, errExtra = toBlob(body.ExtraData)
		changes.ExtraData = &blob
	}
	if err := errors.Join(errQty, errPrice, errDiscount, errExtra); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateItemCommand(kernel.ID(orderId), kernel.ID(itemId), changes)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.UpdateItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RemoveItem handles DELETE /api/v1/orders/{orderId}/items/{itemId}.
func (s *Server) RemoveItem(ctx echo.Context, orderId servers.OrderId, itemId servers.ItemId) error {
	cmd, err := commands.NewRemoveItemCommand(kernel.ID(orderId), kernel.ID(itemId))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.RemoveItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AddShipment handles POST /api/v1/orders/{orderId}/items/{itemId}/shipments.
func (s *Server) AddShipment(ctx echo.Context, orderId servers.OrderId, itemId servers.ItemId) error {
	var body servers.AddShipmentJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	quantity, errQty := parseDecimal("quantity", body.Quantity)
	freight, errFreight := parseDecimal("freightValue", body.FreightValue)
	if err := errors.Join(errQty, errFreight); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddShipmentCommand(
		kernel.ID(orderId),
		kernel.ID(itemId),
		quantity,
		freight,
		deref(body.OriginAddress),
		deref(body.DestinationAddress),
		body.ScheduledDate,
		deref(body.Note),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.h.AddShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedId{Id: id.Int64()})
}

// UpdateShipment handles PATCH /api/v1/orders/{orderId}/items/{itemId}/shipments/{shipmentId}.
func (s *Server) UpdateShipment(
	ctx echo.Context,
	orderId servers.OrderId,
	itemId servers.ItemId,
	shipmentId servers.ShipmentId,
) error {
	var body servers.UpdateShipmentJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	freight, err := parseOptionalDecimal("freightValue", body.FreightValue)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateShipmentCommand(
		kernel.ID(orderId),
		kernel.ID(itemId),
		kernel.ID(shipmentId),
		commands.ShipmentChanges{
			FreightValue:       freight,
			OriginAddress:      body.OriginAddress,
			DestinationAddress: body.DestinationAddress,
			ScheduledDate:      body.ScheduledDate,
			Note:               body.Note,
		},
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.UpdateShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RemoveShipment handles DELETE /api/v1/orders/{orderId}/items/{itemId}/shipments/{shipmentId}.
func (s *Server) RemoveShipment(
	ctx echo.Context,
	orderId servers.OrderId,
	itemId servers.ItemId,
	shipmentId servers.ShipmentId,
) error {
	cmd, err := commands.NewRemoveShipmentCommand(kernel.ID(orderId), kernel.ID(itemId), kernel.ID(shipmentId))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.RemoveShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ExportOrderItems handles GET /api/v1/orders/{orderId}/items/export.
func (s *Server) ExportOrderItems(ctx echo.Context, orderId servers.OrderId) error {
	query, err := queries.NewExportOrderItemsQuery(kernel.ID(orderId))
	if err != nil {
		return s.fail(ctx, err)
	}

	export, err := s.h.ExportOrderItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+export.FileName)
	return ctx.Blob(http.StatusOK, queries.XLSXContentType, export.Content)
}
