package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	api "negotiation/internal/adapters/in/http"
	"negotiation/internal/core/application/usecases/commands"
	"negotiation/internal/core/application/usecases/queries"
	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/domain/model/order"
	"negotiation/internal/generated/servers"
	"negotiation/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockResultHandler[C, R any] struct{ mock.Mock }

func (m *mockResultHandler[C, R]) Handle(ctx context.Context, cmd C) (R, error) {
	args := m.Called(ctx, cmd)
	r, _ := args.Get(0).(R)
	return r, args.Error(1)
}

type mockCommandHandler[C any] struct{ mock.Mock }

func (m *mockCommandHandler[C]) Handle(ctx context.Context, cmd C) error {
	return m.Called(ctx, cmd).Error(0)
}

type fixture struct {
	e *echo.Echo

	createOrder  *mockResultHandler[commands.CreateOrderCommand, kernel.ID]
	addItem      *mockResultHandler[commands.AddItemCommand, kernel.ID]
	updateItem   *mockCommandHandler[commands.UpdateItemCommand]
	updateShip   *mockCommandHandler[commands.UpdateShipmentCommand]
	removeShip   *mockCommandHandler[commands.RemoveShipmentCommand]
	postProposal *mockResultHandler[commands.PostProposalCommand, kernel.ID]
	closeOrder   *mockCommandHandler[commands.CloseOrderCommand]
	changeCart   *mockCommandHandler[commands.ChangeCartStatusCommand]
	getOrder     *mockResultHandler[queries.GetOrderQuery, queries.GetOrderQueryResponse]
	getOrders    *mockResultHandler[queries.GetOrdersQuery, []queries.GetOrdersQueryResponse]
	export       *mockResultHandler[queries.ExportOrderItemsQuery, queries.ExportOrderItemsQueryResponse]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		createOrder:  new(mockResultHandler[commands.CreateOrderCommand, kernel.ID]),
		addItem:      new(mockResultHandler[commands.AddItemCommand, kernel.ID]),
		updateItem:   new(mockCommandHandler[commands.UpdateItemCommand]),
		updateShip:   new(mockCommandHandler[commands.UpdateShipmentCommand]),
		removeShip:   new(mockCommandHandler[commands.RemoveShipmentCommand]),
		postProposal: new(mockResultHandler[commands.PostProposalCommand, kernel.ID]),
		closeOrder:   new(mockCommandHandler[commands.CloseOrderCommand]),
		changeCart:   new(mockCommandHandler[commands.ChangeCartStatusCommand]),
		getOrder:     new(mockResultHandler[queries.GetOrderQuery, queries.GetOrderQueryResponse]),
		getOrders:    new(mockResultHandler[queries.GetOrdersQuery, []queries.GetOrdersQueryResponse]),
		export:       new(mockResultHandler[queries.ExportOrderItemsQuery, queries.ExportOrderItemsQueryResponse]),
	}

	logger, _ := logtest.NewNullLogger()
	server := api.NewServer(api.Handlers{
		CreateOrder:      f.createOrder,
		AddItem:          f.addItem,
		UpdateItem:       f.updateItem,
		UpdateShipment:   f.updateShip,
		RemoveShipment:   f.removeShip,
		PostProposal:     f.postProposal,
		CloseOrder:       f.closeOrder,
		ChangeCartStatus: f.changeCart,
		GetOrder:         f.getOrder,
		GetOrders:        f.getOrders,
		ExportOrderItems: f.export,
	}, logger)

	e, err := api.NewRouter(server)
	require.NoError(t, err)
	f.e = e
	return f
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateOrder(t *testing.T) {
	t.Run("should create and return the id", func(t *testing.T) {
		f := newFixture(t)
		f.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
			return cmd.SupplierID() == 7 && cmd.BuyerID() == 8 && cmd.DeadlineDays() == 3 &&
				!cmd.AllowDirectContact() && cmd.Negotiable()
		})).Return(kernel.ID(100), nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders", `{"supplierId":7,"buyerId":8,"deadlineDays":3}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":100}`, rec.Body.String())
		f.createOrder.AssertExpectations(t)
	})

	t.Run("should reject an invalid body without calling the handler", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/orders", `{"supplierId":0,"buyerId":8}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
		f.createOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should hide internal errors", func(t *testing.T) {
		f := newFixture(t)
		f.createOrder.On("Handle", mock.Anything, mock.Anything).
			Return(kernel.ID(0), errors.New("pq: connection refused")).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders", `{"supplierId":7,"buyerId":8}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", decodeError(t, rec).Message)
	})
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", errs.NewObjectNotFoundError("orderID", 5), http.StatusNotFound},
		{"invalid state", errs.NewStateIsInvalidError("cannot close an order without items"), http.StatusConflict},
		{"stale version", errs.NewVersionIsInvalidError("order"), http.StatusConflict},
		{"invalid argument", errs.NewValueIsRequiredError("note"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.closeOrder.On("Handle", mock.Anything, mock.Anything).Return(tt.err).Once()

			rec := f.do(http.MethodPost, "/api/v1/orders/5/close", "")

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.err.Error(), decodeError(t, rec).Message)
		})
	}
}

func TestAddItem(t *testing.T) {
	t.Run("should parse decimals and extra data", func(t *testing.T) {
		f := newFixture(t)
		f.addItem.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AddItemCommand) bool {
			return cmd.OrderID() == 5 && cmd.ProductID() == 500 &&
				cmd.Quantity().Equal(decimal.RequireFromString("2.5")) &&
				cmd.DiscountPercent().IsZero() &&
				string(cmd.ExtraData().Bytes()) == `{"color":"red"}`
		})).Return(kernel.ID(11), nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/5/items",
			`{"productId":500,"quantity":"2.5","unitPrice":"10.00","extraData":{"color":"red"}}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":11}`, rec.Body.String())
		f.addItem.AssertExpectations(t)
	})

	t.Run("should reject a malformed amount", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/orders/5/items", `{"productId":500,"quantity":"two","unitPrice":"10"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "quantity")
	})

	t.Run("should reject a malformed path id", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/orders/abc/items", `{"productId":500,"quantity":"1","unitPrice":"1"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateItem_OnlyPresentFieldsChange(t *testing.T) {
	f := newFixture(t)
	f.updateItem.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateItemCommand) bool {
		c := cmd.Changes()
		return cmd.ItemID() == 11 && c.Note != nil && *c.Note == "urgent" &&
			c.Quantity == nil && c.UnitPrice == nil && c.DiscountPercent == nil && c.ExtraData == nil
	})).Return(nil).Once()

	rec := f.do(http.MethodPatch, "/api/v1/orders/5/items/11", `{"note":"urgent"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	f.updateItem.AssertExpectations(t)
}

func TestPostProposal(t *testing.T) {
	t.Run("buyer action", func(t *testing.T) {
		f := newFixture(t)
		f.postProposal.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.PostProposalCommand) bool {
			action, ok := cmd.Author().(order.BuyerAction)
			return ok && action.Action == order.Counter && action.BuyerUserID == 88
		})).Return(kernel.ID(30), nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/5/proposals", `{"author":"buyer","action":"Counter","userId":88}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		f.postProposal.AssertExpectations(t)
	})

	t.Run("buyer without action", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/orders/5/proposals", `{"author":"buyer","userId":88}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("supplier note without text", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/orders/5/proposals", `{"author":"supplier","userId":77}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.postProposal.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestChangeCartStatus(t *testing.T) {
	f := newFixture(t)
	f.changeCart.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ChangeCartStatusCommand) bool {
		return cmd.Target() == order.CartFinalized
	})).Return(nil).Once()

	rec := f.do(http.MethodPut, "/api/v1/orders/5/cart", `{"status":"Finalized"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(http.MethodPut, "/api/v1/orders/5/cart", `{"status":"Gone"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.changeCart.AssertExpectations(t)
}

func TestGetOrders_Filters(t *testing.T) {
	f := newFixture(t)
	deadline := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)
	f.getOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrdersQuery) bool {
		return assert.ObjectsAreEqual([]string{"Negotiating", "Closed"}, q.StatusNames()) &&
			q.SupplierID() != nil && *q.SupplierID() == 7 && q.BuyerID() == nil
	})).Return([]queries.GetOrdersQueryResponse{{
		ID: 1, SupplierID: 7, BuyerID: 8, Status: "Negotiating", CartStatus: "Open",
		InteractionDeadline: deadline, ItemCount: 2, LastModified: deadline,
	}}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/orders?status=Negotiating&status=Closed&supplierId=7", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got []servers.OrderSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, servers.OrderStatusNegotiating, got[0].Status)
	assert.Equal(t, 2, got[0].ItemCount)
}

func TestGetOrder_Detail(t *testing.T) {
	f := newFixture(t)
	weight := decimal.NewNullDecimal(decimal.RequireFromString("36"))
	action := "Accept"
	buyer := kernel.ID(88)
	totals, err := kernel.NewBlob([]byte(`{"grandTotal":"140"}`))
	require.NoError(t, err)

	f.getOrder.On("Handle", mock.Anything, mock.Anything).Return(queries.GetOrderQueryResponse{
		ID: 5, SupplierID: 7, BuyerID: 8, Status: "Negotiating", CartStatus: "Open",
		Totals: totals,
		Items: []queries.OrderItemView{{
			ID: 10, ProductID: 500, Quantity: decimal.RequireFromString("3"),
			Final: decimal.RequireFromString("100"),
			Shipments: []queries.ShipmentView{{ID: 20, TotalWeight: weight}},
		}},
		Proposals: []queries.ProposalView{{ID: 30, Author: "buyer", BuyerAction: &action, BuyerUserID: &buyer}},
	}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/orders/5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got servers.OrderDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "100", got.Items[0].Final)
	require.NotNil(t, got.Items[0].Shipments[0].TotalWeight)
	assert.Equal(t, "36", *got.Items[0].Shipments[0].TotalWeight)
	assert.Nil(t, got.Items[0].Shipments[0].TotalVolume)
	require.NotNil(t, got.Totals)
	assert.Equal(t, "140", (*got.Totals)["grandTotal"])
	assert.Equal(t, servers.ProposalActionAccept, *got.Proposals[0].Action)
	assert.Equal(t, int64(88), *got.Proposals[0].BuyerUserId)
}

func TestExportOrderItems(t *testing.T) {
	f := newFixture(t)
	f.export.On("Handle", mock.Anything, mock.Anything).Return(queries.ExportOrderItemsQueryResponse{
		FileName: "order-5-items.xlsx",
		Content:  []byte("PK"),
	}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/orders/5/items/export", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, queries.XLSXContentType, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "attachment; filename=order-5-items.xlsx", rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "PK", rec.Body.String())
}

func TestHealthAndSwagger(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order negotiation")
}

func TestShipmentChanges(t *testing.T) {
	t.Run("should pass only the present fields", func(t *testing.T) {
		f := newFixture(t)
		f.updateShip.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateShipmentCommand) bool {
			c := cmd.Changes()
			return cmd.OrderID() == 100 && cmd.ItemID() == 10 && cmd.ShipmentID() == 21 &&
				c.FreightValue != nil && c.FreightValue.Equal(decimal.RequireFromString("15.5")) &&
				c.OriginAddress == nil && c.DestinationAddress != nil && *c.DestinationAddress == "Silo 3" &&
				c.ScheduledDate == nil && c.Note == nil
		})).Return(nil).Once()

		rec := f.do(http.MethodPatch, "/api/v1/orders/100/items/10/shipments/21",
			`{"freightValue":"15.5","destinationAddress":"Silo 3"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		f.updateShip.AssertExpectations(t)
	})

	t.Run("should reject an empty change set", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPatch, "/api/v1/orders/100/items/10/shipments/21", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.updateShip.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should map a finished negotiation to conflict", func(t *testing.T) {
		f := newFixture(t)
		f.removeShip.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RemoveShipmentCommand) bool {
			return cmd.OrderID() == 100 && cmd.ItemID() == 10 && cmd.ShipmentID() == 21
		})).Return(errs.NewStateIsInvalidError("cannot edit items of an order not in negotiation")).Once()

		rec := f.do(http.MethodDelete, "/api/v1/orders/100/items/10/shipments/21", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		f.removeShip.AssertExpectations(t)
	})

	t.Run("should remove a shipment", func(t *testing.T) {
		f := newFixture(t)
		f.removeShip.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

		rec := f.do(http.MethodDelete, "/api/v1/orders/100/items/10/shipments/21", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		f.removeShip.AssertExpectations(t)
	})
}
