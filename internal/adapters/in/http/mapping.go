package http

import (
	"negotiation/internal/core/application/usecases/queries"
	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/generated/servers"
	"negotiation/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

func parseDecimal(paramName string, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return d, nil
}

func parseOptionalDecimal(paramName string, value *string) (*decimal.Decimal, error) {
	if value == nil {
		return nil, nil
	}
	d, err := parseDecimal(paramName, *value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func toBlob(doc *map[string]interface{}) (kernel.Blob, error) {
	if doc == nil {
		return kernel.Blob{}, nil
	}
	return kernel.BlobFromValue(*doc)
}

func fromBlob(blob kernel.Blob) *map[string]interface{} {
	if blob.IsEmpty() {
		return nil
	}
	doc := make(map[string]interface{})
	if err := blob.Decode(&doc); err != nil {
		return nil
	}
	return &doc
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toOrderSummary(o queries.GetOrdersQueryResponse) servers.OrderSummary {
	return servers.OrderSummary{
		Id:                  o.ID.Int64(),
		SupplierId:          o.SupplierID.Int64(),
		BuyerId:             o.BuyerID.Int64(),
		Status:              servers.OrderStatus(o.Status),
		CartStatus:          servers.CartStatus(o.CartStatus),
		InteractionDeadline: o.InteractionDeadline,
		ItemCount:           o.ItemCount,
		LastModified:        o.LastModified,
	}
}

func toOrderDetail(o queries.GetOrderQueryResponse) servers.OrderDetail {
	items := make([]servers.Item, len(o.Items))
	for i, item := range o.Items {
		shipments := make([]servers.Shipment, len(item.Shipments))
		for j, s := range item.Shipments {
			shipments[j] = servers.Shipment{
				Id:                 s.ID.Int64(),
				Quantity:           s.Quantity.String(),
				FreightValue:       s.FreightValue.String(),
				ScheduledDate:      s.ScheduledDate,
				TotalWeight:        nullDecimal(s.TotalWeight),
				TotalVolume:        nullDecimal(s.TotalVolume),
				OriginAddress:      s.OriginAddress,
				DestinationAddress: s.DestinationAddress,
				Note:               s.Note,
			}
		}

		items[i] = servers.Item{
			Id:              item.ID.Int64(),
			ProductId:       item.ProductID.Int64(),
			Quantity:        item.Quantity.String(),
			UnitPrice:       item.UnitPrice.String(),
			DiscountPercent: item.DiscountPercent.String(),
			Total:           item.Total.String(),
			DiscountAmount:  item.DiscountAmount.String(),
			Final:           item.Final.String(),
			Note:            item.Note,
			ExtraData:       fromBlob(item.ExtraData),
			Shipments:       shipments,
		}
	}

	proposals := make([]servers.Proposal, len(o.Proposals))
	for i, p := range o.Proposals {
		proposal := servers.Proposal{
			Id:        p.ID.Int64(),
			Author:    servers.ProposalAuthor(p.Author),
			Note:      p.Note,
			CreatedAt: p.CreatedAt,
		}
		if p.BuyerAction != nil {
			action := servers.ProposalAction(*p.BuyerAction)
			proposal.Action = &action
		}
		if p.BuyerUserID != nil {
			id := p.BuyerUserID.Int64()
			proposal.BuyerUserId = &id
		}
		if p.SupplierUserID != nil {
			id := p.SupplierUserID.Int64()
			proposal.SupplierUserId = &id
		}
		proposals[i] = proposal
	}

	return servers.OrderDetail{
		Id:                  o.ID.Int64(),
		SupplierId:          o.SupplierID.Int64(),
		BuyerId:             o.BuyerID.Int64(),
		Status:              servers.OrderStatus(o.Status),
		CartStatus:          servers.CartStatus(o.CartStatus),
		AllowDirectContact:  o.AllowDirectContact,
		Negotiable:          o.Negotiable,
		InteractionDeadline: o.InteractionDeadline,
		CreatedAt:           o.CreatedAt,
		LastModified:        o.LastModified,
		ItemCount:           o.ItemCount,
		Totals:              fromBlob(o.Totals),
		Items:               items,
		Proposals:           proposals,
	}
}

func nullDecimal(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.String()
	return &s
}
