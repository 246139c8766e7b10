package orderrepo

import (
	"time"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	authorBuyer    = "buyer"
	authorSupplier = "supplier"
)

// OrderDTO represents the database schema for order aggregates.
// Child rows are stored in order_items, order_item_shipments and order_proposals.
type OrderDTO struct {
	ID                  int64          `gorm:"primaryKey;autoIncrement:false"`
	SupplierID          int64          `gorm:"not null;index"`
	BuyerID             int64          `gorm:"not null;index"`
	Status              string         `gorm:"type:varchar(32);not null;index:idx_orders_status_deadline,priority:1"`
	CartStatus          string         `gorm:"type:varchar(16);not null"`
	AllowDirectContact  bool           `gorm:"not null"`
	Negotiable          bool           `gorm:"not null"`
	InteractionDeadline time.Time      `gorm:"not null;index:idx_orders_status_deadline,priority:2"`
	ItemCount           int            `gorm:"not null"`
	Totals              datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt           time.Time      `gorm:"not null;autoCreateTime:false"`
	LastModified        time.Time      `gorm:"not null"`

	Items     []ItemDTO     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Proposals []ProposalDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO stores an order line. Derived amounts are persisted for read models
// and reports but recomputed when the aggregate is restored.
type ItemDTO struct {
	ID              int64           `gorm:"primaryKey;autoIncrement:false"`
	OrderID         int64           `gorm:"not null;index"`
	ProductID       int64           `gorm:"not null;index"`
	Position        int             `gorm:"not null"`
	Quantity        decimal.Decimal `gorm:"type:numeric;not null"`
	UnitPrice       decimal.Decimal `gorm:"type:numeric;not null"`
	DiscountPercent decimal.Decimal `gorm:"type:numeric;not null"`
	Total           decimal.Decimal `gorm:"type:numeric;not null"`
	DiscountAmount  decimal.Decimal `gorm:"type:numeric;not null"`
	FinalValue      decimal.Decimal `gorm:"type:numeric;not null"`
	Note            string          `gorm:"type:text;not null;default:''"`
	ExtraData       datatypes.JSON  `gorm:"type:jsonb"`

	Shipments []ShipmentDTO `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

type ShipmentDTO struct {
	ID                 int64               `gorm:"primaryKey;autoIncrement:false"`
	ItemID             int64               `gorm:"not null;index"`
	Quantity           decimal.Decimal     `gorm:"type:numeric;not null"`
	FreightValue       decimal.Decimal     `gorm:"type:numeric;not null"`
	ScheduledDate      *time.Time
	TotalWeight        decimal.NullDecimal `gorm:"type:numeric"`
	TotalVolume        decimal.NullDecimal `gorm:"type:numeric"`
	OriginAddress      string              `gorm:"type:text;not null;default:''"`
	DestinationAddress string              `gorm:"type:text;not null;default:''"`
	Note               string              `gorm:"type:text;not null;default:''"`
	ExtraData          datatypes.JSON      `gorm:"type:jsonb"`
}

func (ShipmentDTO) TableName() string {
	return "order_item_shipments"
}

// ProposalDTO stores one entry of the negotiation log. Exactly one of the
// author column groups is filled, as told by Author.
type ProposalDTO struct {
	ID             int64     `gorm:"primaryKey;autoIncrement:false"`
	OrderID        int64     `gorm:"not null;index"`
	Author         string    `gorm:"type:varchar(16);not null"`
	BuyerAction    *string   `gorm:"type:varchar(16)"`
	BuyerUserID    *int64
	SupplierUserID *int64
	Note           string    `gorm:"type:text;not null;default:''"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime:false"`
}

func (ProposalDTO) TableName() string {
	return "order_proposals"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for pos, item := range items {
		itemDTOs = append(itemDTOs, itemFromDomain(item, pos))
	}

	proposals := aggregate.Proposals()
	proposalDTOs := make([]ProposalDTO, 0, len(proposals))
	for _, p := range proposals {
		proposalDTOs = append(proposalDTOs, proposalFromDomain(p))
	}

	return OrderDTO{
		ID:                  aggregate.ID().Int64(),
		SupplierID:          aggregate.SupplierID().Int64(),
		BuyerID:             aggregate.BuyerID().Int64(),
		Status:              aggregate.Status().String(),
		CartStatus:          aggregate.CartStatus().String(),
		AllowDirectContact:  aggregate.AllowDirectContact(),
		Negotiable:          aggregate.Negotiable(),
		InteractionDeadline: aggregate.InteractionDeadline(),
		ItemCount:           aggregate.ItemCount(),
		Totals:              datatypes.JSON(aggregate.Totals().Bytes()),
		CreatedAt:           aggregate.CreatedAt(),
		LastModified:        aggregate.LastModified(),
		Items:               itemDTOs,
		Proposals:           proposalDTOs,
	}
}

func itemFromDomain(item *order.Item, position int) ItemDTO {
	shipments := item.Shipments()
	shipmentDTOs := make([]ShipmentDTO, 0, len(shipments))
	for _, s := range shipments {
		shipmentDTOs = append(shipmentDTOs, ShipmentDTO{
			ID:                 s.ID().Int64(),
			ItemID:             item.ID().Int64(),
			Quantity:           s.Quantity(),
			FreightValue:       s.FreightValue(),
			ScheduledDate:      s.ScheduledDate(),
			TotalWeight:        nullDecimal(s.TotalWeight()),
			TotalVolume:        nullDecimal(s.TotalVolume()),
			OriginAddress:      s.OriginAddress(),
			DestinationAddress: s.DestinationAddress(),
			Note:               s.Note(),
			ExtraData:          datatypes.JSON(s.ExtraData().Bytes()),
		})
	}

	return ItemDTO{
		ID:              item.ID().Int64(),
		OrderID:         item.OrderID().Int64(),
		ProductID:       item.ProductID().Int64(),
		Position:        position,
		Quantity:        item.Quantity(),
		UnitPrice:       item.UnitPrice(),
		DiscountPercent: item.DiscountPercent(),
		Total:           item.Total(),
		DiscountAmount:  item.DiscountAmount(),
		FinalValue:      item.Final(),
		Note:            item.Note(),
		ExtraData:       datatypes.JSON(item.ExtraData().Bytes()),
		Shipments:       shipmentDTOs,
	}
}

func proposalFromDomain(p *order.Proposal) ProposalDTO {
	dto := ProposalDTO{
		ID:        p.ID().Int64(),
		OrderID:   p.OrderID().Int64(),
		Note:      p.Note(),
		CreatedAt: p.CreatedAt(),
	}

	switch a := p.Author().(type) {
	case order.BuyerAction:
		action := a.Action.String()
		userID := a.BuyerUserID.Int64()
		dto.Author = authorBuyer
		dto.BuyerAction = &action
		dto.BuyerUserID = &userID
	case order.SupplierNote:
		userID := a.SupplierUserID.Int64()
		dto.Author = authorSupplier
		dto.SupplierUserID = &userID
	}

	return dto
}

func toDomain(dto OrderDTO, opts ...order.Option) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	cartStatus, err := order.ParseCartStatus(dto.CartStatus)
	if err != nil {
		return nil, err
	}
	totals, err := kernel.NewBlob(dto.Totals)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	proposals := make([]*order.Proposal, 0, len(dto.Proposals))
	for _, proposalDTO := range dto.Proposals {
		p, proposalErr := proposalToDomain(proposalDTO)
		if proposalErr != nil {
			return nil, proposalErr
		}
		proposals = append(proposals, p)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                  kernel.ID(dto.ID),
		SupplierID:          kernel.ID(dto.SupplierID),
		BuyerID:             kernel.ID(dto.BuyerID),
		Status:              status,
		CartStatus:          cartStatus,
		AllowDirectContact:  dto.AllowDirectContact,
		Negotiable:          dto.Negotiable,
		InteractionDeadline: dto.InteractionDeadline.UTC(),
		CreatedAt:           dto.CreatedAt.UTC(),
		LastModified:        dto.LastModified.UTC(),
		Totals:              totals,
		Items:               items,
		Proposals:           proposals,
	}, opts...)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	extraData, err := kernel.NewBlob(dto.ExtraData)
	if err != nil {
		return nil, err
	}

	shipments := make([]*order.Shipment, 0, len(dto.Shipments))
	for _, s := range dto.Shipments {
		shipmentExtra, blobErr := kernel.NewBlob(s.ExtraData)
		if blobErr != nil {
			return nil, blobErr
		}

		var scheduled *time.Time
		if s.ScheduledDate != nil {
			utc := s.ScheduledDate.UTC()
			scheduled = &utc
		}

		shipment, shipmentErr := order.RestoreShipment(
			kernel.ID(s.ID),
			kernel.ID(s.ItemID),
			s.Quantity,
			s.FreightValue,
			s.OriginAddress,
			s.DestinationAddress,
			order.ShipmentState{
				ScheduledDate: scheduled,
				TotalWeight:   decimalPtr(s.TotalWeight),
				TotalVolume:   decimalPtr(s.TotalVolume),
				Note:          s.Note,
				ExtraData:     shipmentExtra,
			},
		)
		if shipmentErr != nil {
			return nil, shipmentErr
		}
		shipments = append(shipments, shipment)
	}

	return order.RestoreItem(
		kernel.ID(dto.ID),
		kernel.ID(dto.OrderID),
		kernel.ID(dto.ProductID),
		dto.Quantity,
		dto.UnitPrice,
		dto.DiscountPercent,
		dto.Note,
		extraData,
		shipments,
	)
}

func proposalToDomain(dto ProposalDTO) (*order.Proposal, error) {
	var author order.Authorship

	switch dto.Author {
	case authorBuyer:
		var action order.BuyerActionKind
		if dto.BuyerAction != nil {
			parsed, err := order.ParseBuyerAction(*dto.BuyerAction)
			if err != nil {
				return nil, err
			}
			action = parsed
		}
		var userID kernel.ID
		if dto.BuyerUserID != nil {
			userID = kernel.ID(*dto.BuyerUserID)
		}
		author = order.BuyerAction{Action: action, BuyerUserID: userID, Note: dto.Note}
	case authorSupplier:
		var userID kernel.ID
		if dto.SupplierUserID != nil {
			userID = kernel.ID(*dto.SupplierUserID)
		}
		author = order.SupplierNote{Note: dto.Note, SupplierUserID: userID}
	}

	return order.RestoreProposal(kernel.ID(dto.ID), kernel.ID(dto.OrderID), author, dto.CreatedAt.UTC())
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
