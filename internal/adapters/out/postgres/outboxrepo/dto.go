package outboxrepo

import (
	"encoding/json"
	"time"

	"negotiation/internal/core/domain/model/order"
	"negotiation/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Publish states of an outbox row.
const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusFailed     = "FAILED"
	StatusSent       = "SENT"
	StatusDead       = "DEAD"
)

const aggregateTypeOrder = "order"

// MessageDTO is one row of the outbox_events table.
type MessageDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	AggregateType string         `gorm:"type:varchar(32);not null"`
	AggregateID   string         `gorm:"type:varchar(64);not null;index"`
	EventName     string         `gorm:"type:varchar(64);not null"`
	Payload       datatypes.JSON `gorm:"type:jsonb;not null"`
	OccurredAt    time.Time      `gorm:"not null"`
	Status        string         `gorm:"type:varchar(16);not null;index"`
	Attempts      int            `gorm:"not null;default:0"`
	NextAttemptAt *time.Time
	LockedAt      *time.Time
	LockedBy      *string `gorm:"type:varchar(64)"`
	LastError     *string `gorm:"type:text"`
	ExternalID    *string `gorm:"type:varchar(128)"`
	PublishedAt   *time.Time
}

func (MessageDTO) TableName() string {
	return "outbox_events"
}

// statusChangedPayload is the wire form of order.StatusChanged.
type statusChangedPayload struct {
	EventID    string    `json:"eventId"`
	OrderID    int64     `json:"orderId"`
	SupplierID int64     `json:"supplierId"`
	BuyerID    int64     `json:"buyerId"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurredAt"`
}

// FromStatusChanged builds the pending outbox row for a status change.
func FromStatusChanged(event order.StatusChanged) (MessageDTO, error) {
	id, err := uuid.Parse(event.EventID.String())
	if err != nil {
		return MessageDTO{}, err
	}

	payload, err := json.Marshal(statusChangedPayload{
		EventID:    event.EventID.String(),
		OrderID:    event.OrderID.Int64(),
		SupplierID: event.SupplierID.Int64(),
		BuyerID:    event.BuyerID.Int64(),
		From:       event.From.String(),
		To:         event.To.String(),
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return MessageDTO{}, err
	}

	return MessageDTO{
		ID:            id,
		AggregateType: aggregateTypeOrder,
		AggregateID:   event.OrderID.String(),
		EventName:     event.EventName(),
		Payload:       datatypes.JSON(payload),
		OccurredAt:    event.OccurredAt,
		Status:        StatusPending,
	}, nil
}

func toMessage(dto MessageDTO) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:          dto.ID.String(),
		AggregateID: dto.AggregateID,
		EventName:   dto.EventName,
		Payload:     []byte(dto.Payload),
		OccurredAt:  dto.OccurredAt,
		Attempts:    dto.Attempts,
	}
}
