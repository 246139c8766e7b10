// Package outboxrepo stores domain events next to the aggregates that raised
// them and hands them out to the relay for publication.
package outboxrepo

import (
	"context"
	"fmt"
	"time"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultMaxAttempts    = 20
	defaultInitialBackoff = 5 * time.Second
	defaultClaimTimeout   = 30 * time.Second
	maxBackoff            = 10 * time.Minute
)

// GormOutboxStore implements ports.OutboxStore on the outbox_events table.
//
// A message is due when it is PENDING, or FAILED with its retry time reached, or
// PROCESSING with a claim older than ClaimTimeout (the relay that claimed it
// died). Rows are claimed with SELECT ... FOR UPDATE SKIP LOCKED so concurrent
// relays never publish the same message twice in one round.
type GormOutboxStore struct {
	db    *gorm.DB
	clock kernel.Clock

	MaxAttempts    int
	InitialBackoff time.Duration
	ClaimTimeout   time.Duration
}

func NewGormOutboxStore(db *gorm.DB, clock kernel.Clock) *GormOutboxStore {
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	return &GormOutboxStore{
		db:             db,
		clock:          clock,
		MaxAttempts:    defaultMaxAttempts,
		InitialBackoff: defaultInitialBackoff,
		ClaimTimeout:   defaultClaimTimeout,
	}
}

// Add inserts pending messages. It runs on whatever connection or transaction
// the store was created with.
func (s *GormOutboxStore) Add(ctx context.Context, messages ...MessageDTO) error {
	if len(messages) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&messages).Error
}

func (s *GormOutboxStore) Claim(ctx context.Context, relayID string, limit int) ([]ports.OutboxMessage, error) {
	now := s.clock.Now()
	staleBefore := now.Add(-s.ClaimTimeout)

	var claimed []MessageDTO
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var due []MessageDTO
		if err := tx.
			Where(
				"(status IN ? AND (next_attempt_at IS NULL OR next_attempt_at <= ?)) OR (status = ? AND locked_at <= ?)",
				[]string{StatusPending, StatusFailed}, now, StatusProcessing, staleBefore,
			).
			Order("occurred_at ASC").
			Limit(limit).
			Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Find(&due).Error; err != nil {
			return err
		}

		for _, msg := range due {
			if s.MaxAttempts > 0 && msg.Attempts >= s.MaxAttempts {
				reason := fmt.Sprintf("max publish attempts exceeded (%d)", s.MaxAttempts)
				if err := tx.Model(&MessageDTO{}).Where("id = ?", msg.ID).Updates(map[string]any{
					"status":          StatusDead,
					"last_error":      reason,
					"next_attempt_at": nil,
					"locked_at":       nil,
					"locked_by":       nil,
				}).Error; err != nil {
					return err
				}
				continue
			}

			if err := tx.Model(&MessageDTO{}).Where("id = ?", msg.ID).Updates(map[string]any{
				"status":          StatusProcessing,
				"locked_at":       now,
				"locked_by":       relayID,
				"attempts":        gorm.Expr("attempts + 1"),
				"next_attempt_at": nil,
			}).Error; err != nil {
				return err
			}
			msg.Attempts++
			claimed = append(claimed, msg)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(claimed))
	for _, dto := range claimed {
		messages = append(messages, toMessage(dto))
	}
	return messages, nil
}

func (s *GormOutboxStore) MarkSent(ctx context.Context, id string, externalID string) error {
	now := s.clock.Now()
	return s.db.WithContext(ctx).Model(&MessageDTO{}).Where("id = ?", id).Updates(map[string]any{
		"status":       StatusSent,
		"published_at": now,
		"external_id":  externalID,
		"last_error":   nil,
		"locked_at":    nil,
		"locked_by":    nil,
	}).Error
}

func (s *GormOutboxStore) MarkFailed(ctx context.Context, id string, cause error) error {
	var msg MessageDTO
	if err := s.db.WithContext(ctx).Select("id", "attempts").First(&msg, "id = ?", id).Error; err != nil {
		return err
	}

	reason := cause.Error()
	if s.MaxAttempts > 0 && msg.Attempts >= s.MaxAttempts {
		return s.db.WithContext(ctx).Model(&MessageDTO{}).Where("id = ?", id).Updates(map[string]any{
			"status":          StatusDead,
			"last_error":      reason,
			"next_attempt_at": nil,
			"locked_at":       nil,
			"locked_by":       nil,
		}).Error
	}

	next := s.clock.Now().Add(s.backoff(msg.Attempts))
	return s.db.WithContext(ctx).Model(&MessageDTO{}).Where("id = ?", id).Updates(map[string]any{
		"status":          StatusFailed,
		"last_error":      reason,
		"next_attempt_at": next,
		"locked_at":       nil,
		"locked_by":       nil,
	}).Error
}

// backoff doubles InitialBackoff per previous attempt, capped at ten minutes.
func (s *GormOutboxStore) backoff(attempts int) time.Duration {
	backoff := s.InitialBackoff
	for i := 1; i < attempts; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
