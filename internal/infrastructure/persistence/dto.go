package persistence

import (
	"time"

	"github.com/shopspring/decimal"

	"ahoy_market/internal/domain/entity"
	"ahoy_market/internal/domain/value"
)

// purchaseAttemptSchema maps a purchase_attempts row.
type purchaseAttemptSchema struct {
	ID           int64           `db:"id"`
	ItemID       int64           `db:"item_id"`
	ItemName     string          `db:"item_name"`
	Outcome      string          `db:"outcome"`
	Handle       string          `db:"handle"`
	Price        decimal.Decimal `db:"price"`
	Threshold    decimal.Decimal `db:"threshold"`
	Level        int32           `db:"level"`
	Confirmation string          `db:"confirmation"`
	Error        string          `db:"error"`
	AttemptedAt  time.Time       `db:"attempted_at"`
}

func fromOutcome(o entity.Outcome) purchaseAttemptSchema {
	s := purchaseAttemptSchema{
		ItemID:       int64(o.ItemID),
		ItemName:     o.Name,
		Outcome:      string(o.Kind),
		Handle:       o.Handle,
		Price:        o.Price,
		Threshold:    o.Threshold,
		Level:        int32(o.Level), //nolint:gosec // levels are small
		Confirmation: o.Confirmation,
		AttemptedAt:  o.FinishedAt,
	}

	if o.Err != nil {
		s.Error = o.Err.Error()
	}

	if s.AttemptedAt.IsZero() {
		s.AttemptedAt = time.Now()
	}

	return s
}

func (s purchaseAttemptSchema) toDomain() entity.PurchaseAttempt {
	return entity.PurchaseAttempt{
		ID:           s.ID,
		ItemID:       value.ItemID(s.ItemID), //nolint:gosec // stored from a uint32
		Name:         s.ItemName,
		Kind:         entity.OutcomeKind(s.Outcome),
		Handle:       s.Handle,
		Price:        s.Price,
		Threshold:    s.Threshold,
		Level:        uint32(s.Level), //nolint:gosec // stored from a uint32
		Confirmation: s.Confirmation,
		Error:        s.Error,
		AttemptedAt:  s.AttemptedAt,
	}
}
