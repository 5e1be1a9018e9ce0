package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"ahoy_market/internal/domain"
	"ahoy_market/internal/domain/entity"
	"ahoy_market/pkg/errcodes"
	"ahoy_market/pkg/lox"
)

const maxListLimit = 500

// PurchaseRepository journals buy attempts.
type PurchaseRepository struct {
	db *sqlx.DB
}

func NewPurchaseRepository(db *sqlx.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

func (r *PurchaseRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.JournalUnavailable, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.JournalUnavailable, "failed to commit")
	}

	return nil
}

// Save inserts one attempt.
func (r *PurchaseRepository) Save(ctx context.Context, outcome entity.Outcome) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO purchase_attempts (
				item_id, item_name, outcome, handle, price,
				threshold, level, confirmation, error, attempted_at
			) VALUES (
				:item_id, :item_name, :outcome, :handle, :price,
				:threshold, :level, :confirmation, :error, :attempted_at
			)`

		if _, err := tx.NamedExecContext(ctx, query, fromOutcome(outcome)); err != nil {
			return domain.WrapError(err, errcodes.JournalUnavailable, "failed to save purchase attempt")
		}

		return nil
	})
}

// ListRecent returns the latest attempts, newest first.
func (r *PurchaseRepository) ListRecent(ctx context.Context, limit int) ([]entity.PurchaseAttempt, error) {
	if limit <= 0 || limit > maxListLimit {
		return nil, domain.NewError(errcodes.InvalidPaging, "limit must be between 1 and 500")
	}

	query := `SELECT * FROM purchase_attempts ORDER BY attempted_at DESC, id DESC LIMIT $1`

	var schemas []purchaseAttemptSchema
	if err := r.db.SelectContext(ctx, &schemas, query, limit); err != nil {
		return nil, domain.WrapError(err, errcodes.JournalUnavailable, "failed to list purchase attempts")
	}

	return lox.Map(schemas, purchaseAttemptSchema.toDomain), nil
}
