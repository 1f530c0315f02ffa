package repository

import (
	"context"

	"github.com/google/uuid"

	"raffle-core/internal/infra"
	"raffle-core/internal/infra/db"
	"raffle-core/internal/usecase/shared"
)

type CreditRepository struct {
	db db.DBTX
}

func NewCreditRepository(dbtx db.DBTX) shared.CreditRepository {
	return &CreditRepository{db: dbtx}
}

// Debit is guarded on the balance so an overdraft can never be written, even
// under concurrent spends against the same buyer.
func (r *CreditRepository) Debit(ctx context.Context, buyerID uuid.UUID, amountCents int64) error {
	const q = `
		UPDATE buyers
		SET credit_cents = credit_cents - $2, updated_at = now()
		WHERE id = $1 AND credit_cents >= $2`

	tag, err := r.db.Exec(ctx, q, buyerID, amountCents)
	if err != nil {
		return infra.WrapRepoErr("failed to debit buyer credit", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("insufficient credit balance", infra.KindConflict)
	}
	return nil
}

func (r *CreditRepository) Credit(ctx context.Context, buyerID uuid.UUID, amountCents int64) error {
	const q = `
		UPDATE buyers
		SET credit_cents = credit_cents + $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, buyerID, amountCents)
	if err != nil {
		return infra.WrapRepoErr("failed to credit buyer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("buyer not found for credit", infra.KindNotFound)
	}
	return nil
}

func (r *CreditRepository) RecordTransaction(ctx context.Context, entry *shared.CreditEntry) error {
	const q = `
		INSERT INTO credit_transactions (id, buyer_id, amount_cents, kind, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, q, uuid.New(), entry.BuyerID, entry.AmountCents,
		entry.Kind, entry.ReferenceID, entry.CreatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to record credit transaction", err)
	}
	return nil
}
