package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"raffle-core/internal/domain/payment"
	"raffle-core/internal/infra"
	"raffle-core/internal/infra/db"
	"raffle-core/internal/usecase/shared"
)

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(dbtx db.DBTX) shared.PaymentRepository {
	return &PaymentRepository{db: dbtx}
}

func (r *PaymentRepository) CreateIntent(ctx context.Context, intent *payment.Intent) (uuid.UUID, error) {
	const q = `
		INSERT INTO payment_intents (id, reservation_id, amount_cents, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		intent.ID(), intent.ReservationID(), intent.AmountCents(),
		string(intent.Status()), intent.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment intent", err)
	}
	return id, nil
}

func (r *PaymentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*payment.Intent, error) {
	const q = `
		SELECT id, reservation_id, amount_cents, status, failure_reason, created_at, confirmed_at
		FROM payment_intents
		WHERE id = $1
		FOR UPDATE`

	return r.scanIntent(ctx, q, id)
}

// FindByReservationID backs intent idempotency: the partial unique index on
// pending intents guarantees at most one live row per reservation.
func (r *PaymentRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*payment.Intent, error) {
	const q = `
		SELECT id, reservation_id, amount_cents, status, failure_reason, created_at, confirmed_at
		FROM payment_intents
		WHERE reservation_id = $1 AND status = 'pending'
		ORDER BY created_at DESC
		LIMIT 1`

	return r.scanIntent(ctx, q, reservationID)
}

func (r *PaymentRepository) scanIntent(ctx context.Context, q string, arg any) (*payment.Intent, error) {
	var (
		id, reservationID uuid.UUID
		amountCents       int64
		status            string
		failureReason     *string
		createdAt         time.Time
		confirmedAt       *time.Time
	)
	err := r.db.QueryRow(ctx, q, arg).Scan(&id, &reservationID, &amountCents,
		&status, &failureReason, &createdAt, &confirmedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find payment intent", err)
	}

	return payment.ReconstructIntent(id, reservationID, amountCents,
		payment.Status(status), failureReason, createdAt, confirmedAt), nil
}

func (r *PaymentRepository) MarkConfirmed(ctx context.Context, id uuid.UUID, confirmedAt time.Time) error {
	const q = `
		UPDATE payment_intents
		SET status = 'confirmed', confirmed_at = $2
		WHERE id = $1 AND status = 'pending'`

	tag, err := r.db.Exec(ctx, q, id, confirmedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to confirm payment intent", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("payment intent no longer pending", infra.KindConflict)
	}
	return nil
}

func (r *PaymentRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	const q = `
		UPDATE payment_intents
		SET status = 'failed', failure_reason = $2
		WHERE id = $1 AND status = 'pending'`

	tag, err := r.db.Exec(ctx, q, id, reason)
	if err != nil {
		return infra.WrapRepoErr("failed to fail payment intent", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("payment intent no longer pending", infra.KindConflict)
	}
	return nil
}
