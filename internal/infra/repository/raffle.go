package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"raffle-core/internal/domain/raffle"
	"raffle-core/internal/infra"
	"raffle-core/internal/infra/db"
	"raffle-core/internal/usecase/shared"
)

type RaffleRepository struct {
	db db.DBTX
}

func NewRaffleRepository(dbtx db.DBTX) shared.RaffleRepository {
	return &RaffleRepository{db: dbtx}
}

func (r *RaffleRepository) Create(ctx context.Context, raf *raffle.Raffle) (uuid.UUID, error) {
	const q = `
		INSERT INTO raffles (
			id, title, ticket_price_cents, total_tickets, available_tickets,
			max_per_buyer, starts_at, ends_at, status, pool_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		raf.ID(), raf.Title(), raf.TicketPriceCents(), raf.TotalTickets(), raf.AvailableTickets(),
		raf.MaxPerBuyer(), raf.StartsAt(), raf.EndsAt(), string(raf.Status()), raf.PoolID(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create raffle", err)
	}
	return id, nil
}

func (r *RaffleRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*raffle.Raffle, error) {
	const q = `
		SELECT id, title, ticket_price_cents, total_tickets, available_tickets,
		       max_per_buyer, starts_at, ends_at, status, pool_id, created_at, updated_at
		FROM raffles
		WHERE id = $1
		FOR UPDATE`

	return r.scanRaffle(r.db.QueryRow(ctx, q, id))
}

func (r *RaffleRepository) scanRaffle(row interface{ Scan(dest ...any) error }) (*raffle.Raffle, error) {
	var (
		id                   uuid.UUID
		title                string
		priceCents           int64
		total, avail, maxPer int32
		startsAt, endsAt     time.Time
		status               string
		poolID               *uuid.UUID
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &title, &priceCents, &total, &avail, &maxPer,
		&startsAt, &endsAt, &status, &poolID, &createdAt, &updatedAt); err != nil {
		return nil, infra.WrapRepoErr("failed to find raffle", err)
	}

	st, err := raffle.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid raffle status in storage", err, infra.KindDBFailure)
	}
	raf, err := raffle.ReconstructRaffle(id, title, priceCents, total, avail, maxPer,
		startsAt, endsAt, st, poolID, createdAt, updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid raffle row", err, infra.KindDBFailure)
	}
	return raf, nil
}

// HoldTickets is the guarded decrement behind every reservation: the counter
// row is the single source of availability, so a zero-row update means the
// raffle cannot cover the quantity.
func (r *RaffleRepository) HoldTickets(ctx context.Context, raffleID uuid.UUID, quantity int32) error {
	const q = `
		UPDATE raffles
		SET available_tickets = available_tickets - $2, updated_at = now()
		WHERE id = $1 AND available_tickets >= $2`

	tag, err := r.db.Exec(ctx, q, raffleID, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to hold tickets", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("not enough tickets available", infra.KindConflict)
	}
	return nil
}

func (r *RaffleRepository) ReleaseTickets(ctx context.Context, raffleID uuid.UUID, quantity int32) error {
	const q = `
		UPDATE raffles
		SET available_tickets = LEAST(available_tickets + $2, total_tickets), updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, raffleID, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to release tickets", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("raffle not found for release", infra.KindNotFound)
	}
	return nil
}

func (r *RaffleRepository) NextTicketNumbers(ctx context.Context, raffleID uuid.UUID, quantity int32) (int32, error) {
	const q = `
		UPDATE raffles
		SET ticket_seq = ticket_seq + $2
		WHERE id = $1
		RETURNING ticket_seq - $2 + 1`

	var first int32
	if err := r.db.QueryRow(ctx, q, raffleID, quantity).Scan(&first); err != nil {
		return 0, infra.WrapRepoErr("failed to allocate ticket numbers", err)
	}
	return first, nil
}

func (r *RaffleRepository) UpdateStatus(ctx context.Context, raffleID uuid.UUID, status raffle.Status) error {
	const q = `UPDATE raffles SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, raffleID, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update raffle status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("raffle not found for status update", infra.KindNotFound)
	}
	return nil
}

// MarkSoldOutIfDepleted flips the raffle only when no ticket is available AND
// no hold is still outstanding. An unexpired hold may yet lapse and return its
// tickets, so depletion of the counter alone is not sold out.
func (r *RaffleRepository) MarkSoldOutIfDepleted(ctx context.Context, raffleID uuid.UUID) (bool, error) {
	const q = `
		UPDATE raffles
		SET status = 'sold_out', updated_at = now()
		WHERE id = $1 AND status = 'active' AND available_tickets = 0
		  AND NOT EXISTS (
			SELECT 1 FROM reservations
			WHERE raffle_id = $1 AND status = 'active'
		  )`

	tag, err := r.db.Exec(ctx, q, raffleID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark raffle sold out", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *RaffleRepository) AssignPool(ctx context.Context, raffleID, poolID uuid.UUID) error {
	const q = `
		UPDATE raffles
		SET pool_id = $2, updated_at = now()
		WHERE id = $1 AND pool_id IS NULL`

	tag, err := r.db.Exec(ctx, q, raffleID, poolID)
	if err != nil {
		return infra.WrapRepoErr("failed to assign pool to raffle", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("raffle already has a pool assigned", infra.KindConflict)
	}
	return nil
}

func (r *RaffleRepository) EndOverdue(ctx context.Context, now time.Time) (int64, error) {
	const q = `
		UPDATE raffles
		SET status = 'ended', updated_at = now()
		WHERE status IN ('active', 'inactive', 'sold_out') AND ends_at <= $1`

	tag, err := r.db.Exec(ctx, q, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to end overdue raffles", err)
	}
	return tag.RowsAffected(), nil
}

func (r *RaffleRepository) ActivateDue(ctx context.Context, now time.Time) (int64, error) {
	const q = `
		UPDATE raffles
		SET status = 'active', updated_at = now()
		WHERE status = 'coming_soon' AND starts_at <= $1 AND ends_at > $1 AND pool_id IS NOT NULL`

	tag, err := r.db.Exec(ctx, q, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to activate due raffles", err)
	}
	return tag.RowsAffected(), nil
}
