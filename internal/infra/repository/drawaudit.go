package repository

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"raffle-core/internal/infra"
	"raffle-core/internal/infra/db"
	"raffle-core/internal/usecase/shared"
)

type DrawAuditRepository struct {
	db db.DBTX
}

func NewDrawAuditRepository(dbtx db.DBTX) shared.DrawAuditRepository {
	return &DrawAuditRepository{db: dbtx}
}

// Record stores the seed and roll of one reveal. The seed column is NUMERIC
// because Postgres has no unsigned 64-bit integer type.
func (r *DrawAuditRepository) Record(ctx context.Context, audit *shared.DrawAudit) error {
	const q = `
		INSERT INTO draw_audits (
			id, ticket_id, raffle_id, pool_id, seed, roll, won_instance_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, q, uuid.New(), audit.TicketID, audit.RaffleID, audit.PoolID,
		strconv.FormatUint(audit.Seed, 10), audit.Roll, audit.WonInstanceID, audit.CreatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to record draw audit", err)
	}
	return nil
}
