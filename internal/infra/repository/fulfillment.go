package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"raffle-core/internal/infra"
	"raffle-core/internal/infra/db"
	"raffle-core/internal/usecase/shared"
)

type FulfillmentRepository struct {
	db db.DBTX
}

func NewFulfillmentRepository(dbtx db.DBTX) shared.FulfillmentRepository {
	return &FulfillmentRepository{db: dbtx}
}

func (r *FulfillmentRepository) Enqueue(ctx context.Context, kind string, payload []byte, runAt time.Time) error {
	const q = `
		INSERT INTO fulfillment_jobs (id, kind, payload, status, run_at)
		VALUES ($1, $2, $3, 'pending', $4)`

	_, err := r.db.Exec(ctx, q, uuid.New(), kind, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue fulfillment job", err)
	}
	return nil
}

func (r *FulfillmentRepository) ClaimBatch(ctx context.Context, now time.Time, limit int32) ([]*shared.FulfillmentJob, error) {
	const q = `
		UPDATE fulfillment_jobs
		SET status = 'processing', attempts = attempts + 1
		WHERE id IN (
			SELECT id FROM fulfillment_jobs
			WHERE status = 'pending' AND run_at <= $1
			ORDER BY run_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, kind, payload, run_at`

	rows, err := r.db.Query(ctx, q, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim fulfillment jobs", err)
	}
	defer rows.Close()

	var jobs []*shared.FulfillmentJob
	for rows.Next() {
		j := &shared.FulfillmentJob{}
		if err := rows.Scan(&j.ID, &j.Kind, &j.Payload, &j.RunAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan fulfillment job", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read fulfillment jobs", err)
	}
	return jobs, nil
}

func (r *FulfillmentRepository) MarkDone(ctx context.Context, id uuid.UUID) error {
	const q = `
		UPDATE fulfillment_jobs
		SET status = 'done', completed_at = now()
		WHERE id = $1 AND status = 'processing'`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark fulfillment job done", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("fulfillment job not processing", infra.KindConflict)
	}
	return nil
}

// MarkFailed reschedules the job; jobs are retried indefinitely because every
// kind represents money or goods owed to a buyer.
func (r *FulfillmentRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string, retryAt time.Time) error {
	const q = `
		UPDATE fulfillment_jobs
		SET status = 'pending', last_error = $2, run_at = $3
		WHERE id = $1 AND status = 'processing'`

	tag, err := r.db.Exec(ctx, q, id, reason, retryAt)
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule fulfillment job", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("fulfillment job not processing", infra.KindConflict)
	}
	return nil
}
