package commands

import (
	"context"
	"log/slog"
	"time"

	"raffle-core/internal/pkg/clock"
	"raffle-core/internal/pkg/errs"
	"raffle-core/internal/usecase/shared"
)

const fulfillmentRetryDelay = 5 * time.Minute

// FulfillmentHandler performs the external side of one queued job: sending a
// receipt, shipping a prize, issuing a refund. Implementations must be
// idempotent; a job can be retried after a crash between work and MarkDone.
type FulfillmentHandler interface {
	Handle(ctx context.Context, job *shared.FulfillmentJob) error
}

type FulfillmentCommands interface {
	ProcessBatch(ctx context.Context, batchSize int32) (int, error)
}

type fulfillmentCommandsImpl struct {
	uow     shared.UnitOfWork
	handler FulfillmentHandler
	clock   clock.Clock
}

func NewFulfillmentCommands(u shared.UnitOfWork, handler FulfillmentHandler, clk clock.Clock) FulfillmentCommands {
	return &fulfillmentCommandsImpl{uow: u, handler: handler, clock: clk}
}

// ProcessBatch claims due jobs and runs them one by one. A failing job is
// rescheduled instead of aborting the batch.
func (c *fulfillmentCommandsImpl) ProcessBatch(ctx context.Context, batchSize int32) (int, error) {
	processed := 0

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		jobs, err := tx.Fulfillments().ClaimBatch(ctx, now, batchSize)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}

		for _, job := range jobs {
			if handleErr := c.handler.Handle(ctx, job); handleErr != nil {
				slog.Warn("fulfillment job failed",
					"job_id", job.ID,
					"kind", job.Kind,
					"error", handleErr.Error())
				if err := tx.Fulfillments().MarkFailed(ctx, job.ID, handleErr.Error(), now.Add(fulfillmentRetryDelay)); err != nil {
					return errs.Mark(err, ErrDatabaseOperation)
				}
				continue
			}
			if err := tx.Fulfillments().MarkDone(ctx, job.ID); err != nil {
				return errs.Mark(err, ErrDatabaseOperation)
			}
			processed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return processed, nil
}

// LoggingFulfillmentHandler stands in for the real integrations, recording
// each job it would have delivered.
type LoggingFulfillmentHandler struct{}

func NewLoggingFulfillmentHandler() FulfillmentHandler {
	return &LoggingFulfillmentHandler{}
}

func (h *LoggingFulfillmentHandler) Handle(_ context.Context, job *shared.FulfillmentJob) error {
	slog.Info("fulfillment job delivered",
		"job_id", job.ID,
		"kind", job.Kind,
		"payload_bytes", len(job.Payload))
	return nil
}
