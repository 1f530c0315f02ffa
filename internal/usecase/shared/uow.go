package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"raffle-core/internal/domain/payment"
	"raffle-core/internal/domain/prize"
	"raffle-core/internal/domain/raffle"
	"raffle-core/internal/domain/reservation"
	"raffle-core/internal/domain/ticket"
	"raffle-core/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Raffles() RaffleRepository
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Tickets() TicketRepository
	Prizes() PrizeRepository
	Credits() CreditRepository
	Fulfillments() FulfillmentRepository
	DrawAudits() DrawAuditRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	RaffleByID(ctx context.Context, id uuid.UUID) (*RaffleSnapshot, error)
	BuyerByID(ctx context.Context, id uuid.UUID) (*BuyerSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	IntentByID(ctx context.Context, id uuid.UUID) (*IntentSnapshot, error)
	// HeldQuantity counts the buyer's sold tickets plus live holds for one
	// raffle; the per-buyer cap is enforced against this number.
	HeldQuantity(ctx context.Context, raffleID, buyerID uuid.UUID) (int32, error)
	TicketsByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*TicketSnapshot, error)
	PoolByID(ctx context.Context, id uuid.UUID) (*PoolSnapshot, error)
	TemplateByID(ctx context.Context, id uuid.UUID) (*TemplateSnapshot, error)
}

type RaffleRepository interface {
	Create(ctx context.Context, raf *raffle.Raffle) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*raffle.Raffle, error)
	// HoldTickets decrements the available counter, failing with a conflict
	// when fewer than quantity tickets remain.
	HoldTickets(ctx context.Context, raffleID uuid.UUID, quantity int32) error
	ReleaseTickets(ctx context.Context, raffleID uuid.UUID, quantity int32) error
	// NextTicketNumbers reserves a contiguous block of per-raffle ticket
	// numbers and returns the first.
	NextTicketNumbers(ctx context.Context, raffleID uuid.UUID, quantity int32) (int32, error)
	UpdateStatus(ctx context.Context, raffleID uuid.UUID, status raffle.Status) error
	// MarkSoldOutIfDepleted flips an active raffle to sold_out once the
	// counter is zero and no hold is outstanding; returns true when this
	// call did the flip.
	MarkSoldOutIfDepleted(ctx context.Context, raffleID uuid.UUID) (bool, error)
	AssignPool(ctx context.Context, raffleID, poolID uuid.UUID) error
	// EndOverdue moves every open raffle past its end time to ended.
	EndOverdue(ctx context.Context, now time.Time) (int64, error)
	// ActivateDue opens coming_soon raffles whose window has started and
	// that have a pool assigned.
	ActivateDue(ctx context.Context, now time.Time) (int64, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Resolve(ctx context.Context, id uuid.UUID, status reservation.Status, resolvedAt time.Time) error
	// ClaimExpiredBatch locks and resolves up to limit expired holds,
	// skipping rows other sweepers already hold.
	ClaimExpiredBatch(ctx context.Context, now time.Time, limit int32) ([]*ExpiredHold, error)
	// CancelActiveByRaffle resolves every live hold of a cancelled raffle.
	CancelActiveByRaffle(ctx context.Context, raffleID uuid.UUID, resolvedAt time.Time) (int64, error)
}

type PaymentRepository interface {
	CreateIntent(ctx context.Context, intent *payment.Intent) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*payment.Intent, error)
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*payment.Intent, error)
	MarkConfirmed(ctx context.Context, id uuid.UUID, confirmedAt time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
}

type TicketRepository interface {
	MintBatch(ctx context.Context, reservationID uuid.UUID, tickets []*ticket.Ticket) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error)
	// MarkRevealed is guarded on status=sold so a reveal can never replay.
	MarkRevealed(ctx context.Context, id uuid.UUID, instantWin bool, prizeInstanceID *uuid.UUID, revealedAt time.Time) error
	MarkClaimed(ctx context.Context, id uuid.UUID, claimedAt time.Time) error
	// VoidUnresolvedByRaffle voids every non-claimed ticket of a cancelled
	// raffle and returns how many rows it touched.
	VoidUnresolvedByRaffle(ctx context.Context, raffleID uuid.UUID) (int64, error)
	// ForfeitPrize severs a revealed ticket from a prize whose claim window
	// lapsed; the ticket stays revealed.
	ForfeitPrize(ctx context.Context, id uuid.UUID) error
	// ListDrawEligible locks and returns the raffle's tickets that can still
	// win the end-of-raffle draw: sold or revealed, with no prize bound.
	ListDrawEligible(ctx context.Context, raffleID uuid.UUID) ([]*DrawEntry, error)
	// AwardDrawPrize binds a draw-win instance to a ticket. The prize guard
	// keeps a ticket from collecting a second prize.
	AwardDrawPrize(ctx context.Context, id, instanceID uuid.UUID, awardedAt time.Time) error
}

type PrizeRepository interface {
	CreateTemplate(ctx context.Context, tpl *prize.Template) (uuid.UUID, error)
	FindTemplateByID(ctx context.Context, id uuid.UUID) (*prize.Template, error)
	CreatePool(ctx context.Context, pool *prize.Pool) (uuid.UUID, error)
	CountInstances(ctx context.Context, poolID, templateID uuid.UUID) (int32, error)
	FindPoolByIDForUpdate(ctx context.Context, id uuid.UUID) (*prize.Pool, error)
	SavePool(ctx context.Context, pool *prize.Pool) error
	InsertInstances(ctx context.Context, instances []*prize.Instance) error
	// AvailableInstantWins lists the undiscovered instant-win instances of a
	// pool with their odds, for the reveal draw.
	AvailableInstantWins(ctx context.Context, poolID uuid.UUID) ([]*InstanceWeight, error)
	// AvailableDrawWins lists the undiscovered draw-win instances of a pool,
	// for the end-of-raffle draw.
	AvailableDrawWins(ctx context.Context, poolID uuid.UUID) ([]*InstanceWeight, error)
	// MarkDiscovered is guarded on status=available; a conflict means a
	// concurrent reveal won the same instance first.
	MarkDiscovered(ctx context.Context, instanceID, ticketID uuid.UUID, deadline, discoveredAt time.Time) error
	FindInstanceByIDForUpdate(ctx context.Context, id uuid.UUID) (*prize.Instance, error)
	MarkInstanceClaimed(ctx context.Context, instanceID uuid.UUID, valueType prize.ValueType, claimedAt time.Time) error
	// ExpireOverdueDiscoveries retires discovered instances whose claim
	// deadline has passed. Forfeited instances never return to the pool.
	ExpireOverdueDiscoveries(ctx context.Context, now time.Time, limit int32) ([]*ExpiredDiscovery, error)
}

type CreditRepository interface {
	// Debit is guarded on a sufficient balance.
	Debit(ctx context.Context, buyerID uuid.UUID, amountCents int64) error
	Credit(ctx context.Context, buyerID uuid.UUID, amountCents int64) error
	RecordTransaction(ctx context.Context, entry *CreditEntry) error
}

type FulfillmentRepository interface {
	Enqueue(ctx context.Context, kind string, payload []byte, runAt time.Time) error
	ClaimBatch(ctx context.Context, now time.Time, limit int32) ([]*FulfillmentJob, error)
	MarkDone(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string, retryAt time.Time) error
}

type DrawAuditRepository interface {
	Record(ctx context.Context, audit *DrawAudit) error
}
