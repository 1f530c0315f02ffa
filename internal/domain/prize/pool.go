package prize

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyPoolName   = errors.New("pool name is required")
	ErrPoolLocked      = errors.New("pool is locked")
	ErrPoolNotLocked   = errors.New("pool must be locked first")
	ErrAlreadyLocked   = errors.New("pool is already locked")
	ErrAlreadyAssigned = errors.New("pool is already assigned to a raffle")
	ErrOddsExceed100   = errors.New("pool odds total would exceed 100%")
	ErrInvalidOdds     = errors.New("odds must be positive")
	ErrOddsMismatch    = errors.New("per-instance odds must sum to the collective odds")
)

// oddsEpsilon absorbs float error when comparing odds sums.
const oddsEpsilon = 1e-6

// MaxOddsTotal is the full probability mass a pool may distribute.
const MaxOddsTotal = 100.0

// Pool aggregates prize instances and owns the probability mass they share.
// Its lifecycle is unidirectional: unlocked → locked → assigned. Allocation
// is only possible while unlocked; locking is the gate before the pool may
// back a live raffle.
type Pool struct {
	id               uuid.UUID
	name             string
	status           PoolStatus
	totalInstances   int32
	instantWinCount  int32
	drawWinCount     int32
	oddsTotal        float64
	retailTotalCents int64
	cashTotalCents   int64
	creditTotalCents int64
	raffleID         *uuid.UUID
	createdAt        time.Time
	updatedAt        time.Time
}

func NewPool(name string) (*Pool, error) {
	if name == "" {
		return nil, ErrEmptyPoolName
	}
	return &Pool{
		id:     uuid.New(),
		name:   name,
		status: PoolUnlocked,
	}, nil
}

func ReconstructPool(
	id uuid.UUID,
	name string,
	status PoolStatus,
	totalInstances, instantWinCount, drawWinCount int32,
	oddsTotal float64,
	retailTotalCents, cashTotalCents, creditTotalCents int64,
	raffleID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Pool {
	return &Pool{
		id:               id,
		name:             name,
		status:           status,
		totalInstances:   totalInstances,
		instantWinCount:  instantWinCount,
		drawWinCount:     drawWinCount,
		oddsTotal:        oddsTotal,
		retailTotalCents: retailTotalCents,
		cashTotalCents:   cashTotalCents,
		creditTotalCents: creditTotalCents,
		raffleID:         raffleID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// SplitOdds resolves collective vs per-instance odds for an allocation batch.
// With no explicit odds the collective mass splits evenly; explicit odds must
// match the batch size and sum to the collective value.
func SplitOdds(collectiveOdds float64, instanceCount int32, explicit []float64) ([]float64, error) {
	if collectiveOdds <= 0 || instanceCount < 1 {
		return nil, ErrInvalidOdds
	}

	if len(explicit) == 0 {
		per := collectiveOdds / float64(instanceCount)
		odds := make([]float64, instanceCount)
		for i := range odds {
			odds[i] = per
		}
		return odds, nil
	}

	if int32(len(explicit)) != instanceCount {
		return nil, ErrOddsMismatch
	}
	sum := 0.0
	for _, o := range explicit {
		if o <= 0 {
			return nil, ErrInvalidOdds
		}
		sum += o
	}
	if sum > collectiveOdds+oddsEpsilon || sum < collectiveOdds-oddsEpsilon {
		return nil, ErrOddsMismatch
	}
	return explicit, nil
}

// CanAllocate rejects allocation into locked pools and allocations that would
// push the pool's probability mass past 100%.
func (p *Pool) CanAllocate(additionalOdds float64) error {
	if p.status != PoolUnlocked {
		return ErrPoolLocked
	}
	if additionalOdds <= 0 {
		return ErrInvalidOdds
	}
	if p.oddsTotal+additionalOdds > MaxOddsTotal+oddsEpsilon {
		return ErrOddsExceed100
	}
	return nil
}

// ApplyAllocation folds a validated batch into the pool aggregates.
func (p *Pool) ApplyAllocation(tpl *Template, instanceCount int32, batchOdds float64) {
	p.totalInstances += instanceCount
	if tpl.PrizeType() == TypeDrawWin {
		p.drawWinCount += instanceCount
	} else {
		p.instantWinCount += instanceCount
	}
	p.oddsTotal += batchOdds
	p.retailTotalCents += tpl.RetailValueCents() * int64(instanceCount)
	p.cashTotalCents += tpl.CashValueCents() * int64(instanceCount)
	p.creditTotalCents += tpl.CreditValueCents() * int64(instanceCount)
}

// LockReport is returned from locking so the operator sees what the pool
// looks like rather than getting a silent rejection: an odds total short of
// 100% or a missing draw-win prize is surfaced as a warning, not an error.
type LockReport struct {
	HasInstances         bool
	HasAtLeastOneDrawWin bool
	OddsTotal            float64
	Warnings             []string
}

func (p *Pool) Lock() (*LockReport, error) {
	if p.status != PoolUnlocked {
		return nil, ErrAlreadyLocked
	}

	report := &LockReport{
		HasInstances:         p.totalInstances > 0,
		HasAtLeastOneDrawWin: p.drawWinCount > 0,
		OddsTotal:            p.oddsTotal,
	}
	if !report.HasInstances {
		report.Warnings = append(report.Warnings, "pool has no prize instances")
	}
	if !report.HasAtLeastOneDrawWin {
		report.Warnings = append(report.Warnings, "pool has no draw-win prize; it cannot satisfy an end-of-raffle draw")
	}
	if p.oddsTotal < MaxOddsTotal-oddsEpsilon {
		report.Warnings = append(report.Warnings, "pool odds total is below 100%")
	}

	p.status = PoolLocked
	return report, nil
}

// Assign binds a locked pool to its raffle. Terminal state.
func (p *Pool) Assign(raffleID uuid.UUID) error {
	switch p.status {
	case PoolLocked:
		id := raffleID
		p.raffleID = &id
		p.status = PoolAssigned
		return nil
	case PoolAssigned:
		return ErrAlreadyAssigned
	default:
		return ErrPoolNotLocked
	}
}

func (p *Pool) ID() uuid.UUID           { return p.id }
func (p *Pool) Name() string            { return p.name }
func (p *Pool) Status() PoolStatus      { return p.status }
func (p *Pool) TotalInstances() int32   { return p.totalInstances }
func (p *Pool) InstantWinCount() int32  { return p.instantWinCount }
func (p *Pool) DrawWinCount() int32     { return p.drawWinCount }
func (p *Pool) OddsTotal() float64      { return p.oddsTotal }
func (p *Pool) RetailTotalCents() int64 { return p.retailTotalCents }
func (p *Pool) CashTotalCents() int64   { return p.cashTotalCents }
func (p *Pool) CreditTotalCents() int64 { return p.creditTotalCents }
func (p *Pool) RaffleID() *uuid.UUID    { return p.raffleID }
func (p *Pool) CreatedAt() time.Time    { return p.createdAt }
func (p *Pool) UpdatedAt() time.Time    { return p.updatedAt }
