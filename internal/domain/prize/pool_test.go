//go:build unit

package prize_test

import (
	"testing"
	"time"

	"raffle-core/internal/domain/prize"
	"raffle-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitOdds(t *testing.T) {
	t.Run("even split by default", func(t *testing.T) {
		odds, err := prize.SplitOdds(10.0, 4, nil)
		require.NoError(t, err)
		require.Len(t, odds, 4)
		for _, o := range odds {
			assert.InDelta(t, 2.5, o, 1e-9)
		}
	})

	t.Run("explicit odds pass through", func(t *testing.T) {
		explicit := []float64{1.0, 2.0, 7.0}
		odds, err := prize.SplitOdds(10.0, 3, explicit)
		require.NoError(t, err)
		assert.Equal(t, explicit, odds)
	})

	t.Run("explicit count mismatch", func(t *testing.T) {
		_, err := prize.SplitOdds(10.0, 3, []float64{5.0, 5.0})
		assert.ErrorIs(t, err, prize.ErrOddsMismatch)
	})

	t.Run("explicit sum mismatch", func(t *testing.T) {
		_, err := prize.SplitOdds(10.0, 2, []float64{5.0, 6.0})
		assert.ErrorIs(t, err, prize.ErrOddsMismatch)
	})

	t.Run("explicit sum within epsilon accepted", func(t *testing.T) {
		_, err := prize.SplitOdds(10.0, 3, []float64{10.0 / 3, 10.0 / 3, 10.0 / 3})
		assert.NoError(t, err)
	})

	t.Run("non-positive inputs", func(t *testing.T) {
		_, err := prize.SplitOdds(0, 3, nil)
		assert.ErrorIs(t, err, prize.ErrInvalidOdds)

		_, err = prize.SplitOdds(5.0, 0, nil)
		assert.ErrorIs(t, err, prize.ErrInvalidOdds)

		_, err = prize.SplitOdds(5.0, 2, []float64{6.0, -1.0})
		assert.ErrorIs(t, err, prize.ErrInvalidOdds)
	})
}

func TestPoolAllocation(t *testing.T) {
	tpl, err := builder.NewTemplateBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("allocation accumulates aggregates", func(t *testing.T) {
		pool, err := builder.NewPoolBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, pool.CanAllocate(5.0))
		pool.ApplyAllocation(tpl, 10, 5.0)

		assert.Equal(t, int32(10), pool.TotalInstances())
		assert.Equal(t, int32(10), pool.InstantWinCount())
		assert.Equal(t, int32(0), pool.DrawWinCount())
		assert.InDelta(t, 5.0, pool.OddsTotal(), 1e-9)
		assert.Equal(t, int64(150000), pool.RetailTotalCents())
		assert.Equal(t, int64(100000), pool.CashTotalCents())
		assert.Equal(t, int64(120000), pool.CreditTotalCents())
	})

	t.Run("draw win prizes counted separately", func(t *testing.T) {
		drawTpl, err := builder.NewTemplateBuilder().
			With(func(b *builder.TemplateBuilder) { b.PrizeType = prize.TypeDrawWin }).
			BuildDomain()
		require.NoError(t, err)

		pool, err := builder.NewPoolBuilder().BuildDomain()
		require.NoError(t, err)
		pool.ApplyAllocation(drawTpl, 1, 0.5)

		assert.Equal(t, int32(1), pool.DrawWinCount())
		assert.Equal(t, int32(0), pool.InstantWinCount())
	})

	t.Run("odds cannot exceed 100", func(t *testing.T) {
		pool := builder.NewPoolBuilder().
			With(func(b *builder.PoolBuilder) { b.OddsTotal = 97.0 }).
			BuildReconstructed()

		assert.NoError(t, pool.CanAllocate(3.0))
		assert.ErrorIs(t, pool.CanAllocate(3.1), prize.ErrOddsExceed100)
	})

	t.Run("locked pool rejects allocation", func(t *testing.T) {
		pool := builder.NewPoolBuilder().
			With(func(b *builder.PoolBuilder) { b.Status = prize.PoolLocked }).
			BuildReconstructed()

		assert.ErrorIs(t, pool.CanAllocate(1.0), prize.ErrPoolLocked)
	})
}

func TestPoolLock(t *testing.T) {
	t.Run("healthy pool locks without warnings", func(t *testing.T) {
		pool := builder.NewPoolBuilder().
			With(func(b *builder.PoolBuilder) {
				b.TotalInstances = 20
				b.InstantWinCount = 19
				b.DrawWinCount = 1
				b.OddsTotal = 100.0
			}).
			BuildReconstructed()

		report, err := pool.Lock()
		require.NoError(t, err)
		assert.True(t, report.HasInstances)
		assert.True(t, report.HasAtLeastOneDrawWin)
		assert.Empty(t, report.Warnings)
		assert.Equal(t, prize.PoolLocked, pool.Status())
	})

	t.Run("thin pool locks with warnings", func(t *testing.T) {
		pool := builder.NewPoolBuilder().
			With(func(b *builder.PoolBuilder) {
				b.TotalInstances = 5
				b.InstantWinCount = 5
				b.OddsTotal = 40.0
			}).
			BuildReconstructed()

		report, err := pool.Lock()
		require.NoError(t, err)
		assert.True(t, report.HasInstances)
		assert.False(t, report.HasAtLeastOneDrawWin)
		assert.Len(t, report.Warnings, 2)
		assert.Equal(t, prize.PoolLocked, pool.Status())
	})

	t.Run("empty pool still locks, loudly", func(t *testing.T) {
		pool := builder.NewPoolBuilder().BuildReconstructed()

		report, err := pool.Lock()
		require.NoError(t, err)
		assert.False(t, report.HasInstances)
		assert.Len(t, report.Warnings, 3)
	})

	t.Run("double lock rejected", func(t *testing.T) {
		pool := builder.NewPoolBuilder().
			With(func(b *builder.PoolBuilder) { b.Status = prize.PoolLocked }).
			BuildReconstructed()

		_, err := pool.Lock()
		assert.ErrorIs(t, err, prize.ErrAlreadyLocked)
	})
}

func TestPoolAssign(t *testing.T) {
	raffleID := uuid.New()

	t.Run("locked pool assigns once", func(t *testing.T) {
		pool := builder.NewPoolBuilder().
			With(func(b *builder.PoolBuilder) { b.Status = prize.PoolLocked }).
			BuildReconstructed()

		require.NoError(t, pool.Assign(raffleID))
		assert.Equal(t, prize.PoolAssigned, pool.Status())
		require.NotNil(t, pool.RaffleID())
		assert.Equal(t, raffleID, *pool.RaffleID())

		assert.ErrorIs(t, pool.Assign(uuid.New()), prize.ErrAlreadyAssigned)
	})

	t.Run("unlocked pool cannot be assigned", func(t *testing.T) {
		pool := builder.NewPoolBuilder().BuildReconstructed()
		assert.ErrorIs(t, pool.Assign(raffleID), prize.ErrPoolNotLocked)
	})
}

func TestInstanceLifecycle(t *testing.T) {
	now := time.Now()
	ticketID := uuid.New()

	tpl, err := builder.NewTemplateBuilder().BuildDomain()
	require.NoError(t, err)

	newInstance := func(t *testing.T) *prize.Instance {
		t.Helper()
		inst, err := prize.NewInstance(uuid.New(), tpl.ID(), 2.5, 1)
		require.NoError(t, err)
		return inst
	}

	t.Run("discover binds ticket and deadline", func(t *testing.T) {
		inst := newInstance(t)

		require.NoError(t, inst.Discover(ticketID, tpl, now))
		assert.Equal(t, prize.InstanceDiscovered, inst.Status())
		require.NotNil(t, inst.TicketID())
		assert.Equal(t, ticketID, *inst.TicketID())
		require.NotNil(t, inst.ClaimDeadline())
		assert.Equal(t, now.Add(72*time.Hour), *inst.ClaimDeadline())
	})

	t.Run("double discover rejected", func(t *testing.T) {
		inst := newInstance(t)
		require.NoError(t, inst.Discover(ticketID, tpl, now))
		assert.ErrorIs(t, inst.Discover(uuid.New(), tpl, now), prize.ErrInstanceNotAvailable)
	})

	t.Run("claim before deadline", func(t *testing.T) {
		inst := newInstance(t)
		require.NoError(t, inst.Discover(ticketID, tpl, now))

		require.NoError(t, inst.Claim(prize.ValueCash, now.Add(time.Hour)))
		assert.Equal(t, prize.InstanceClaimed, inst.Status())
		require.NotNil(t, inst.ClaimedValueType())
		assert.Equal(t, prize.ValueCash, *inst.ClaimedValueType())
	})

	t.Run("claim after deadline", func(t *testing.T) {
		inst := newInstance(t)
		require.NoError(t, inst.Discover(ticketID, tpl, now))

		err := inst.Claim(prize.ValueCredit, now.Add(73*time.Hour))
		assert.ErrorIs(t, err, prize.ErrClaimDeadlinePassed)
	})

	t.Run("double claim rejected", func(t *testing.T) {
		inst := newInstance(t)
		require.NoError(t, inst.Discover(ticketID, tpl, now))
		require.NoError(t, inst.Claim(prize.ValueRetail, now))

		assert.ErrorIs(t, inst.Claim(prize.ValueCash, now), prize.ErrInstanceClaimed)
	})

	t.Run("claim before discovery rejected", func(t *testing.T) {
		inst := newInstance(t)
		assert.ErrorIs(t, inst.Claim(prize.ValueCash, now), prize.ErrInstanceNotDiscovered)
	})

	t.Run("forfeit is terminal", func(t *testing.T) {
		inst := newInstance(t)
		require.NoError(t, inst.Discover(ticketID, tpl, now))

		require.NoError(t, inst.Forfeit())
		assert.Equal(t, prize.InstanceForfeited, inst.Status())
		require.NotNil(t, inst.TicketID())

		assert.ErrorIs(t, inst.Claim(prize.ValueCash, now), prize.ErrInstanceForfeited)
		assert.ErrorIs(t, inst.Discover(uuid.New(), tpl, now), prize.ErrInstanceNotAvailable)
	})

	t.Run("forfeit before discovery rejected", func(t *testing.T) {
		inst := newInstance(t)
		assert.ErrorIs(t, inst.Forfeit(), prize.ErrInstanceNotDiscovered)
	})

	t.Run("invalid value type rejected", func(t *testing.T) {
		inst := newInstance(t)
		require.NoError(t, inst.Discover(ticketID, tpl, now))
		assert.ErrorIs(t, inst.Claim(prize.ValueType("bitcoin"), now), prize.ErrInvalidValueType)
	})
}

func TestTemplateValues(t *testing.T) {
	t.Run("cash above retail rejected", func(t *testing.T) {
		_, err := builder.NewTemplateBuilder().
			With(func(b *builder.TemplateBuilder) { b.CashValueCents = b.RetailValueCents + 1 }).
			BuildDomain()
		assert.ErrorIs(t, err, prize.ErrValueAboveRetail)
	})

	t.Run("value lookup per claim type", func(t *testing.T) {
		tpl, err := builder.NewTemplateBuilder().BuildDomain()
		require.NoError(t, err)

		retail, err := tpl.ValueCents(prize.ValueRetail)
		require.NoError(t, err)
		assert.Equal(t, int64(15000), retail)

		cash, err := tpl.ValueCents(prize.ValueCash)
		require.NoError(t, err)
		assert.Equal(t, int64(10000), cash)

		credit, err := tpl.ValueCents(prize.ValueCredit)
		require.NoError(t, err)
		assert.Equal(t, int64(12000), credit)

		_, err = tpl.ValueCents(prize.ValueType("nope"))
		assert.ErrorIs(t, err, prize.ErrInvalidValueType)
	})

	t.Run("deadline hours must be positive", func(t *testing.T) {
		_, err := builder.NewTemplateBuilder().
			With(func(b *builder.TemplateBuilder) { b.ClaimDeadlineHours = 0 }).
			BuildDomain()
		assert.ErrorIs(t, err, prize.ErrInvalidDeadline)
	})
}
