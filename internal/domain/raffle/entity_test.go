//go:build unit

package raffle_test

import (
	"testing"
	"time"

	"raffle-core/internal/domain/raffle"
	"raffle-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createCase struct {
	name   string
	mutate func(*builder.RaffleBuilder)
	errIs  error
}

func TestNewRaffle(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRaffleBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, raffle.StatusDraft, actual.Status())
		assert.Equal(t, actual.TotalTickets(), actual.AvailableTickets())
		assert.Nil(t, actual.PoolID())
		assert.Equal(t, int32(0), actual.SoldCount())
	})

	t.Run("validation", func(t *testing.T) {
		runCreateCases(t, []createCase{
			{
				name:   "empty title",
				mutate: func(b *builder.RaffleBuilder) { b.Title = "" },
				errIs:  raffle.ErrEmptyTitle,
			},
			{
				name:   "negative ticket price",
				mutate: func(b *builder.RaffleBuilder) { b.TicketPriceCents = -1 },
				errIs:  raffle.ErrInvalidTicketPrice,
			},
			{
				name:   "free tickets allowed",
				mutate: func(b *builder.RaffleBuilder) { b.TicketPriceCents = 0 },
			},
			{
				name:   "zero total tickets",
				mutate: func(b *builder.RaffleBuilder) { b.TotalTickets = 0 },
				errIs:  raffle.ErrInvalidTicketCounts,
			},
			{
				name:   "single ticket raffle",
				mutate: func(b *builder.RaffleBuilder) { b.TotalTickets = 1 },
			},
			{
				name:   "zero per-buyer limit",
				mutate: func(b *builder.RaffleBuilder) { b.MaxPerBuyer = 0 },
				errIs:  raffle.ErrInvalidPerBuyerMax,
			},
			{
				name:   "end before start",
				mutate: func(b *builder.RaffleBuilder) { b.EndsAt = b.StartsAt.Add(-time.Minute) },
				errIs:  raffle.ErrInvalidTimeWindow,
			},
			{
				name:   "end equals start",
				mutate: func(b *builder.RaffleBuilder) { b.EndsAt = b.StartsAt },
				errIs:  raffle.ErrInvalidTimeWindow,
			},
		})
	})
}

func TestReconstructRaffle(t *testing.T) {
	t.Run("available above total rejected", func(t *testing.T) {
		actual, err := builder.NewRaffleBuilder().
			With(func(b *builder.RaffleBuilder) { b.AvailableTickets = b.TotalTickets + 1 }).
			BuildReconstructed()
		require.ErrorIs(t, err, raffle.ErrInvalidTicketCounts)
		require.Nil(t, actual)
	})

	t.Run("negative available rejected", func(t *testing.T) {
		actual, err := builder.NewRaffleBuilder().
			With(func(b *builder.RaffleBuilder) { b.AvailableTickets = -1 }).
			BuildReconstructed()
		require.ErrorIs(t, err, raffle.ErrInvalidTicketCounts)
		require.Nil(t, actual)
	})

	t.Run("sold count derives from counters", func(t *testing.T) {
		actual, err := builder.NewRaffleBuilder().
			With(func(b *builder.RaffleBuilder) { b.AvailableTickets = 37 }).
			BuildReconstructed()
		require.NoError(t, err)
		assert.Equal(t, int32(63), actual.SoldCount())
	})
}

func TestCanPurchaseAt(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name   string
		mutate func(*builder.RaffleBuilder)
		want   bool
	}{
		{
			name:   "active inside window",
			mutate: func(b *builder.RaffleBuilder) {},
			want:   true,
		},
		{
			name:   "active before window opens",
			mutate: func(b *builder.RaffleBuilder) { b.StartsAt = now.Add(time.Hour) },
			want:   false,
		},
		{
			name: "active after window closed",
			mutate: func(b *builder.RaffleBuilder) {
				b.StartsAt = now.Add(-2 * time.Hour)
				b.EndsAt = now.Add(-time.Hour)
			},
			want: false,
		},
		{
			name:   "draft inside window",
			mutate: func(b *builder.RaffleBuilder) { b.Status = raffle.StatusDraft },
			want:   false,
		},
		{
			name:   "inactive inside window",
			mutate: func(b *builder.RaffleBuilder) { b.Status = raffle.StatusInactive },
			want:   false,
		},
		{
			name:   "sold out inside window",
			mutate: func(b *builder.RaffleBuilder) { b.Status = raffle.StatusSoldOut },
			want:   false,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			raf, err := builder.NewRaffleBuilder().With(c.mutate).BuildReconstructed()
			require.NoError(t, err)
			assert.Equal(t, c.want, raf.CanPurchaseAt(now))
		})
	}
}

func TestValidateTransition(t *testing.T) {
	now := time.Now()

	build := func(status raffle.Status, mutate ...func(*builder.RaffleBuilder)) *raffle.Raffle {
		t.Helper()
		b := builder.NewRaffleBuilder().With(func(b *builder.RaffleBuilder) { b.Status = status })
		for _, m := range mutate {
			b.With(m)
		}
		raf, err := b.BuildReconstructed()
		require.NoError(t, err)
		return raf
	}

	t.Run("forward moves allowed", func(t *testing.T) {
		raf := build(raffle.StatusActive)
		assert.NoError(t, raf.ValidateTransition(raffle.StatusInactive, now))
		assert.NoError(t, raf.ValidateTransition(raffle.StatusSoldOut, now))
		assert.NoError(t, raf.ValidateTransition(raffle.StatusEnded, now))
	})

	t.Run("backward moves rejected", func(t *testing.T) {
		raf := build(raffle.StatusSoldOut)
		assert.ErrorIs(t, raf.ValidateTransition(raffle.StatusActive, now), raffle.ErrInvalidTransition)
		assert.ErrorIs(t, raf.ValidateTransition(raffle.StatusDraft, now), raffle.ErrInvalidTransition)
	})

	t.Run("same status rejected", func(t *testing.T) {
		raf := build(raffle.StatusActive)
		assert.ErrorIs(t, raf.ValidateTransition(raffle.StatusActive, now), raffle.ErrInvalidTransition)
	})

	t.Run("terminal states are frozen", func(t *testing.T) {
		for _, s := range []raffle.Status{raffle.StatusEnded, raffle.StatusCancelled} {
			raf := build(s)
			assert.ErrorIs(t, raf.ValidateTransition(raffle.StatusCancelled, now), raffle.ErrInvalidTransition)
			assert.ErrorIs(t, raf.ValidateTransition(raffle.StatusActive, now), raffle.ErrInvalidTransition)
		}
	})

	t.Run("cancel allowed from any non-terminal state", func(t *testing.T) {
		for _, s := range []raffle.Status{
			raffle.StatusDraft, raffle.StatusComingSoon, raffle.StatusActive,
			raffle.StatusInactive, raffle.StatusSoldOut,
		} {
			raf := build(s)
			assert.NoError(t, raf.ValidateTransition(raffle.StatusCancelled, now), "from %s", s)
		}
	})

	t.Run("coming_soon only before window opens", func(t *testing.T) {
		raf := build(raffle.StatusDraft, func(b *builder.RaffleBuilder) {
			b.StartsAt = now.Add(time.Hour)
			b.EndsAt = now.Add(2 * time.Hour)
		})
		assert.NoError(t, raf.ValidateTransition(raffle.StatusComingSoon, now))

		opened := build(raffle.StatusDraft)
		assert.ErrorIs(t, opened.ValidateTransition(raffle.StatusComingSoon, now), raffle.ErrComingSoonAfterOpen)
	})

	t.Run("activation requires window and pool", func(t *testing.T) {
		ready := build(raffle.StatusDraft)
		assert.NoError(t, ready.ValidateTransition(raffle.StatusActive, now))

		early := build(raffle.StatusDraft, func(b *builder.RaffleBuilder) {
			b.StartsAt = now.Add(time.Hour)
			b.EndsAt = now.Add(2 * time.Hour)
		})
		assert.ErrorIs(t, early.ValidateTransition(raffle.StatusActive, now), raffle.ErrActivationWindow)

		noPool := build(raffle.StatusDraft, func(b *builder.RaffleBuilder) { b.PoolID = nil })
		assert.ErrorIs(t, noPool.ValidateTransition(raffle.StatusActive, now), raffle.ErrActivationNeedsPool)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		raf := build(raffle.StatusDraft)
		assert.ErrorIs(t, raf.ValidateTransition(raffle.Status("bogus"), now), raffle.ErrInvalidStatus)
	})
}

func TestAssignPool(t *testing.T) {
	poolID := uuid.New()

	t.Run("assignable while draft", func(t *testing.T) {
		raf, err := builder.NewRaffleBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, raf.AssignPool(poolID))
		require.NotNil(t, raf.PoolID())
		assert.Equal(t, poolID, *raf.PoolID())
	})

	t.Run("rejected once active", func(t *testing.T) {
		raf, err := builder.NewRaffleBuilder().BuildReconstructed()
		require.NoError(t, err)

		assert.ErrorIs(t, raf.AssignPool(poolID), raffle.ErrInvalidTransition)
	})
}

func runCreateCases(t *testing.T, cases []createCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewRaffleBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
