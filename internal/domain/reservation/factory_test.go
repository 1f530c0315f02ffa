//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"raffle-core/internal/domain/reservation"
	"raffle-core/internal/pkg/clock"
	"raffle-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPolicy = reservation.HoldPolicy{
	TTL:          5 * time.Minute,
	MinTimeToEnd: 2 * time.Minute,
}

func newFactory(t *testing.T, now time.Time) *reservation.Factory {
	t.Helper()
	f, err := reservation.NewFactory(clock.NewFakeClock(now), testPolicy)
	require.NoError(t, err)
	return f
}

func TestNewFactory(t *testing.T) {
	_, err := reservation.NewFactory(clock.NewFakeClock(time.Now()), reservation.HoldPolicy{TTL: 0})
	assert.ErrorIs(t, err, reservation.ErrInvalidHoldDuration)
}

func TestCreateReservation(t *testing.T) {
	now := time.Now()
	buyerID := uuid.New()

	activeRaffle := func(t *testing.T, mutate ...func(*builder.RaffleBuilder)) *builder.RaffleBuilder {
		t.Helper()
		b := builder.NewRaffleBuilder().With(func(b *builder.RaffleBuilder) {
			b.StartsAt = now.Add(-time.Hour)
			b.EndsAt = now.Add(time.Hour)
		})
		for _, m := range mutate {
			b.With(m)
		}
		return b
	}

	t.Run("basic success case", func(t *testing.T) {
		raf, err := activeRaffle(t).BuildReconstructed()
		require.NoError(t, err)

		res, err := newFactory(t, now).CreateReservation(raf, buyerID, 3, 0)
		require.NoError(t, err)
		require.NotNil(t, res)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, raf.ID(), res.RaffleID())
		assert.Equal(t, buyerID, res.BuyerID())
		assert.Equal(t, int32(3), res.Quantity())
		assert.Equal(t, int64(1500), res.AmountCents())
		assert.Equal(t, reservation.StatusActive, res.Status())
		assert.Equal(t, now.Add(testPolicy.TTL), res.ExpiresAt())
	})

	t.Run("zero quantity", func(t *testing.T) {
		raf, err := activeRaffle(t).BuildReconstructed()
		require.NoError(t, err)

		_, err = newFactory(t, now).CreateReservation(raf, buyerID, 0, 0)
		assert.ErrorIs(t, err, reservation.ErrInvalidQuantity)
	})

	t.Run("raffle not open", func(t *testing.T) {
		raf, err := activeRaffle(t, func(b *builder.RaffleBuilder) {
			b.StartsAt = now.Add(time.Hour)
			b.EndsAt = now.Add(2 * time.Hour)
		}).BuildReconstructed()
		require.NoError(t, err)

		_, err = newFactory(t, now).CreateReservation(raf, buyerID, 1, 0)
		assert.ErrorIs(t, err, reservation.ErrRaffleNotActive)
	})

	t.Run("per-buyer limit counts existing holds", func(t *testing.T) {
		raf, err := activeRaffle(t, func(b *builder.RaffleBuilder) { b.MaxPerBuyer = 5 }).BuildReconstructed()
		require.NoError(t, err)
		f := newFactory(t, now)

		res, err := f.CreateReservation(raf, buyerID, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, int32(2), res.Quantity())

		_, err = f.CreateReservation(raf, buyerID, 3, 3)
		assert.ErrorIs(t, err, reservation.ErrExceedsPerBuyerMax)
	})

	t.Run("hold shortened near raffle end", func(t *testing.T) {
		endsAt := now.Add(4 * time.Minute)
		raf, err := activeRaffle(t, func(b *builder.RaffleBuilder) { b.EndsAt = endsAt }).BuildReconstructed()
		require.NoError(t, err)

		res, err := newFactory(t, now).CreateReservation(raf, buyerID, 1, 0)
		require.NoError(t, err)

		assert.True(t, res.ExpiresAt().Before(endsAt), "hold must not outlive the raffle")
		assert.True(t, res.ExpiresAt().After(now), "shortened hold must still be usable")
	})

	t.Run("too close to raffle end", func(t *testing.T) {
		raf, err := activeRaffle(t, func(b *builder.RaffleBuilder) {
			b.EndsAt = now.Add(90 * time.Second)
		}).BuildReconstructed()
		require.NoError(t, err)

		_, err = newFactory(t, now).CreateReservation(raf, buyerID, 1, 0)
		assert.ErrorIs(t, err, reservation.ErrTooCloseToEnd)
	})

	t.Run("free raffle prices at zero", func(t *testing.T) {
		raf, err := activeRaffle(t, func(b *builder.RaffleBuilder) { b.TicketPriceCents = 0 }).BuildReconstructed()
		require.NoError(t, err)

		res, err := newFactory(t, now).CreateReservation(raf, buyerID, 4, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.AmountCents())
	})
}

func TestReservationConfirmGuards(t *testing.T) {
	now := time.Now()

	base := func(status reservation.Status, expiresAt time.Time) *reservation.Reservation {
		return reservation.ReconstructReservation(
			uuid.New(), uuid.New(), uuid.New(),
			2, 1000, status, expiresAt, now.Add(-time.Minute), nil,
		)
	}

	t.Run("active and unexpired", func(t *testing.T) {
		res := base(reservation.StatusActive, now.Add(time.Minute))
		assert.NoError(t, res.CanConfirm(now))
	})

	t.Run("expired hold", func(t *testing.T) {
		res := base(reservation.StatusActive, now.Add(-time.Second))
		assert.ErrorIs(t, res.CanConfirm(now), reservation.ErrReservationExpired)
		assert.True(t, res.HasExpired(now))
	})

	t.Run("already resolved", func(t *testing.T) {
		for _, s := range []reservation.Status{
			reservation.StatusConfirmed, reservation.StatusCancelled, reservation.StatusExpired,
		} {
			res := base(s, now.Add(time.Minute))
			assert.ErrorIs(t, res.CanConfirm(now), reservation.ErrAlreadyResolved, "status %s", s)
		}
	})
}
