//go:build unit

package ticket_test

import (
	"testing"
	"time"

	"raffle-core/internal/domain/ticket"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintSold(t *testing.T) {
	raffleID := uuid.New()
	buyerID := uuid.New()
	now := time.Now()

	t.Run("basic success case", func(t *testing.T) {
		tk, err := ticket.MintSold(raffleID, buyerID, 7, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, tk.ID())
		assert.Equal(t, ticket.StatusSold, tk.Status())
		assert.False(t, tk.IsRevealed())
		assert.False(t, tk.InstantWin())
		assert.Nil(t, tk.PrizeInstanceID())
		assert.Equal(t, now, tk.PurchasedAt())
	})

	t.Run("non-positive numbers rejected", func(t *testing.T) {
		for _, n := range []int32{0, -1} {
			_, err := ticket.MintSold(raffleID, buyerID, n, now)
			assert.ErrorIs(t, err, ticket.ErrInvalidTicketNum)
		}
	})

	t.Run("display number embeds raffle prefix", func(t *testing.T) {
		tk, err := ticket.MintSold(raffleID, buyerID, 3, now)
		require.NoError(t, err)

		assert.Equal(t, raffleID.String()[:8]+"-003", tk.DisplayNumber())
	})
}

func TestCanReveal(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	now := time.Now()

	reconstruct := func(status ticket.Status) *ticket.Ticket {
		return ticket.ReconstructTicket(
			uuid.New(), uuid.New(), owner, 1, status,
			status != ticket.StatusSold && status != ticket.StatusVoid,
			false, nil, now, nil, nil,
		)
	}

	t.Run("owner reveals sold ticket", func(t *testing.T) {
		assert.NoError(t, reconstruct(ticket.StatusSold).CanReveal(owner))
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		assert.ErrorIs(t, reconstruct(ticket.StatusSold).CanReveal(stranger), ticket.ErrNotTicketOwner)
	})

	t.Run("second reveal is an error", func(t *testing.T) {
		assert.ErrorIs(t, reconstruct(ticket.StatusRevealed).CanReveal(owner), ticket.ErrAlreadyRevealed)
		assert.ErrorIs(t, reconstruct(ticket.StatusClaimed).CanReveal(owner), ticket.ErrAlreadyRevealed)
	})

	t.Run("void ticket", func(t *testing.T) {
		assert.ErrorIs(t, reconstruct(ticket.StatusVoid).CanReveal(owner), ticket.ErrTicketVoid)
	})
}

func TestCanClaim(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	now := time.Now()
	instanceID := uuid.New()

	reconstruct := func(status ticket.Status, instantWin bool, prizeID *uuid.UUID) *ticket.Ticket {
		return ticket.ReconstructTicket(
			uuid.New(), uuid.New(), owner, 1, status,
			status != ticket.StatusSold, instantWin, prizeID, now, nil, nil,
		)
	}

	t.Run("revealed instant win is claimable", func(t *testing.T) {
		tk := reconstruct(ticket.StatusRevealed, true, &instanceID)
		assert.NoError(t, tk.CanClaim(owner))
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		tk := reconstruct(ticket.StatusRevealed, true, &instanceID)
		assert.ErrorIs(t, tk.CanClaim(stranger), ticket.ErrNotTicketOwner)
	})

	t.Run("unrevealed ticket", func(t *testing.T) {
		tk := reconstruct(ticket.StatusSold, false, nil)
		assert.ErrorIs(t, tk.CanClaim(owner), ticket.ErrNotRevealed)
	})

	t.Run("losing ticket", func(t *testing.T) {
		tk := reconstruct(ticket.StatusRevealed, false, nil)
		assert.ErrorIs(t, tk.CanClaim(owner), ticket.ErrNoPrizeWon)
	})

	t.Run("draw winner claims without instant win", func(t *testing.T) {
		tk := reconstruct(ticket.StatusRevealed, false, &instanceID)
		assert.NoError(t, tk.CanClaim(owner))
	})

	t.Run("already claimed", func(t *testing.T) {
		tk := reconstruct(ticket.StatusClaimed, true, &instanceID)
		assert.ErrorIs(t, tk.CanClaim(owner), ticket.ErrAlreadyClaimed)
	})

	t.Run("void ticket", func(t *testing.T) {
		tk := reconstruct(ticket.StatusVoid, true, &instanceID)
		assert.ErrorIs(t, tk.CanClaim(owner), ticket.ErrTicketVoid)
	})
}
