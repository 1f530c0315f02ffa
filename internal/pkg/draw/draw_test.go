//go:build unit

package draw_test

import (
	"testing"

	"raffle-core/internal/pkg/draw"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoll(t *testing.T) {
	t.Run("deterministic for a seed", func(t *testing.T) {
		assert.Equal(t, draw.Roll(42), draw.Roll(42))
		assert.NotEqual(t, draw.Roll(42), draw.Roll(43))
	})

	t.Run("stays in range", func(t *testing.T) {
		for seed := uint64(0); seed < 1000; seed++ {
			r := draw.Roll(seed)
			require.GreaterOrEqual(t, r, 0.0)
			require.Less(t, r, 100.0)
		}
	})
}

func TestPick(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	entries := []draw.Weighted{
		{ID: a, Odds: 2.0},
		{ID: b, Odds: 3.0},
	}

	t.Run("roll inside first band", func(t *testing.T) {
		id, won := draw.Pick(1.5, entries)
		assert.True(t, won)
		assert.Equal(t, a, id)
	})

	t.Run("roll inside second band", func(t *testing.T) {
		id, won := draw.Pick(4.9, entries)
		assert.True(t, won)
		assert.Equal(t, b, id)
	})

	t.Run("band boundary belongs to the next entry", func(t *testing.T) {
		id, won := draw.Pick(2.0, entries)
		assert.True(t, won)
		assert.Equal(t, b, id)
	})

	t.Run("roll beyond total mass loses", func(t *testing.T) {
		_, won := draw.Pick(5.0, entries)
		assert.False(t, won)

		_, won = draw.Pick(99.9, entries)
		assert.False(t, won)
	})

	t.Run("empty entries always lose", func(t *testing.T) {
		_, won := draw.Pick(0.0, nil)
		assert.False(t, won)
	})
}

func TestFixedSource(t *testing.T) {
	src := draw.NewFixedSource(10, 20)

	for _, want := range []uint64{10, 20, 10, 20} {
		seed, err := src.Seed()
		require.NoError(t, err)
		assert.Equal(t, want, seed)
	}
}

func TestCryptoSource(t *testing.T) {
	src := draw.NewCryptoSource()

	a, err := src.Seed()
	require.NoError(t, err)
	b, err := src.Seed()
	require.NoError(t, err)

	// Equal seeds from two 64-bit draws would be a near-impossibility.
	assert.NotEqual(t, a, b)
}

// With a 5% prize band the win rate over many independent seeds must settle
// near 5%. Seeds are fixed offsets so the test is reproducible.
func TestWinRateConvergence(t *testing.T) {
	prizeID := uuid.New()
	entries := []draw.Weighted{{ID: prizeID, Odds: 5.0}}

	const trials = 100000
	wins := 0
	for i := 0; i < trials; i++ {
		roll := draw.Roll(uint64(i) * 2654435761)
		if _, won := draw.Pick(roll, entries); won {
			wins++
		}
	}

	rate := float64(wins) / float64(trials)
	assert.InDelta(t, 0.05, rate, 0.005)
}
