// Package draw provides the randomness used for instant-win decisions.
// Every draw consumes a fresh seed so the roll can be replayed for audit;
// production seeds come from crypto/rand, tests inject fixed seeds.
package draw

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"

	"github.com/google/uuid"

	"raffle-core/internal/pkg/errs"
)

var ErrSeedUnavailable = errs.New("random seed unavailable")

type Source interface {
	Seed() (uint64, error)
}

type CryptoSource struct{}

func NewCryptoSource() Source {
	return &CryptoSource{}
}

func (s *CryptoSource) Seed() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, errs.Mark(err, ErrSeedUnavailable)
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// FixedSource replays a fixed seed sequence, cycling when exhausted.
type FixedSource struct {
	seeds []uint64
	next  int
}

func NewFixedSource(seeds ...uint64) *FixedSource {
	if len(seeds) == 0 {
		seeds = []uint64{1}
	}
	return &FixedSource{seeds: seeds}
}

func (s *FixedSource) Seed() (uint64, error) {
	seed := s.seeds[s.next%len(s.seeds)]
	s.next++
	return seed, nil
}

// Roll maps a seed deterministically onto [0,100).
func Roll(seed uint64) float64 {
	rng := mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return rng.Float64() * 100
}

type Weighted struct {
	ID   uuid.UUID
	Odds float64 // percentage share of the roll space
}

// Pick walks the cumulative odds of entries and returns the one whose band
// contains the roll. Entries must sum to at most 100; rolls landing beyond
// the total mass select nothing, which is the common case.
func Pick(roll float64, entries []Weighted) (uuid.UUID, bool) {
	cumulative := 0.0
	for _, e := range entries {
		cumulative += e.Odds
		if roll < cumulative {
			return e.ID, true
		}
	}
	return uuid.Nil, false
}
