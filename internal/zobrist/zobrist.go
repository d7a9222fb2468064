// Package zobrist builds and incrementally maintains a Zobrist hash over
// a Coinche search state: which cards each hand holds, which cards are in
// the current trick, whose turn it is, the contract's trump suit, and
// each side's running score.
package zobrist

import (
	"math/rand"

	"coinche-solver/internal/shared"
)

// MaxTrackedPoints is one past the highest running score a side can hold
// mid-deal (152 card points + the 10-point dix de der bonus).
const MaxTrackedPoints = 163

// Table holds the random keys used to build and update a Zobrist hash:
// one key per (hand, card), one per card in the current trick, one per seat to
// move, one per trump suit, and one per possible running score on each
// side, so trump choice and accumulated score are both folded into the
// hash alongside cards and turn (see DESIGN.md for why that matters).
type Table struct {
	Hand     [4][32]uint64
	Trick    [32]uint64
	Turn     [4]uint64
	Trump    [5]uint64
	NSPoints [MaxTrackedPoints]uint64
	EWPoints [MaxTrackedPoints]uint64
}

// New builds a Table whose keys are deterministically derived from seed.
// Two Tables built from the same seed produce identical hashes for
// identical states, which is what lets a transposition table be reused
// across runs and across processes that agree on the seed.
func New(seed int64) *Table {
	r := rand.New(rand.NewSource(seed))
	t := &Table{}
	for p := 0; p < 4; p++ {
		for c := 0; c < 32; c++ {
			t.Hand[p][c] = r.Uint64()
		}
	}
	for c := 0; c < 32; c++ {
		t.Trick[c] = r.Uint64()
	}
	for p := 0; p < 4; p++ {
		t.Turn[p] = r.Uint64()
	}
	for s := 0; s < 5; s++ {
		t.Trump[s] = r.Uint64()
	}
	for i := 0; i < MaxTrackedPoints; i++ {
		t.NSPoints[i] = r.Uint64()
	}
	for i := 0; i < MaxTrackedPoints; i++ {
		t.EWPoints[i] = r.Uint64()
	}
	return t
}

// InitialHash computes the hash for a state from scratch: the set of
// cards each player holds, the cards already played to the current
// trick, whose turn it is, the fixed trump suit for the whole search,
// and the running score for each side. Searches update this value
// incrementally from here rather than recomputing it at every node.
func (t *Table) InitialHash(hands [4]shared.Set, trick []shared.PlayedCard, starter int, trump shared.Suit, nsPoints, ewPoints int) uint64 {
	var hash uint64
	for p := 0; p < 4; p++ {
		for _, c := range hands[p].Cards() {
			hash ^= t.Hand[p][c.ID]
		}
	}
	for _, played := range trick {
		hash ^= t.Trick[played.Card.ID]
	}
	currentPlayer := (starter + len(trick)) % 4
	hash ^= t.Turn[currentPlayer]
	hash ^= t.Trump[trump]
	hash ^= t.NSPoints[nsPoints]
	hash ^= t.EWPoints[ewPoints]
	return hash
}
