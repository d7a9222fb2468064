// Package movegen enumerates the legal cards a player may play next,
// given their hand and the trick in progress.
package movegen

import (
	"sort"

	"coinche-solver/internal/shared"
)

// LegalMoves returns the cards hand may legally play onto trick under the
// given trump suit, in the strict Coinche order:
//
//  1. Leading a trick: any card is legal.
//  2. Following suit: must follow the lead suit if holding any; if the
//     lead suit is trump, must play a strictly higher trump than the
//     best trump already in the trick if able, else any card of the
//     lead suit.
//  3. Unable to follow, but holding trump: must overtrump the best trump
//     currently in the trick if able, else may play any trump held.
//  4. Unable to follow and holding no trump: any card is legal.
//
// This never relaxes rule 3 when a partner is already winning the trick:
// overtrumping is required unconditionally.
func LegalMoves(hand shared.Set, trick []shared.PlayedCard, trump shared.Suit) []shared.Card {
	if hand.IsEmpty() {
		return nil
	}

	if len(trick) == 0 {
		return hand.Cards()
	}

	lead := trick[0].Card.Suit()
	follow := hand.BySuit(lead)
	trumps := hand.BySuit(trump)

	if !follow.IsEmpty() {
		if lead == trump {
			if higher := higherTrumps(follow, trick, trump); len(higher) > 0 {
				return higher
			}
			return follow.Cards()
		}
		return follow.Cards()
	}

	if !trumps.IsEmpty() {
		if higher := higherTrumps(trumps, trick, trump); len(higher) > 0 {
			return higher
		}
		return trumps.Cards()
	}

	return hand.Cards()
}

// higherTrumps returns the subset of candidates whose trump strength
// exceeds the strongest trump already played in trick. candidates must
// all be trump-suited.
func higherTrumps(candidates shared.Set, trick []shared.PlayedCard, trump shared.Suit) []shared.Card {
	best := bestTrumpStrength(trick, trump)
	cards := candidates.Cards()
	higher := cards[:0:0]
	for _, c := range cards {
		if c.Strength(trump) > best {
			higher = append(higher, c)
		}
	}
	return higher
}

func bestTrumpStrength(trick []shared.PlayedCard, trump shared.Suit) int {
	best := -1
	for _, played := range trick {
		if played.Card.Suit() == trump {
			if s := played.Card.Strength(trump); s > best {
				best = s
			}
		}
	}
	return best
}

// OrderByStrength sorts moves in place by descending trump-aware
// strength. This is a pure move-ordering heuristic for alpha-beta — it
// never changes which moves are legal, only the order they are tried in.
func OrderByStrength(moves []shared.Card, trump shared.Suit) {
	sort.Slice(moves, func(i, j int) bool {
		return moves[i].Strength(trump) > moves[j].Strength(trump)
	})
}
