package shared

import "log"

// PlayedCard stores a card along with the index of the player who played it.
type PlayedCard struct {
	Card        Card
	PlayerIndex int
}

// Trick represents an in-progress or completed trick: up to four cards,
// one per player, in play order starting with the leader.
type Trick struct {
	Cards       []PlayedCard
	WinnerIndex int
}

// NewTrick creates a new, empty trick.
func NewTrick() *Trick {
	return &Trick{
		Cards:       make([]PlayedCard, 0, 4),
		WinnerIndex: -1,
	}
}

// AddCard adds a card and the player's index to the trick.
func (t *Trick) AddCard(card Card, playerIndex int) {
	t.Cards = append(t.Cards, PlayedCard{Card: card, PlayerIndex: playerIndex})
}

// LeadSuit returns the suit of the first card played, if any.
func (t *Trick) LeadSuit() Suit {
	if len(t.Cards) == 0 {
		return NoSuit
	}
	return t.Cards[0].Card.Suit()
}

// EffectiveStrength ranks a card within a trick under trump: trump cards
// always beat non-trump cards, and a non-trump card only has standing at
// all if it matches the trick's lead suit. Cards with no standing report
// -1. Trump cards score 1000+trump_strength. Move ordering
// (movegen.OrderByStrength) does not use this function; it sorts by the
// raw Card.Strength value.
func EffectiveStrength(c Card, lead, trump Suit) int {
	switch {
	case c.Suit() == trump:
		return 1000 + c.Strength(trump)
	case c.Suit() == lead:
		return c.Strength(trump)
	default:
		return -1
	}
}

// DetermineWinner resolves a complete trick under the given trump suit,
// returning the winning player's index. It also sums and returns the
// trick's card point value.
func (t *Trick) DetermineWinner(trump Suit) (winner int, points int) {
	if len(t.Cards) == 0 {
		log.Panicf("Error: Cannot determine winner of an empty trick.")
		return -1, 0
	}

	lead := t.LeadSuit()
	winner = -1
	maxStrength := -1
	for _, played := range t.Cards {
		points += played.Card.Points(trump)
		if str := EffectiveStrength(played.Card, lead, trump); str > maxStrength {
			maxStrength = str
			winner = played.PlayerIndex
		}
	}

	if winner == -1 {
		log.Panicf("Error: No card of led suit (%s) found in trick led by Player %d.", lead, t.Cards[0].PlayerIndex)
	}

	t.WinnerIndex = winner
	return winner, points
}
