package movegen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"coinche-solver/internal/shared"
)

func TestLegalMovesLeadingAnyCard(t *testing.T) {
	hand := shared.NewSet(shared.NewCard(shared.Hearts, shared.Seven), shared.NewCard(shared.Clubs, shared.Ace))
	moves := LegalMoves(hand, nil, shared.Spades)
	require.Len(t, moves, 2)
}

func TestLegalMovesMustFollowSuit(t *testing.T) {
	hand := shared.NewSet(
		shared.NewCard(shared.Hearts, shared.Seven),
		shared.NewCard(shared.Clubs, shared.Ace),
	)
	trick := []shared.PlayedCard{{Card: shared.NewCard(shared.Hearts, shared.King), PlayerIndex: 0}}

	moves := LegalMoves(hand, trick, shared.Spades)
	require.Len(t, moves, 1)
	require.Equal(t, shared.NewCard(shared.Hearts, shared.Seven), moves[0])
}

func TestLegalMovesTrumpLeadMustOvertrump(t *testing.T) {
	// Trump is led (Spades); holder of a higher and a lower trump must
	// play the higher one.
	hand := shared.NewSet(
		shared.NewCard(shared.Spades, shared.Eight),  // strength 60, lower than led Nine (150)
		shared.NewCard(shared.Spades, shared.Jack),   // strength 200, higher
	)
	trick := []shared.PlayedCard{{Card: shared.NewCard(shared.Spades, shared.Nine), PlayerIndex: 0}}

	moves := LegalMoves(hand, trick, shared.Spades)
	require.Len(t, moves, 1)
	require.Equal(t, shared.NewCard(shared.Spades, shared.Jack), moves[0])
}

func TestLegalMovesTrumpLeadAnyIfCannotOvertrump(t *testing.T) {
	hand := shared.NewSet(
		shared.NewCard(shared.Spades, shared.Seven), // strength 50
		shared.NewCard(shared.Spades, shared.Eight), // strength 60
	)
	trick := []shared.PlayedCard{{Card: shared.NewCard(shared.Spades, shared.Jack), PlayerIndex: 0}} // strength 200

	moves := LegalMoves(hand, trick, shared.Spades)
	require.Len(t, moves, 2)
}

func TestLegalMovesMustOvertrumpEvenIfPartnerWinning(t *testing.T) {
	// Lead is a non-trump suit player 0 doesn't hold; their partner
	// (player 2, same team) already played a modest trump. Player 0 must
	// still play a higher trump than the best trump in the trick even
	// though their own partner currently holds the trick — this rule is
	// never relaxed.
	hand := shared.NewSet(
		shared.NewCard(shared.Spades, shared.Ace),  // strength 100, lower than Jack (200)
		shared.NewCard(shared.Spades, shared.Jack), // strength 200, higher
	)
	trick := []shared.PlayedCard{
		{Card: shared.NewCard(shared.Hearts, shared.King), PlayerIndex: 1}, // opponent's lead, non-trump, some other suit
		{Card: shared.NewCard(shared.Spades, shared.Nine), PlayerIndex: 2},     // partner's trump cut, strength 150
		{Card: shared.NewCard(shared.Hearts, shared.Seven), PlayerIndex: 3},    // opponent follows suit
	}

	moves := LegalMoves(hand, trick, shared.Spades)
	require.Len(t, moves, 1)
	require.Equal(t, shared.NewCard(shared.Spades, shared.Jack), moves[0])
}

func TestLegalMovesAnyCardWhenCannotFollowOrTrump(t *testing.T) {
	hand := shared.NewSet(shared.NewCard(shared.Diamonds, shared.Seven), shared.NewCard(shared.Clubs, shared.Ace))
	trick := []shared.PlayedCard{{Card: shared.NewCard(shared.Hearts, shared.King), PlayerIndex: 0}}

	moves := LegalMoves(hand, trick, shared.Spades)
	require.Len(t, moves, 2)
}

func TestOrderByStrengthDescending(t *testing.T) {
	moves := []shared.Card{
		shared.NewCard(shared.Hearts, shared.Seven),
		shared.NewCard(shared.Hearts, shared.Jack),
		shared.NewCard(shared.Hearts, shared.Nine),
	}
	OrderByStrength(moves, shared.Hearts)
	require.Equal(t, shared.NewCard(shared.Hearts, shared.Jack), moves[0])
	require.Equal(t, shared.NewCard(shared.Hearts, shared.Nine), moves[1])
	require.Equal(t, shared.NewCard(shared.Hearts, shared.Seven), moves[2])
}
