package batch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"coinche-solver/internal/search"
	"coinche-solver/internal/shared"
	"coinche-solver/internal/solverconfig"
)

func dealtGame(contractPlayer int) Game {
	deck := shared.NewDeck()
	deck.Shuffle()
	dealt := deck.Deal(4, 8)
	var hands [4]shared.Set
	copy(hands[:], dealt)
	return Game{Hands: hands, ContractPlayer: contractPlayer, Starter: contractPlayer}
}

// smallConfig keeps batch tests fast: a tiny transposition table and a
// fixed worker count instead of the production 2^22-entry default.
func smallConfig(workers int) solverconfig.Config {
	return solverconfig.Config{TableBits: 16, Workers: workers}
}

func TestRunWritesDisjointRows(t *testing.T) {
	games := []Game{dealtGame(0), dealtGame(1), dealtGame(2), dealtGame(3)}

	results, err := Run(games, smallConfig(2))
	require.NoError(t, err)
	require.Len(t, results, len(games))

	for i, g := range games {
		solver := search.NewWithConfig(smallConfig(1))
		scores, err := solver.SolveAllSuits(g.Hands, g.ContractPlayer, g.Trick, g.Starter, g.NSPoints, g.EWPoints)
		require.NoError(t, err)
		require.Equal(t, scores[shared.Hearts], results[i][shared.Hearts])
		require.Equal(t, scores[shared.Diamonds], results[i][shared.Diamonds])
		require.Equal(t, scores[shared.Clubs], results[i][shared.Clubs])
		require.Equal(t, scores[shared.Spades], results[i][shared.Spades])
	}
}

func TestRunPropagatesErrors(t *testing.T) {
	bad := dealtGame(0)
	bad.ContractPlayer = 9 // out of range

	_, err := Run([]Game{bad}, smallConfig(1))
	require.Error(t, err)
}
