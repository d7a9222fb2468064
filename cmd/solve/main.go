// Command solve deals a shuffled deck, solves every trump suit for a
// chosen contract seat, and prints the forced score table.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"

	"coinche-solver/internal/corelog"
	"coinche-solver/internal/search"
	"coinche-solver/internal/shared"
)

func main() {
	contractPlayer := flag.Int("contract-player", 0, "seat (0-3) holding the contract")
	flag.Parse()

	if *contractPlayer < 0 || *contractPlayer > 3 {
		log.Fatalf("contract-player must be 0-3, got %d", *contractPlayer)
	}

	runID := uuid.New()
	corelog.Info("solve %s: dealing a fresh 32-card deck", runID)

	deck := shared.NewDeck()
	deck.Shuffle()
	dealt := deck.Deal(4, 8)
	if dealt == nil {
		log.Fatalf("solve %s: failed to deal", runID)
	}

	var hands [4]shared.Set
	copy(hands[:], dealt)

	solver := search.New()
	scores, err := solver.SolveAllSuits(hands, *contractPlayer, nil, *contractPlayer, 0, 0)
	if err != nil {
		log.Fatalf("solve %s: %v", runID, err)
	}

	fmt.Printf("Contract player: %d (%s)\n", *contractPlayer, shared.TeamOf(*contractPlayer))

	best := scores[shared.Hearts]
	for _, suit := range []shared.Suit{shared.Hearts, shared.Diamonds, shared.Clubs, shared.Spades} {
		fmt.Printf("  trump %s: %d\n", suit, scores[suit])
		if scores[suit] > best {
			best = scores[suit]
		}
	}

	team := shared.NewTeam(shared.TeamOf(*contractPlayer))
	team.AddScore(best)
	fmt.Printf("Best achievable for team %s: %d\n", team.Which, team.Score)
}
