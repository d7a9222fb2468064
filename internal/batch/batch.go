// Package batch fans a set of independent deals out across a pool of
// worker goroutines, each owning its own search.Solver (and therefore its
// own transposition table), writing results into disjoint rows of a
// pre-allocated result matrix so no synchronization is needed on output.
package batch

import (
	"sync"

	"github.com/google/uuid"

	"coinche-solver/internal/corelog"
	"coinche-solver/internal/search"
	"coinche-solver/internal/shared"
	"coinche-solver/internal/solverconfig"
)

// Game is one deal to solve: the four hands, the contract seat, any
// trick already in progress, and the running score.
type Game struct {
	Hands          [4]shared.Set
	ContractPlayer int
	Trick          []search.Play
	Starter        int
	NSPoints       int
	EWPoints       int
}

// Results is an N x 4 matrix of per-suit scores, row-indexed the same as
// the input games, column-indexed by shared.Suit (Hearts..Spades).
type Results [][4]int

// Run solves every game in games, fanning work across cfg.WorkerCount()
// goroutines. Each worker gets its own search.Solver; games are
// statically partitioned across workers round-robin so no two goroutines
// ever touch the same row of the result matrix.
func Run(games []Game, cfg solverconfig.Config) (Results, error) {
	results := make(Results, len(games))
	workers := cfg.WorkerCount()
	if workers > len(games) {
		workers = len(games)
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			id := uuid.New()
			solver := search.NewWithConfig(cfg)
			corelog.Info("batch: worker %s (%d) starting, solver %s", id, worker, solver.ID)

			team := shared.NewTeam(shared.TeamNorthSouth)
			for i := worker; i < len(games); i += workers {
				g := games[i]
				scores, err := solver.SolveAllSuits(g.Hands, g.ContractPlayer, g.Trick, g.Starter, g.NSPoints, g.EWPoints)
				if err != nil {
					errs[worker] = err
					return
				}
				results[i] = [4]int{
					scores[shared.Hearts],
					scores[shared.Diamonds],
					scores[shared.Clubs],
					scores[shared.Spades],
				}

				best := results[i][0]
				for _, v := range results[i][1:] {
					if v > best {
						best = v
					}
				}
				team.ResetScore()
				team.Which = shared.TeamOf(g.ContractPlayer)
				team.AddScore(best)
				corelog.Info("batch: worker %d game %d: team %s best forced score %d", worker, i, team.Which, team.Score)
			}
		}(w)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
