// Package search implements the alpha-beta double-dummy solver: given
// four hands, a trump suit, a contract, and any trick already in
// progress, it computes the maximum total score the contract's team can
// force under perfect defense.
package search

import (
	"github.com/google/uuid"

	"coinche-solver/internal/corelog"
	"coinche-solver/internal/movegen"
	"coinche-solver/internal/shared"
	"coinche-solver/internal/solverconfig"
	"coinche-solver/internal/zobrist"
)

// ttEntry is one slot of the direct-mapped transposition table. A zero
// key never legitimately occurs for a populated table because every
// state's hash mixes in at least a turn key and a trump key, so a bare
// key==0 comparison at construction time is a safe "empty" sentinel.
type ttEntry struct {
	key   uint64
	value int
}

// Solver holds one worker's private search state: its own transposition
// table and Zobrist key table. A Solver is not safe for concurrent use;
// callers run one Solver per worker goroutine (see internal/batch)
// rather than sharing one across goroutines.
type Solver struct {
	ID      uuid.UUID
	zobrist *zobrist.Table
	tt      []ttEntry
	mask    uint64
}

// zobristSeed is fixed so that hashes — and therefore the transposition
// table's contents — are reproducible across runs.
const zobristSeed = 42

// New builds a Solver using the default table size (2^22 entries).
func New() *Solver {
	return NewWithConfig(solverconfig.Default())
}

// NewWithConfig builds a Solver with a caller-chosen table size, mainly
// useful for tests that want a far smaller table than production.
func NewWithConfig(cfg solverconfig.Config) *Solver {
	size := uint64(1) << cfg.TableBits
	s := &Solver{
		ID:      uuid.New(),
		zobrist: zobrist.New(zobristSeed),
		tt:      make([]ttEntry, size),
		mask:    size - 1,
	}
	corelog.Info("search: solver %s allocated table of %d entries", s.ID, size)
	return s
}

// Solve computes the maximum total score (trick points plus bonuses) the
// contract player's team can force from this state onward under perfect
// defense, given ns_points and ew_points already secured earlier in this
// same deal.
func (s *Solver) Solve(hands [4]shared.Set, trump shared.Suit, contractPlayer int, trick []Play, starter, nsPoints, ewPoints int) (int, error) {
	if err := validate(hands, contractPlayer, trick, starter, nsPoints, ewPoints); err != nil {
		return 0, err
	}

	contractTeam := contractPlayer % 2
	hash := s.zobrist.InitialHash(hands, toPlayedCards(trick), starter, trump, nsPoints, ewPoints)
	total := s.alphaBeta(hands, trump, trick, starter, nsPoints, ewPoints, -1, 163, contractTeam, hash)

	if beloteBonus(hands, trump, contractTeam) {
		total += 20
	}
	return total, nil
}

// SolveAllSuits calls Solve once per candidate trump suit, returning the
// contract team's forced score under each. Each call reuses this
// Solver's transposition table; contract suit is folded into the hash
// (see internal/zobrist) so the four calls' cached entries never
// collide with each other.
func (s *Solver) SolveAllSuits(hands [4]shared.Set, contractPlayer int, trick []Play, starter, nsPoints, ewPoints int) (map[shared.Suit]int, error) {
	suits := []shared.Suit{shared.Hearts, shared.Diamonds, shared.Clubs, shared.Spades}
	results := make(map[shared.Suit]int, len(suits))
	for _, suit := range suits {
		val, err := s.Solve(hands, suit, contractPlayer, trick, starter, nsPoints, ewPoints)
		if err != nil {
			return nil, err
		}
		results[suit] = val
	}
	return results, nil
}

// beloteBonus reports whether a single player on the contract team holds
// both the King and Queen of trump in their starting hand. Belote is
// checked once here, over the hands Solve was called with, not
// recomputed per recursive node.
func beloteBonus(hands [4]shared.Set, trump shared.Suit, contractTeam int) bool {
	for p := 0; p < 4; p++ {
		if p%2 != contractTeam {
			continue
		}
		player := shared.Player{Hand: hands[p]}
		if player.CheckBelote(trump) {
			return true
		}
	}
	return false
}

// alphaBeta is the recursive minimax search with alpha-beta pruning and
// transposition-table memoization. hands and trick describe the state at
// entry; nsPoints/ewPoints are the running score already secured before
// this node. It returns the contract team's absolute total score
// (nsPoints/ewPoints plus everything still to be won) under optimal play
// from both sides.
func (s *Solver) alphaBeta(hands [4]shared.Set, trump shared.Suit, trick []Play, starter, nsPoints, ewPoints, alpha, beta, contractTeam int, hash uint64) int {
	if hands[0].IsEmpty() && len(trick) == 0 {
		base, opposing := nsPoints, ewPoints
		if contractTeam == 1 {
			base, opposing = ewPoints, nsPoints
		}
		if opposing == 0 {
			base += 90
		}
		return base
	}

	idx := hash & s.mask
	if s.tt[idx].key == hash {
		return s.tt[idx].value
	}

	currentPlayer := (starter + len(trick)) % 4
	isAttacker := currentPlayer%2 == contractTeam

	moves := movegen.LegalMoves(hands[currentPlayer], toPlayedCards(trick), trump)
	if len(moves) == 0 {
		corelog.Fatal("search: player %d has cards but no legal move", currentPlayer)
	}
	movegen.OrderByStrength(moves, trump)

	bestVal := -1
	if !isAttacker {
		bestVal = 9999
	}

	for _, move := range moves {
		nextHash := hash
		nextHash ^= s.zobrist.Hand[currentPlayer][move.ID]
		nextHash ^= s.zobrist.Turn[currentPlayer]
		nextHash ^= s.zobrist.Trick[move.ID]

		newHands := hands
		newHands[currentPlayer] = newHands[currentPlayer].Remove(move)
		newTrick := appendPlay(trick, currentPlayer, move)

		var val int
		if len(newTrick) == 4 {
			completed := shared.Trick{Cards: toPlayedCards(newTrick)}
			winner, trickPts := completed.DetermineWinner(trump)
			if newHands[0].IsEmpty() {
				trickPts += 10 // dix de der: last trick's bonus
			}

			nNs, nEw := nsPoints, ewPoints
			if winner%2 == 0 {
				nNs += trickPts
			} else {
				nEw += trickPts
			}

			clearedHash := nextHash
			for _, p := range newTrick {
				clearedHash ^= s.zobrist.Trick[p.Card.ID]
			}
			clearedHash ^= s.zobrist.NSPoints[nsPoints] ^ s.zobrist.NSPoints[nNs]
			clearedHash ^= s.zobrist.EWPoints[ewPoints] ^ s.zobrist.EWPoints[nEw]
			clearedHash ^= s.zobrist.Turn[winner]

			val = s.alphaBeta(newHands, trump, nil, winner, nNs, nEw, alpha, beta, contractTeam, clearedHash)
		} else {
			nextPlayer := (currentPlayer + 1) % 4
			nextHash ^= s.zobrist.Turn[nextPlayer]
			val = s.alphaBeta(newHands, trump, newTrick, starter, nsPoints, ewPoints, alpha, beta, contractTeam, nextHash)
		}

		if isAttacker {
			if val > bestVal {
				bestVal = val
			}
			if bestVal > alpha {
				alpha = bestVal
			}
		} else {
			if val < bestVal {
				bestVal = val
			}
			if bestVal < beta {
				beta = bestVal
			}
		}
		if beta <= alpha {
			break
		}
	}

	s.tt[idx] = ttEntry{key: hash, value: bestVal}
	return bestVal
}

func validate(hands [4]shared.Set, contractPlayer int, trick []Play, starter, nsPoints, ewPoints int) error {
	if contractPlayer < 0 || contractPlayer > 3 || starter < 0 || starter > 3 {
		return ErrMalformedInput
	}
	if len(trick) > 4 {
		return ErrMalformedInput
	}
	if nsPoints < 0 || ewPoints < 0 || nsPoints >= zobrist.MaxTrackedPoints || ewPoints >= zobrist.MaxTrackedPoints {
		return ErrMalformedInput
	}

	// Hands/trick need not total 32 cards — solving a partial endgame
	// (e.g. the last trick or two) with fewer cards is a legitimate,
	// tested use case. What must hold is that no card appears twice.
	var seen shared.Set
	for _, hand := range hands {
		if seen&hand != 0 {
			return ErrMalformedInput
		}
		seen |= hand
	}
	for _, p := range trick {
		if p.Player < 0 || p.Player > 3 {
			return ErrMalformedInput
		}
		if seen.Contains(p.Card) {
			return ErrMalformedInput
		}
		seen = seen.Add(p.Card)
	}
	return nil
}
