package search

import "errors"

// ErrMalformedInput is returned when a Solve/SolveAllSuits call is given
// a state that cannot correspond to a legal Coinche deal: a player index
// out of range, a trick longer than four cards, a running score outside
// 0..162, or a card held twice across the hands and trick. Hands and
// trick need not add up to the full 32-card deck.
var ErrMalformedInput = errors.New("search: malformed input")
