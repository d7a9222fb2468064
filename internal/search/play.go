package search

import "coinche-solver/internal/shared"

// Play is one card played by one seat, in play order within a trick.
type Play struct {
	Player int
	Card   shared.Card
}

func toPlayedCards(trick []Play) []shared.PlayedCard {
	if len(trick) == 0 {
		return nil
	}
	played := make([]shared.PlayedCard, len(trick))
	for i, p := range trick {
		played[i] = shared.PlayedCard{Card: p.Card, PlayerIndex: p.Player}
	}
	return played
}

func appendPlay(trick []Play, player int, c shared.Card) []Play {
	next := make([]Play, len(trick)+1)
	copy(next, trick)
	next[len(trick)] = Play{Player: player, Card: c}
	return next
}
