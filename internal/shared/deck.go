package shared

import (
	"log"
	"math/rand"
)

// Deck represents a collection of cards.
type Deck struct {
	Cards []Card
}

// NewDeck creates a standard 32-card Coinche deck: four suits, ranks
// 7 through Ace.
func NewDeck() *Deck {
	suits := []Suit{Hearts, Diamonds, Clubs, Spades}
	ranks := []Rank{Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

	cards := make([]Card, 0, len(suits)*len(ranks))
	for _, suit := range suits {
		for _, rank := range ranks {
			cards = append(cards, NewCard(suit, rank))
		}
	}

	return &Deck{Cards: cards}
}

// Shuffle randomizes the order of cards in the deck.
func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
	log.Println("Deck shuffled.")
}

// Deal distributes cards to players as Sets. Returns nil if not enough
// cards remain.
func (d *Deck) Deal(numPlayers, cardsPerPlayer int) []Set {
	totalCardsNeeded := numPlayers * cardsPerPlayer
	if len(d.Cards) < totalCardsNeeded {
		log.Printf("Error: Not enough cards in deck (%d) to deal %d cards to %d players.", len(d.Cards), cardsPerPlayer, numPlayers)
		return nil
	}

	dealt := make([]Set, numPlayers)
	start := 0
	for i := 0; i < numPlayers; i++ {
		end := start + cardsPerPlayer
		dealt[i] = NewSet(d.Cards[start:end]...)
		start = end
	}

	d.Cards = d.Cards[:0]
	log.Printf("Dealt %d cards to %d players.", cardsPerPlayer, numPlayers)
	return dealt
}
