package cards

import (
	"math/rand"
	"time"
)

// Dealer shuffles and deals from fresh decks. It owns its random source and
// is not safe for concurrent use.
type Dealer struct {
	rng *rand.Rand
}

func NewDealer(src rand.Source) *Dealer {
	return &Dealer{rng: rand.New(src)}
}

// NewRandomDealer returns a Dealer seeded from the clock.
func NewRandomDealer() *Dealer {
	return NewDealer(rand.NewSource(time.Now().UnixNano()))
}

func (d *Dealer) Shuffle(cs Cards) {
	d.rng.Shuffle(len(cs), func(i, j int) { cs[i], cs[j] = cs[j], cs[i] })
}

// DealHand shuffles a fresh deck and returns its first HandSize cards.
func (d *Dealer) DealHand() Cards {
	deck := MakeDeck()
	d.Shuffle(deck)
	return deck[:HandSize:HandSize]
}

// Deal deals a whole fresh deck round-robin into numHands sorted hands.
func (d *Dealer) Deal(numHands int) []Cards {
	hs := make([]Cards, numHands)
	deck := MakeDeck()
	d.Shuffle(deck)
	for i, c := range deck {
		hi := i % numHands
		hs[hi] = append(hs[hi], c)
	}
	for _, h := range hs {
		h.Sort()
	}
	return hs
}
