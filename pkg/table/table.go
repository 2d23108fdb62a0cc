// Package table holds the state behind the reveal / next hand button.
//
// A Table starts with a freshly dealt, hidden hand. Toggling reveals the
// points of that hand; toggling again deals the next hand, hidden.
package table

import (
	"log"
	"sync"

	"github.com/mpsalisbury/brpts/pkg/cards"
	"github.com/mpsalisbury/brpts/pkg/eval"
)

const (
	RevealLabel   = "reveal"
	NextHandLabel = "next hand"
)

// View is what a shell renders. Rows is nil while the hand is hidden.
type View struct {
	Hand   string     `json:"hand"`
	Cards  []string   `json:"cards"`
	Hidden bool       `json:"hidden"`
	Button string     `json:"button"`
	Rows   []eval.Row `json:"rows,omitempty"`
}

// Table is safe for concurrent use.
type Table struct {
	mu     sync.Mutex
	dealer *cards.Dealer
	hand   cards.Cards
	points eval.Points
	hidden bool
}

func New(d *cards.Dealer) *Table {
	t := &Table{dealer: d, hidden: true}
	t.setHand(d.DealHand())
	return t
}

// NewWithHand starts a table on a given hand, e.g. one typed by the user.
// The dealer is used for every following hand.
func NewWithHand(d *cards.Dealer, hand cards.Cards) *Table {
	t := &Table{dealer: d, hidden: true}
	t.setHand(hand)
	return t
}

func (t *Table) setHand(h cards.Cards) {
	t.hand = h
	t.points = eval.Evaluate(h)
}

// Toggle advances the button: hidden -> revealed -> next hand hidden.
func (t *Table) Toggle() View {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.hidden {
		t.setHand(t.dealer.DealHand())
	}
	t.hidden = !t.hidden
	log.Printf("rendering with hide: %v", t.hidden)
	return t.view()
}

func (t *Table) Hand() cards.Cards {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hand.Copy()
}

func (t *Table) View() View {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.view()
}

func (t *Table) view() View {
	sorted := t.hand.Sorted()
	v := View{
		Hand:   sorted.HandString(),
		Cards:  sorted.Codes(),
		Hidden: t.hidden,
		Button: RevealLabel,
	}
	if !t.hidden {
		v.Button = NextHandLabel
		v.Rows = t.points.Rows()
	}
	return v
}
