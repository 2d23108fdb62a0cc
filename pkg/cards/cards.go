package cards

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/slices"
)

// Number of cards in a bridge hand.
const HandSize = 13

// Shown in place of the ranks of a suit the hand is void in.
const VoidMarker = "_"

var (
	ErrHandSize      = errors.New("wrong number of cards in hand")
	ErrDuplicateCard = errors.New("duplicate card in hand")
)

type Cards []Card

func MakeDeck() Cards {
	d := make([]Card, 0, len(Suits)*len(Ranks))
	for _, s := range Suits {
		for _, r := range Ranks {
			d = append(d, Card{r, s})
		}
	}
	return d
}

// NewHand checks that cs could have been dealt as a single hand.
func NewHand(cs Cards) (Cards, error) {
	if len(cs) != HandSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrHandSize, len(cs), HandSize)
	}
	seen := make(map[Card]bool, len(cs))
	for _, c := range cs {
		if seen[c] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[c] = true
	}
	return cs.Copy(), nil
}

func (cs Cards) Copy() Cards {
	return slices.Clone(cs)
}

func (cs Cards) Equals(other Cards) bool {
	return slices.Equal(cs.Sorted(), other.Sorted())
}

func (cs Cards) ContainsCard(c Card) bool {
	return slices.Contains(cs, c)
}

func (cs Cards) Count(match func(Card) bool) int {
	count := 0
	for _, c := range cs {
		if match(c) {
			count++
		}
	}
	return count
}

func (cs Cards) CountSuit(s Suit) int {
	return cs.Count(func(c Card) bool { return c.Suit == s })
}

func (cs Cards) Filter(match func(c Card) bool) Cards {
	var filtered Cards
	for _, c := range cs {
		if match(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func (cs Cards) FilterBySuit(suits ...Suit) Cards {
	return cs.Filter(func(c Card) bool {
		return slices.Contains(suits, c.Suit)
	})
}

func Combine(cardss ...Cards) Cards {
	var cs Cards
	for _, cards := range cardss {
		cs = append(cs, cards...)
	}
	return cs
}

// Sort orders cs in place by Card.Before.
func (cs Cards) Sort() {
	sort.Slice(cs, func(i, j int) bool {
		return cs[i].Before(cs[j])
	})
}

// Sorted returns a sorted copy, leaving cs untouched.
func (cs Cards) Sorted() Cards {
	sorted := cs.Copy()
	sorted.Sort()
	return sorted
}

func (cs Cards) Strings() []string {
	cardStrings := []string{}
	for _, c := range cs {
		cardStrings = append(cardStrings, c.String())
	}
	return cardStrings
}

func (cs Cards) String() string {
	return strings.Join(cs.Strings(), " ")
}

func (cs Cards) Codes() []string {
	codes := []string{}
	for _, c := range cs {
		codes = append(codes, c.Code())
	}
	return codes
}

// SuitString returns the ranks held in suit s, high to low, or VoidMarker.
func (cs Cards) SuitString(s Suit) string {
	scs := cs.FilterBySuit(s)
	if len(scs) == 0 {
		return VoidMarker
	}
	scs.Sort()
	var sb strings.Builder
	for _, c := range scs {
		sb.WriteString(c.Rank.Glyph())
	}
	return sb.String()
}

// HandString renders the hand diagram, spades first:
//
//	♠ AK5 ♥ _ ♦ QJ⑩98 ♣ 76432
func (cs Cards) HandString() string {
	suitStrings := make([]string, 0, len(Suits))
	for i := len(Suits) - 1; i >= 0; i-- {
		s := Suits[i]
		suitStrings = append(suitStrings, s.Glyph()+" "+cs.SuitString(s))
	}
	return strings.Join(suitStrings, " ")
}

func ParseCards(cs []string) (Cards, error) {
	var cards Cards
	for _, c := range cs {
		card, err := ParseCard(c)
		if err != nil {
			return Cards{}, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// ParseHand parses a whitespace separated list of card codes and validates
// it with NewHand.
func ParseHand(s string) (Cards, error) {
	cs, err := ParseCards(strings.Fields(s))
	if err != nil {
		return nil, err
	}
	return NewHand(cs)
}
