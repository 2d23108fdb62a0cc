package cards

import (
	"errors"
	"fmt"
	"strings"
)

// A card's suit. Ordinals give display order only, not bidding rank.
type Suit int8

const (
	Clubs Suit = iota + 1
	Diamonds
	Hearts
	Spades
)

var Suits = []Suit{
	Clubs,
	Diamonds,
	Hearts,
	Spades,
}

func (s Suit) Glyph() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}
	panic("Unknown Suit")
}

func (s Suit) String() string {
	return s.Glyph()
}

func (s Suit) code() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	}
	panic("Unknown Suit")
}

func parseSuit(s string) (Suit, error) {
	switch strings.ToLower(s) {
	case "c":
		return Clubs, nil
	case "d":
		return Diamonds, nil
	case "h":
		return Hearts, nil
	case "s":
		return Spades, nil
	}
	return Clubs, fmt.Errorf("no such suit '%s'", s)
}

// A card's rank: 2-10,J,Q,K,A. The ordinal is the face value, Ace high.
type Rank int8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var Ranks = []Rank{
	Two,
	Three,
	Four,
	Five,
	Six,
	Seven,
	Eight,
	Nine,
	Ten,
	Jack,
	Queen,
	King,
	Ace,
}

// Glyph returns the display form of r. Ten is the single circled-ten
// character so that every rank takes one column.
func (r Rank) Glyph() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "⑩"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	panic("Unknown Rank")
}

func (r Rank) String() string {
	return r.Glyph()
}

func (r Rank) code() string {
	if r == Ten {
		return "T"
	}
	return r.Glyph()
}

func parseRank(r string) (Rank, error) {
	switch strings.ToLower(r) {
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "t":
		return Ten, nil
	case "j":
		return Jack, nil
	case "q":
		return Queen, nil
	case "k":
		return King, nil
	case "a":
		return Ace, nil
	}
	return Two, fmt.Errorf("no such rank '%s'", r)
}

type Card struct {
	Rank
	Suit
}

var ErrBadCard = errors.New("can't parse card")

func (c Card) String() string {
	return c.Suit.Glyph() + c.Rank.Glyph()
}

// Code is the two-letter ASCII form accepted by ParseCard, e.g. "Ts".
func (c Card) Code() string {
	return c.Rank.code() + c.Suit.code()
}

func ParseCard(c string) (Card, error) {
	if len(c) != 2 {
		return Card{}, fmt.Errorf("%w '%s'", ErrBadCard, c)
	}
	r, rerr := parseRank(c[0:1])
	s, serr := parseSuit(c[1:2])
	if rerr != nil || serr != nil {
		return Card{}, fmt.Errorf("%w '%s'", ErrBadCard, c)
	}
	return Card{r, s}, nil
}

// Before orders cards for display: suits ascending, then ranks high to low.
func (c1 Card) Before(c2 Card) bool {
	if c1.Suit == c2.Suit {
		return c1.Rank > c2.Rank
	}
	return c1.Suit < c2.Suit
}
