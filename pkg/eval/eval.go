// Package eval counts the points of a bridge hand.
//
// All counts are order independent; any permutation of a hand scores the same.
package eval

import (
	"github.com/mpsalisbury/brpts/pkg/cards"
)

// FaceCardPoints is the 4-3-2-1 count: Ace 4, King 3, Queen 2, Jack 1.
func FaceCardPoints(h cards.Cards) int {
	points := 0
	for _, c := range h {
		if c.Rank > cards.Ten {
			points += int(c.Rank - cards.Ten)
		}
	}
	return points
}

// LongSuitPoints scores one point for each card beyond four in a suit.
func LongSuitPoints(h cards.Cards) int {
	points := 0
	for _, s := range cards.Suits {
		if n := h.CountSuit(s); n > 4 {
			points += n - 4
		}
	}
	return points
}

// ShortSuitPoints scores 3 for a void, 2 for a singleton and 1 for a doubleton.
func ShortSuitPoints(h cards.Cards) int {
	points := 0
	for _, s := range cards.Suits {
		switch h.CountSuit(s) {
		case 0:
			points += 3
		case 1:
			points += 2
		case 2:
			points += 1
		}
	}
	return points
}

func TotalPoints(h cards.Cards) int {
	return Evaluate(h).Total()
}

type Points struct {
	FaceCard  int `json:"faceCard"`
	LongSuit  int `json:"longSuit"`
	ShortSuit int `json:"shortSuit"`
}

func Evaluate(h cards.Cards) Points {
	return Points{
		FaceCard:  FaceCardPoints(h),
		LongSuit:  LongSuitPoints(h),
		ShortSuit: ShortSuitPoints(h),
	}
}

func (p Points) Total() int {
	return p.FaceCard + p.LongSuit + p.ShortSuit
}

// A labelled line of the score table.
type Row struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
}

func (p Points) Rows() []Row {
	return []Row{
		{"Face Card Points", p.FaceCard},
		{"Long Suit Points", p.LongSuit},
		{"Short Suit Points", p.ShortSuit},
		{"Total", p.Total()},
	}
}
