package eval

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mpsalisbury/brpts/pkg/cards"
)

type EvalTestSuite struct {
	suite.Suite
}

func TestEvalSuite(t *testing.T) {
	suite.Run(t, new(EvalTestSuite))
}

func (s *EvalTestSuite) TestPoints() {
	testCases := []struct {
		name  string
		hand  cards.Cards
		face  int
		long  int
		short int
	}{
		{
			name:  "all spades",
			hand:  cards.Cards{cards.Cas, cards.Cks, cards.Cqs, cards.Cjs, cards.Cts, cards.C9s, cards.C8s, cards.C7s, cards.C6s, cards.C5s, cards.C4s, cards.C3s, cards.C2s},
			face:  10,
			long:  9,
			short: 9,
		},
		{
			name:  "4-3-3-3 no honours",
			hand:  cards.Cards{cards.Cts, cards.C9s, cards.C8s, cards.C7s, cards.Cth, cards.C9h, cards.C8h, cards.Ctd, cards.C9d, cards.C8d, cards.Ctc, cards.C9c, cards.C8c},
			face:  0,
			long:  0,
			short: 0,
		},
		{
			name:  "all aces and kings",
			hand:  cards.Cards{cards.Cas, cards.Cah, cards.Cad, cards.Cac, cards.Cks, cards.Ckh, cards.Ckd, cards.Ckc, cards.Cqs, cards.C2s, cards.C3s, cards.C2h, cards.C3h},
			face:  30,
			long:  1,
			short: 1 + 1,
		},
		{
			name:  "void and doubleton",
			hand:  cards.Cards{cards.Cas, cards.Cks, cards.C8s, cards.C7s, cards.C6s, cards.C5s, cards.C4s, cards.C3s, cards.Cjh, cards.Cth, cards.C2h, cards.C5d, cards.Cqd},
			face:  10,
			long:  4,
			short: 3 + 1,
		},
		{
			name:  "singleton and doubleton",
			hand:  cards.Cards{cards.Cas, cards.Cks, cards.C8s, cards.C7s, cards.C6s, cards.C5s, cards.Cjh, cards.Cth, cards.C2h, cards.C7h, cards.C5d, cards.Cqd, cards.C2c},
			face:  10,
			long:  2,
			short: 2 + 1,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.face, FaceCardPoints(tc.hand), "face card points")
			s.Equal(tc.long, LongSuitPoints(tc.hand), "long suit points")
			s.Equal(tc.short, ShortSuitPoints(tc.hand), "short suit points")
			s.Equal(tc.face+tc.long+tc.short, TotalPoints(tc.hand), "total points")
		})
	}
}

func (s *EvalTestSuite) TestSuitBoundaries() {
	// Exactly four cards in a suit scores neither long nor short.
	four := cards.Cards{cards.Cas, cards.C2s, cards.C3s, cards.C4s}
	s.Equal(0, LongSuitPoints(four.FilterBySuit(cards.Spades)))
	s.Equal(9, ShortSuitPoints(four), "three voids")

	empty := cards.Cards{}
	s.Equal(0, LongSuitPoints(empty))
	s.Equal(12, ShortSuitPoints(empty))
}

func (s *EvalTestSuite) TestOrderIndependent() {
	d := cards.NewDealer(rand.NewSource(17))
	for i := 0; i < 20; i++ {
		hand := d.DealHand()
		want := Evaluate(hand)
		shuffled := hand.Copy()
		d.Shuffle(shuffled)
		s.Equal(want, Evaluate(shuffled))
		s.Equal(want, Evaluate(hand.Sorted()))
	}
}

func (s *EvalTestSuite) TestRows() {
	p := Points{FaceCard: 10, LongSuit: 9, ShortSuit: 9}
	s.Equal([]Row{
		{"Face Card Points", 10},
		{"Long Suit Points", 9},
		{"Short Suit Points", 9},
		{"Total", 28},
	}, p.Rows())
}
