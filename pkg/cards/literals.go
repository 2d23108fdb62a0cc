package cards

// Card literals, one per card, named C<rank code><suit code>.
var (
	// clubs
	Cac = Card{Ace, Clubs}
	Ckc = Card{King, Clubs}
	Cqc = Card{Queen, Clubs}
	Cjc = Card{Jack, Clubs}
	Ctc = Card{Ten, Clubs}
	C9c = Card{Nine, Clubs}
	C8c = Card{Eight, Clubs}
	C7c = Card{Seven, Clubs}
	C6c = Card{Six, Clubs}
	C5c = Card{Five, Clubs}
	C4c = Card{Four, Clubs}
	C3c = Card{Three, Clubs}
	C2c = Card{Two, Clubs}

	// diamonds
	Cad = Card{Ace, Diamonds}
	Ckd = Card{King, Diamonds}
	Cqd = Card{Queen, Diamonds}
	Cjd = Card{Jack, Diamonds}
	Ctd = Card{Ten, Diamonds}
	C9d = Card{Nine, Diamonds}
	C8d = Card{Eight, Diamonds}
	C7d = Card{Seven, Diamonds}
	C6d = Card{Six, Diamonds}
	C5d = Card{Five, Diamonds}
	C4d = Card{Four, Diamonds}
	C3d = Card{Three, Diamonds}
	C2d = Card{Two, Diamonds}

	// hearts
	Cah = Card{Ace, Hearts}
	Ckh = Card{King, Hearts}
	Cqh = Card{Queen, Hearts}
	Cjh = Card{Jack, Hearts}
	Cth = Card{Ten, Hearts}
	C9h = Card{Nine, Hearts}
	C8h = Card{Eight, Hearts}
	C7h = Card{Seven, Hearts}
	C6h = Card{Six, Hearts}
	C5h = Card{Five, Hearts}
	C4h = Card{Four, Hearts}
	C3h = Card{Three, Hearts}
	C2h = Card{Two, Hearts}

	// spades
	Cas = Card{Ace, Spades}
	Cks = Card{King, Spades}
	Cqs = Card{Queen, Spades}
	Cjs = Card{Jack, Spades}
	Cts = Card{Ten, Spades}
	C9s = Card{Nine, Spades}
	C8s = Card{Eight, Spades}
	C7s = Card{Seven, Spades}
	C6s = Card{Six, Spades}
	C5s = Card{Five, Spades}
	C4s = Card{Four, Spades}
	C3s = Card{Three, Spades}
	C2s = Card{Two, Spades}
)
