package dice

const (
	H       = 4
	dieMod  = 1 << H
	dieMask = dieMod - 1
)

type Hand int

const EmptyHand Hand = 0

func NewHand1(Die1 Die) Hand {
	return Hand(Die1 << (H << 1))
}

func NewHand2(Die1, Die2 Die) Hand {
	if Die1 > Die2 {
		Die1, Die2 = Die2, Die1
	}
	return Hand((Die1 << (H << 1)) + (Die2 << H))
}

func NewHand3(Die1, Die2, Die3 Die) Hand {
	if Die1 > Die2 {
		Die1, Die2 = Die2, Die1
	}
	if Die2 > Die3 {
		Die2, Die3 = Die3, Die2
	}
	if Die1 > Die2 {
		Die1, Die2 = Die2, Die1
	}
	return Hand((Die1 << (H << 1)) + (Die2 << H) + Die3)
}

func (h Hand) Die1() Die {
	return Die(h) >> (H << 1)
}

func (h Hand) Die2() Die {
	return (Die(h) >> H) & dieMask
}

func (h Hand) Die3() Die {
	return Die(h) & dieMask
}

func (h Hand) Len() int {
	if h.Die1() == 0 {
		return 0
	}
	if h.Die2() == 0 {
		return 1
	}
	if h.Die3() == 0 {
		return 2
	}
	return 3
}

func (h Hand) IsFull() bool {
	return h.Die3() != 0
}

func (h Hand) Has(d Die) bool {
	return h.Die1() == d || h.Die2() == d || h.Die3() == d
}

func (h Hand) Score() (score int) {
	d1 := int(h.Die1())
	d2 := int(h.Die2())
	d3 := int(h.Die3())

	score = d1 + d2 + d3

	// Empty slots read 0, so an equal pair of empty slots adds 0 bonus.
	if d1 == d2 {
		score += d1 * d1
	}
	if d2 == d3 {
		score += d2 * d2
	}
	if d1 == d3 {
		score += d1 * d1
	}

	return
}

func (h Hand) String() (s string) {
	s = "("
	if d := h.Die1(); d != 0 {
		s += d.String()
	}
	if d := h.Die2(); d != 0 {
		s += d.String()
	}
	if d := h.Die3(); d != 0 {
		s += d.String()
	}
	return s + ")"
}

func Overlaps(Hand1, Hand2 Hand) bool {
	for _, d := range []Die{Hand1.Die1(), Hand1.Die2(), Hand1.Die3()} {
		if d != 0 && Hand2.Has(d) {
			return true
		}
	}
	return false
}

var handsMap = make(map[int][]Hand)

func Hands(NumFaces int) (hands []Hand) {
	if res, c := handsMap[NumFaces]; c {
		return res
	}

	faces := Faces(NumFaces)
	hands = append(hands, EmptyHand)
	for i1, d1 := range faces {
		hands = append(hands, NewHand1(d1))
		for i2, d2 := range faces[i1:] {
			hands = append(hands, NewHand2(d1, d2))
			for _, d3 := range faces[i1+i2:] {
				hands = append(hands, NewHand3(d1, d2, d3))
			}
		}
	}

	handsMap[NumFaces] = hands
	return
}
