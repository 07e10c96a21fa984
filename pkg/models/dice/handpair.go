package dice

import "fmt"

const (
	P        = H * 3
	pairMod  = 1 << P
	pairMask = pairMod - 1
)

type HandPair int

func NewHandPair(HandA, HandB Hand) HandPair {
	return HandPair((HandA << P) + HandB)
}

func (p HandPair) HandA() Hand {
	return Hand(p) >> P
}

func (p HandPair) HandB() Hand {
	return Hand(p) & pairMask
}

func (p HandPair) Reverse() HandPair {
	return NewHandPair(p.HandB(), p.HandA())
}

func (p HandPair) String() string {
	return fmt.Sprintf("%v vs %v", p.HandA(), p.HandB())
}

var pairsMap = make(map[int][]HandPair)

func Pairs(NumFaces int) (pairs []HandPair) {
	if res, c := pairsMap[NumFaces]; c {
		return res
	}

	hands := Hands(NumFaces)
	for _, h1 := range hands {
		for _, h2 := range hands {
			if !Overlaps(h1, h2) {
				pairs = append(pairs, NewHandPair(h1, h2))
			}
		}
	}

	pairsMap[NumFaces] = pairs
	return
}
