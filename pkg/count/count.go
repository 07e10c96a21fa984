package count

import (
	"github.com/HuXin0817/knucklebones/pkg/models/dice"
)

type Counts struct {
	Intermediate uint64
	Final        uint64
	Invalid      uint64
}

func (c Counts) Total() uint64 {
	return c.Intermediate + c.Final
}

func (c Counts) Enumerated() uint64 {
	return c.Intermediate + c.Final + c.Invalid
}

type counter struct {
	Progress func(column int)
}

type Option func(*counter)

func WithProgress(Progress func(column int)) Option {
	return func(c *counter) {
		c.Progress = Progress
	}
}

// States walks every canonical unordered triple of interned pair
// indices exactly once: i2 starts at i1 and i3 starts at i2, so no
// permutation of a triple is ever revisited.
func States(t *dice.Table, options ...Option) (counts Counts) {
	c := &counter{
		Progress: func(int) {},
	}
	for _, option := range options {
		option(c)
	}

	pairs := t.Pairs()
	aFull := make([]bool, len(pairs))
	bFull := make([]bool, len(pairs))
	for i, p := range pairs {
		aFull[i] = p.HandA().IsFull()
		bFull[i] = p.HandB().IsFull()
	}

	for i1 := range pairs {
		column := countColumn(aFull, bFull, i1)
		counts.Intermediate += column.Intermediate
		counts.Final += column.Final
		counts.Invalid += column.Invalid
		c.Progress(i1 + 1)
	}

	return
}

func countColumn(aFull, bFull []bool, i1 int) (counts Counts) {
	a1 := aFull[i1]
	b1 := bFull[i1]
	for i2 := i1; i2 < len(aFull); i2++ {
		a2 := a1 && aFull[i2]
		b2 := b1 && bFull[i2]
		for i3 := i2; i3 < len(aFull); i3++ {
			p1Full := a2 && aFull[i3]
			p2Full := b2 && bFull[i3]
			if p1Full && p2Full {
				counts.Invalid++
			} else if p1Full || p2Full {
				counts.Final++
			} else {
				counts.Intermediate++
			}
		}
	}
	return
}
