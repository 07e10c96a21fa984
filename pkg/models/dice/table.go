package dice

type Table struct {
	NumFaces int

	pairs []HandPair
	index map[HandPair]int
}

var tablesMap = make(map[int]*Table)

func NewTable(NumFaces int) (t *Table) {
	if res, c := tablesMap[NumFaces]; c {
		return res
	}

	pairs := Pairs(NumFaces)
	t = &Table{
		NumFaces: NumFaces,
		pairs:    pairs,
		index:    make(map[HandPair]int, len(pairs)),
	}
	for i, p := range pairs {
		t.index[p] = i
	}

	tablesMap[NumFaces] = t
	return
}

func (t *Table) Len() int {
	return len(t.pairs)
}

func (t *Table) ByIndex(ix int) HandPair {
	return t.pairs[ix]
}

func (t *Table) IndexOf(p HandPair) int {
	return t.index[p]
}

func (t *Table) Pairs() []HandPair {
	return t.pairs
}
