package dice

const (
	S          = 20
	columnMod  = 1 << S
	columnMask = columnMod - 1
)

type State int64

func NewState(Column1, Column2, Column3 int) State {
	if Column1 > Column2 {
		Column1, Column2 = Column2, Column1
	}
	if Column2 > Column3 {
		Column2, Column3 = Column3, Column2
	}
	if Column1 > Column2 {
		Column1, Column2 = Column2, Column1
	}
	return State((int64(Column1) << (S << 1)) + (int64(Column2) << S) + int64(Column3))
}

func NewStateOf(t *Table, ColumnA, ColumnB, ColumnC HandPair) State {
	return NewState(t.IndexOf(ColumnA), t.IndexOf(ColumnB), t.IndexOf(ColumnC))
}

func (s State) Column1() int {
	return int(s >> (S << 1))
}

func (s State) Column2() int {
	return int(s>>S) & columnMask
}

func (s State) Column3() int {
	return int(s) & columnMask
}

func (s State) HandPairs(t *Table) (HandPair, HandPair, HandPair) {
	return t.ByIndex(s.Column1()), t.ByIndex(s.Column2()), t.ByIndex(s.Column3())
}

func (s State) Reverse(t *Table) State {
	c1, c2, c3 := s.HandPairs(t)
	return NewStateOf(t, c1.Reverse(), c2.Reverse(), c3.Reverse())
}

func (s State) IsDone(t *Table) bool {
	c1, c2, c3 := s.HandPairs(t)
	if c1.HandA().IsFull() && c2.HandA().IsFull() && c3.HandA().IsFull() {
		return true
	}
	return c1.HandB().IsFull() && c2.HandB().IsFull() && c3.HandB().IsFull()
}

func (s State) NumChoices(t *Table) (numChoices int) {
	c1, c2, c3 := s.HandPairs(t)
	if !c1.HandA().IsFull() {
		numChoices++
	}
	if !c2.HandA().IsFull() {
		numChoices++
	}
	if !c3.HandA().IsFull() {
		numChoices++
	}
	return
}
