package main

import (
	"bytes"
	"testing"

	"github.com/HuXin0817/knucklebones/pkg/count"
	"github.com/HuXin0817/knucklebones/pkg/models/dice"
)

func TestReport(t *testing.T) {
	table := dice.NewTable(2)
	counts := count.States(table)

	var buf bytes.Buffer
	report(&buf, table, counts)

	want := "Hands: 10\n" +
		"Hand pairs: 37\n" +
		"Intermediate states: 8703\n" +
		"Final states: 432\n" +
		"Total: 9135\n"
	if buf.String() != want {
		t.Errorf("report() wrote\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestReport_SixFaceLabels(t *testing.T) {
	table := dice.NewTable(dice.StandardFaces)
	counts := count.Counts{
		Intermediate: 3083032242,
		Final:        1557728432,
		Invalid:      172227220,
	}

	var buf bytes.Buffer
	report(&buf, table, counts)

	want := "Hands: 84\n" +
		"Hand pairs: 3067\n" +
		"Intermediate states: 3083032242\n" +
		"Final states: 1557728432\n" +
		"Total: 4640760674\n"
	if buf.String() != want {
		t.Errorf("report() wrote\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestReport_Deterministic(t *testing.T) {
	table := dice.NewTable(2)

	var first, second bytes.Buffer
	report(&first, table, count.States(table))
	report(&second, table, count.States(table))

	if first.String() != second.String() {
		t.Error("report() output changed between runs")
	}
}
