package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/HuXin0817/knucklebones/pkg/count"
	"github.com/HuXin0817/knucklebones/pkg/models/dice"
	"github.com/HuXin0817/knucklebones/pkg/models/message"
	"github.com/HuXin0817/knucklebones/pkg/models/model"
	_ "github.com/HuXin0817/knucklebones/pkg/pprof"
	"github.com/zeromicro/go-zero/core/logx"
)

func init() {
	logx.DisableStat()
	logx.SetWriter(logx.NewWriter(os.Stderr))
}

func main() {
	runUid := message.NewRunUid()
	startTime := time.Now()

	table := dice.NewTable(dice.StandardFaces)
	logx.Infof("run %s: interned %d hand pairs", runUid, table.Len())

	bar := model.NewBar(table.Len(), "assembling states")
	counts := count.States(table, count.WithProgress(func(int) {
		bar.Add(1)
	}))
	bar.Close()

	report(os.Stdout, table, counts)

	logx.Infof("run %s: %v", runUid, message.RunRecord{
		RunUid:       runUid,
		StartAt:      message.NewTimeStamp(startTime),
		NumFaces:     dice.StandardFaces,
		Hands:        len(dice.Hands(dice.StandardFaces)),
		HandPairs:    table.Len(),
		Intermediate: counts.Intermediate,
		Final:        counts.Final,
		Invalid:      counts.Invalid,
		CostTime:     time.Since(startTime).String(),
	})
}

func report(w io.Writer, t *dice.Table, counts count.Counts) {
	fmt.Fprintf(w, "Hands: %d\n", len(dice.Hands(t.NumFaces)))
	fmt.Fprintf(w, "Hand pairs: %d\n", t.Len())
	fmt.Fprintf(w, "Intermediate states: %d\n", counts.Intermediate)
	fmt.Fprintf(w, "Final states: %d\n", counts.Final)
	fmt.Fprintf(w, "Total: %d\n", counts.Total())
}
