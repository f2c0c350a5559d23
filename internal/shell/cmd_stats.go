package shell

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/msqlite/msqlite/internal/shell/styled"
	"github.com/msqlite/msqlite/internal/util/numutil"
)

func cmdStats(r *Repl) {
	stats := r.conn.Stats()

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Counter", "Total"})
	tw.AppendRow(table.Row{"Raw statements executed", numutil.IntWithCommas(stats.TotalExecs)})
	tw.AppendRow(table.Row{"Queries run", numutil.IntWithCommas(stats.TotalQueries)})
	tw.AppendRow(table.Row{"Statements prepared", numutil.IntWithCommas(stats.TotalPrepared)})
	tw.AppendRow(table.Row{"Transactions begun", numutil.IntWithCommas(stats.TotalTxBegins)})
	tw.AppendRow(table.Row{"Transactions ended", numutil.IntWithCommas(stats.TotalTxEnds)})

	fmt.Println(tw.Render())
}
