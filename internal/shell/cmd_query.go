package shell

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/msqlite/msqlite"
	"github.com/msqlite/msqlite/internal/shell/styled"
)

func cmdQuery(r *Repl, input string) {
	tw := styled.NewTableWriter()
	trimmed := strings.ToLower(strings.TrimSpace(input))

	switch {
	case strings.HasPrefix(trimmed, "begin"):
		if err := r.conn.BeginTransaction(); err != nil {
			tw.AppendHeader(table.Row{"Error"})
			tw.AppendRow(table.Row{err.Error()})
			break
		}
		r.inTx = true
		tw.AppendHeader(table.Row{"OK"})
		tw.AppendRow(table.Row{"Transaction started"})

	case strings.HasPrefix(trimmed, "commit"), strings.HasPrefix(trimmed, "end transaction"):
		if err := r.conn.EndTransaction(); err != nil {
			tw.AppendHeader(table.Row{"Error"})
			tw.AppendRow(table.Row{err.Error()})
			break
		}
		r.inTx = false
		tw.AppendHeader(table.Row{"OK"})
		tw.AppendRow(table.Row{"Transaction committed"})

	case strings.HasPrefix(trimmed, "rollback"):
		if err := r.conn.Exec("ROLLBACK"); err != nil {
			tw.AppendHeader(table.Row{"Error"})
			tw.AppendRow(table.Row{err.Error()})
			break
		}
		r.inTx = false
		tw.AppendHeader(table.Row{"OK"})
		tw.AppendRow(table.Row{"Transaction rolled back"})

	default:
		rs, err := r.conn.Query(input)
		if err != nil {
			tw.AppendHeader(table.Row{"Error"})
			tw.AppendRow(table.Row{err.Error()})
			break
		}

		if rs.Count() == 0 && len(rs.Columns()) == 0 {
			tw.AppendHeader(table.Row{"-", "Last Insert ID"})
			tw.AppendRow(table.Row{"OK", r.conn.LastID()})
			break
		}

		header := table.Row{}
		for _, col := range rs.Columns() {
			header = append(header, col)
		}
		tw.AppendHeader(header)

		for ; rs.HasCurrent(); rs.Next() {
			row := table.Row{}
			for _, col := range rs.Columns() {
				val, err := msqlite.Get[string](rs, col)
				if err != nil {
					val = err.Error()
				}
				row = append(row, val)
			}
			tw.AppendRow(row)
		}
	}

	fmt.Println(tw.Render())
}
