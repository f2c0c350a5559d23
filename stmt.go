package msqlite

import (
	"fmt"
	"strings"

	"github.com/msqlite/msqlite/internal/engine"
)

// PreparedStatement owns one compiled statement handle bound to a Conn.
// It is created by Conn.Prepare, used through Bind, Execute,
// ExecuteQuery, and Reset, and released with Close.
//
// The handle has a single owner: a PreparedStatement must not be
// copied. Close may be called more than once; only the first call
// finalizes the handle.
type PreparedStatement struct {
	conn *Conn
	stmt *engine.Stmt

	// paramCount is the number of literal '?' characters counted in
	// the query text at prepare time, not the engine-parsed parameter
	// count. A '?' inside a quoted string literal is miscounted.
	paramCount int
}

func newPreparedStatement(conn *Conn, query string, params ...Param) (*PreparedStatement, error) {
	stmt, err := conn.eng.Prepare(query)
	if err != nil {
		conn.setErr(err)
		return nil, fmt.Errorf("failed to prepare statement: %w", err)
	}

	ps := &PreparedStatement{
		conn:       conn,
		stmt:       stmt,
		paramCount: strings.Count(query, "?"),
	}

	if len(params) > 0 {
		if err := ps.Bind(params...); err != nil {
			_ = ps.Close()
			return nil, err
		}
	}

	return ps, nil
}

// Bind rebinds the positional parameters 1..N in argument order. The
// number of values must exactly equal the number of placeholders
// counted at prepare time, otherwise Bind fails with *BindCountError.
// The first failing parameter is reported immediately with its
// position.
func (ps *PreparedStatement) Bind(params ...Param) error {
	if len(params) != ps.paramCount {
		return &BindCountError{Want: ps.paramCount, Got: len(params)}
	}

	for i, param := range params {
		if err := param.bind(ps.stmt, i+1); err != nil {
			ps.conn.setErr(err)
			return fmt.Errorf("failed to bind parameter %d: %w", i+1, err)
		}
	}

	return nil
}

// Reset clears the existing bindings and resets the execution state so
// the same compiled query can be executed again with new bound values.
func (ps *PreparedStatement) Reset() error {
	if err := ps.stmt.Reset(); err != nil {
		ps.conn.setErr(err)
		return fmt.Errorf("failed to reset statement: %w", err)
	}
	return nil
}

// Execute steps the statement to completion, discarding any produced
// rows. It fails if the terminal step result is anything other than
// done.
func (ps *PreparedStatement) Execute() error {
	if err := ps.stmt.Exec(); err != nil {
		ps.conn.setErr(err)
		return fmt.Errorf("failed to execute statement: %w", err)
	}

	ps.conn.countExec()
	return nil
}

// ExecuteQuery steps the statement repeatedly, capturing every column's
// name and textual value of each produced row, and returns the
// assembled ResultSet after the final step.
func (ps *PreparedStatement) ExecuteQuery() (*ResultSet, error) {
	rs := &ResultSet{}

	for {
		row, err := ps.stmt.Step()
		if err != nil {
			ps.conn.setErr(err)
			return nil, fmt.Errorf("failed to step statement: %w", err)
		}
		if !row {
			break
		}

		cols := make([]string, ps.stmt.ColumnCount())
		vals := make([]*string, ps.stmt.ColumnCount())
		for i := range cols {
			cols[i] = ps.stmt.ColumnName(i)
			if text, ok := ps.stmt.ColumnText(i); ok {
				vals[i] = &text
			}
		}
		rs.AddRecordColumns(cols, vals)
	}

	ps.conn.countQuery()
	return rs, nil
}

// Close finalizes the owned statement handle. It is idempotent and safe
// to defer right after Prepare.
func (ps *PreparedStatement) Close() error {
	if err := ps.stmt.Finalize(); err != nil {
		ps.conn.setErr(err)
		return fmt.Errorf("failed to close statement: %w", err)
	}
	return nil
}
