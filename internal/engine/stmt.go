package engine

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"io"

	"github.com/mattn/go-sqlite3"
)

// Stmt represents a compiled statement. It owns the underlying driver
// statement handle until Finalize is called.
//
// Bind values are staged per index and submitted to the engine when the
// statement is first stepped or executed; unbound positions are NULL,
// matching the engine's own behavior for unbound parameters.
//
// https://www.sqlite.org/c3ref/stmt.html
type Stmt struct {
	conn  *Conn
	drv   *sqlite3.SQLiteStmt
	bound []driver.Value
	rows  driver.Rows
	cols  []string
	dest  []driver.Value
	done  bool
}

// ParamCount returns the number of parameters the engine counted in the
// compiled statement.
//
// https://www.sqlite.org/c3ref/bind_parameter_count.html
func (stmt *Stmt) ParamCount() int {
	if stmt.drv == nil {
		return 0
	}
	return stmt.drv.NumInput()
}

// stage places a value at the given 1-based parameter index.
func (stmt *Stmt) stage(index int, value driver.Value) error {
	if stmt.drv == nil {
		return errors.New("cannot bind to a finalized statement")
	}
	if index < 1 {
		return fmt.Errorf("bind index %d out of range", index)
	}

	for len(stmt.bound) < index {
		stmt.bound = append(stmt.bound, nil)
	}
	stmt.bound[index-1] = value

	return nil
}

// BindFloat64 binds a float64 parameter at the given index.
//
// https://www.sqlite.org/c3ref/bind_blob.html
func (stmt *Stmt) BindFloat64(index int, value float64) error {
	return stmt.stage(index, value)
}

// BindInt binds an int parameter at the given index.
//
// https://www.sqlite.org/c3ref/bind_blob.html
func (stmt *Stmt) BindInt(index int, value int) error {
	return stmt.stage(index, int64(value))
}

// BindInt64 binds an int64 parameter at the given index.
//
// https://www.sqlite.org/c3ref/bind_blob.html
func (stmt *Stmt) BindInt64(index int, value int64) error {
	return stmt.stage(index, value)
}

// BindText binds a string parameter at the given index. The value is
// copied, so the caller may reuse its buffer.
//
// https://www.sqlite.org/c3ref/bind_blob.html
func (stmt *Stmt) BindText(index int, value string) error {
	return stmt.stage(index, value)
}

// BindBool binds a boolean parameter at the given index as integer 0/1.
func (stmt *Stmt) BindBool(index int, value bool) error {
	var i int64
	if value {
		i = 1
	}
	return stmt.stage(index, i)
}

// BindNull binds a NULL value at the given index.
//
// https://www.sqlite.org/c3ref/bind_blob.html
func (stmt *Stmt) BindNull(index int) error {
	return stmt.stage(index, nil)
}

// Exec runs the statement to completion with the staged bind values,
// discarding any produced rows. It fails if the engine reports anything
// other than done.
func (stmt *Stmt) Exec() error {
	if stmt.drv == nil {
		return errors.New("cannot execute a finalized statement")
	}
	stmt.closeRows()

	if _, err := stmt.drv.Exec(stmt.bound); err != nil {
		return fmt.Errorf("failed to execute statement: %w", err)
	}
	return nil
}

// Step advances the statement to the next result row, returning true
// while a row is available and false once the statement is done. After
// completion Step keeps returning false until Reset is called.
//
// https://www.sqlite.org/c3ref/step.html
func (stmt *Stmt) Step() (bool, error) {
	if stmt.drv == nil {
		return false, errors.New("cannot step a finalized statement")
	}
	if stmt.done {
		return false, nil
	}

	if stmt.rows == nil {
		rows, err := stmt.drv.Query(stmt.bound)
		if err != nil {
			return false, fmt.Errorf("failed to step statement: %w", err)
		}
		stmt.rows = rows
		stmt.cols = rows.Columns()
		stmt.dest = make([]driver.Value, len(stmt.cols))
	}

	err := stmt.rows.Next(stmt.dest)
	if errors.Is(err, io.EOF) {
		stmt.closeRows()
		stmt.done = true
		return false, nil
	}
	if err != nil {
		stmt.closeRows()
		stmt.done = true
		return false, fmt.Errorf("failed to step statement: %w", err)
	}

	return true, nil
}

// ColumnCount returns the number of columns in the current result row.
//
// https://www.sqlite.org/c3ref/column_count.html
func (stmt *Stmt) ColumnCount() int {
	return len(stmt.cols)
}

// ColumnName returns the name of the column at the given index.
//
// https://www.sqlite.org/c3ref/column_name.html
func (stmt *Stmt) ColumnName(colIndex int) string {
	if colIndex < 0 || colIndex >= len(stmt.cols) {
		return ""
	}
	return stmt.cols[colIndex]
}

// ColumnText returns the current row's value at the given index in the
// engine's textual representation. The second return value is false for
// SQL NULL or an out-of-range index.
//
// https://www.sqlite.org/c3ref/column_blob.html
func (stmt *Stmt) ColumnText(colIndex int) (string, bool) {
	if colIndex < 0 || colIndex >= len(stmt.dest) {
		return "", false
	}
	return valueText(stmt.dest[colIndex])
}

// Reset clears the staged bindings and resets the execution state so
// the compiled statement can run again.
//
// https://www.sqlite.org/c3ref/reset.html
func (stmt *Stmt) Reset() error {
	if stmt.drv == nil {
		return errors.New("cannot reset a finalized statement")
	}

	stmt.closeRows()
	stmt.bound = nil
	stmt.done = false

	return nil
}

// Finalize frees the resources associated with this statement. It is
// safe to call more than once.
//
// https://www.sqlite.org/c3ref/finalize.html
func (stmt *Stmt) Finalize() error {
	if stmt.drv == nil {
		return nil
	}

	stmt.closeRows()
	if err := stmt.drv.Close(); err != nil {
		return fmt.Errorf("failed to finalize statement: %w", err)
	}
	stmt.drv = nil

	return nil
}

func (stmt *Stmt) closeRows() {
	if stmt.rows != nil {
		_ = stmt.rows.Close()
		stmt.rows = nil
	}
	stmt.dest = nil
}
