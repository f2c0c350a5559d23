package engine

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/mattn/go-sqlite3"
)

// timeLayout is the textual representation SQLite uses for date-time
// values stored as TEXT.
const timeLayout = "2006-01-02 15:04:05"

// Conn represents a single connection to a SQLite database. It owns the
// underlying driver connection and is not safe for concurrent use.
//
// https://www.sqlite.org/c3ref/sqlite3.html
type Conn struct {
	drv *sqlite3.SQLiteConn
}

// Open opens a new SQLite database connection using the given path.
// The path may be a plain file path, ":memory:", or a file: URI.
//
// https://www.sqlite.org/c3ref/open.html
func Open(path string) (*Conn, error) {
	d := &sqlite3.SQLiteDriver{}

	conn, err := d.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Conn{drv: conn.(*sqlite3.SQLiteConn)}, nil
}

// Close finalizes the connection. It is safe to call more than once.
//
// https://www.sqlite.org/c3ref/close.html
func (conn *Conn) Close() error {
	if conn.drv == nil {
		return nil
	}

	if err := conn.drv.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	conn.drv = nil

	return nil
}

// Exec executes the given SQL from start to finish without returning any
// data. The SQL may contain multiple statements.
//
// https://www.sqlite.org/c3ref/exec.html
func (conn *Conn) Exec(query string) error {
	if _, err := conn.drv.Exec(query, nil); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// RowFunc receives one result row during Query. A nil entry in vals
// represents a SQL NULL. Returning an error aborts the iteration.
type RowFunc func(cols []string, vals []*string) error

// Query executes the given SQL and delivers every produced row to fn,
// mirroring the row callback of sqlite3_exec. Each value is passed in
// the engine's textual representation.
func (conn *Conn) Query(query string, fn RowFunc) error {
	rows, err := conn.drv.Query(query, nil)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	cols := rows.Columns()
	dest := make([]driver.Value, len(cols))

	for {
		err := rows.Next(dest)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to step query: %w", err)
		}

		vals := make([]*string, len(dest))
		for i, v := range dest {
			if text, ok := valueText(v); ok {
				vals[i] = &text
			}
		}

		if fn != nil {
			if err := fn(cols, vals); err != nil {
				return err
			}
		}
	}
}

// LastInsertRowID returns the row ID of the most recent successful
// INSERT on this connection.
//
// https://www.sqlite.org/c3ref/last_insert_rowid.html
func (conn *Conn) LastInsertRowID() (int64, error) {
	rows, err := conn.drv.Query("SELECT last_insert_rowid()", nil)
	if err != nil {
		return 0, fmt.Errorf("failed to query last insert rowid: %w", err)
	}
	defer rows.Close()

	dest := make([]driver.Value, 1)
	if err := rows.Next(dest); err != nil {
		return 0, fmt.Errorf("failed to read last insert rowid: %w", err)
	}

	id, ok := dest[0].(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected last insert rowid value %v", dest[0])
	}
	return id, nil
}

// Prepare compiles the given SQL into a prepared statement.
//
// https://www.sqlite.org/c3ref/prepare.html
func (conn *Conn) Prepare(query string) (*Stmt, error) {
	drvStmt, err := conn.drv.Prepare(query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare statement: %w", err)
	}

	return &Stmt{conn: conn, drv: drvStmt.(*sqlite3.SQLiteStmt)}, nil
}

// valueText converts a driver value to the engine's textual
// representation. The second return value is false for SQL NULL.
func valueText(v driver.Value) (string, bool) {
	switch v := v.(type) {
	case nil:
		return "", false
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case bool:
		if v {
			return "1", true
		}
		return "0", true
	case []byte:
		return string(v), true
	case string:
		return v, true
	case time.Time:
		return v.Format(timeLayout), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}
