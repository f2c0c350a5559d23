package msqlite

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the strict pattern used for date-time extraction and
// for the textual representation of time values in a Row.
const TimeLayout = "2006-01-02 15:04:05"

// Row maps column names to the engine's textual representation of the
// value, regardless of the declared column type. SQL NULL is stored as
// the empty string.
type Row map[string]string

// ResultSet is an ordered sequence of rows with a single forward
// cursor. All rows are materialized in memory before the caller begins
// consuming them.
//
// Iterate with HasCurrent and Next; read the current row with Get.
type ResultSet struct {
	rows   []Row
	cols   []string
	cursor int
}

// AddRecord appends one row and resets the cursor to the first row in
// the sequence. Note that appending rewinds iteration, even when rows
// have already been consumed.
func (rs *ResultSet) AddRecord(record Row) {
	if rs.cols == nil {
		cols := make([]string, 0, len(record))
		for col := range record {
			cols = append(cols, col)
		}
		sort.Strings(cols)
		rs.cols = cols
	}

	rs.rows = append(rs.rows, record)
	rs.cursor = 0
}

// AddRecordColumns appends one row built from parallel column-name and
// value slices, as delivered by the engine's row callback. A nil value
// represents SQL NULL and is stored as the empty string. Empty column
// lists are ignored.
func (rs *ResultSet) AddRecordColumns(cols []string, vals []*string) {
	if len(cols) == 0 {
		return
	}

	if rs.cols == nil {
		rs.cols = append([]string(nil), cols...)
	}

	record := make(Row, len(cols))
	for i, col := range cols {
		if i < len(vals) && vals[i] != nil {
			record[col] = *vals[i]
		} else {
			record[col] = ""
		}
	}
	rs.AddRecord(record)
}

// Columns returns the column names of the rows in this ResultSet, in
// result order when the rows came from the engine and in sorted order
// when the first row was added as a pre-built mapping.
func (rs *ResultSet) Columns() []string {
	return rs.cols
}

// HasCurrent reports whether the cursor refers to an existing row. An
// empty ResultSet never has a current row.
func (rs *ResultSet) HasCurrent() bool {
	return len(rs.rows) > 0 && rs.cursor < len(rs.rows)
}

// Next moves the cursor forward one position and reports whether the
// new position is a valid row. Calling Next past the end is a no-op
// that returns false.
func (rs *ResultSet) Next() bool {
	if rs.cursor < len(rs.rows) {
		rs.cursor++
	}
	return rs.cursor < len(rs.rows)
}

// Count returns the number of rows currently stored.
func (rs *ResultSet) Count() int {
	return len(rs.rows)
}

// Value is the set of types Get can extract from a column.
type Value interface {
	int | int32 | int64 | float32 | float64 | bool | string | time.Time
}

// Get looks up the named column in the current row and converts its
// textual value to T.
//
// Strings are returned up to the first newline with embedded spaces
// preserved. Time values are parsed strictly with TimeLayout. For the
// numeric and boolean types a conversion failure yields the zero value
// of T with a nil error, mirroring stream-extraction semantics.
//
// Get fails with ErrNoRow when the cursor is not on a valid row and
// with *ColumnNotFoundError when the column does not exist; guard
// iteration with HasCurrent.
func Get[T Value](rs *ResultSet, column string) (T, error) {
	var out T

	if !rs.HasCurrent() {
		return out, ErrNoRow
	}

	raw, found := rs.rows[rs.cursor][column]
	if !found {
		return out, &ColumnNotFoundError{Column: column}
	}

	switch p := any(&out).(type) {
	case *string:
		line, _, _ := strings.Cut(raw, "\n")
		*p = line
	case *int:
		if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			*p = v
		}
	case *int32:
		if v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32); err == nil {
			*p = int32(v)
		}
	case *int64:
		if v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
			*p = v
		}
	case *float32:
		if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 32); err == nil {
			*p = float32(v)
		}
	case *float64:
		if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			*p = v
		}
	case *bool:
		if v, err := strconv.ParseBool(strings.TrimSpace(raw)); err == nil {
			*p = v
		}
	case *time.Time:
		if v, err := time.Parse(TimeLayout, strings.TrimSpace(raw)); err == nil {
			*p = v
		}
	}

	return out, nil
}
