package msqlite

import (
	"errors"
	"fmt"
)

// ErrNoSQL is returned by Exec and Query when the given SQL text is
// empty. The engine is never contacted in that case.
var ErrNoSQL = errors.New("no sql parameter")

// ErrNoRow is returned by Get when the cursor of the ResultSet is not
// on a valid row.
var ErrNoRow = errors.New("resultset has no current row")

// ColumnNotFoundError is returned by Get when the current row has no
// column with the requested name.
type ColumnNotFoundError struct {
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("there is no column by name %q in the current resultset", e.Column)
}

// BindCountError is returned by Bind when the number of supplied values
// does not match the number of placeholders counted in the query.
type BindCountError struct {
	Want int
	Got  int
}

func (e *BindCountError) Error() string {
	return fmt.Sprintf("count of bind values (%d) does not equal count of placeholders (%d)", e.Got, e.Want)
}
