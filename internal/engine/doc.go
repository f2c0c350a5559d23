// Package engine provides a lightweight access layer for the embedded
// SQLite engine. It exposes the small C-shaped surface the wrapper
// depends on: open/close, script execution, row-callback queries,
// prepared statements with positional binding, stepping, and column
// introspection.
//
// The engine itself is carried by mattn/go-sqlite3 and is driven here
// at the database/sql/driver level, below the database/sql pool.
//
//   - https://www.sqlite.org/cintro.html
//   - https://www.sqlite.org/c3ref/intro.html
package engine
