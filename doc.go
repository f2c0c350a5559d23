// Package msqlite is a convenience layer over the embedded SQLite
// engine: connection lifecycle, raw SQL execution, parameterized
// prepared statements, and a row/column result container with typed
// extraction.
//
// A Conn owns one database handle. Raw statements go through Exec and
// Query; parameterized statements are compiled once with Prepare and
// reused via Bind, Execute, ExecuteQuery, and Reset. Query results are
// materialized into a ResultSet, iterated with a single forward cursor
// and read back with the typed Get function.
//
// For better write performance, group statements between
// BeginTransaction and EndTransaction, or use a TransactionGuard to tie
// the transaction to a scope:
//
//	guard, err := msqlite.NewTransactionGuard(conn)
//	if err != nil {
//		return err
//	}
//	defer guard.End()
//
// All durability, query planning, transaction semantics, and storage
// live in the engine; this package only adds type-safe binding and
// extraction, handle ownership, and the textual result representation.
package msqlite
