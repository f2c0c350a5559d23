package bench

// runner abstracts the database API under benchmark so the same workloads
// run against the msqlite wrapper and plain database/sql.
type runner interface {
	// Name identifies the API in the printed results.
	Name() string

	// RecreateSchema drops and recreates the users table.
	RecreateSchema() error

	// InsertUsers inserts n users one statement at a time and returns the
	// number of rows written.
	InsertUsers(n int) (uint64, error)

	// InsertUsersPrepared inserts n users reusing a single prepared
	// statement inside one transaction.
	InsertUsersPrepared(n int) (uint64, error)

	// QueryUsers reads every user row `times` times and returns the number
	// of rows read.
	QueryUsers(times int) (uint64, error)

	// Close releases the underlying connection.
	Close() error
}
