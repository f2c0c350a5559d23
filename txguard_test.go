package msqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionGuard(t *testing.T) {
	const schema = "CREATE TABLE test (id INTEGER PRIMARY KEY, val TEXT)"

	t.Run("CommitsOnEnd", func(t *testing.T) {
		conn := openTestConn(t, schema)

		func() {
			guard, err := NewTransactionGuard(conn)
			assert.NoError(t, err)
			defer guard.End()

			assert.NoError(t, conn.Exec("INSERT INTO test (val) VALUES ('scoped')"))
		}()

		rs, err := conn.Query("SELECT val FROM test")
		assert.NoError(t, err)
		assert.Equal(t, 1, rs.Count())
	})

	t.Run("BeginFailurePropagates", func(t *testing.T) {
		conn := openTestConn(t, schema)

		assert.NoError(t, conn.BeginTransaction())
		defer func() { _ = conn.EndTransaction() }()

		// A nested begin fails at the engine level.
		guard, err := NewTransactionGuard(conn)
		assert.Error(t, err)
		assert.Nil(t, guard)
	})

	t.Run("EndFailureSwallowed", func(t *testing.T) {
		conn := openTestConn(t, schema)

		guard, err := NewTransactionGuard(conn)
		assert.NoError(t, err)

		// Ending the transaction out from under the guard makes the
		// guard's own end attempt fail; that failure must not escape.
		assert.NoError(t, conn.EndTransaction())
		assert.NotPanics(t, func() { guard.End() })
	})

	t.Run("EndIsIdempotent", func(t *testing.T) {
		conn := openTestConn(t, schema)

		guard, err := NewTransactionGuard(conn)
		assert.NoError(t, err)

		guard.End()
		guard.End()

		stats := conn.Stats()
		assert.Equal(t, int64(1), stats.TotalTxEnds)
	})

	t.Run("NilGuardEnd", func(t *testing.T) {
		var guard *TransactionGuard
		assert.NotPanics(t, func() { guard.End() })
	})
}
