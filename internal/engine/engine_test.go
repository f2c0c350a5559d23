package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEngine(t *testing.T) {
	t.Run("OpenClose", func(t *testing.T) {
		conn, err := Open(":memory:")
		assert.NoError(t, err)
		assert.NotNil(t, conn)
		assert.NoError(t, conn.Close())
		assert.NoError(t, conn.Close())
	})

	t.Run("ExecMultiStatement", func(t *testing.T) {
		conn, err := Open(":memory:")
		assert.NoError(t, err)
		defer conn.Close()

		err = conn.Exec(`
			CREATE TABLE a (id INTEGER PRIMARY KEY, val TEXT);
			CREATE TABLE b (id INTEGER PRIMARY KEY, val TEXT);
			INSERT INTO a (val) VALUES ('one');
			INSERT INTO b (val) VALUES ('two');
		`)
		assert.NoError(t, err)

		count := 0
		err = conn.Query("SELECT val FROM a UNION ALL SELECT val FROM b", func(cols []string, vals []*string) error {
			count++
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("ExecMalformed", func(t *testing.T) {
		conn, err := Open(":memory:")
		assert.NoError(t, err)
		defer conn.Close()

		assert.Error(t, conn.Exec("NOT A STATEMENT"))
	})

	t.Run("QueryCallback", func(t *testing.T) {
		conn, err := Open(":memory:")
		assert.NoError(t, err)
		defer conn.Close()

		assert.NoError(t, conn.Exec("CREATE TABLE test (id INTEGER PRIMARY KEY, val TEXT, opt TEXT)"))
		assert.NoError(t, conn.Exec("INSERT INTO test (val, opt) VALUES ('hello world', NULL)"))

		rowCount := 0
		err = conn.Query("SELECT id, val, opt FROM test", func(cols []string, vals []*string) error {
			rowCount++
			assert.Equal(t, []string{"id", "val", "opt"}, cols)
			assert.Equal(t, "1", *vals[0])
			assert.Equal(t, "hello world", *vals[1])
			assert.Nil(t, vals[2])
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, rowCount)
	})

	t.Run("LastInsertRowID", func(t *testing.T) {
		conn, err := Open(":memory:")
		assert.NoError(t, err)
		defer conn.Close()

		assert.NoError(t, conn.Exec("CREATE TABLE test (id INTEGER PRIMARY KEY, val TEXT)"))
		assert.NoError(t, conn.Exec("INSERT INTO test (val) VALUES ('x')"))
		assert.NoError(t, conn.Exec("INSERT INTO test (val) VALUES ('y')"))

		id, err := conn.LastInsertRowID()
		assert.NoError(t, err)
		assert.Equal(t, int64(2), id)
	})

	t.Run("PrepareBindStep", func(t *testing.T) {
		conn, err := Open(":memory:")
		assert.NoError(t, err)
		defer conn.Close()

		assert.NoError(t, conn.Exec(`
			CREATE TABLE test_types (
				id INTEGER PRIMARY KEY,
				flag BOOLEAN,
				num_int INTEGER,
				num_float REAL,
				txt TEXT,
				nullable TEXT
			)
		`))

		stmt, err := conn.Prepare("INSERT INTO test_types (flag, num_int, num_float, txt, nullable) VALUES (?, ?, ?, ?, ?)")
		assert.NoError(t, err)
		assert.Equal(t, 5, stmt.ParamCount())

		assert.NoError(t, stmt.BindBool(1, true))
		assert.NoError(t, stmt.BindInt(2, 123))
		assert.NoError(t, stmt.BindFloat64(3, 3.14))
		assert.NoError(t, stmt.BindText(4, "hola"))
		assert.NoError(t, stmt.BindNull(5))
		assert.NoError(t, stmt.Exec())
		assert.NoError(t, stmt.Finalize())

		sel, err := conn.Prepare("SELECT flag, num_int, num_float, txt, nullable FROM test_types")
		assert.NoError(t, err)
		defer sel.Finalize()

		row, err := sel.Step()
		assert.NoError(t, err)
		assert.True(t, row)
		assert.Equal(t, 5, sel.ColumnCount())
		assert.Equal(t, "flag", sel.ColumnName(0))

		text, ok := sel.ColumnText(1)
		assert.True(t, ok)
		assert.Equal(t, "123", text)

		text, ok = sel.ColumnText(2)
		assert.True(t, ok)
		assert.Equal(t, "3.14", text)

		text, ok = sel.ColumnText(3)
		assert.True(t, ok)
		assert.Equal(t, "hola", text)

		_, ok = sel.ColumnText(4)
		assert.False(t, ok)

		row, err = sel.Step()
		assert.NoError(t, err)
		assert.False(t, row)

		// Done statements keep reporting no rows until reset.
		row, err = sel.Step()
		assert.NoError(t, err)
		assert.False(t, row)
	})

	t.Run("ResetAndReuse", func(t *testing.T) {
		conn, err := Open(":memory:")
		assert.NoError(t, err)
		defer conn.Close()

		assert.NoError(t, conn.Exec("CREATE TABLE reuse (id INTEGER PRIMARY KEY, val TEXT)"))

		stmt, err := conn.Prepare("INSERT INTO reuse (val) VALUES (?)")
		assert.NoError(t, err)
		defer stmt.Finalize()

		for range 3 {
			assert.NoError(t, stmt.BindText(1, uuid.NewString()))
			assert.NoError(t, stmt.Exec())
			assert.NoError(t, stmt.Reset())
		}

		count := 0
		err = conn.Query("SELECT val FROM reuse", func(cols []string, vals []*string) error {
			count++
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("PrepareMalformed", func(t *testing.T) {
		conn, err := Open(":memory:")
		assert.NoError(t, err)
		defer conn.Close()

		_, err = conn.Prepare("SELEC nope")
		assert.Error(t, err)
	})

	t.Run("FinalizeTwice", func(t *testing.T) {
		conn, err := Open(":memory:")
		assert.NoError(t, err)
		defer conn.Close()

		stmt, err := conn.Prepare("SELECT 1")
		assert.NoError(t, err)
		assert.NoError(t, stmt.Finalize())
		assert.NoError(t, stmt.Finalize())
	})
}
