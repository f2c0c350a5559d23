package msqlite

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPreparedStatement(t *testing.T) {
	const schema = `
		CREATE TABLE test_types (
			id INTEGER PRIMARY KEY,
			flag BOOLEAN,
			num_int INTEGER,
			num_big INTEGER,
			num_float REAL,
			txt TEXT,
			ch TEXT,
			nullable TEXT
		)
	`

	t.Run("PrepareMalformed", func(t *testing.T) {
		conn := openTestConn(t, schema)

		_, err := conn.Prepare("SELEC nope FROM nowhere")
		assert.Error(t, err)
		assert.NotEqual(t, "NULL", conn.Error())
	})

	t.Run("BindCountMismatch", func(t *testing.T) {
		conn := openTestConn(t, schema)

		stmt, err := conn.Prepare("INSERT INTO test_types (num_int, txt) VALUES (?, ?)")
		assert.NoError(t, err)
		defer stmt.Close()

		err = stmt.Bind(Int(1))
		assert.Error(t, err)

		var countErr *BindCountError
		assert.ErrorAs(t, err, &countErr)
		assert.Equal(t, 2, countErr.Want)
		assert.Equal(t, 1, countErr.Got)

		assert.Error(t, stmt.Bind(Int(1), Text("a"), Text("b")))
		assert.NoError(t, stmt.Bind(Int(1), Text("a")))
	})

	t.Run("RoundTripAllKinds", func(t *testing.T) {
		conn := openTestConn(t, schema)

		stmt, err := conn.Prepare(
			"INSERT INTO test_types (flag, num_int, num_big, num_float, txt, ch, nullable) VALUES (?, ?, ?, ?, ?, ?, ?)",
			Bool(true),
			Int(123),
			Int64(1<<40),
			Float64(3.14),
			Text("a b c"),
			Char('x'),
			Null(),
		)
		assert.NoError(t, err)
		assert.NoError(t, stmt.Execute())
		assert.NoError(t, stmt.Close())

		sel, err := conn.Prepare("SELECT flag, num_int, num_big, num_float, txt, ch, nullable FROM test_types")
		assert.NoError(t, err)
		defer sel.Close()

		rs, err := sel.ExecuteQuery()
		assert.NoError(t, err)
		assert.Equal(t, 1, rs.Count())
		assert.True(t, rs.HasCurrent())

		flag, err := Get[bool](rs, "flag")
		assert.NoError(t, err)
		assert.True(t, flag)

		numInt, err := Get[int](rs, "num_int")
		assert.NoError(t, err)
		assert.Equal(t, 123, numInt)

		numBig, err := Get[int64](rs, "num_big")
		assert.NoError(t, err)
		assert.Equal(t, int64(1<<40), numBig)

		numFloat, err := Get[float64](rs, "num_float")
		assert.NoError(t, err)
		assert.InDelta(t, 3.14, numFloat, 1e-9)

		txt, err := Get[string](rs, "txt")
		assert.NoError(t, err)
		assert.Equal(t, "a b c", txt)

		ch, err := Get[string](rs, "ch")
		assert.NoError(t, err)
		assert.Equal(t, "x", ch)
	})

	t.Run("NullTextVersusEmptyText", func(t *testing.T) {
		conn := openTestConn(t, schema)

		stmt, err := conn.Prepare("INSERT INTO test_types (txt, nullable) VALUES (?, ?)")
		assert.NoError(t, err)
		defer stmt.Close()

		assert.NoError(t, stmt.Bind(Text(""), TextPtr(nil)))
		assert.NoError(t, stmt.Execute())

		rs, err := conn.Query(`
			SELECT
				txt IS NULL AS txt_null,
				length(txt) AS txt_len,
				nullable IS NULL AS nullable_null
			FROM test_types
		`)
		assert.NoError(t, err)

		txtNull, err := Get[int](rs, "txt_null")
		assert.NoError(t, err)
		assert.Equal(t, 0, txtNull)

		txtLen, err := Get[int](rs, "txt_len")
		assert.NoError(t, err)
		assert.Equal(t, 0, txtLen)

		nullableNull, err := Get[int](rs, "nullable_null")
		assert.NoError(t, err)
		assert.Equal(t, 1, nullableNull)
	})

	t.Run("TextPtrNonNil", func(t *testing.T) {
		conn := openTestConn(t, schema)

		borrowed := "borrowed value"
		stmt, err := conn.Prepare("INSERT INTO test_types (txt) VALUES (?)", TextPtr(&borrowed))
		assert.NoError(t, err)
		assert.NoError(t, stmt.Execute())
		assert.NoError(t, stmt.Close())

		rs, err := conn.Query("SELECT txt FROM test_types")
		assert.NoError(t, err)

		txt, err := Get[string](rs, "txt")
		assert.NoError(t, err)
		assert.Equal(t, "borrowed value", txt)
	})

	t.Run("ResetAndRebind", func(t *testing.T) {
		conn := openTestConn(t, schema)

		stmt, err := conn.Prepare("INSERT INTO test_types (txt) VALUES (?)")
		assert.NoError(t, err)
		defer stmt.Close()

		inserted := []string{}
		for range 5 {
			val := uuid.NewString()
			inserted = append(inserted, val)

			assert.NoError(t, stmt.Bind(Text(val)))
			assert.NoError(t, stmt.Execute())
			assert.NoError(t, stmt.Reset())
		}

		rs, err := conn.Query("SELECT txt FROM test_types ORDER BY id")
		assert.NoError(t, err)
		assert.Equal(t, 5, rs.Count())

		for i := 0; rs.HasCurrent(); rs.Next() {
			txt, err := Get[string](rs, "txt")
			assert.NoError(t, err)
			assert.Equal(t, inserted[i], txt)
			i++
		}
	})

	t.Run("ExecuteQueryMultipleRows", func(t *testing.T) {
		conn := openTestConn(t, schema)

		for i := 1; i <= 3; i++ {
			stmt, err := conn.Prepare("INSERT INTO test_types (num_int) VALUES (?)", Int(i*10))
			assert.NoError(t, err)
			assert.NoError(t, stmt.Execute())
			assert.NoError(t, stmt.Close())
		}

		sel, err := conn.Prepare("SELECT num_int FROM test_types WHERE num_int > ? ORDER BY num_int", Int(10))
		assert.NoError(t, err)
		defer sel.Close()

		rs, err := sel.ExecuteQuery()
		assert.NoError(t, err)
		assert.Equal(t, 2, rs.Count())

		got := []int{}
		for ; rs.HasCurrent(); rs.Next() {
			v, err := Get[int](rs, "num_int")
			assert.NoError(t, err)
			got = append(got, v)
		}
		assert.Equal(t, []int{20, 30}, got)
	})

	t.Run("QueryViaResetWithNewParams", func(t *testing.T) {
		conn := openTestConn(t, schema)
		assert.NoError(t, conn.Exec("INSERT INTO test_types (num_int) VALUES (1), (2), (3)"))

		sel, err := conn.Prepare("SELECT num_int FROM test_types WHERE num_int = ?")
		assert.NoError(t, err)
		defer sel.Close()

		for want := 1; want <= 3; want++ {
			assert.NoError(t, sel.Bind(Int(want)))

			rs, err := sel.ExecuteQuery()
			assert.NoError(t, err)
			assert.Equal(t, 1, rs.Count())

			v, err := Get[int](rs, "num_int")
			assert.NoError(t, err)
			assert.Equal(t, want, v)

			assert.NoError(t, sel.Reset())
		}
	})

	t.Run("ExecuteOnSelectDiscardsRows", func(t *testing.T) {
		conn := openTestConn(t, schema)
		assert.NoError(t, conn.Exec("INSERT INTO test_types (num_int) VALUES (1), (2)"))

		stmt, err := conn.Prepare("SELECT num_int FROM test_types")
		assert.NoError(t, err)
		defer stmt.Close()

		assert.NoError(t, stmt.Execute())
	})

	t.Run("CloseTwice", func(t *testing.T) {
		conn := openTestConn(t, schema)

		stmt, err := conn.Prepare("SELECT 1")
		assert.NoError(t, err)
		assert.NoError(t, stmt.Close())
		assert.NoError(t, stmt.Close())
	})
}
