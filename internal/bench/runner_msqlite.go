package bench

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/msqlite/msqlite"
	"github.com/msqlite/msqlite/internal/bench/benchbar"
)

// msqliteRunner drives the workloads through the msqlite wrapper API.
type msqliteRunner struct {
	conn *msqlite.Conn
}

func newMsqliteRunner(dbPath string) (*msqliteRunner, error) {
	conn, err := msqlite.Open(msqlite.Config{Path: dbPath})
	if err != nil {
		return nil, err
	}
	return &msqliteRunner{conn: conn}, nil
}

func (r *msqliteRunner) Name() string { return "msqlite" }

func (r *msqliteRunner) Close() error { return r.conn.Close() }

func (r *msqliteRunner) RecreateSchema() error {
	return r.conn.Exec(benchSchema)
}

func (r *msqliteRunner) InsertUsers(n int) (uint64, error) {
	bar := benchbar.NewBar(fmt.Sprintf("Inserting %d users", n), n)
	defer bar.Finish()
	var writes uint64

	for range n {
		stmt, err := r.conn.Prepare(
			"INSERT INTO users (created, email, active) VALUES (?, ?, ?)",
			msqlite.Int64(time.Now().Unix()),
			msqlite.Text(uuid.NewString()+"@example.com"),
			msqlite.Bool(true),
		)
		if err != nil {
			return writes, err
		}
		if err := stmt.Execute(); err != nil {
			stmt.Close()
			return writes, err
		}
		if err := stmt.Close(); err != nil {
			return writes, err
		}

		writes++
		bar.Inc()
	}

	return writes, nil
}

func (r *msqliteRunner) InsertUsersPrepared(n int) (uint64, error) {
	bar := benchbar.NewBar(fmt.Sprintf("Inserting %d users (prepared)", n), n)
	defer bar.Finish()
	var writes uint64

	guard, err := msqlite.NewTransactionGuard(r.conn)
	if err != nil {
		return 0, err
	}
	defer guard.End()

	stmt, err := r.conn.Prepare(
		"INSERT INTO users (created, email, active) VALUES (?, ?, ?)",
	)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for range n {
		err := stmt.Bind(
			msqlite.Int64(time.Now().Unix()),
			msqlite.Text(uuid.NewString()+"@example.com"),
			msqlite.Bool(true),
		)
		if err != nil {
			return writes, err
		}
		if err := stmt.Execute(); err != nil {
			return writes, err
		}
		if err := stmt.Reset(); err != nil {
			return writes, err
		}

		writes++
		bar.Inc()
	}

	return writes, nil
}

func (r *msqliteRunner) QueryUsers(times int) (uint64, error) {
	bar := benchbar.NewBar(fmt.Sprintf("Querying all users %d times", times), times)
	defer bar.Finish()
	var reads uint64

	for range times {
		rs, err := r.conn.Query(
			"SELECT id, created, email, active FROM users ORDER BY id",
		)
		if err != nil {
			return reads, err
		}

		for ; rs.HasCurrent(); rs.Next() {
			if _, err := msqlite.Get[int64](rs, "id"); err != nil {
				return reads, err
			}
			if _, err := msqlite.Get[string](rs, "email"); err != nil {
				return reads, err
			}
			reads++
		}

		bar.Inc()
	}

	return reads, nil
}
