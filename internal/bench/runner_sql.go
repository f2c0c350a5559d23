package bench

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/msqlite/msqlite/internal/bench/benchbar"
)

// sqlRunner drives the same workloads through database/sql directly.
type sqlRunner struct {
	db *sql.DB
}

func newSQLRunner(dbPath string) (*sqlRunner, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return &sqlRunner{db: db}, nil
}

func (r *sqlRunner) Name() string { return "database/sql" }

func (r *sqlRunner) Close() error { return r.db.Close() }

func (r *sqlRunner) RecreateSchema() error {
	_, err := r.db.Exec(benchSchema)
	return err
}

func (r *sqlRunner) InsertUsers(n int) (uint64, error) {
	bar := benchbar.NewBar(fmt.Sprintf("Inserting %d users", n), n)
	defer bar.Finish()
	var writes uint64

	for range n {
		res, err := r.db.Exec(
			"INSERT INTO users (created, email, active) VALUES (?, ?, ?)",
			time.Now().Unix(), uuid.NewString()+"@example.com", 1,
		)
		if err != nil {
			return writes, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return writes, err
		}

		writes += uint64(affected)
		bar.Inc()
	}

	return writes, nil
}

func (r *sqlRunner) InsertUsersPrepared(n int) (uint64, error) {
	bar := benchbar.NewBar(fmt.Sprintf("Inserting %d users (prepared)", n), n)
	defer bar.Finish()
	var writes uint64

	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(
		"INSERT INTO users (created, email, active) VALUES (?, ?, ?)",
	)
	if err != nil {
		return 0, err
	}
	defer func() { _ = stmt.Close() }()

	for range n {
		res, err := stmt.Exec(
			time.Now().Unix(), uuid.NewString()+"@example.com", 1,
		)
		if err != nil {
			return writes, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return writes, err
		}

		writes += uint64(affected)
		bar.Inc()
	}

	if err := tx.Commit(); err != nil {
		return writes, err
	}

	return writes, nil
}

func (r *sqlRunner) QueryUsers(times int) (uint64, error) {
	bar := benchbar.NewBar(fmt.Sprintf("Querying all users %d times", times), times)
	defer bar.Finish()
	var reads uint64

	for range times {
		rows, err := r.db.Query(
			"SELECT id, created, email, active FROM users ORDER BY id",
		)
		if err != nil {
			return reads, err
		}

		for rows.Next() {
			var id, created, active int64
			var email string
			if err := rows.Scan(&id, &created, &email, &active); err != nil {
				rows.Close()
				return reads, err
			}
			reads++
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return reads, err
		}
		rows.Close()

		bar.Inc()
	}

	return reads, nil
}
