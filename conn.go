package msqlite

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/msqlite/msqlite/internal/engine"
	"github.com/msqlite/msqlite/internal/log"
	"github.com/msqlite/msqlite/internal/util/syncutil"
)

// errSentinel is what Error reports while no engine error has been
// captured yet.
const errSentinel = "NULL"

// Config represents the configuration for a Conn.
type Config struct {
	// Path is the database file path, ":memory:", or a file: URI.
	Path string
	// CreateScript, if non-empty, is executed right after the database
	// is opened. A failure fails construction and closes the handle.
	CreateScript string
	// Logger is optional; the zero Logger discards everything.
	Logger log.Logger
}

// ConnStats holds counters about Conn usage.
type ConnStats struct {
	TotalExecs    int64
	TotalQueries  int64
	TotalPrepared int64
	TotalTxBegins int64
	TotalTxEnds   int64
}

// Conn owns one database handle and the associated last-error buffer.
// It is not safe for concurrent use from multiple goroutines without
// external serialization; every operation blocks until the engine
// returns.
type Conn struct {
	eng     *engine.Conn
	logger  log.Logger
	opened  bool
	lastErr *syncutil.AtomicString
	stats   ConnStats
}

// Open opens the database at config.Path and, if a creation script was
// supplied, executes it immediately with any produced rows discarded.
// A failure at either step fails construction; the caller never
// receives a half-valid Conn.
func Open(config Config) (*Conn, error) {
	if config.Path == "" {
		return nil, errors.New("database path is required")
	}

	eng, err := engine.Open(config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn := &Conn{
		eng:     eng,
		logger:  config.Logger,
		opened:  true,
		lastErr: syncutil.NewAtomicString(""),
	}

	if config.CreateScript != "" {
		if err := eng.Exec(config.CreateScript); err != nil {
			_ = eng.Close()
			return nil, fmt.Errorf("database can't be initialized: %w", err)
		}
	}

	conn.logger.DebugNs(log.NsConn, "database opened", log.KV{"path": config.Path})
	return conn, nil
}

// IsPrepared reports whether the database handle was opened
// successfully and is still open.
func (c *Conn) IsPrepared() bool {
	return c != nil && c.opened
}

// Error returns the last captured engine error message, or "NULL" if
// none was captured yet.
func (c *Conn) Error() string {
	if msg := c.lastErr.Load(); msg != "" {
		return msg
	}
	return errSentinel
}

// setErr captures an engine error message into the last-error buffer.
func (c *Conn) setErr(err error) {
	if err != nil {
		c.lastErr.Store(err.Error())
	}
}

// LastID returns the last auto-generated row id, or -1 when the
// connection is not prepared or the id cannot be read.
func (c *Conn) LastID() int64 {
	if !c.IsPrepared() {
		return -1
	}

	id, err := c.eng.LastInsertRowID()
	if err != nil {
		c.setErr(err)
		return -1
	}
	return id
}

// Exec runs a raw statement, possibly containing multiple statements,
// discarding any produced rows. It fails with ErrNoSQL when sql is
// empty, without contacting the engine.
func (c *Conn) Exec(sql string) error {
	if sql == "" {
		return ErrNoSQL
	}

	if err := c.eng.Exec(sql); err != nil {
		c.setErr(err)
		return fmt.Errorf("failed to execute statement: %w", err)
	}

	c.countExec()
	c.logger.DebugNs(log.NsConn, "statement executed", log.KV{"sql": sql})
	return nil
}

// Query runs a raw statement and collects every produced row into a
// ResultSet. It fails with ErrNoSQL when sql is empty, without
// contacting the engine.
func (c *Conn) Query(sql string) (*ResultSet, error) {
	if sql == "" {
		return nil, ErrNoSQL
	}

	rs := &ResultSet{}
	err := c.eng.Query(sql, func(cols []string, vals []*string) error {
		rs.AddRecordColumns(cols, vals)
		return nil
	})
	if err != nil {
		c.setErr(err)
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	c.countQuery()
	c.logger.DebugNs(log.NsConn, "query executed", log.KV{"sql": sql, "rows": rs.Count()})
	return rs, nil
}

// Prepare compiles the given query, which may contain ? placeholders,
// into a PreparedStatement owned by the caller. Initial bind values may
// be supplied here or later through Bind.
func (c *Conn) Prepare(query string, params ...Param) (*PreparedStatement, error) {
	ps, err := newPreparedStatement(c, query, params...)
	if err != nil {
		return nil, err
	}

	atomic.AddInt64(&c.stats.TotalPrepared, 1)
	return ps, nil
}

// BeginTransaction issues a literal BEGIN TRANSACTION statement.
// Transactions do not nest; beginning while one is open fails at the
// engine level.
func (c *Conn) BeginTransaction() error {
	if err := c.eng.Exec("BEGIN TRANSACTION"); err != nil {
		c.setErr(err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	atomic.AddInt64(&c.stats.TotalTxBegins, 1)
	return nil
}

// EndTransaction issues a literal END TRANSACTION statement.
func (c *Conn) EndTransaction() error {
	if err := c.eng.Exec("END TRANSACTION"); err != nil {
		c.setErr(err)
		return fmt.Errorf("failed to end transaction: %w", err)
	}

	atomic.AddInt64(&c.stats.TotalTxEnds, 1)
	return nil
}

// Close closes the database handle if it was successfully opened. It is
// safe to call more than once and never panics.
func (c *Conn) Close() error {
	if !c.IsPrepared() {
		return nil
	}
	c.opened = false

	if err := c.eng.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	c.logger.DebugNs(log.NsConn, "database closed")
	return nil
}

// Stats returns a snapshot of the usage counters.
func (c *Conn) Stats() ConnStats {
	return ConnStats{
		TotalExecs:    atomic.LoadInt64(&c.stats.TotalExecs),
		TotalQueries:  atomic.LoadInt64(&c.stats.TotalQueries),
		TotalPrepared: atomic.LoadInt64(&c.stats.TotalPrepared),
		TotalTxBegins: atomic.LoadInt64(&c.stats.TotalTxBegins),
		TotalTxEnds:   atomic.LoadInt64(&c.stats.TotalTxEnds),
	}
}

func (c *Conn) countExec() {
	atomic.AddInt64(&c.stats.TotalExecs, 1)
}

func (c *Conn) countQuery() {
	atomic.AddInt64(&c.stats.TotalQueries, 1)
}
