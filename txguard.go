package msqlite

// TransactionGuard ties a transaction to a scope: it begins the
// transaction when constructed and attempts to end it exactly once when
// End runs, discarding any failure from the end step. This is a
// best-effort commit on scope exit, not a rollback-on-error guarantee.
//
//	guard, err := msqlite.NewTransactionGuard(conn)
//	if err != nil {
//		return err
//	}
//	defer guard.End()
type TransactionGuard struct {
	conn  *Conn
	ended bool
}

// NewTransactionGuard begins a transaction on conn, propagating any
// failure from the begin step.
func NewTransactionGuard(conn *Conn) (*TransactionGuard, error) {
	if err := conn.BeginTransaction(); err != nil {
		return nil, err
	}
	return &TransactionGuard{conn: conn}, nil
}

// End attempts to end the transaction and swallows any failure, so a
// deferred End never disturbs the exit path. Calls after the first are
// no-ops.
func (g *TransactionGuard) End() {
	if g == nil || g.ended {
		return
	}
	g.ended = true
	_ = g.conn.EndTransaction()
}
