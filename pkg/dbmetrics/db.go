// Package dbmetrics wraps database/sql with Prometheus instrumentation and
// carries transactions through context.Context.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/pkg/metrics"
)

const defaultPoolStatsInterval = 15 * time.Second

// DB is an instrumented *sql.DB.
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap instruments db. A nil collector disables recording.
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault instruments db and publishes pool stats until stop is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, stop <-chan struct{}) *DB {
	wrapped := Wrap(db, m)
	if m != nil {
		go collectPoolStats(db, m, defaultPoolStatsInterval, stop)
	}
	return wrapped
}

func collectPoolStats(db *sql.DB, m *metrics.Metrics, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		m.SetDBPoolStats(db.Stats())
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

// ExecContext implements DBExecutor.
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("exec", time.Since(start), err)
	return res, err
}

// QueryContext implements DBExecutor.
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("query", time.Since(start), err)
	return rows, err
}

// QueryRowContext implements DBExecutor.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("query_row", time.Since(start), row.Err())
	return row
}

// BeginTx opens an instrumented transaction.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		d.metrics.ObserveDBQuery("begin", 0, err)
		return nil, err
	}
	return &Tx{tx: tx, metrics: d.metrics, started: time.Now()}, nil
}

// PingContext checks connectivity.
func (d *DB) PingContext(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// Tx is an instrumented *sql.Tx.
type Tx struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
	started time.Time
}

// ExecContext implements DBExecutor.
func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_exec", time.Since(start), err)
	return res, err
}

// QueryContext implements DBExecutor.
func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_query", time.Since(start), err)
	return rows, err
}

// QueryRowContext implements DBExecutor.
func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_query_row", time.Since(start), row.Err())
	return row
}

// Commit commits and records the transaction lifetime.
func (t *Tx) Commit() error {
	err := t.tx.Commit()
	t.metrics.ObserveDBQuery("commit", time.Since(t.started), err)
	return err
}

// Rollback aborts the transaction.
func (t *Tx) Rollback() error {
	err := t.tx.Rollback()
	if err == sql.ErrTxDone {
		return err
	}
	t.metrics.ObserveDBQuery("rollback", time.Since(t.started), err)
	return err
}
