package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/glamspot/GS-CabinService/pkg/metrics"
)

// DBExecutor минимальный интерфейс для выполнения запросов.
// Реализуется *sql.DB, *sql.Tx, *DB и *Tx.
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// TxExecutor интерфейс транзакции: executor + управление жизненным циклом
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type executorKey struct{}

// WithExecutor кладет executor (обычно транзакцию) в контекст.
// Репозитории достают его через GetExecutor и выполняют запросы в рамках транзакции.
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, executorKey{}, executor)
}

// GetExecutor возвращает executor из контекста, либо fallback, если в контексте его нет
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(executorKey{}).(DBExecutor); ok {
		return executor
	}
	return fallback
}

// DB обертка над *sql.DB, записывающая длительность запросов в метрики
type DB struct {
	db          *sql.DB
	collector   *metrics.Metrics
	serviceName string
}

// WrapWithDefault оборачивает *sql.DB метриками и запускает фоновый сбор
// статистики connection pool. Канал stopCh останавливает сбор.
func WrapWithDefault(db *sql.DB, collector *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, collector: collector, serviceName: serviceName}

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				stats := db.Stats()
				collector.DBConnectionsOpen.WithLabelValues(serviceName).Set(float64(stats.OpenConnections))
				collector.DBConnectionsIdle.WithLabelValues(serviceName).Set(float64(stats.Idle))
			}
		}
	}()

	return wrapped
}

func (d *DB) observe(operation string, start time.Time) {
	d.collector.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// QueryContext выполняет запрос с записью длительности
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe("query", time.Now())
	return d.db.QueryContext(ctx, query, args...)
}

// QueryRowContext выполняет запрос одной строки с записью длительности
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe("query_row", time.Now())
	return d.db.QueryRowContext(ctx, query, args...)
}

// ExecContext выполняет запрос без результата с записью длительности
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe("exec", time.Now())
	return d.db.ExecContext(ctx, query, args...)
}

// BeginTx начинает транзакцию, возвращая обернутый метриками executor
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	defer d.observe("begin_tx", time.Now())

	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, parent: d}, nil
}

// Tx транзакция, проксирующая запросы через метрики родительского DB
type Tx struct {
	tx     *sql.Tx
	parent *DB
}

// QueryContext выполняет запрос в транзакции
func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer t.parent.observe("tx_query", time.Now())
	return t.tx.QueryContext(ctx, query, args...)
}

// QueryRowContext выполняет запрос одной строки в транзакции
func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer t.parent.observe("tx_query_row", time.Now())
	return t.tx.QueryRowContext(ctx, query, args...)
}

// ExecContext выполняет запрос без результата в транзакции
func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer t.parent.observe("tx_exec", time.Now())
	return t.tx.ExecContext(ctx, query, args...)
}

// Commit фиксирует транзакцию
func (t *Tx) Commit() error {
	defer t.parent.observe("tx_commit", time.Now())
	return t.tx.Commit()
}

// Rollback откатывает транзакцию
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}
