// Package dbpool owns the process's database handle and bounds how many statements run at once.
package dbpool

import (
	"context"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/jmoiron/sqlx"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// ErrPoolExhausted is returned when every connection is busy and the wait queue is full.
var ErrPoolExhausted = errors.New("database pool exhausted")

type Options struct {
	URL                   string
	DisablePreparedBinary bool
	MaxOpenConns          int
	MaxIdleConns          int
	QueueLimit            int
	ConnMaxLifetime       time.Duration
}

// Pool pairs a sqlx handle with a worker gate sized to the connection ceiling.
// Statements beyond the ceiling wait in a queue; QueueLimit 0 leaves the queue unbounded.
type Pool struct {
	db     *sqlx.DB
	gate   *ants.Pool
	logger *logging.Logger
}

func Open(opts Options, logger *logging.Logger) (*Pool, error) {
	dbURL := NormalizeURL(opts.URL, opts.DisablePreparedBinary)
	traceOpts := []otelsql.Option{otelsql.WithQueryFormatter(formatQueryForTrace)}
	if dbName := dbNameFromURL(dbURL); dbName != "" {
		traceOpts = append(traceOpts, otelsql.WithDBName(dbName))
	}

	db, err := otelsqlx.Open("postgres", dbURL, traceOpts...)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	pool, err := New(db, opts.MaxOpenConns, opts.QueueLimit, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("database pool ready",
		"db_name", dbNameFromURL(dbURL),
		"max_open_conns", opts.MaxOpenConns,
		"max_idle_conns", opts.MaxIdleConns,
		"queue_limit", opts.QueueLimit,
	)
	return pool, nil
}

// New wraps an already opened handle.
func New(db *sqlx.DB, size, queueLimit int, logger *logging.Logger) (*Pool, error) {
	if size < 1 {
		return nil, fmt.Errorf("pool size must be >= 1, got %d", size)
	}
	if queueLimit < 0 {
		return nil, fmt.Errorf("queue limit must be >= 0, got %d", queueLimit)
	}
	if logger == nil {
		logger = logging.Default()
	}

	gate, err := ants.NewPool(size, ants.WithMaxBlockingTasks(queueLimit))
	if err != nil {
		return nil, fmt.Errorf("create statement gate: %w", err)
	}

	return &Pool{db: db, gate: gate, logger: logger}, nil
}

// Do runs fn once a slot is free. The caller blocks while queued.
func (p *Pool) Do(ctx context.Context, fn func(ctx context.Context, db *sqlx.DB) error) error {
	done := make(chan error, 1)
	err := p.gate.Submit(func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("database task panicked: %v", r)
			}
		}()
		done <- fn(ctx, p.db)
	})
	if err != nil {
		if errors.Is(err, ants.ErrPoolOverload) {
			p.logger.WarnContext(ctx, "database queue full", "running", p.gate.Running(), "waiting", p.gate.Waiting())
			return ErrPoolExhausted
		}
		if errors.Is(err, ants.ErrPoolClosed) {
			return fmt.Errorf("database pool closed: %w", err)
		}
		return fmt.Errorf("submit database task: %w", err)
	}

	return <-done
}

func (p *Pool) Ping(ctx context.Context) error {
	return p.Do(ctx, func(ctx context.Context, db *sqlx.DB) error {
		var one int
		return db.GetContext(ctx, &one, "SELECT 1")
	})
}

// Waiting reports how many statements are queued for a slot.
func (p *Pool) Waiting() int {
	return p.gate.Waiting()
}

func (p *Pool) Close() error {
	p.gate.Release()
	if p.db == nil {
		return nil
	}
	return p.db.Close()
}
