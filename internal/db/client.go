package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"userapi/internal/config"
	"userapi/internal/logging"
)

// Client owns the process-wide connection pool. It is created once at
// startup and shared by every request.
type Client struct {
	db           *sqlx.DB
	dialect      string
	leaseTimeout time.Duration
	logger       logging.Logger
}

// NewClient creates a database/sql pool using the pgx driver and verifies
// connectivity before returning.
func NewClient(ctx context.Context, cfg config.DatabaseConfig, logger logging.Logger) (*Client, error) {
	pgCfg, err := pgx.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if cfg.ConnectTimeout > 0 {
		pgCfg.ConnectTimeout = cfg.ConnectTimeout
	}

	dbStd := stdlib.OpenDB(*pgCfg)
	c := Wrap(sqlx.NewDb(dbStd, "pgx"), dialect.Postgres, cfg, logger)

	// Verify connectivity
	if err := c.Ping(ctx); err != nil {
		_ = dbStd.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	c.logger.Info("database pool ready",
		"host", pgCfg.Host,
		"database", pgCfg.Database,
		"max_open", cfg.MaxOpenConns,
		"max_idle", cfg.MaxIdleConns,
	)
	return c, nil
}

// Wrap applies the pool settings from cfg to an already opened handle.
// dialectName selects the SQL flavor statements are built for.
func Wrap(db *sqlx.DB, dialectName string, cfg config.DatabaseConfig, logger logging.Logger) *Client {
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return &Client{
		db:           db,
		dialect:      dialectName,
		leaseTimeout: cfg.LeaseTimeout,
		logger:       logger.With("component", "db_client"),
	}
}

// Lease takes one connection out of the pool, waiting at most the configured
// lease timeout. The caller must Close the connection to return it.
func (c *Client) Lease(ctx context.Context) (*sqlx.Conn, error) {
	if c.leaseTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.leaseTimeout)
		defer cancel()
	}

	conn, err := c.db.Connx(ctx)
	if err != nil {
		stats := c.db.Stats()
		c.logger.Debug("connection lease failed",
			"error", err,
			"open", stats.OpenConnections,
			"in_use", stats.InUse,
			"wait_count", stats.WaitCount,
		)
		return nil, err
	}
	return conn, nil
}

// Dialect reports the SQL dialect of the underlying database.
func (c *Client) Dialect() string {
	return c.dialect
}

// Stats exposes pool counters.
func (c *Client) Stats() sql.DBStats {
	return c.db.Stats()
}

// Close closes the pool.
func (c *Client) Close() error {
	return c.db.Close()
}

// Ping is used by health checks.
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}
