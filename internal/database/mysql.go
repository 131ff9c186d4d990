// Package database wraps the MySQL-wire connection used by every repository.
// The client is a two-state machine: disconnected until Connect succeeds,
// disconnected again after Close. There is no retry or reconnect logic; a
// transient failure surfaces to the caller.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

var ErrNotConnected = errors.New("database: not connected")

// Handle resolves the live sqlx handle at call time, so repositories can be
// constructed before Connect has run.
type Handle interface {
	DB() *sqlx.DB
}

// Static wraps an already-open handle. Used by repository tests.
func Static(db *sqlx.DB) Handle {
	return staticHandle{db}
}

type staticHandle struct{ db *sqlx.DB }

func (h staticHandle) DB() *sqlx.DB { return h.db }

type Config struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type Client struct {
	cfg Config
	log *zap.Logger
	db  *sqlx.DB
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	return &Client{cfg: cfg, log: log}
}

// Connect opens the connection and verifies it with a ping. Calling Connect
// on an already-connected client is a no-op.
func (c *Client) Connect(ctx context.Context) error {
	if c.db != nil {
		return nil
	}

	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)
	mc.User = c.cfg.User
	mc.Passwd = c.cfg.Password
	mc.DBName = c.cfg.DBName
	mc.ParseTime = true

	db, err := sqlx.Open("mysql", mc.FormatDSN())
	if err != nil {
		return fmt.Errorf("open mysql connection: %w", err)
	}
	db.SetMaxOpenConns(c.cfg.MaxOpenConns)
	db.SetMaxIdleConns(c.cfg.MaxIdleConns)
	db.SetConnMaxLifetime(c.cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(c.cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("ping %s: %w", mc.Addr, err)
	}

	c.db = db
	c.log.Info("connected to database",
		zap.String("addr", mc.Addr), zap.String("db_name", c.cfg.DBName))
	return nil
}

// DB exposes the underlying handle to the repositories. Nil until Connect
// succeeds.
func (c *Client) DB() *sqlx.DB {
	return c.db
}

// Begin starts a transaction, or fails with ErrNotConnected.
func (c *Client) Begin(ctx context.Context) (*sqlx.Tx, error) {
	if c.db == nil {
		return nil, ErrNotConnected
	}
	return c.db.BeginTxx(ctx, nil)
}

// Close is idempotent and safe to call on a client that never connected.
func (c *Client) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	c.log.Info("database connection closed")
	return err
}
