package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows      = errors.New("no rows in result set")
	ErrQueryRow    = errors.New("could not execute query")
	ErrStoreFailed = errors.New("could not store data")
	ErrNoID        = errors.New("data contains no id")
	ErrNotOpen     = errors.New("alert is not open")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

// Initialize creates the alerts table. The domain tables (bills,
// property_taxes, insurance_policies, vehicles, vendor_communications,
// payment_email_links, properties) are owned by the rest of the
// application and are expected to exist already.
func (s *Storage) Initialize(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS alerts (
			id 				TEXT NOT NULL,
			alert_type		TEXT NOT NULL,
			title			TEXT NOT NULL,
			message			TEXT NOT NULL,
			severity		TEXT NOT NULL,
			related_table	TEXT NOT NULL,
			related_id		TEXT NOT NULL,
			entity_key		TEXT NOT NULL,
			property_id		TEXT NULL,
			source_amount	NUMERIC NULL,
			action_url		TEXT NULL,
			action_label	TEXT NULL,
			created_at		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			resolved_at		timestamp with time zone NULL,
			expires_at		timestamp with time zone NULL,
			is_dismissed	BOOLEAN NOT NULL DEFAULT FALSE,
			is_read			BOOLEAN NOT NULL DEFAULT FALSE,
			CONSTRAINT pkey_alerts PRIMARY KEY (id)
		);

		CREATE UNIQUE INDEX IF NOT EXISTS uidx_alerts_open_entity_key
			ON alerts (entity_key) WHERE resolved_at IS NULL AND NOT is_dismissed;

		CREATE INDEX IF NOT EXISTS idx_alerts_related ON alerts (related_table, related_id);
		CREATE INDEX IF NOT EXISTS idx_alerts_expires ON alerts (expires_at) WHERE expires_at IS NOT NULL AND NOT is_dismissed;
	`)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) Close() {
	s.pool.Close()
}
