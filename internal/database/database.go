// Package database centralises sqlx connection helpers over the pgx
// stdlib driver, consuming the postgres URI derived by the settings
// loader.
//
// Public entry points:
//
//	Open(uri)             – quick helper with conservative pool sizes.
//	OpenWithConfig(cfg, uri) – pool sizes from the DatabaseConfig projection.
//	Wrap(db, maxOpen, maxIdle) – adopt an existing *sql.DB (tests, custom drivers).
//
// All helpers Ping the database before returning so callers can fail fast
// during bootstrap.  Callers should Close() the returned *sqlx.DB when no
// longer needed.
package database

import (
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/orbitai/orbit/internal/types"
)

// Open returns a *sqlx.DB with sane defaults: 15 max open, 5 idle, and a
// 30-minute connection lifetime.  Suitable for process-wide pools or for
// test setups.
func Open(uri string) (*sqlx.DB, error) {
	db, err := sqlx.Open("pgx", uri)
	if err != nil {
		return nil, err
	}
	return tune(db, 15, 5)
}

// OpenWithConfig sizes the pool from the projection: PoolSize idle
// connections, PoolSize+MaxOverflow open.
func OpenWithConfig(cfg types.DatabaseConfig, uri string) (*sqlx.DB, error) {
	db, err := sqlx.Open("pgx", uri)
	if err != nil {
		return nil, err
	}
	return tune(db, cfg.PoolSize+cfg.MaxOverflow, cfg.PoolSize)
}

// Wrap adopts an already-open *sql.DB, applies pool limits, and pings it.
func Wrap(db *sql.DB, maxOpen, maxIdle int) (*sqlx.DB, error) {
	return tune(sqlx.NewDb(db, "pgx"), maxOpen, maxIdle)
}

func tune(db *sqlx.DB, maxOpen, maxIdle int) (*sqlx.DB, error) {
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}
