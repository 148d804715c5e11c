// Package db opens the events database and keeps its schema current.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"
)

// poolMode selects between the single-writer pool and the read pool that
// together serve one SQLite file.
type poolMode int

const (
	poolWrite poolMode = iota
	poolRead
)

func (m poolMode) String() string {
	if m == poolWrite {
		return "write"
	}
	return "read"
}

const (
	busyTimeoutMS   = 5000
	syncLevel       = "NORMAL"
	journalMode     = "WAL"
	defaultReadFans = 4
)

// openPool opens one *sql.DB for path in the given mode. Writers are pinned
// to a single connection so SQLite never sees two concurrent transactions;
// readers fan out up to maxOpen connections (0 picks the default).
//
// Every pool runs with WAL journaling, synchronous=NORMAL, a 5s busy timeout,
// and foreign keys on. Foreign keys must stay on: the registration and
// invitation tables rely on FK enforcement for referential integrity.
func openPool(path string, mode poolMode, maxOpen int) (*sql.DB, error) {
	pool, err := sql.Open("sqlite3", dsnFor(path, mode))
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s pool: %w", mode, err)
	}

	if mode == poolWrite {
		maxOpen = 1
	} else if maxOpen <= 0 {
		maxOpen = defaultReadFans
	}
	pool.SetMaxOpenConns(maxOpen)
	pool.SetMaxIdleConns(maxOpen)
	pool.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("ping sqlite %s pool: %w", mode, err)
	}

	return pool, nil
}

// OpenSQLitePair opens the write and read pools for one events database
// file. Repositories route mutations through the write pool and queries
// through the read pool. readMaxOpen sizes the read pool, 0 for the default.
func OpenSQLitePair(path string, readMaxOpen int) (writeDB, readDB *sql.DB, err error) {
	writeDB, err = openPool(path, poolWrite, 0)
	if err != nil {
		return nil, nil, err
	}

	readDB, err = openPool(path, poolRead, readMaxOpen)
	if err != nil {
		_ = writeDB.Close()
		return nil, nil, err
	}

	return writeDB, readDB, nil
}

// dsnFor renders the DSN for path in the given mode. Write pools add
// _txlock=immediate so write transactions take the lock up front instead of
// failing on upgrade.
func dsnFor(path string, mode poolMode) string {
	params := url.Values{}
	params.Set("_journal_mode", journalMode)
	params.Set("_busy_timeout", fmt.Sprint(busyTimeoutMS))
	params.Set("_synchronous", syncLevel)
	params.Set("_foreign_keys", "on")
	if mode == poolWrite {
		params.Set("_txlock", "immediate")
	}
	return path + "?" + params.Encode()
}
