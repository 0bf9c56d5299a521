package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ravenbix/rstools/internal/config"
	"github.com/ravenbix/rstools/internal/logger"
	"github.com/ravenbix/rstools/migrations"
)

// DB wraps the cache database connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectSQLite opens (creating if needed) the SQLite database backing
// the catalog cache, verifies the connection, and applies pending schema
// migrations.
func NewConnectSQLite(ctx context.Context, cfg config.Cache, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(cfg.Path); err != nil {
		log.Err(err).Str("path", cfg.Path).Msg("error creating cache database file")
		return nil, fmt.Errorf("error creating cache database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		log.Err(err).Str("path", cfg.Path).Msg("error opening cache database")
		return nil, fmt.Errorf("error opening connection to cache DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("path", cfg.Path).Msg("error connecting cache database (ping)")
		return nil, err
	}

	if err = migrations.Migrate(conn); err != nil {
		return nil, err
	}
	log.Debug().Str("path", cfg.Path).Msg("catalog cache database ready")

	return &DB{DB: conn, logger: log}, nil
}

// Close closes the cache database connection.
func (db *DB) Close() error {
	db.logger.Debug().Msg("catalog cache database closed")
	return db.DB.Close()
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
				return fmt.Errorf("error creating DB dir: %w", mkErr)
			}
		}
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
