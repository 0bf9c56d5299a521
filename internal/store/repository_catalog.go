// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/ravenbix/rstools/internal/logger"
	"github.com/ravenbix/rstools/models"
)

// catalogCacheRepository is the SQLite-backed implementation of
// [CatalogCache]. All reads and writes go through the "catalog_items" table
// with queries built by squirrel.
type catalogCacheRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCatalogCache constructs a [CatalogCache] backed by the provided
// database connection and logger.
func NewCatalogCache(db *DB, log *logger.Logger) CatalogCache {
	return &catalogCacheRepository{db: db, logger: log}
}

func (r *catalogCacheRepository) ReplaceFolder(ctx context.Context, folder string, items []models.CatalogItem) error {
	log := r.logger
	refreshedAt := time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("folder", folder).Msg("failed to open cache transaction")
		return fmt.Errorf("%w: %w", ErrOpeningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	deleteQuery, deleteArgs, err := sq.Delete("catalog_items").
		Where(sq.Eq{"folder": folder}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Str("folder", folder).Msg("failed to clear cached folder")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if len(items) > 0 {
		insert := sq.Insert("catalog_items").
			Columns("id", "folder", "name", "path", "item_type", "description", "hidden", "refreshed_at")
		for _, item := range items {
			insert = insert.Values(
				uuid.NewString(),
				folder,
				item.Name,
				item.Path,
				string(item.Type),
				item.Description,
				item.Hidden,
				refreshedAt,
			)
		}

		insertQuery, insertArgs, buildErr := insert.ToSql()
		if buildErr != nil {
			return fmt.Errorf("build insert query: %w", buildErr)
		}
		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).Str("folder", folder).Int("items", len(items)).Msg("failed to insert cached folder rows")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit cache transaction: %w", err)
	}

	log.Debug().Str("folder", folder).Int("items", len(items)).Msg("cached folder replaced")
	return nil
}

func (r *catalogCacheRepository) GetFolder(ctx context.Context, folder string) (CachedFolder, error) {
	log := r.logger

	query, args, err := sq.Select("name", "path", "item_type", "description", "hidden", "refreshed_at").
		From("catalog_items").
		Where(sq.Eq{"folder": folder}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return CachedFolder{}, fmt.Errorf("build select query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("folder", folder).Msg("failed to query cached folder")
		return CachedFolder{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cached := CachedFolder{Folder: folder}
	for rows.Next() {
		var (
			item        models.CatalogItem
			itemType    string
			refreshedAt time.Time
		)
		if scanErr := rows.Scan(&item.Name, &item.Path, &itemType, &item.Description, &item.Hidden, &refreshedAt); scanErr != nil {
			log.Err(scanErr).Str("folder", folder).Msg("failed to scan cached item row")
			return CachedFolder{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		item.Type = models.ItemType(itemType)
		cached.Items = append(cached.Items, item)
		cached.RefreshedAt = refreshedAt
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return CachedFolder{}, fmt.Errorf("%w: %w", ErrExecutingQuery, rowsErr)
	}

	if len(cached.Items) == 0 {
		return CachedFolder{}, fmt.Errorf("%w: %s", ErrCacheMiss, folder)
	}

	return cached, nil
}

func (r *catalogCacheRepository) Purge(ctx context.Context) error {
	query, _, err := sq.Delete("catalog_items").ToSql()
	if err != nil {
		return fmt.Errorf("build purge query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

var _ CatalogCache = (*catalogCacheRepository)(nil)
