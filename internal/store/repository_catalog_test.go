package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"

	"github.com/ravenbix/rstools/internal/logger"
	"github.com/ravenbix/rstools/models"
)

func newTestCatalogCache(t *testing.T) (*catalogCacheRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &catalogCacheRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestReplaceFolder_Success(t *testing.T) {
	repo, mock, db := newTestCatalogCache(t)
	defer db.Close()

	items := []models.CatalogItem{
		{Name: "Monthly Sales", Path: "/Finance/Monthly Sales", Type: models.ItemTypeReport},
		{Name: "Archive", Path: "/Finance/Archive", Type: models.ItemTypeFolder, Hidden: true},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM catalog_items").
		WithArgs("/Finance").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO catalog_items").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	if err := repo.ReplaceFolder(context.Background(), "/Finance", items); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestReplaceFolder_EmptyListingOnlyDeletes(t *testing.T) {
	repo, mock, db := newTestCatalogCache(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM catalog_items").
		WithArgs("/Empty").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.ReplaceFolder(context.Background(), "/Empty", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestReplaceFolder_DeleteFailureRollsBack(t *testing.T) {
	repo, mock, db := newTestCatalogCache(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM catalog_items").
		WithArgs("/Finance").
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := repo.ReplaceFolder(context.Background(), "/Finance", nil)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetFolder_Success(t *testing.T) {
	repo, mock, db := newTestCatalogCache(t)
	defer db.Close()

	refreshedAt := time.Now().UTC().Truncate(time.Second)
	rows := sqlmock.
		NewRows([]string{"name", "path", "item_type", "description", "hidden", "refreshed_at"}).
		AddRow("Archive", "/Finance/Archive", "Folder", "", true, refreshedAt).
		AddRow("Monthly Sales", "/Finance/Monthly Sales", "Report", "Month-end numbers", false, refreshedAt)

	mock.ExpectQuery("SELECT name, path, item_type, description, hidden, refreshed_at FROM catalog_items").
		WithArgs("/Finance").
		WillReturnRows(rows)

	cached, err := repo.GetFolder(context.Background(), "/Finance")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cached.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(cached.Items))
	}
	if cached.Items[0].Name != "Archive" || !cached.Items[0].IsFolder() {
		t.Errorf("unexpected first item: %+v", cached.Items[0])
	}
	if !cached.RefreshedAt.Equal(refreshedAt) {
		t.Errorf("expected refreshed_at %v, got %v", refreshedAt, cached.RefreshedAt)
	}
}

func TestGetFolder_MissReturnsSentinel(t *testing.T) {
	repo, mock, db := newTestCatalogCache(t)
	defer db.Close()

	mock.ExpectQuery("SELECT name, path, item_type, description, hidden, refreshed_at FROM catalog_items").
		WithArgs("/Never/Cached").
		WillReturnRows(sqlmock.NewRows([]string{"name", "path", "item_type", "description", "hidden", "refreshed_at"}))

	_, err := repo.GetFolder(context.Background(), "/Never/Cached")
	if !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got: %v", err)
	}
}

func TestGetFolder_QueryFailureLogsThroughInjectedLogger(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	var buf bytes.Buffer
	l := &logger.Logger{Logger: zerolog.New(&buf)}
	repo := &catalogCacheRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}

	mock.ExpectQuery("SELECT name, path, item_type, description, hidden, refreshed_at FROM catalog_items").
		WithArgs("/Finance").
		WillReturnError(errors.New("disk I/O error"))

	if _, err = repo.GetFolder(context.Background(), "/Finance"); !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got: %v", err)
	}
	if !strings.Contains(buf.String(), "failed to query cached folder") {
		t.Errorf("expected failure to be logged, got: %q", buf.String())
	}
}

func TestPurge_Success(t *testing.T) {
	repo, mock, db := newTestCatalogCache(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM catalog_items").
		WillReturnResult(sqlmock.NewResult(0, 10))

	if err := repo.Purge(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
