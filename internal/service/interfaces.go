// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

// Package service implements the item-management operations of rstools on
// top of the report server client. Services validate input, translate
// transport errors into business errors, and log through the shared logger.
package service

import (
	"context"

	"github.com/ravenbix/rstools/internal/store"
	"github.com/ravenbix/rstools/models"
)

// LinkedReportService manages linked reports: named catalog entries that
// point at an existing report definition while carrying their own metadata.
type LinkedReportService interface {
	// Create creates a new linked report per req. Required fields are
	// validated locally; the remote create call is issued exactly once and
	// any remote failure surfaces as a single wrapped error carrying the
	// server's message.
	Create(ctx context.Context, req models.CreateLinkedReportRequest) error

	// GetSource returns the path of the report definition the linked
	// report at itemPath points at. Returns [ErrNotLinkedReport] when the
	// item exists but is not a linked report.
	GetSource(ctx context.Context, itemPath string) (string, error)

	// SetSource repoints the linked report at itemPath to the report
	// definition at link.
	SetSource(ctx context.Context, itemPath, link string) error
}

// CatalogService covers folder and item management plus the local catalog
// cache.
type CatalogService interface {
	// ListFolder lists folder contents straight from the server.
	ListFolder(ctx context.Context, folder string, recursive bool) ([]models.CatalogItem, error)

	// ListFolderCached serves folder contents from the local cache,
	// refreshing from the server first when the cached listing is missing
	// or older than the configured TTL.
	ListFolderCached(ctx context.Context, folder string) (store.CachedFolder, error)

	// RefreshFolder re-lists folder from the server and replaces its
	// cached listing.
	RefreshFolder(ctx context.Context, folder string) error

	// PurgeCache drops all cached listings.
	PurgeCache(ctx context.Context) error

	// CreateFolder creates a folder named name inside parent.
	CreateFolder(ctx context.Context, name, parent string) (models.CatalogItem, error)

	// DeleteItem removes the catalog item at itemPath.
	DeleteItem(ctx context.Context, itemPath string) error

	// GetItemProperties fetches the named properties of the item at
	// itemPath; an empty names slice fetches all of them.
	GetItemProperties(ctx context.Context, itemPath string, names []string) (models.Properties, error)

	// SetItemProperties writes properties on the item at itemPath.
	SetItemProperties(ctx context.Context, itemPath string, properties models.Properties) error
}
