// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

// Package store provides the local catalog cache: folder listings fetched
// from the report server are kept in a small SQLite database so repeated
// list operations and offline inspection do not need a round trip.
package store

import (
	"context"
	"time"

	"github.com/ravenbix/rstools/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_cache_mock.go -package=mock

// CachedFolder is one cached folder listing together with the time it was
// last refreshed from the server.
type CachedFolder struct {
	Folder      string
	Items       []models.CatalogItem
	RefreshedAt time.Time
}

// CatalogCache stores folder listings keyed by folder path. One folder's
// rows are always replaced atomically, so a reader sees either the previous
// or the new listing, never a mix.
type CatalogCache interface {
	// ReplaceFolder swaps the cached listing of folder for items in a
	// single transaction.
	ReplaceFolder(ctx context.Context, folder string, items []models.CatalogItem) error

	// GetFolder returns the cached listing of folder ordered by item name.
	// Returns [ErrCacheMiss] (wrapped) when the folder has never been
	// cached.
	GetFolder(ctx context.Context, folder string) (CachedFolder, error)

	// Purge drops all cached listings.
	Purge(ctx context.Context) error
}
