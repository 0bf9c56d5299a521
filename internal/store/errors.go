package store

import "errors"

var (
	// ErrCacheMiss indicates the requested folder has never been cached.
	ErrCacheMiss = errors.New("folder not cached")

	ErrExecutingQuery     = errors.New("error executing query")
	ErrScanningRow        = errors.New("error scanning row")
	ErrOpeningTransaction = errors.New("error opening transaction")
)
