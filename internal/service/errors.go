package service

import "errors"

var (
	ErrEmptyName     = errors.New("linked report name must not be empty")
	ErrEmptyFolder   = errors.New("destination folder must not be empty")
	ErrEmptyItemPath = errors.New("item path must not be empty")
	ErrInvalidPath   = errors.New("catalog paths must start with '/'")
	ErrInvalidName   = errors.New("item names must not contain '/'")

	ErrNotLinkedReport = errors.New("item is not a linked report")

	ErrItemNotFound      = errors.New("catalog item not found")
	ErrItemAlreadyExists = errors.New("catalog item already exists")
	ErrAccessDenied      = errors.New("access to catalog item denied")
)
