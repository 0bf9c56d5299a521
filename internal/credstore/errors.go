package credstore

import "errors"

var (
	// ErrProfileNotFound indicates the named profile does not exist.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrWrongPassphrase indicates the sealed password did not
	// authenticate under the key derived from the given passphrase.
	ErrWrongPassphrase = errors.New("wrong passphrase")
	// ErrNoPassphrase indicates a password was supplied without a
	// passphrase to seal it with.
	ErrNoPassphrase = errors.New("passphrase required to seal password")
)
