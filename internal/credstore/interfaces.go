// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

// Package credstore persists named report server connection profiles.
//
// Profiles live in a JSON file under the user config dir. Passwords are
// never written in the clear: each one is sealed with AES-256-GCM under a
// key derived from the user's passphrase via Argon2id, with a per-profile
// random salt stored alongside the blob.
package credstore

import (
	"context"

	"github.com/ravenbix/rstools/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/profile_store_mock.go -package=mock

// ProfileStore manages saved connection profiles.
type ProfileStore interface {
	// Save stores profile under profile.Name, sealing password with a key
	// derived from passphrase. An empty password saves an anonymous
	// profile and requires no passphrase. An existing profile with the
	// same name is replaced.
	Save(ctx context.Context, profile models.ConnectionProfile, password, passphrase string) error

	// Resolve returns the named profile and its plaintext password,
	// unsealed with passphrase. Returns [ErrProfileNotFound] when the name
	// is unknown and [ErrWrongPassphrase] when the blob does not
	// authenticate under the derived key.
	Resolve(ctx context.Context, name, passphrase string) (models.ConnectionProfile, string, error)

	// Delete removes the named profile. Returns [ErrProfileNotFound] when
	// the name is unknown.
	Delete(ctx context.Context, name string) error

	// List returns all saved profiles sorted by name, with sealed blobs
	// intact (never plaintext passwords).
	List(ctx context.Context) ([]models.ConnectionProfile, error)
}
