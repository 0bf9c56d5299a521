// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

package models

import "time"

// ConnectionProfile is a named connection to a report server, persisted by
// the profile store. The password is never stored in the clear: SealedPassword
// holds a base64 blob sealed with a key derived from the user's passphrase.
type ConnectionProfile struct {
	// Name identifies the profile (e.g. "prod", "staging").
	Name string `json:"name"`

	// ReportServerURI is the base URI of the report server,
	// e.g. "http://reports.example.com/ReportServer".
	ReportServerURI string `json:"report_server_uri"`

	// Username is the account used for basic authentication.
	Username string `json:"username"`

	// SealedPassword is the encrypted password blob. Empty for anonymous
	// profiles.
	SealedPassword string `json:"sealed_password,omitempty"`

	// KeySalt is the per-profile salt used to derive the sealing key from
	// the passphrase. Stored alongside the blob; not a secret.
	KeySalt string `json:"key_salt,omitempty"`

	// UpdatedAt records the last time the profile was written.
	UpdatedAt time.Time `json:"updated_at"`
}
