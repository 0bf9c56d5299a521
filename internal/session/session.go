// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

// Package session resolves report server connection settings from their
// possible sources and hands out a ready client. Explicit flag values win
// over a named profile, which wins over the merged configuration; whatever
// remains empty stays empty, so a server without auth is reached
// anonymously.
package session

import (
	"context"
	"fmt"

	"github.com/ravenbix/rstools/internal/config"
	"github.com/ravenbix/rstools/internal/credstore"
	"github.com/ravenbix/rstools/internal/logger"
	"github.com/ravenbix/rstools/internal/proxy"
)

// Options carries the connection inputs gathered from command-line flags.
// Zero values mean "not supplied on the command line".
type Options struct {
	// ServerURI overrides the report server URI from profile and config.
	ServerURI string

	// Username and Password override the credentials from profile and
	// config. Supplying a username without a password is allowed.
	Username string
	Password string

	// Profile names a saved connection profile to load. Empty skips the
	// profile store entirely.
	Profile string

	// Passphrase unseals the profile's stored password. Required only when
	// the named profile carries a sealed password.
	Passphrase string
}

// Connector builds report server clients from resolved connection settings.
// The first successfully built client is reused for subsequent calls, so a
// command that touches the server several times pays the setup cost once.
type Connector struct {
	cfg      *config.StructuredConfig
	profiles credstore.ProfileStore
	logger   *logger.Logger

	client proxy.ReportServerClient
}

// NewConnector returns a Connector resolving against cfg and profiles.
// profiles may be nil when profile support is not wired; naming a profile
// then fails.
func NewConnector(cfg *config.StructuredConfig, profiles credstore.ProfileStore, log *logger.Logger) *Connector {
	return &Connector{cfg: cfg, profiles: profiles, logger: log}
}

// Connect resolves opts into a client configuration and returns a connected
// [proxy.ReportServerClient]. Repeated calls return the client built first.
func (c *Connector) Connect(ctx context.Context, opts Options) (proxy.ReportServerClient, error) {
	if c.client != nil {
		return c.client, nil
	}

	clientCfg, err := c.resolve(ctx, opts)
	if err != nil {
		return nil, err
	}

	client, err := proxy.NewSOAPClient(clientCfg, c.logger)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("server", clientCfg.ReportServerURI).
		Bool("authenticated", clientCfg.Username != "").
		Msg("report server session established")

	c.client = client
	return client, nil
}

// resolve layers config, profile, and flags in increasing precedence.
func (c *Connector) resolve(ctx context.Context, opts Options) (proxy.ClientConfig, error) {
	clientCfg := proxy.ClientConfig{
		ReportServerURI: c.cfg.Server.ReportServerURI,
		Username:        c.cfg.Server.Username,
		Password:        c.cfg.Server.Password,
		Timeout:         c.cfg.Server.RequestTimeout,
	}

	if opts.Profile != "" {
		if c.profiles == nil {
			return proxy.ClientConfig{}, fmt.Errorf("profile %q requested but no profile store is configured", opts.Profile)
		}
		profile, password, err := c.profiles.Resolve(ctx, opts.Profile, opts.Passphrase)
		if err != nil {
			return proxy.ClientConfig{}, fmt.Errorf("load profile %q: %w", opts.Profile, err)
		}
		if profile.ReportServerURI != "" {
			clientCfg.ReportServerURI = profile.ReportServerURI
		}
		if profile.Username != "" {
			clientCfg.Username = profile.Username
			clientCfg.Password = password
		}
	}

	if opts.ServerURI != "" {
		clientCfg.ReportServerURI = opts.ServerURI
	}
	if opts.Username != "" {
		clientCfg.Username = opts.Username
		clientCfg.Password = opts.Password
	}

	return clientCfg, nil
}
