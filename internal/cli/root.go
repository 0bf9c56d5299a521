// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

// Package cli defines the rstools command tree. Commands talk to the report
// server through the session connector and the item-management services;
// wiring happens lazily so commands that never touch the server (profile
// management, version) work without a connection.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ravenbix/rstools/internal/config"
	"github.com/ravenbix/rstools/internal/credstore"
	"github.com/ravenbix/rstools/internal/logger"
	"github.com/ravenbix/rstools/internal/service"
	"github.com/ravenbix/rstools/internal/session"
	"github.com/ravenbix/rstools/internal/store"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// connection flags, shared by every command that reaches the server
var (
	flagConfig     string
	flagServerURI  string
	flagUsername   string
	flagPassword   string
	flagProfile    string
	flagPassphrase string
)

// app holds the lazily wired application state behind the command tree.
type app struct {
	cfg  *config.StructuredConfig
	log  *logger.Logger
	conn *session.Connector
	db   *store.DB
}

var a = &app{}

var rootCmd = &cobra.Command{
	Use:   "rstools",
	Short: "Manage linked reports and catalog items on a reporting server",
	Long: `rstools manages the catalog of a SQL Server Reporting Services instance
from the command line: create and repoint linked reports, browse and cache
folder listings, and maintain item properties and connection profiles.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.init() },
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "path to a JSON config file")
	pf.StringVar(&flagServerURI, "server", "", "report server URI, e.g. http://host/ReportServer")
	pf.StringVar(&flagUsername, "username", "", "basic-auth username")
	pf.StringVar(&flagPassword, "password", "", "basic-auth password")
	pf.StringVar(&flagProfile, "use-profile", "", "saved connection profile to use")
	pf.StringVar(&flagPassphrase, "passphrase", "", "passphrase unsealing the profile password")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	defer a.close()
	return rootCmd.Execute()
}

// init loads configuration and builds the logger and connector. Each
// invocation gets a run id so one command's log entries correlate.
func (a *app) init() error {
	if a.cfg != nil {
		return nil
	}

	cfg, err := config.GetStructuredConfig(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	base := logger.NewFileLogger("rstools")
	a.log = &logger.Logger{Logger: base.With().Str("run_id", uuid.NewString()).Logger()}

	profiles, err := credstore.NewFileProfileStore(cfg.Profiles.Path)
	if err != nil {
		return fmt.Errorf("open profile store: %w", err)
	}
	a.conn = session.NewConnector(cfg, profiles, a.log)

	return nil
}

// profileStore opens the profile store for the profile subcommands.
func (a *app) profileStore() (credstore.ProfileStore, error) {
	return credstore.NewFileProfileStore(a.cfg.Profiles.Path)
}

func (a *app) connectOptions() session.Options {
	return session.Options{
		ServerURI:  flagServerURI,
		Username:   flagUsername,
		Password:   flagPassword,
		Profile:    flagProfile,
		Passphrase: flagPassphrase,
	}
}

// services connects to the server and wires the item-management services.
// withCache additionally opens the local catalog cache database.
func (a *app) services(ctx context.Context, withCache bool) (*service.Services, error) {
	client, err := a.conn.Connect(ctx, a.connectOptions())
	if err != nil {
		return nil, err
	}

	var cache store.CatalogCache
	if withCache {
		db, err := a.openCache(ctx)
		if err != nil {
			return nil, err
		}
		cache = store.NewCatalogCache(db, a.log)
	}

	return service.NewServices(client, cache, a.cfg.Cache.TTL, a.log), nil
}

func (a *app) openCache(ctx context.Context) (*store.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	db, err := store.NewConnectSQLite(ctx, a.cfg.Cache, a.log)
	if err != nil {
		return nil, fmt.Errorf("open catalog cache: %w", err)
	}
	a.db = db
	return db, nil
}

func (a *app) close() {
	if a.db != nil {
		_ = a.db.Close()
		a.db = nil
	}
}

// commandContext bounds a single command run and carries the run-scoped
// logger, so layers reading it via logger.FromContext see the run_id field.
// The request timeout applies per round trip inside the client, so the
// overall bound is generous.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if a.log != nil {
		ctx = a.log.WithContext(ctx)
	}
	return context.WithTimeout(ctx, 5*time.Minute)
}
