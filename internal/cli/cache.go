// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/ravenbix/rstools/internal/store"
	"github.com/ravenbix/rstools/internal/workers"
	"github.com/spf13/cobra"
)

func init() {
	cacheCmd.AddCommand(cacheRefreshCmd)
	cacheCmd.AddCommand(cacheWatchCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
	rootCmd.AddCommand(cacheCmd)
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the local catalog cache",
}

// cacheFolders resolves the folder set for refresh and watch: explicit args
// win over the configured list.
func cacheFolders(args []string) ([]string, error) {
	folders := args
	if len(folders) == 0 {
		folders = a.cfg.Cache.Folders
	}
	if len(folders) == 0 {
		return nil, fmt.Errorf("no folders to refresh: pass them as arguments or set cache.folders in the config")
	}
	return folders, nil
}

var cacheRefreshCmd = &cobra.Command{
	Use:   "refresh [folder...]",
	Short: "Refresh cached folder listings once",
	RunE: func(cmd *cobra.Command, args []string) error {
		folders, err := cacheFolders(args)
		if err != nil {
			return err
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		svcs, err := a.services(ctx, true)
		if err != nil {
			return err
		}

		job := workers.NewRefreshJob(svcs.Catalog, folders, a.log)
		if err := job.RunOnce(ctx); err != nil {
			return err
		}

		fmt.Printf("Refreshed %d folder(s)\n", len(folders))
		return nil
	},
}

var cacheWatchCmd = &cobra.Command{
	Use:   "watch [folder...]",
	Short: "Keep cached folder listings fresh until interrupted",
	Long: `Refresh the cached listings immediately and then on the configured
interval (workers.refresh_interval) until the process is interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		folders, err := cacheFolders(args)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		ctx = a.log.WithContext(ctx)

		svcs, err := a.services(ctx, true)
		if err != nil {
			return err
		}

		job := workers.NewRefreshJob(svcs.Catalog, folders, a.log)
		job.Start(ctx, a.cfg.Workers.RefreshInterval)
		defer job.Stop()

		fmt.Printf("Watching %d folder(s) every %s, Ctrl-C to stop\n", len(folders), a.cfg.Workers.RefreshInterval)
		<-ctx.Done()
		return nil
	},
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Drop all cached folder listings",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		db, err := a.openCache(ctx)
		if err != nil {
			return err
		}

		cache := store.NewCatalogCache(db, a.log)
		if err := cache.Purge(ctx); err != nil {
			return err
		}

		fmt.Println("Catalog cache purged")
		return nil
	},
}
