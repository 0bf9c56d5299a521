// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

package cli

import (
	"fmt"

	"github.com/ravenbix/rstools/models"
	"github.com/spf13/cobra"
)

var (
	listRecursive bool
	listCached    bool
)

func init() {
	listCmd.Flags().BoolVar(&listRecursive, "recursive", false, "list the folder tree recursively")
	listCmd.Flags().BoolVar(&listCached, "cached", false, "serve from the local catalog cache, refreshing it when stale")
	listCmd.MarkFlagsMutuallyExclusive("recursive", "cached")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list <folder>",
	Short: "List the items of a catalog folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		svcs, err := a.services(ctx, listCached)
		if err != nil {
			return err
		}

		var items []models.CatalogItem
		if listCached {
			cached, err := svcs.Catalog.ListFolderCached(ctx, args[0])
			if err != nil {
				return err
			}
			items = cached.Items
			fmt.Printf("# %s (cached, refreshed %s)\n", cached.Folder, cached.RefreshedAt.Local().Format("2006-01-02 15:04:05"))
		} else {
			items, err = svcs.Catalog.ListFolder(ctx, args[0], listRecursive)
			if err != nil {
				return err
			}
		}

		for _, item := range items {
			marker := " "
			if item.Hidden {
				marker = "H"
			}
			fmt.Printf("%s %-14s %s\n", marker, item.Type, item.Path)
		}
		return nil
	},
}
