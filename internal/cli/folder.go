// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newFolderCmd)
	rootCmd.AddCommand(removeItemCmd)
}

var newFolderCmd = &cobra.Command{
	Use:   "new-folder <name> <parent-folder>",
	Short: "Create a catalog folder",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		svcs, err := a.services(ctx, false)
		if err != nil {
			return err
		}

		item, err := svcs.Catalog.CreateFolder(ctx, args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("Created folder %s\n", item.Path)
		return nil
	},
}

var removeItemCmd = &cobra.Command{
	Use:   "remove-item <item-path>",
	Short: "Delete a catalog item",
	Long: `Delete a catalog item. Deleting a folder deletes everything under it;
deleting a report deletes the linked reports pointing at it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		svcs, err := a.services(ctx, false)
		if err != nil {
			return err
		}

		if err := svcs.Catalog.DeleteItem(ctx, args[0]); err != nil {
			return err
		}

		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}
