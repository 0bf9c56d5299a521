// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var getLinkedCopy bool

func init() {
	getLinkedReportCmd.Flags().BoolVar(&getLinkedCopy, "copy", false, "copy the source path to the clipboard")
	rootCmd.AddCommand(getLinkedReportCmd)
	rootCmd.AddCommand(setLinkedReportCmd)
}

var getLinkedReportCmd = &cobra.Command{
	Use:   "get-linked-report <item-path>",
	Short: "Print the report a linked report points to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		svcs, err := a.services(ctx, false)
		if err != nil {
			return err
		}

		link, err := svcs.LinkedReports.GetSource(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Println(link)
		if getLinkedCopy {
			if err := clipboard.WriteAll(link); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
		}
		return nil
	},
}

var setLinkedReportCmd = &cobra.Command{
	Use:   "set-linked-report <item-path> <report-path>",
	Short: "Repoint a linked report at another report",
	Long: `Change the report definition a linked report renders. The item keeps its
name, folder, and settings.

Example:
  rstools set-linked-report "/Finance/Linked/EU" "/Finance/Quarterly Sales"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		svcs, err := a.services(ctx, false)
		if err != nil {
			return err
		}

		if err := svcs.LinkedReports.SetSource(ctx, args[0], args[1]); err != nil {
			return err
		}

		fmt.Printf("Repointed %s -> %s\n", args[0], args[1])
		return nil
	},
}
