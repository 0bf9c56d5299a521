// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

package cli

import (
	"fmt"

	"github.com/ravenbix/rstools/models"
	"github.com/spf13/cobra"
)

var (
	newLinkedName        string
	newLinkedPath        string
	newLinkedFolder      string
	newLinkedDescription string
	newLinkedHidden      bool
)

func init() {
	f := newLinkedReportCmd.Flags()
	f.StringVar(&newLinkedName, "name", "", "name of the new linked report")
	f.StringVar(&newLinkedPath, "path", "", "catalog path of the report the link points to")
	f.StringVar(&newLinkedFolder, "folder", "", "catalog folder the linked report is created in")
	f.StringVar(&newLinkedDescription, "description", "", "description of the linked report")
	f.BoolVar(&newLinkedHidden, "hidden", false, "hide the linked report in listings")
	_ = newLinkedReportCmd.MarkFlagRequired("name")
	_ = newLinkedReportCmd.MarkFlagRequired("path")
	_ = newLinkedReportCmd.MarkFlagRequired("folder")
	rootCmd.AddCommand(newLinkedReportCmd)
}

var newLinkedReportCmd = &cobra.Command{
	Use:   "new-linked-report",
	Short: "Create a linked report",
	Long: `Create a linked report: a catalog item that renders an existing report
definition under its own name, folder, and settings.

Example:
  rstools new-linked-report --name "Monthly Sales EU" \
    --path "/Finance/Monthly Sales" --folder "/Finance/Linked" \
    --description "EU region copy"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		svcs, err := a.services(ctx, false)
		if err != nil {
			return err
		}

		req := models.CreateLinkedReportRequest{
			Name:        newLinkedName,
			Folder:      newLinkedFolder,
			ItemPath:    newLinkedPath,
			Description: newLinkedDescription,
		}
		// only an explicit --hidden makes it into the item properties
		if cmd.Flags().Changed("hidden") {
			req.Hidden = &newLinkedHidden
		}

		if err := svcs.LinkedReports.Create(ctx, req); err != nil {
			return err
		}

		fmt.Printf("Created linked report %q in %s -> %s\n", newLinkedName, newLinkedFolder, newLinkedPath)
		return nil
	},
}
