// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

package cli

import (
	"fmt"
	"strings"

	"github.com/ravenbix/rstools/models"
	"github.com/spf13/cobra"
)

var getPropertyNames []string

func init() {
	getItemPropertyCmd.Flags().StringSliceVar(&getPropertyNames, "name", nil, "property names to fetch (default: all)")
	rootCmd.AddCommand(getItemPropertyCmd)
	rootCmd.AddCommand(setItemPropertyCmd)
}

var getItemPropertyCmd = &cobra.Command{
	Use:   "get-item-property <item-path>",
	Short: "Print properties of a catalog item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		svcs, err := a.services(ctx, false)
		if err != nil {
			return err
		}

		properties, err := svcs.Catalog.GetItemProperties(ctx, args[0], getPropertyNames)
		if err != nil {
			return err
		}

		for _, p := range properties {
			fmt.Printf("%s=%s\n", p.Name, p.Value)
		}
		return nil
	},
}

var setItemPropertyCmd = &cobra.Command{
	Use:   "set-item-property <item-path> <name>=<value> [<name>=<value>...]",
	Short: "Set properties on a catalog item",
	Long: `Set one or more properties on a catalog item.

Example:
  rstools set-item-property "/Finance/Linked/EU" Description="EU copy" Hidden=true`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		properties, err := parseProperties(args[1:])
		if err != nil {
			return err
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		svcs, err := a.services(ctx, false)
		if err != nil {
			return err
		}

		if err := svcs.Catalog.SetItemProperties(ctx, args[0], properties); err != nil {
			return err
		}

		fmt.Printf("Updated %d property(ies) on %s\n", len(properties), args[0])
		return nil
	},
}

// parseProperties turns <name>=<value> arguments into a property list.
// Repeating a name keeps the last value.
func parseProperties(args []string) (models.Properties, error) {
	properties := models.Properties{}
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("malformed property %q, expected <name>=<value>", arg)
		}
		properties = properties.Set(name, value)
	}
	return properties, nil
}
