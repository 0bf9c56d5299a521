// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

package cli

import (
	"fmt"

	"github.com/ravenbix/rstools/models"
	"github.com/spf13/cobra"
)

func init() {
	profileCmd.AddCommand(profileSaveCmd)
	profileCmd.AddCommand(profileRemoveCmd)
	profileCmd.AddCommand(profileListCmd)
	rootCmd.AddCommand(profileCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage saved connection profiles",
	Long: `Manage saved connection profiles. A profile bundles a server URI and
credentials under a name, so commands can use --use-profile instead of
repeating connection flags. Passwords are sealed with a passphrase before
they touch disk.`,
}

var profileSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the connection flags as a named profile",
	Long: `Save the connection given by --server, --username, and --password under a
name. A non-empty password requires --passphrase to seal it.

Example:
  rstools profile save staging --server http://staging/ReportServer \
    --username svc-reports --password s3cret --passphrase "vault key"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		store, err := a.profileStore()
		if err != nil {
			return err
		}

		profile := models.ConnectionProfile{
			Name:            args[0],
			ReportServerURI: flagServerURI,
			Username:        flagUsername,
		}
		if err := store.Save(ctx, profile, flagPassword, flagPassphrase); err != nil {
			return err
		}

		fmt.Printf("Saved profile %q\n", args[0])
		return nil
	},
}

var profileRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		store, err := a.profileStore()
		if err != nil {
			return err
		}

		if err := store.Delete(ctx, args[0]); err != nil {
			return err
		}

		fmt.Printf("Removed profile %q\n", args[0])
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		store, err := a.profileStore()
		if err != nil {
			return err
		}

		profiles, err := store.List(ctx)
		if err != nil {
			return err
		}

		for _, p := range profiles {
			auth := "anonymous"
			if p.Username != "" {
				auth = p.Username
			}
			fmt.Printf("%-20s %-16s %s\n", p.Name, auth, p.ReportServerURI)
		}
		return nil
	},
}
