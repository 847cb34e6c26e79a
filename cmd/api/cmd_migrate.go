package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// payment-api migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema and versioned migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer app.close()

		if err := app.migrate(cmd.Context()); err != nil {
			return err
		}

		version, err := app.dbManager.MigrationManager().GetCurrentVersion(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Schema is at version %s\n", version)
		return nil
	},
}

// payment-api migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Print the schema version recorded in the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer app.close()

		version, err := app.dbManager.MigrationManager().GetCurrentVersion(cmd.Context())
		if err != nil {
			return err
		}
		if version == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No migrations applied")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Schema is at version %s\n", version)
		return nil
	},
}
