package main

import (
	"fmt"
	"os"

	"github.com/leoandrade/payment-api/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

var envFlag string

var rootCmd = &cobra.Command{
	Use:   "payment-api",
	Short: "Payment API server and maintenance commands",
	Long:  "payment-api serves the authenticated users and payments REST API. Run without a subcommand to start the server.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The flag wins over PA_ENV and any .env file
		if envFlag != "" {
			return os.Setenv(config.EnvPrefix+"_ENV", envFlag)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "", "configuration environment (development, test, production)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateStatusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
