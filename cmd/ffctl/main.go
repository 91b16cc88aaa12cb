package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ffctl",
	Short: "Founder Flow operator tool",
	Long: `ffctl runs maintenance tasks against the Founder Flow database.

It reads the same configuration as the server (configs/config.yaml, .env and APP_* variables).

Commands:
  migrate       Create enums, tables, role functions and row policies
  create-user   Create an identity with profile and role
  grant-role    Change the role of an existing identity`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(migrateCmd, createUserCmd, grantRoleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
