// Package main provides sqlbgen, a code generator for sqlb identifier
// constants.
//
// sqlbgen reads a schema description (YAML) and emits a Go file of
// typed table and column constants, so queries reference identifiers
// through compile-checked names instead of string literals:
//
//	q := sqlb.Select(models.UsersID).From(models.Users)
//
// Usage:
//
//	sqlbgen generate --schema schema.yaml --output models/schema.go
//
// Flags can also come from a sqlbgen.yaml config file or SQLBGEN_*
// environment variables; flags win over both.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg     *Config
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "sqlbgen",
	Short: "Generate sqlb identifier constants from a schema",
	Long: `sqlbgen - schema-driven identifier constants for sqlb

sqlbgen turns a schema description into a Go file of typed table and
column constants, keeping query code free of raw identifier strings.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		var err error
		cfg, err = LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: sqlbgen.yaml if present)")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

// Version is set at build time with -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sqlbgen version",
	Run: func(*cobra.Command, []string) {
		fmt.Println("sqlbgen", Version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sqlbgen:", err)
		os.Exit(1)
	}
}
