package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	VERSION = "0.0.0-dev.0"
)

var rootCmd = &cobra.Command{
	Use:               "search-server",
	Version:           VERSION,
	SilenceUsage:      true,
	SilenceErrors:     true,
	DisableAutoGenTag: true,
	Short:             "In-memory TF-IDF document search server",
	Long: `search-server ranks documents against plus/minus word queries using TF-IDF.
Run "serve" for the HTTP API or "console" to search documents read from stdin.`,
}

type rootFlags struct {
	logLevel  string
	logFormat string
}

var rootArgs = rootFlags{
	logLevel:  "info",
	logFormat: "text",
}

func init() {
	addLoggingFlags(rootCmd.PersistentFlags())
	rootCmd.SetOut(os.Stdout)
}

// addLoggingFlags registers the flags shared by every command.
func addLoggingFlags(flags *pflag.FlagSet) {
	flags.StringVar(&rootArgs.logLevel, "log-level", rootArgs.logLevel,
		"Log level. Options: [debug, info, warn, error].")
	flags.StringVar(&rootArgs.logFormat, "log-format", rootArgs.logFormat,
		"Log format. Options: [text, json].")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrf("✗ %v\n", err)
		os.Exit(1)
	}
}
