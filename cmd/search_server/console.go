package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/search-server/internal/console"
	"github.com/gcbaptista/search-server/internal/logger"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Search documents read from stdin",
	Long: `Reads a line of stop words, a document count, that many document lines
and a query line from stdin, then prints the top documents for the query.
Documents get IDs 0..n-1 in input order.`,
	Example: `  printf 'и в на\n2\nпушистый кот\nмодный ошейник\nпушистый\n' | search-server console`,
	Args:    cobra.NoArgs,
	RunE:    consoleCmdRun,
}

type consoleFlags struct {
	output string
}

var consoleArgs consoleFlags

func init() {
	consoleCmd.Flags().StringVarP(&consoleArgs.output, "output", "o", console.FormatPlain,
		"Output format. Options: [plain, table].")
	rootCmd.AddCommand(consoleCmd)
}

func consoleCmdRun(cmd *cobra.Command, args []string) error {
	// logs go to stderr so stdout carries only results
	slog.SetDefault(logger.New(os.Stderr, rootArgs.logLevel, rootArgs.logFormat))

	if err := console.Run(cmd.InOrStdin(), cmd.OutOrStdout(), consoleArgs.output); err != nil {
		return fmt.Errorf("console search failed: %w", err)
	}
	return nil
}
