// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Daily Report - a CLI that collects a developer's git commits for a given day,
groups them by branch, and assembles a natural-language prompt describing the
work, optionally forwarding it to a chat-completions API for summarization.

Copyright (C) 2025  Aleksei Lobanov

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd constructs the daily-report root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("DAILY_REPORT_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "daily-report",
		Short:         "Generate a daily report of git commits",
		Long:          "daily-report collects one author's git commits for a target day, groups them by branch,\nand assembles a summarization prompt, optionally sending it to a chat-completions API.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReport,
	}

	// Flags in alphabetical order for deterministic help output
	cmd.Flags().String("date", "", "Target day in YYYY-MM-DD format (default: yesterday)")
	cmd.Flags().String("email", "", "Author email filter (default: the locally configured git identity)")
	cmd.Flags().String("repo", "", "Path to the git repository (default: current directory)")
	cmd.Flags().Bool("summary", false, "Send the assembled prompt to the summarization API and print the result")

	// Global flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of daily-report",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "daily-report version %s\n", version)
		},
	})

	return cmd
}
