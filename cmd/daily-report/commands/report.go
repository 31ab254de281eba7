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
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/alobanov/daily-report/cmd/daily-report/internal/clierr"
	"github.com/alobanov/daily-report/internal/config"
	"github.com/alobanov/daily-report/internal/gitcli"
	"github.com/alobanov/daily-report/internal/logging"
	"github.com/alobanov/daily-report/internal/openai"
	"github.com/alobanov/daily-report/internal/report"
)

// runReport resolves the run configuration and drives the report pipeline.
func runReport(cmd *cobra.Command, args []string) error {
	dateFlag, _ := cmd.Flags().GetString("date")
	emailFlag, _ := cmd.Flags().GetString("email")
	repoFlag, _ := cmd.Flags().GetString("repo")
	summaryFlag, _ := cmd.Flags().GetBool("summary")
	verboseFlag, _ := cmd.Flags().GetBool("verbose")

	log := logging.New(verboseFlag)
	defer func() { _ = log.Sync() }()

	settings, err := config.LoadSettings(config.SettingsPath())
	if err != nil {
		return err
	}

	targetDate, err := config.ParseDate(dateFlag, time.Now())
	if err != nil {
		return clierr.Wrap(clierr.CodeUsage, "parsing --date", err)
	}

	cfg := config.Config{
		Settings:    settings,
		RepoPath:    repoFlag,
		AuthorEmail: emailFlag,
		TargetDate:  targetDate,
		UseSummary:  summaryFlag,
		Verbose:     verboseFlag,
	}

	var summarizer report.Summarizer
	if cfg.UseSummary {
		cfg.APIKey = config.LoadAPIKey()
		if cfg.APIKey == "" {
			return clierr.Newf(clierr.CodeCredential, "%s is not set", config.EnvAPIKey)
		}
		summarizer = openai.New(openai.Config{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		})
	}

	git := gitcli.New(cfg.RepoPath, log)
	gen := report.NewGenerator(cfg, git, summarizer, log, cmd.OutOrStdout())

	err = gen.Run(cmd.Context())
	switch {
	case err == nil:
		return nil
	case errors.Is(err, report.ErrIdentity):
		return clierr.Wrap(clierr.CodeIdentity, "resolving git identity", err)
	case errors.Is(err, report.ErrTemplate):
		return clierr.Wrap(clierr.CodeTemplate, "loading prompt template", err)
	default:
		return err
	}
}
