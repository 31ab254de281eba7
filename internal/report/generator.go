// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/alobanov/daily-report/internal/config"
	"github.com/alobanov/daily-report/internal/locale"
	"github.com/alobanov/daily-report/internal/prompt"
)

// Markers the command layer maps to distinct exit codes. Errors out of Run
// are tagged with one of these via errors.Mark; everything untagged exits 1.
var (
	ErrIdentity = errors.New("git identity unavailable")
	ErrTemplate = errors.New("prompt template unavailable")
)

// GitSource is the full set of version-control queries a run issues.
// gitcli.Client implements it; tests substitute fakes.
type GitSource interface {
	History
	Username(ctx context.Context) (string, error)
	CommitsByAuthor(ctx context.Context, author, since, until string) []string
	BranchCommits(ctx context.Context, branch, author, since, until string) map[string]struct{}
}

// Summarizer is the optional downstream call for summarization-enabled runs.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// Generator drives one report run end to end.
type Generator struct {
	cfg        config.Config
	git        GitSource
	summarizer Summarizer
	log        *zap.Logger
	out        io.Writer
	msgs       locale.Messages
}

// NewGenerator wires a run. summarizer may be nil when the run does not
// request summarization.
func NewGenerator(cfg config.Config, git GitSource, summarizer Summarizer, log *zap.Logger, out io.Writer) *Generator {
	return &Generator{
		cfg:        cfg,
		git:        git,
		summarizer: summarizer,
		log:        log,
		out:        out,
		msgs:       locale.For(cfg.Locale),
	}
}

// Run executes the pipeline: identity, commit listing, template, grouping,
// prompt assembly, then either direct output or the summarization call.
// An empty commit listing short-circuits the run before the template is
// touched.
func (g *Generator) Run(ctx context.Context) error {
	username, err := g.git.Username(ctx)
	if err != nil {
		return errors.Mark(err, ErrIdentity)
	}

	author := g.cfg.AuthorEmail
	if author == "" {
		author = username
	}

	commits := g.git.CommitsByAuthor(ctx, author, g.cfg.Since(), g.cfg.Until())
	if len(commits) == 0 {
		g.log.Info(fmt.Sprintf(g.msgs.NoCommits, author, g.cfg.TargetDate.Format("2006-01-02")))
		return nil
	}

	template, err := prompt.Load(g.cfg.TemplatePath)
	if err != nil {
		return errors.Mark(err, ErrTemplate)
	}

	primary := g.git.BranchCommits(ctx, g.cfg.PrimaryBranch, author, g.cfg.Since(), g.cfg.Until())
	lines := GroupLines(ctx, commits, primary, g.cfg.PrimaryBranch, g.msgs.BranchHeader, g.git)
	if len(lines) == 0 {
		g.log.Debug("no commit attributable to any branch group, skipping report")
		return nil
	}

	text := prompt.Render(template, strings.Join(lines, "\n"))

	if !g.cfg.UseSummary {
		fmt.Fprintln(g.out, text)
		return nil
	}
	return g.summarize(ctx, text)
}

func (g *Generator) summarize(ctx context.Context, text string) error {
	g.log.Info("sending prompt to the summarization API")
	fmt.Fprintf(g.out, "\n%s\n\n%s\n", g.msgs.SendingPrompt, text)

	response, err := g.summarizer.Summarize(ctx, text)
	if err != nil {
		return errors.Wrap(err, "summarization failed")
	}

	fmt.Fprintf(g.out, "\n%s\n\n%s\n", g.msgs.Response, response)
	return nil
}
