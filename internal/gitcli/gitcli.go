// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gitcli wraps the read-only git queries the report needs. Every
// method issues exactly one git invocation and parses its text output; no
// write operation is ever issued.
package gitcli

import (
	"context"
	"os/exec"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// runGit executes one git command and returns its trimmed stdout.
type runGit func(ctx context.Context, repoPath string, args ...string) (string, error)

func execGit(ctx context.Context, repoPath string, args ...string) (string, error) {
	argv := args
	if repoPath != "" {
		argv = append([]string{"-C", repoPath}, args...)
	}
	out, err := exec.CommandContext(ctx, "git", argv...).Output()
	if err != nil {
		return "", errors.Wrapf(err, "git %s", strings.Join(args, " "))
	}
	return strings.TrimSpace(string(out)), nil
}

// Client issues read-only queries against one repository. The zero repoPath
// targets the current working directory.
type Client struct {
	repoPath string
	log      *zap.Logger
	run      runGit
}

func New(repoPath string, log *zap.Logger) *Client {
	return &Client{repoPath: repoPath, log: log, run: execGit}
}

// Username returns the locally configured git identity. Unlike the other
// queries this does not degrade: without an identity there is no author
// filter and the run cannot proceed.
func (c *Client) Username(ctx context.Context) (string, error) {
	out, err := c.query(ctx, "config", "user.name")
	if err != nil {
		return "", errors.Wrap(err, "git user.name is not configured (run: git config user.name 'Your Name')")
	}
	if out == "" {
		return "", errors.New("git user.name is not configured (run: git config user.name 'Your Name')")
	}
	return out, nil
}

// CommitsByAuthor lists the hashes of all commits authored by author in
// [since, until), across every ref. The result is deduplicated and sorted.
// A failed query degrades to an empty result.
func (c *Client) CommitsByAuthor(ctx context.Context, author, since, until string) []string {
	out, err := c.query(ctx, "log", "--all",
		"--since="+since,
		"--until="+until,
		"--author="+author,
		"--pretty=format:%H")
	if err != nil {
		c.log.Warn("commit listing failed", zap.Error(err))
		return nil
	}

	seen := make(map[string]struct{})
	for _, line := range strings.Split(out, "\n") {
		if hash := strings.TrimSpace(line); hash != "" {
			seen[hash] = struct{}{}
		}
	}
	hashes := make([]string, 0, len(seen))
	for hash := range seen {
		hashes = append(hashes, hash)
	}
	sort.Strings(hashes)
	return hashes
}

// BranchCommits returns the set of commits authored by author in
// [since, until) that are reachable from branch. A failed query (for
// example when the branch does not exist) degrades to an empty set.
func (c *Client) BranchCommits(ctx context.Context, branch, author, since, until string) map[string]struct{} {
	out, err := c.query(ctx, "log", branch,
		"--since="+since,
		"--until="+until,
		"--author="+author,
		"--pretty=format:%H")
	if err != nil {
		c.log.Debug("branch listing failed", zap.String("branch", branch), zap.Error(err))
		return map[string]struct{}{}
	}

	commits := make(map[string]struct{})
	for _, line := range strings.Split(out, "\n") {
		if hash := strings.TrimSpace(line); hash != "" {
			commits[hash] = struct{}{}
		}
	}
	return commits
}

// BranchesContaining lists the local branches whose history includes hash,
// in the order git prints them. That order is treated as opaque. A failed
// query degrades to an empty list.
func (c *Client) BranchesContaining(ctx context.Context, hash string) []string {
	out, err := c.query(ctx, "branch", "--contains", hash)
	if err != nil {
		c.log.Debug("branch containment lookup failed", zap.String("commit", hash), zap.Error(err))
		return nil
	}

	var branches []string
	for _, line := range strings.Split(out, "\n") {
		name := strings.TrimSpace(line)
		name = strings.TrimPrefix(name, "* ")
		if name != "" {
			branches = append(branches, name)
		}
	}
	return branches
}

// CommitDetail returns the one-line summary of hash (short id, date,
// subject). ok is false when the lookup fails; the caller skips the commit.
func (c *Client) CommitDetail(ctx context.Context, hash string) (detail string, ok bool) {
	out, err := c.query(ctx, "show", "-s",
		"--pretty=format:• %h %ad %s",
		"--date=short",
		hash)
	if err != nil {
		c.log.Debug("commit detail lookup failed", zap.String("commit", hash), zap.Error(err))
		return "", false
	}
	return out, true
}

func (c *Client) query(ctx context.Context, args ...string) (string, error) {
	c.log.Debug("running git", zap.Strings("args", args))
	return c.run(ctx, c.repoPath, args...)
}
