// SPDX-License-Identifier: AGPL-3.0-or-later

// Package report turns a day's worth of commits into a branch-grouped
// listing and assembles the final prompt around it.
package report

import (
	"context"
	"fmt"
	"sort"
)

// History provides the per-commit lookups the classifier needs. The branch
// order returned by BranchesContaining is treated as opaque; the first
// non-primary entry wins.
type History interface {
	CommitDetail(ctx context.Context, hash string) (detail string, ok bool)
	BranchesContaining(ctx context.Context, hash string) []string
}

// GroupLines builds the branch-grouped listing.
//
// Commits reachable from the primary branch are always attributed to the
// primary group, which is emitted first. Every other commit goes to the
// first non-primary branch that contains it, groups appearing in first-seen
// order; a commit contained only in the primary branch (or in no branch at
// all) is dropped. Each group ends with a blank separator line. The primary
// group keeps its separator even when every detail lookup failed.
func GroupLines(ctx context.Context, commits []string, primary map[string]struct{}, primaryBranch, headerFormat string, h History) []string {
	var lines []string

	if len(primary) > 0 {
		lines = append(lines, fmt.Sprintf(headerFormat, primaryBranch))
		for _, hash := range sortedKeys(primary) {
			if detail, ok := h.CommitDetail(ctx, hash); ok {
				lines = append(lines, detail)
			}
		}
		lines = append(lines, "")
	}

	type group struct {
		branch  string
		commits []string
	}
	var groups []group
	index := make(map[string]int)

	for _, hash := range commits {
		if _, inPrimary := primary[hash]; inPrimary {
			continue
		}
		for _, branch := range h.BranchesContaining(ctx, hash) {
			if branch == primaryBranch {
				continue
			}
			i, seen := index[branch]
			if !seen {
				i = len(groups)
				index[branch] = i
				groups = append(groups, group{branch: branch})
			}
			groups[i].commits = append(groups[i].commits, hash)
			break
		}
	}

	for _, g := range groups {
		lines = append(lines, fmt.Sprintf(headerFormat, g.branch))
		for _, hash := range g.commits {
			if detail, ok := h.CommitDetail(ctx, hash); ok {
				lines = append(lines, detail)
			}
		}
		lines = append(lines, "")
	}

	return lines
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
