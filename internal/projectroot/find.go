// SPDX-License-Identifier: AGPL-3.0-or-later

// Package projectroot locates the enclosing git worktree.
package projectroot

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// Find walks upward from start until it reaches a directory containing a
// .git entry. Worktrees keep .git as a file, so any entry type counts.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", errors.Wrapf(err, "resolve %s", start)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Newf("no git worktree found above %s", start)
		}
		dir = parent
	}
}
