// SPDX-License-Identifier: AGPL-3.0-or-later

// Package prompt loads the report template and merges the grouped commit
// listing into it.
package prompt

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/alobanov/daily-report/internal/projectroot"
)

// Placeholder is the substitution point the template must contain.
const Placeholder = "{commits_text}"

// Load reads the template at path. A relative path is tried against the
// working directory first, then against the enclosing git worktree root, so
// the tool can run from any subdirectory of a repository. A template that
// cannot be found is a fatal configuration error for the run.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return string(data), nil
	}
	if filepath.IsAbs(path) || !os.IsNotExist(err) {
		return "", errors.Wrapf(err, "read template %s", path)
	}

	root, rootErr := projectroot.Find(".")
	if rootErr != nil {
		return "", errors.Wrapf(err, "read template %s", path)
	}
	data, err = os.ReadFile(filepath.Join(root, path))
	if err != nil {
		return "", errors.Wrapf(err, "read template %s", path)
	}
	return string(data), nil
}

// Render substitutes the grouped commit listing into the template.
func Render(template, commitsText string) string {
	return strings.ReplaceAll(template, Placeholder, commitsText)
}
