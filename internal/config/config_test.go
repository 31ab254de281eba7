// SPDX-License-Identifier: AGPL-3.0-or-later
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	got, err := ParseDate("2024-03-14", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateEmptyMeansYesterday(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	got, err := ParseDate("", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateMalformed(t *testing.T) {
	now := time.Now()
	for _, bad := range []string{"14-03-2024", "2024/03/14", "yesterday", "2024-13-40"} {
		_, err := ParseDate(bad, now)
		assert.Error(t, err, "value %q", bad)
	}
}

func TestSinceUntilWindow(t *testing.T) {
	cfg := Config{TargetDate: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)}

	assert.Equal(t, "2024-03-14T00:00:00", cfg.Since())
	assert.Equal(t, "2024-03-15T00:00:00", cfg.Until())
}

func TestLoadSettingsMissingFileYieldsDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettingsPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("primary_branch: main\nlocale: ru\n"), 0o600))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "main", s.PrimaryBranch)
	assert.Equal(t, "ru", s.Locale)
	assert.Equal(t, DefaultSettings().Model, s.Model)
	assert.Equal(t, DefaultSettings().TemplatePath, s.TemplatePath)
}

func TestLoadSettingsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: [unclosed"), 0o600))

	_, err := LoadSettings(path)
	assert.Error(t, err)
}

func TestSettingsPathEnvOverride(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/daily-report.yaml")
	assert.Equal(t, "/etc/daily-report.yaml", SettingsPath())
}

func TestLoadAPIKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "sk-test")
	assert.Equal(t, "sk-test", LoadAPIKey())

	t.Setenv(EnvAPIKey, "")
	assert.Empty(t, LoadAPIKey())
}
