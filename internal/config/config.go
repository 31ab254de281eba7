// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config resolves the parameters for a single report run: the
// optional settings file, command-line overrides, the target day, and the
// summarization credential.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the default settings file location when set.
const EnvConfigPath = "DAILY_REPORT_CONFIG"

// EnvAPIKey names the environment variable holding the summarization credential.
const EnvAPIKey = "OPENAI_API_KEY"

// Settings holds the operator preferences persisted in the yaml settings
// file. Every field has a default; the file itself is optional.
type Settings struct {
	Model         string  `yaml:"model,omitempty"`
	BaseURL       string  `yaml:"base_url,omitempty"`
	MaxTokens     int     `yaml:"max_tokens,omitempty"`
	Temperature   float32 `yaml:"temperature,omitempty"`
	PrimaryBranch string  `yaml:"primary_branch,omitempty"`
	TemplatePath  string  `yaml:"template_path,omitempty"`
	Locale        string  `yaml:"locale,omitempty"`
}

// DefaultSettings returns the built-in settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Model:         "gpt-4-turbo-preview",
		BaseURL:       "https://api.openai.com/v1",
		MaxTokens:     1024,
		Temperature:   0.3,
		PrimaryBranch: "develop",
		TemplatePath:  "prompt_template.txt",
		Locale:        "en",
	}
}

// SettingsPath returns the settings file location: the EnvConfigPath
// override if set, otherwise <user config dir>/daily-report/config.yaml.
func SettingsPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.Getenv("HOME")
	}
	return filepath.Join(dir, "daily-report", "config.yaml")
}

// LoadSettings reads the settings file at path. A missing file yields the
// defaults; a file that exists but cannot be read or parsed is an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return Settings{}, errors.Wrapf(err, "read settings %s", path)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, errors.Wrapf(err, "parse settings %s", path)
	}
	s.fillDefaults()
	return s, nil
}

func (s *Settings) fillDefaults() {
	def := DefaultSettings()
	if s.Model == "" {
		s.Model = def.Model
	}
	if s.BaseURL == "" {
		s.BaseURL = def.BaseURL
	}
	if s.MaxTokens == 0 {
		s.MaxTokens = def.MaxTokens
	}
	if s.Temperature == 0 {
		s.Temperature = def.Temperature
	}
	if s.PrimaryBranch == "" {
		s.PrimaryBranch = def.PrimaryBranch
	}
	if s.TemplatePath == "" {
		s.TemplatePath = def.TemplatePath
	}
	if s.Locale == "" {
		s.Locale = def.Locale
	}
}

// Config is the fully resolved input for one report run.
type Config struct {
	Settings

	// RepoPath is the repository to query; empty means the current directory.
	RepoPath string
	// AuthorEmail overrides the locally configured identity when set.
	AuthorEmail string
	// TargetDate is midnight (local) of the day being reported.
	TargetDate time.Time
	// UseSummary routes the assembled prompt to the summarization service.
	UseSummary bool
	// Verbose enables debug logging.
	Verbose bool
	// APIKey is the summarization credential, resolved up front so that
	// nothing below the command layer reads the environment.
	APIKey string
}

// Since returns the inclusive lower date bound passed to git.
func (c Config) Since() string {
	return c.TargetDate.Format("2006-01-02T15:04:05")
}

// Until returns the exclusive upper bound: start of the day after TargetDate.
func (c Config) Until() string {
	return c.TargetDate.AddDate(0, 0, 1).Format("2006-01-02T15:04:05")
}

// ParseDate interprets a --date flag value. An empty value means yesterday.
func ParseDate(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return Yesterday(now), nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, now.Location())
	if err != nil {
		return time.Time{}, errors.Newf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

// Yesterday returns midnight of the day before now, in now's location.
func Yesterday(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, -1)
}

// LoadAPIKey resolves the summarization credential. A .env file in the
// working directory is honored when present; its absence is not an error.
func LoadAPIKey() string {
	_ = godotenv.Load()
	return os.Getenv(EnvAPIKey)
}
