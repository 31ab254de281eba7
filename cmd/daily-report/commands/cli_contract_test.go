package commands

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alobanov/daily-report/cmd/daily-report/internal/clierr"
	"github.com/alobanov/daily-report/internal/config"
)

func TestCLIContract(t *testing.T) {
	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("root command failed: %v", err)
	}

	out := b.String()

	// Assert the flags that are part of the CLI contract
	requiredFlags := []string{
		"--date",
		"--email",
		"--repo",
		"--summary",
		"--verbose",
	}

	for _, f := range requiredFlags {
		if !strings.Contains(out, f) {
			t.Errorf("expected flag %q in root help", f)
		}
	}

	if !strings.Contains(out, "version") {
		t.Errorf("expected version command in root help")
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(b.String(), "daily-report version") {
		t.Errorf("unexpected version output %q", b.String())
	}
}

func TestMalformedDateExitsWithUsageCode(t *testing.T) {
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))

	cmd := NewRootCmd()
	cmd.SetOut(bytes.NewBufferString(""))
	cmd.SetErr(bytes.NewBufferString(""))
	cmd.SetArgs([]string{"--date", "14-03-2024"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected an error for a malformed date")
	}
	if code := clierr.ExitCodeOf(err); code != clierr.CodeUsage {
		t.Errorf("got exit code %d, want %d", code, clierr.CodeUsage)
	}
}

func TestSummaryWithoutCredentialExitsWithCredentialCode(t *testing.T) {
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv(config.EnvAPIKey, "")

	cmd := NewRootCmd()
	cmd.SetOut(bytes.NewBufferString(""))
	cmd.SetErr(bytes.NewBufferString(""))
	cmd.SetArgs([]string{"--summary", "--date", "2024-03-14"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected an error when no credential is configured")
	}
	if code := clierr.ExitCodeOf(err); code != clierr.CodeCredential {
		t.Errorf("got exit code %d, want %d", code, clierr.CodeCredential)
	}

	var ec clierr.ExitCoder
	if !errors.As(err, &ec) {
		t.Errorf("expected an ExitCoder, got %T", err)
	}
}
