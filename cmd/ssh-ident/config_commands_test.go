package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sshident/internal/settings"
	"sshident/internal/testsupport"
)

func TestConfigShowListsWholeCatalog(t *testing.T) {
	f := testsupport.NewFixture(t)
	out, err := runCommand(t, newTestContext(t, f), "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, name := range []string{"DEFAULT_IDENTITY", "DIR_IDENTITIES", "VERBOSITY", "SSH_OPTIONS"} {
		requireContains(t, out, name)
	}
	// VERBOSITY renders symbolically, not as a bare ordinal.
	requireContains(t, out, "LOG_LEVEL.INFO")
}

func TestConfigShowNoDefaultsHidesDefaultRows(t *testing.T) {
	f := testsupport.NewFixture(t,
		testsupport.WithConfigFile(`{"DEFAULT_IDENTITY": "work"}`))
	out, err := runCommand(t, newTestContext(t, f), "config", "show", "--no-defaults")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "DEFAULT_IDENTITY")
	requireContains(t, out, "work")
	requireNotContains(t, out, "DIR_IDENTITIES")
}

func TestConfigShowOriginColumn(t *testing.T) {
	f := testsupport.NewFixture(t, testsupport.WithEnv("DEFAULT_IDENTITY", "env-id"))
	out, err := runCommand(t, newTestContext(t, f), "config", "show", "--origin")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "ORIGIN")
	requireContains(t, out, "env")
}

func TestConfigShowJSON(t *testing.T) {
	f := testsupport.NewFixture(t,
		testsupport.WithConfigFile(`{"VERBOSITY": "DEBUG"}`))
	out, err := runCommand(t, newTestContext(t, f), "config", "show", "--json")
	if err != nil {
		t.Fatalf("config show --json: %v", err)
	}

	var rows []configRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}

	found := false
	for _, row := range rows {
		if row.Name == settings.Verbosity {
			found = true
			if row.Value != "LOG_LEVEL.DEBUG" {
				t.Fatalf("unexpected verbosity value: %v", row.Value)
			}
			if row.Origin != "config" {
				t.Fatalf("unexpected origin: %q", row.Origin)
			}
		}
	}
	if !found {
		t.Fatal("missing VERBOSITY row")
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	f := testsupport.NewFixture(t)
	target := filepath.Join(t.TempDir(), "sample.json")

	out, err := runCommand(t, newTestContext(t, f), "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("expected sample at %s: %v", target, err)
	}
	requireContains(t, string(data), "DEFAULT_IDENTITY")

	// The sample must load cleanly through the store's own parser.
	dir := filepath.Dir(target)
	store := settings.NewStore(
		settings.WithEnvLookup(func(name string) (string, bool) {
			if name == "XDG_CONFIG_HOME" {
				return dir, true
			}
			return "", false
		}),
		settings.WithHome(func() (string, error) { return f.Home, nil }),
	)
	if err := os.Rename(target, filepath.Join(dir, ".ssh-ident3.json")); err != nil {
		t.Fatalf("rename sample: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
}

func TestConfigInitRefusesToOverwrite(t *testing.T) {
	f := testsupport.NewFixture(t)
	target := filepath.Join(t.TempDir(), "sample.json")
	if err := os.WriteFile(target, []byte("{}"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	_, err := runCommand(t, newTestContext(t, f), "config", "init", "--path", target)
	if err == nil {
		t.Fatal("expected overwrite refusal")
	}

	if _, err := runCommand(t, newTestContext(t, f), "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestExitCodes(t *testing.T) {
	if got := exitCode(settings.ErrUnknownSetting); got != 2 {
		t.Fatalf("unknown setting should exit 2, got %d", got)
	}
	if got := exitCode(settings.ErrBadVerbosity); got != 2 {
		t.Fatalf("bad verbosity should exit 2, got %d", got)
	}
	if got := exitCode(errors.New("io failure")); got != 1 {
		t.Fatalf("operational errors should exit 1, got %d", got)
	}
}
