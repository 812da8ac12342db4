package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"sshident/internal/settings"
)

// Fixture is a hermetic settings environment for tests: a temp home
// directory, a controlled environment map, and helpers for seeding config
// files and identity directories.
type Fixture struct {
	Home string
	Env  map[string]string
}

// FixtureOption customizes the generated fixture.
type FixtureOption func(testing.TB, *Fixture)

// NewFixture builds a fixture rooted in a fresh temp home with USER set to
// "tester" and applies any provided options.
func NewFixture(t testing.TB, opts ...FixtureOption) *Fixture {
	t.Helper()
	f := &Fixture{
		Home: t.TempDir(),
		Env:  map[string]string{"USER": "tester"},
	}
	for _, opt := range opts {
		opt(t, f)
	}
	return f
}

// WithEnv sets one environment entry visible to the store.
func WithEnv(name, value string) FixtureOption {
	return func(t testing.TB, f *Fixture) {
		f.Env[name] = value
	}
}

// WithConfigFile writes body as the config file under ~/.config.
func WithConfigFile(body string) FixtureOption {
	return func(t testing.TB, f *Fixture) {
		t.Helper()
		dir := filepath.Join(f.Home, ".config")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir config dir: %v", err)
		}
		path := filepath.Join(dir, ".ssh-ident3.json")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write config file: %v", err)
		}
	}
}

// WithIdentityDirs creates named subdirectories under the default
// identities directory (~/.ssh/identities).
func WithIdentityDirs(names ...string) FixtureOption {
	return func(t testing.TB, f *Fixture) {
		t.Helper()
		for _, name := range names {
			dir := filepath.Join(f.Home, ".ssh", "identities", name)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				t.Fatalf("mkdir identity dir %s: %v", dir, err)
			}
		}
	}
}

// WithSSHDir creates ~/.ssh, the fallback directory for the login user.
func WithSSHDir() FixtureOption {
	return func(t testing.TB, f *Fixture) {
		t.Helper()
		if err := os.MkdirAll(filepath.Join(f.Home, ".ssh"), 0o755); err != nil {
			t.Fatalf("mkdir .ssh: %v", err)
		}
	}
}

// IdentitiesDir returns the fixture's default identities directory.
func (f *Fixture) IdentitiesDir() string {
	return filepath.Join(f.Home, ".ssh", "identities")
}

// StoreOptions exposes the fixture as settings-store injection points.
func (f *Fixture) StoreOptions() []settings.Option {
	return []settings.Option{
		settings.WithEnvLookup(func(name string) (string, bool) {
			value, ok := f.Env[name]
			return value, ok
		}),
		settings.WithHome(func() (string, error) { return f.Home, nil }),
	}
}

// NewStore constructs and loads a settings store bound to the fixture.
func (f *Fixture) NewStore(t testing.TB) *settings.Store {
	t.Helper()
	store := settings.NewStore(f.StoreOptions()...)
	if err := store.Load(); err != nil {
		t.Fatalf("load settings: %v", err)
	}
	return store
}
