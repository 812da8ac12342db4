package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var (
	// ErrUnknownSetting marks lookups of names outside the compiled catalog.
	// It indicates a programming defect, not user input.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrBadVerbosity marks VERBOSITY symbols outside the recognized set.
	ErrBadVerbosity = errors.New("invalid verbosity level")
)

// Entry is the resolved view of one setting: the winning value, the value
// exactly as found at its origin, and which origin won.
type Entry struct {
	Name   string
	Value  Value
	Raw    Value
	Origin Origin
}

// Store resolves settings against the environment, a loaded configuration
// file, and the compiled defaults. Construct it once per invocation, call
// Load once, then read freely; entries are resolved fresh on every lookup.
type Store struct {
	lookupEnv  func(string) (string, bool)
	userHome   func() (string, error)
	defaults   map[string]Value
	values     map[string]Value
	configPath string
}

// Option customizes store construction, mainly for tests that need hermetic
// environment and home lookups.
type Option func(*Store)

// WithEnvLookup replaces the process-environment probe.
func WithEnvLookup(lookup func(string) (string, bool)) Option {
	return func(s *Store) { s.lookupEnv = lookup }
}

// WithHome replaces home-directory discovery used by tilde expansion.
func WithHome(home func() (string, error)) Option {
	return func(s *Store) { s.userHome = home }
}

// NewStore creates a store backed by the real process environment. The
// configuration file is not consulted until Load is called.
func NewStore(opts ...Option) *Store {
	s := &Store{
		lookupEnv: os.LookupEnv,
		userHome:  os.UserHomeDir,
		defaults:  Defaults(),
		values:    map[string]Value{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// commentLine matches whole lines that hold only a // comment. They are
// stripped before JSON parsing since they are not valid JSON.
var commentLine = regexp.MustCompile(`(?m)^[ \t]*//.*$`)

// Load locates and parses the configuration file. Candidate directories from
// CONFIG_DIRS are probed in order; the first directory that exists and
// contains CONFIG_FILE ends the search, and a directory that exists without
// the file does not stop the scan. Finding no file anywhere is not an error:
// the override map simply stays empty.
func (s *Store) Load() error {
	fileEntry, err := s.Entry(ConfigFile, true)
	if err != nil {
		return err
	}
	fileName := filepath.Clean(fileEntry.Value.Text())

	dirsEntry, err := s.Entry(ConfigDirs, true)
	if err != nil {
		return err
	}

	for _, item := range dirsEntry.Value.Items() {
		dir := filepath.Clean(item.Text())
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		path := filepath.Join(dir, fileName)
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			continue
		}
		if err := s.loadFile(path); err != nil {
			return err
		}
		s.configPath = path
		break
	}
	return nil
}

// ConfigPath reports where the loaded configuration file was found, or ""
// when no candidate directory contained one.
func (s *Store) ConfigPath() string { return s.configPath }

func (s *Store) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	text := commentLine.ReplaceAllString(string(data), "")
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	values := make(map[string]Value, len(raw))
	for name, item := range raw {
		value, err := fromJSON(item, 0)
		if err != nil {
			return fmt.Errorf("config %s: key %q: %w", path, name, err)
		}
		values[name] = value
	}

	// Normalize the symbolic verbosity form into its ordinal up front so
	// later lookups never re-parse it.
	if v, ok := values[Verbosity]; ok && v.Kind() == KindString {
		level, err := ParseLogLevel(v.Text())
		if err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		values[Verbosity] = Int(int(level))
	}

	s.values = values
	return nil
}

// Entry resolves one setting with origin provenance. When expand is true,
// environment-variable and tilde references in string and nested list values
// are resolved; the raw form is retained alongside.
func (s *Store) Entry(name string, expand bool) (Entry, error) {
	raw, origin, err := s.resolve(name)
	if err != nil {
		return Entry{}, err
	}
	value := raw
	if expand {
		value = expandValue(raw, s.lookupEnv, s.homeDir())
	}
	return Entry{Name: name, Value: value, Raw: raw, Origin: origin}, nil
}

// Value resolves one setting and returns only the expanded value.
func (s *Store) Value(name string) (Value, error) {
	entry, err := s.Entry(name, true)
	if err != nil {
		return Value{}, err
	}
	return entry.Value, nil
}

// resolve probes the ranked origins for name. The catalog gates every lookup:
// even a name present in the environment is rejected when the defaults do not
// recognize it.
func (s *Store) resolve(name string) (Value, Origin, error) {
	fallback, ok := s.defaults[name]
	if !ok {
		return Value{}, OriginDefault, fmt.Errorf("%w: %q is not defined in the default catalog", ErrUnknownSetting, name)
	}

	if text, ok := s.lookupEnv(name); ok {
		if name == Verbosity {
			level, err := ParseLogLevel(text)
			if err != nil {
				return Value{}, OriginEnvironment, err
			}
			return Int(int(level)), OriginEnvironment, nil
		}
		return String(text), OriginEnvironment, nil
	}

	if value, ok := s.values[name]; ok {
		return value, OriginConfigFile, nil
	}

	return fallback, OriginDefault, nil
}

// Names returns the complete catalog of recognized setting names in sorted
// order for deterministic enumeration.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.defaults))
	for name := range s.defaults {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the compiled default for a recognized setting.
func (s *Store) Default(name string) (Value, error) {
	value, ok := s.defaults[name]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q is not defined in the default catalog", ErrUnknownSetting, name)
	}
	return value, nil
}

// OptionTableSettings lists the settings whose rows reference identities in
// their first column.
func OptionTableSettings() []string {
	out := make([]string, len(optionTableSettings))
	copy(out, optionTableSettings)
	return out
}

// ExpandString applies the store's expansion rules to a single string.
func (s *Store) ExpandString(value string) string {
	return expandString(value, s.lookupEnv, s.homeDir())
}

func (s *Store) homeDir() string {
	home, err := s.userHome()
	if err != nil {
		return ""
	}
	return home
}
