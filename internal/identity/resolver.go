package identity

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"sort"

	"sshident/internal/settings"
)

// Identity is one named credential bucket in the resolved mapping.
type Identity struct {
	Name   string
	Origin Origin
	// Source is the setting that referenced the identity, or the scanned
	// path for directory discoveries.
	Source string
	// Directory is the identity's on-disk directory, empty when none exists.
	Directory string
}

// Resolver discovers identities through the settings store and the
// filesystem. Each Resolve call builds the mapping fresh.
type Resolver struct {
	store     *settings.Store
	loginName func() (string, error)
}

// Option customizes resolver construction.
type Option func(*Resolver)

// WithLoginName replaces discovery of the invoking user's login name.
func WithLoginName(fn func() (string, error)) Option {
	return func(r *Resolver) { r.loginName = fn }
}

// NewResolver creates a resolver bound to the given settings store.
func NewResolver(store *settings.Store, opts ...Option) *Resolver {
	r := &Resolver{
		store:     store,
		loginName: currentLoginName,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func currentLoginName() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// Resolve builds the identity mapping: the default identity, every identity
// referenced by an option table, and every subdirectory of the identities
// directory, merged by origin priority. A missing identities directory
// contributes nothing; any other scan error propagates.
func (r *Resolver) Resolve() (map[string]Identity, error) {
	ids := make(map[string]Identity)

	if err := r.collectDefault(ids); err != nil {
		return nil, err
	}
	if err := r.collectOptionTables(ids); err != nil {
		return nil, err
	}
	if err := r.collectDirectories(ids); err != nil {
		return nil, err
	}
	r.attachLoginFallback(ids)

	return ids, nil
}

func (r *Resolver) collectDefault(ids map[string]Identity) error {
	entry, err := r.store.Entry(settings.DefaultIdentity, true)
	if err != nil {
		return err
	}
	name := entry.Value.Text()
	if name == "" {
		return nil
	}
	apply(ids, Identity{
		Name:   name,
		Origin: FromSetting(entry.Origin),
		Source: settings.DefaultIdentity,
	})
	return nil
}

func (r *Resolver) collectOptionTables(ids map[string]Identity) error {
	for _, setting := range settings.OptionTableSettings() {
		entry, err := r.store.Entry(setting, true)
		if err != nil {
			return err
		}
		origin := FromSetting(entry.Origin)
		for _, row := range entry.Value.Items() {
			cols := row.Items()
			if len(cols) == 0 {
				continue
			}
			for _, item := range cols[0].Items() {
				name := item.Text()
				if name == "" {
					continue
				}
				apply(ids, Identity{Name: name, Origin: origin, Source: setting})
			}
		}
	}
	return nil
}

func (r *Resolver) collectDirectories(ids map[string]Identity) error {
	dirValue, err := r.store.Value(settings.DirIdentities)
	if err != nil {
		return err
	}
	dir := filepath.Clean(dirValue.Text())

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("scan identities directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		// Stat rather than entry.IsDir so symlinked identity directories
		// count as well.
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		apply(ids, Identity{
			Name:      entry.Name(),
			Origin:    OriginDirectory,
			Source:    path,
			Directory: path,
		})
	}
	return nil
}

// attachLoginFallback gives the invoking user's identity a directory when it
// was referenced without one and ~/.ssh exists.
func (r *Resolver) attachLoginFallback(ids map[string]Identity) {
	login, err := r.loginName()
	if err != nil || login == "" {
		return
	}
	id, ok := ids[login]
	if !ok || id.Directory != "" {
		return
	}
	fallback := r.store.ExpandString("~/.ssh")
	if info, err := os.Stat(fallback); err != nil || !info.IsDir() {
		return
	}
	id.Directory = fallback
	ids[login] = id
}

func apply(ids map[string]Identity, incoming Identity) {
	existing, ok := ids[incoming.Name]
	if !ok {
		ids[incoming.Name] = incoming
		return
	}
	ids[incoming.Name] = merge(existing, incoming)
}

// Sorted returns the mapping's identities ordered by name for deterministic
// display.
func Sorted(ids map[string]Identity) []Identity {
	out := make([]Identity, 0, len(ids))
	for _, id := range ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
