package settings

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed sample_config.json
var sampleConfig string

// DefaultConfigPath returns where a new configuration file should live: the
// first CONFIG_DIRS candidate that exists as a directory, or the last
// candidate when none do, joined with CONFIG_FILE.
func (s *Store) DefaultConfigPath() (string, error) {
	fileEntry, err := s.Entry(ConfigFile, true)
	if err != nil {
		return "", err
	}
	dirsEntry, err := s.Entry(ConfigDirs, true)
	if err != nil {
		return "", err
	}

	var last string
	for _, item := range dirsEntry.Value.Items() {
		dir := filepath.Clean(item.Text())
		if dir == "" || dir == "." || strings.Contains(dir, "$") {
			// Unset variables keep their literal spelling after expansion;
			// such candidates cannot name a real directory.
			continue
		}
		last = dir
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return filepath.Join(dir, fileEntry.Value.Text()), nil
		}
	}
	if last == "" {
		return "", fmt.Errorf("no usable candidate in %s", ConfigDirs)
	}
	return filepath.Join(last, fileEntry.Value.Text()), nil
}

// CreateSample writes a commented sample configuration file to path,
// creating parent directories as needed.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
