package dispatch

import (
	"os"
	"os/exec"
	"path/filepath"

	"sshident/internal/settings"
)

// Mode is the role selected for this invocation.
type Mode int

const (
	// ModeSelf runs the tool's own command-line interface.
	ModeSelf Mode = iota
	ModeAgentWrapper
	ModeAddWrapper
	ModeSSHWrapper
)

func (m Mode) String() string {
	switch m {
	case ModeSelf:
		return "self"
	case ModeAgentWrapper:
		return "ssh-agent wrapper"
	case ModeAddWrapper:
		return "ssh-add wrapper"
	case ModeSSHWrapper:
		return "ssh wrapper"
	default:
		return "unknown"
	}
}

// Source says where the runtime binary name came from.
type Source int

const (
	SourceEnvironment Source = iota
	SourceConfigFile
	SourceDefault
	SourceArgv
)

func (s Source) String() string {
	switch s {
	case SourceEnvironment:
		return "env"
	case SourceConfigFile:
		return "config"
	case SourceDefault:
		return "default"
	case SourceArgv:
		return "argv"
	default:
		return "unknown"
	}
}

func fromSetting(o settings.Origin) Source {
	switch o {
	case settings.OriginEnvironment:
		return SourceEnvironment
	case settings.OriginConfigFile:
		return SourceConfigFile
	default:
		return SourceDefault
	}
}

// Binary describes the runtime binary name driving the mode decision.
type Binary struct {
	// Name is the base name used for classification.
	Name string
	// Original is the value before any normalization.
	Original string
	// Path is the absolute normalized form of Original.
	Path string
	// Source records whether BINARY_SSH or argv[0] supplied the name.
	Source Source
}

// Decision is the resolved dispatch outcome.
type Decision struct {
	Mode   Mode
	Binary Binary
	// Target is the executable found for wrapper modes, empty when the
	// lookup failed. Self mode needs no target.
	Target string
}

// Resolve classifies the invocation. BINARY_SSH wins when set; otherwise
// argv0 names the role with origin argv.
func Resolve(store *settings.Store, argv0 string) (Decision, error) {
	entry, err := store.Entry(settings.BinarySSH, true)
	if err != nil {
		return Decision{}, err
	}

	value := entry.Value.Text()
	source := fromSetting(entry.Origin)
	if value == "" {
		value = argv0
		source = SourceArgv
	}

	abs, err := filepath.Abs(filepath.Clean(value))
	if err != nil {
		abs = filepath.Clean(value)
	}
	binary := Binary{
		Name:     filepath.Base(value),
		Original: value,
		Path:     abs,
		Source:   source,
	}

	mode, err := classify(store, binary.Name)
	if err != nil {
		return Decision{}, err
	}

	decision := Decision{Mode: mode, Binary: binary}
	if mode != ModeSelf {
		target, err := targetName(store, mode, binary.Name)
		if err != nil {
			return Decision{}, err
		}
		decision.Target = lookupTarget(store, target)
	}
	return decision, nil
}

// targetName picks the executable a wrapper mode stands in for. Agent and add
// wrappers run the configured binaries; the generic ssh wrapper runs whatever
// name it was invoked under.
func targetName(store *settings.Store, mode Mode, invoked string) (string, error) {
	switch mode {
	case ModeAgentWrapper:
		value, err := store.Value(settings.BinarySSHAgent)
		if err != nil {
			return "", err
		}
		return value.Text(), nil
	case ModeAddWrapper:
		value, err := store.Value(settings.BinarySSHAdd)
		if err != nil {
			return "", err
		}
		return value.Text(), nil
	default:
		return invoked, nil
	}
}

func classify(store *settings.Store, name string) (Mode, error) {
	groups := []struct {
		setting string
		mode    Mode
	}{
		{settings.BinariesSSHIdent, ModeSelf},
		{settings.BinariesSSHAgent, ModeAgentWrapper},
		{settings.BinariesSSHAdd, ModeAddWrapper},
	}
	for _, group := range groups {
		names, err := store.Value(group.setting)
		if err != nil {
			return 0, err
		}
		for _, item := range names.Items() {
			if item.Text() == name {
				return group.mode, nil
			}
		}
	}
	return ModeSSHWrapper, nil
}

// lookupTarget finds the executable to wrap: BINARY_DIR is preferred when
// set, then PATH. A missing executable is reported as an empty target, not
// an error, since the caller may only be inspecting the decision.
func lookupTarget(store *settings.Store, name string) string {
	if dir, err := store.Value(settings.BinaryDir); err == nil && dir.Text() != "" {
		candidate := filepath.Join(dir.Text(), name)
		if isExecutable(candidate) {
			return candidate
		}
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return ""
	}
	return path
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode()&0o111 != 0
}
