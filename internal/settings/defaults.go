package settings

// Recognized setting names. The catalog below is the exhaustive contract:
// lookups outside this set fail.
const (
	ConfigFile       = "CONFIG_FILE"
	ConfigDirs       = "CONFIG_DIRS"
	BinarySSH        = "BINARY_SSH"
	BinarySSHAgent   = "BINARY_SSH_AGENT"
	BinarySSHAdd     = "BINARY_SSH_ADD"
	BinaryDir        = "BINARY_DIR"
	BinariesSSHAgent = "BINARIES_SSH_AGENT"
	BinariesSSHAdd   = "BINARIES_SSH_ADD"
	BinariesSSHIdent = "BINARIES_SSH_IDENT"
	DefaultIdentity  = "DEFAULT_IDENTITY"
	DirIdentities    = "DIR_IDENTITIES"
	DirAgents        = "DIR_AGENTS"
	SSHOptions       = "SSH_OPTIONS"
	SSHAddOptions    = "SSH_ADD_OPTIONS"
	Verbosity        = "VERBOSITY"
	SSHBatchMode     = "SSH_BATCH_MODE"
)

// optionTableSettings enumerate identities in the first column of every row.
var optionTableSettings = []string{SSHOptions, SSHAddOptions}

// Defaults returns a fresh copy of the compiled default catalog. A value may
// be defined here even when overriding it elsewhere makes little sense
// (e.g. BINARY_SSH in a config file); the catalog's job is completeness.
func Defaults() map[string]Value {
	return map[string]Value{
		ConfigFile: String(".ssh-ident3.json"),
		ConfigDirs: Strings("${XDG_CONFIG_HOME}", "~/.config", "~"),

		BinarySSH:      String(""),
		BinarySSHAgent: String("ssh-agent"),
		BinarySSHAdd:   String("ssh-add"),
		BinaryDir:      String(""),

		BinariesSSHAgent: Strings("ssh-agent", "ssh-pageant"),
		BinariesSSHAdd:   Strings("ssh-add"),
		BinariesSSHIdent: Strings("ssh-ident"),

		DefaultIdentity: String("${USER}"),
		DirIdentities:   String("~/.ssh/identities"),
		DirAgents:       String("~/.ssh/agents"),

		SSHOptions:    List(),
		SSHAddOptions: List(),

		Verbosity:    Int(int(LevelInfo)),
		SSHBatchMode: Bool(false),
	}
}
