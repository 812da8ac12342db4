// Package dispatch decides which role the process plays based on the name
// it was invoked under. The tool is designed to be symlinked over ssh,
// ssh-agent, or ssh-add; BINARY_SSH overrides the runtime name, and argv[0]
// is the fallback. The decision is pure bookkeeping: no process is spawned
// here, callers act on the classified mode.
package dispatch
