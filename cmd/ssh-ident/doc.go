// Package main hosts the ssh-ident CLI entrypoint and command graph.
//
// The Cobra-based command tree exposes the resolved configuration and the
// discovered identities for inspection. Before the tree runs, main examines
// the name the process was invoked under: when symlinked over ssh,
// ssh-agent, or ssh-add the process acts as a wrapper and only reports the
// dispatch decision.
//
// Keep this package lean: resolution and discovery live in the internal
// packages; commands only format their results.
package main
