package main

import (
	"log/slog"

	"sshident/internal/identity"
	"sshident/internal/logging"
	"sshident/internal/settings"
)

// commandContext carries the loaded settings store and logger into
// subcommands. The store is loaded exactly once, in main, before the
// command tree runs.
type commandContext struct {
	store  *settings.Store
	logger *slog.Logger
}

func (c *commandContext) log() *slog.Logger {
	if c.logger == nil {
		return logging.NewNop()
	}
	return c.logger
}

func (c *commandContext) identityResolver() *identity.Resolver {
	return identity.NewResolver(c.store)
}
