package main

import (
	"errors"
	"fmt"
	"os"

	"sshident/internal/dispatch"
	"sshident/internal/logging"
	"sshident/internal/settings"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	store := settings.NewStore()
	if err := store.Load(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCode(err)
	}

	decision, err := dispatch.Resolve(store, args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCode(err)
	}

	logger, err := logging.NewFromStore(store)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCode(err)
	}

	if decision.Mode != dispatch.ModeSelf {
		logger.Debug("running as wrapper",
			"mode", decision.Mode.String(),
			"binary", decision.Binary.Name,
			"source", decision.Binary.Source.String(),
			"target", decision.Target,
		)
		return 0
	}

	if path := store.ConfigPath(); path != "" {
		logger.Debug("configuration loaded", "path", path)
	}

	ctx := &commandContext{store: store, logger: logger}
	cmd := newRootCommand(ctx)
	cmd.SetArgs(args[1:])
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCode(err)
	}
	return 0
}

// exitCode distinguishes usage errors (status 2, a defect in how the tool is
// driven) from operational failures (status 1).
func exitCode(err error) int {
	if errors.Is(err, settings.ErrUnknownSetting) || errors.Is(err, settings.ErrBadVerbosity) {
		return 2
	}
	return 1
}
