package main

import (
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func newRootCommand(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ssh-ident",
		Short:         "Manage multiple ssh identities",
		Long:          "OpenSSH-compatible wrapper to manage multiple identities via ssh-agent/ssh-add.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newIdentitiesCommand(ctx))

	return rootCmd
}
