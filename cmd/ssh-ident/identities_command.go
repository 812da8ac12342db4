package main

import (
	"github.com/spf13/cobra"

	"sshident/internal/identity"
)

type identityRow struct {
	Name      string `json:"name"`
	Origin    string `json:"origin"`
	Source    string `json:"source"`
	Directory string `json:"directory,omitempty"`
}

func newIdentitiesCommand(ctx *commandContext) *cobra.Command {
	var showOrigin bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "identities",
		Short: "List discovered identities",
		Long: "List every identity referenced by configuration or present in the\n" +
			"identities directory, merged so each name appears exactly once.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := ctx.identityResolver().Resolve()
			if err != nil {
				return err
			}

			sorted := identity.Sorted(ids)
			rows := make([]identityRow, 0, len(sorted))
			for _, id := range sorted {
				rows = append(rows, identityRow{
					Name:      id.Name,
					Origin:    id.Origin.String(),
					Source:    id.Source,
					Directory: id.Directory,
				})
			}

			if jsonOut {
				return writeJSON(cmd, rows)
			}

			headers := []string{"IDENTITY"}
			if showOrigin {
				headers = append(headers, "ORIGIN")
			}
			headers = append(headers, "SOURCE", "DIRECTORY")

			out := make([][]string, 0, len(rows))
			for _, row := range rows {
				cells := []string{row.Name}
				if showOrigin {
					cells = append(cells, row.Origin)
				}
				cells = append(cells, row.Source, row.Directory)
				out = append(out, cells)
			}
			renderTable(cmd.OutOrStdout(), headers, out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showOrigin, "origin", "o", false, "Show which source referenced each identity")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}
