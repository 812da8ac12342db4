package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"sshident/internal/settings"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigShowCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand(ctx))

	return configCmd
}

type configRow struct {
	Name    string `json:"name"`
	Value   any    `json:"value"`
	Origin  string `json:"origin"`
	Default any    `json:"default"`
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	var showOrigin bool
	var noDefaults bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows []configRow
			for _, name := range ctx.store.Names() {
				entry, err := ctx.store.Entry(name, true)
				if err != nil {
					return err
				}
				if noDefaults && entry.Origin == settings.OriginDefault {
					continue
				}
				def, err := ctx.store.Default(name)
				if err != nil {
					return err
				}
				rows = append(rows, configRow{
					Name:    name,
					Value:   displayValue(name, entry.Value),
					Origin:  entry.Origin.String(),
					Default: displayValue(name, def),
				})
			}

			if jsonOut {
				return writeJSON(cmd, rows)
			}

			headers := []string{"SETTING", "VALUE"}
			if showOrigin {
				headers = append(headers, "ORIGIN")
			}
			headers = append(headers, "DEFAULT")

			out := make([][]string, 0, len(rows))
			for _, row := range rows {
				cells := []string{row.Name, renderCell(row.Value)}
				if showOrigin {
					cells = append(cells, row.Origin)
				}
				// The default column only annotates overridden settings.
				if row.Origin != settings.OriginDefault.String() {
					cells = append(cells, renderCell(row.Default))
				} else {
					cells = append(cells, "")
				}
				out = append(out, cells)
			}
			renderTable(cmd.OutOrStdout(), headers, out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showOrigin, "origin", "o", false, "Show which origin supplied each value")
	cmd.Flags().BoolVarP(&noDefaults, "no-defaults", "n", false, "Hide settings still at their default")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

// displayValue converts a resolved value into its display form; VERBOSITY
// renders symbolically rather than as a bare ordinal.
func displayValue(name string, v settings.Value) any {
	if name == settings.Verbosity {
		return settings.LogLevel(v.IntVal()).String()
	}
	return v.Interface()
}

func renderCell(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(encoded)
}

func newConfigInitCommand(ctx *commandContext) *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := ctx.store.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				target = ctx.store.ExpandString(target)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := settings.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}
