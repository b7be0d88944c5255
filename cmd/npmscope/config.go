// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/anni-rs/npmscope/internal/config"
	"github.com/anni-rs/npmscope/pkg/types"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `npmscope config` command tree.
func newConfigCommand(app *App, rf *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage npmscope configuration",
		Long: `Manage npmscope configuration.

Configuration is read from the first file found among:
  - the path given with --config
  - ./npmscope.cue
  - Linux: ~/.config/npmscope/config.cue
  - macOS: ~/Library/Application Support/npmscope/config.cue
  - Windows: %APPDATA%\npmscope\config.cue

Any value can be overridden with an NPMSCOPE_* environment variable, e.g.
NPMSCOPE_ROOT_DIR or NPMSCOPE_FORMAT_INDENT.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := app.loadConfig(cmd.Context(), rf)
			if err != nil {
				return err
			}
			showConfig(app.stdout, loaded)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := app.loadConfig(cmd.Context(), rf)
			if err != nil {
				return err
			}
			if loaded.Path != "" {
				fmt.Fprintln(app.stdout, loaded.Path)
				return nil
			}
			cfgDir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			fmt.Fprintf(app.stdout, "%s %s\n",
				filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt),
				SubtitleStyle.Render("(not found, using defaults)"))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file in the user config directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, created, err := config.CreateDefaultConfig("")
			if err != nil {
				return &ExitError{Code: types.ExitConfigError, Err: err}
			}
			if created {
				fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("Created"), path)
			} else {
				fmt.Fprintf(app.stdout, "%s %s\n", SubtitleStyle.Render("Config file already exists:"), path)
			}
			return nil
		},
	})

	var dumpFormat string
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the effective configuration as CUE or TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := app.loadConfig(cmd.Context(), rf)
			if err != nil {
				return err
			}
			switch strings.ToLower(dumpFormat) {
			case "cue":
				fmt.Fprint(app.stdout, config.GenerateCUE(loaded.Config))
			case "toml":
				out, err := config.GenerateTOML(loaded.Config)
				if err != nil {
					return err
				}
				fmt.Fprint(app.stdout, out)
			default:
				return fmt.Errorf("unsupported dump format %q (valid: cue, toml)", dumpFormat)
			}
			return nil
		},
	}
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "cue", "output format: cue or toml")
	cfgCmd.AddCommand(dumpCmd)

	return cfgCmd
}

func showConfig(w io.Writer, loaded *config.Loaded) {
	cfg := loaded.Config

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)
	if loaded.Path != "" {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("Config file"), loaded.Path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	rows := []struct{ key, value string }{
		{"root_dir", cfg.RootDir},
		{"descriptor_path", cfg.DescriptorPath},
		{"search", cfg.Search},
		{"replace", cfg.Replace},
		{"error_policy", cfg.ErrorPolicy.String()},
		{"include", formatList(cfg.Include)},
		{"exclude", formatList(cfg.Exclude)},
		{"format.indent", fmt.Sprint(cfg.Format.Indent)},
		{"format.trailing_newline", fmt.Sprint(cfg.Format.TrailingNewline)},
		{"log.level", cfg.Log.Level.String()},
		{"log.format", cfg.Log.Format.String()},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render(r.key), SuccessStyle.Render(r.value))
	}
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
