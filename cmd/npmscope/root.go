// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/anni-rs/npmscope/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	verbose    bool
	logLevel   string
	logFormat  string
}

// newRootCommand builds the command tree. The bare root command runs a
// rewrite pass, same as "npmscope rewrite".
func newRootCommand(app *App) (*cobra.Command, *rootFlags) {
	flags := &rootFlags{}
	rwFlags := &rewriteFlags{}

	root := &cobra.Command{
		Use:   "npmscope",
		Short: "Scope the names of per-platform npm packages",
		Long: TitleStyle.Render("npmscope") + SubtitleStyle.Render(" - scope the names of per-platform npm packages") + `

npmscope visits every platform directory under a root (npm/ by default)
and replaces the first occurrence of a search string in the "name" field of
its package.json with a scoped identifier. Every other field, the key order
and the formatting of unchanged files are preserved.

` + SubtitleStyle.Render("Examples:") + `
  npmscope                             Rewrite npm/*/package.json with the defaults
  npmscope --dry-run                   Show what would be renamed
  npmscope --policy collect-all        Attempt every entry, report all failures
  npmscope --include 'linux-*'         Only rewrite Linux packages
  npmscope config show                 Show the effective configuration`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRewrite(cmd, app, flags, rwFlags)
		},
	}
	root.SetOut(app.stdout)
	root.SetErr(app.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default is ./npmscope.cue, then the user config directory)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output and debug logging")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format: text, json, logfmt")

	addRewriteFlags(root, rwFlags)

	root.AddCommand(newRewriteCommand(app, flags))
	root.AddCommand(newConfigCommand(app, flags))

	return root, flags
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev (built from source)"
}

// Run executes the command tree with args and returns the process exit code.
func Run(ctx context.Context, app *App, args []string) types.ExitCode {
	root, flags := newRootCommand(app)
	// cobra reads os.Args when given nil.
	root.SetArgs(append([]string{}, args...))

	err := fang.Execute(
		ctx,
		root,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			renderDiagnostic(w, err, flags.verbose)
		}),
	)
	return exitCodeFor(err)
}

// Execute runs the CLI with the process arguments and exits.
// This is called by main.main().
func Execute() {
	os.Exit(int(Run(context.Background(), NewApp(Dependencies{}), os.Args[1:])))
}
