// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/anni-rs/npmscope/internal/issue"
	"github.com/anni-rs/npmscope/internal/rewrite"
	"github.com/anni-rs/npmscope/pkg/types"

	"github.com/spf13/cobra"
)

// rewriteFlags override configuration values for one pass. Only flags set
// on the command line take effect.
type rewriteFlags struct {
	root       string
	descriptor string
	search     string
	replace    string
	policy     string
	include    []string
	exclude    []string
	dryRun     bool
	indent     int
}

func addRewriteFlags(cmd *cobra.Command, f *rewriteFlags) {
	fs := cmd.Flags()
	fs.StringVar(&f.root, "root", "", "architecture root directory (default \"npm\")")
	fs.StringVar(&f.descriptor, "descriptor", "", "descriptor path inside each entry (default \"package.json\")")
	fs.StringVar(&f.search, "search", "", "substring to replace in package names")
	fs.StringVar(&f.replace, "replace", "", "scoped replacement for the search string")
	fs.StringVar(&f.policy, "policy", "", "error policy: fail-fast or collect-all")
	fs.StringSliceVar(&f.include, "include", nil, "only process entries matching this glob (repeatable)")
	fs.StringSliceVar(&f.exclude, "exclude", nil, "skip entries matching this glob (repeatable)")
	fs.BoolVar(&f.dryRun, "dry-run", false, "report renames without writing any file")
	fs.IntVar(&f.indent, "indent", 2, "spaces per indentation level (0 for compact output)")
}

// apply overwrites opts with every flag set on cmd.
func (f *rewriteFlags) apply(cmd *cobra.Command, opts *rewrite.Options) {
	changed := cmd.Flags().Changed
	if changed("root") {
		opts.RootDir = f.root
	}
	if changed("descriptor") {
		opts.DescriptorPath = f.descriptor
	}
	if changed("search") {
		opts.Search = f.search
	}
	if changed("replace") {
		opts.Replace = f.replace
	}
	if changed("policy") {
		opts.Policy = rewrite.Policy(f.policy)
	}
	if changed("include") {
		opts.Include = f.include
	}
	if changed("exclude") {
		opts.Exclude = f.exclude
	}
	if changed("dry-run") {
		opts.DryRun = f.dryRun
	}
	if changed("indent") {
		opts.Indent = f.indent
	}
}

func newRewriteCommand(app *App, rf *rootFlags) *cobra.Command {
	f := &rewriteFlags{}
	cmd := &cobra.Command{
		Use:   "rewrite",
		Short: "Rewrite the name of every per-platform package descriptor",
		Long: `Rewrite the name of every per-platform package descriptor.

Each immediate child of the root directory is an architecture entry whose
package.json "name" gets its first occurrence of the search string replaced.
Entries are processed one at a time in lexicographic order. With the default
fail-fast policy the pass stops at the first failure; entries already
rewritten stay rewritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRewrite(cmd, app, rf, f)
		},
	}
	addRewriteFlags(cmd, f)
	return cmd
}

func runRewrite(cmd *cobra.Command, app *App, rf *rootFlags, f *rewriteFlags) error {
	ctx := cmd.Context()

	loaded, err := app.loadConfig(ctx, rf)
	if err != nil {
		return err
	}
	cfg := loaded.Config
	logger := newLogger(app.stderr, cfg.Log, rf.verbose)
	if loaded.Path != "" {
		logger.Debug("loaded configuration", "path", loaded.Path)
	}

	opts := rewrite.Options{
		RootDir:         cfg.RootDir,
		DescriptorPath:  cfg.DescriptorPath,
		Search:          cfg.Search,
		Replace:         cfg.Replace,
		Policy:          rewrite.Policy(cfg.ErrorPolicy),
		Include:         cfg.Include,
		Exclude:         cfg.Exclude,
		Indent:          cfg.Format.Indent,
		TrailingNewline: cfg.Format.TrailingNewline,
		Logger:          logger,
	}
	f.apply(cmd, &opts)

	report, err := app.Rewriter.Rewrite(ctx, opts)
	if report != nil && (err == nil || len(report.Entries)+len(report.Failed) > 0) {
		printReport(app.stdout, report)
	}
	if err == nil {
		return nil
	}

	var optErr *rewrite.InvalidOptionsError
	if errors.As(err, &optErr) {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	ctxBuilder := issue.NewErrorContext().WithOperation("rewrite package descriptors")
	for _, s := range suggestionsFor(err) {
		ctxBuilder.WithSuggestion(s)
	}
	return newServiceError(ctxBuilder.Wrap(err).BuildError(), issueIDFor(err))
}

// printReport writes one line per renamed entry and a summary line.
func printReport(w io.Writer, report *rewrite.Report) {
	verb := "renamed"
	if report.DryRun {
		verb = "would rename"
	}
	for _, e := range report.Entries {
		if !e.Renamed {
			continue
		}
		fmt.Fprintf(w, "%s %s: %s -> %s\n", SuccessStyle.Render(verb), KeyStyle.Render(e.Entry), e.OldName, e.NewName)
	}

	total := len(report.Entries) + len(report.Failed)
	summary := fmt.Sprintf("%d of %d package descriptors renamed under %s", report.Renamed(), total, report.RootDir)
	if len(report.Failed) > 0 {
		summary += fmt.Sprintf(", %d failed", len(report.Failed))
	}
	if report.DryRun {
		summary += WarningStyle.Render(" (dry run, nothing written)")
	}
	fmt.Fprintln(w, summary)
}
