// SPDX-License-Identifier: MPL-2.0

package rewrite

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/anni-rs/npmscope/pkg/ordjson"
	"github.com/anni-rs/npmscope/pkg/types"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/goccy/go-json"
	"github.com/spf13/afero"
)

const (
	// DefaultRootDir is the architecture root used when none is configured.
	DefaultRootDir = "npm"
	// DefaultDescriptorPath is the descriptor location inside each entry.
	DefaultDescriptorPath = "package.json"
	// DefaultSearch is the substring replaced in package names.
	DefaultSearch = "anni-javascript-binding"
	// DefaultReplace is the scoped identifier substituted for DefaultSearch.
	DefaultReplace = "@anni-rs/anni-javascript-binding"
	// DefaultIndent is the number of spaces per nesting level on output.
	DefaultIndent = 2

	maxIndent = 16
)

var (
	errEmptySearch          = errors.New("search string must not be empty")
	errEmptyRootDir         = errors.New("root directory must not be empty")
	errEmptyDescriptorPath  = errors.New("descriptor path must not be empty")
	errDescriptorPathEscape = errors.New("descriptor path must stay inside the entry directory")
)

type (
	// Options configures a Rewriter. Zero-valued string fields fall back to
	// the defaults above; see Defaults.
	Options struct {
		RootDir         string
		DescriptorPath  string
		Search          string
		Replace         string
		Policy          Policy
		Include         []string
		Exclude         []string
		Indent          int
		TrailingNewline bool
		DryRun          bool

		// Fs is the filesystem the pass runs on. Nil means the OS filesystem.
		Fs afero.Fs
		// Logger receives per-entry diagnostics. Nil discards them.
		Logger *log.Logger
	}

	// Rewriter runs rewrite passes over one architecture root.
	Rewriter struct {
		opts   Options
		fs     afero.Fs
		logger *log.Logger
	}
)

// Defaults returns Options populated with the default values.
func Defaults() Options {
	return Options{
		RootDir:        DefaultRootDir,
		DescriptorPath: DefaultDescriptorPath,
		Search:         DefaultSearch,
		Replace:        DefaultReplace,
		Policy:         PolicyFailFast,
		Indent:         DefaultIndent,
	}
}

// Validate checks every field and returns an InvalidOptionsError listing all
// problems found, or nil.
func (o Options) Validate() error {
	var errs []error
	if o.RootDir == "" {
		errs = append(errs, errEmptyRootDir)
	}
	switch {
	case o.DescriptorPath == "":
		errs = append(errs, errEmptyDescriptorPath)
	case !types.FilesystemPath(o.DescriptorPath).IsRelativeChild():
		errs = append(errs, fmt.Errorf("%w: %q", errDescriptorPathEscape, o.DescriptorPath))
	}
	if o.Search == "" {
		errs = append(errs, errEmptySearch)
	}
	if err := o.Policy.Validate(); err != nil {
		errs = append(errs, err)
	}
	if o.Indent < 0 || o.Indent > maxIndent {
		errs = append(errs, fmt.Errorf("indent %d out of range [0, %d]", o.Indent, maxIndent))
	}
	for _, p := range append(append([]string(nil), o.Include...), o.Exclude...) {
		if !doublestar.ValidatePattern(p) {
			errs = append(errs, fmt.Errorf("%w: %q", doublestar.ErrBadPattern, p))
		}
	}
	if len(errs) > 0 {
		return &InvalidOptionsError{FieldErrors: errs}
	}
	return nil
}

// New validates opts and returns a Rewriter. Empty RootDir and
// DescriptorPath take their defaults; Search is required.
func New(opts Options) (*Rewriter, error) {
	if opts.RootDir == "" {
		opts.RootDir = DefaultRootDir
	}
	if opts.DescriptorPath == "" {
		opts.DescriptorPath = DefaultDescriptorPath
	}
	if opts.Policy == "" {
		opts.Policy = PolicyFailFast
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	r := &Rewriter{opts: opts, fs: opts.Fs, logger: opts.Logger}
	if r.fs == nil {
		r.fs = afero.NewOsFs()
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	return r, nil
}

// Options returns the effective options of the Rewriter.
func (r *Rewriter) Options() Options { return r.opts }

// RewriteAll runs one pass over the architecture root.
//
// The returned Report is never nil. Under PolicyFailFast the error is the
// first entry failure; under PolicyCollectAll it is a *PassError. A missing
// root is always reported as *DirectoryNotFoundError before anything is
// written. The context is checked before each entry.
func (r *Rewriter) RewriteAll(ctx context.Context) (*Report, error) {
	report := &Report{RootDir: r.opts.RootDir, DryRun: r.opts.DryRun}

	names, err := r.listEntries()
	if err != nil {
		return report, err
	}
	entries, skipped := r.selectEntries(names)
	report.Skipped = skipped
	for _, name := range skipped {
		r.logger.Debug("skipping entry", "entry", name)
	}

	var failures []error
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res, err := r.rewriteEntry(entry)
		if err != nil {
			report.Failed = append(report.Failed, entry)
			r.logger.Debug("entry failed", "entry", entry, "err", err)
			if r.opts.Policy != PolicyCollectAll {
				return report, err
			}
			failures = append(failures, err)
			continue
		}
		report.Entries = append(report.Entries, res)
	}

	r.logger.Info("pass complete",
		"root", r.opts.RootDir,
		"entries", len(entries),
		"renamed", report.Renamed(),
		"written", report.Written(),
		"failed", len(report.Failed),
		"dry_run", r.opts.DryRun,
	)

	if len(failures) > 0 {
		return report, &PassError{Failures: failures, Entries: len(entries)}
	}
	return report, nil
}

// rewriteEntry reads, transforms and writes the descriptor of one entry.
func (r *Rewriter) rewriteEntry(entry string) (EntryResult, error) {
	path := types.FilesystemPath(r.opts.RootDir).Join(entry, r.opts.DescriptorPath).String()
	res := EntryResult{Entry: entry, Path: path}
	logger := r.logger.With("entry", entry)

	info, err := r.fs.Stat(path)
	if err != nil {
		return res, &DescriptorNotFoundError{Entry: entry, Path: path, Err: err}
	}
	if info.IsDir() {
		return res, &DescriptorNotFoundError{Entry: entry, Path: path, Err: errIsADirectory}
	}
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return res, &DescriptorNotFoundError{Entry: entry, Path: path, Err: err}
	}

	obj, err := ordjson.Parse(data)
	if err != nil {
		return res, &MalformedDescriptorError{Entry: entry, Path: path, Err: err}
	}

	raw, ok := obj.Get("name")
	if !ok {
		return res, &InvalidNameFieldError{Entry: entry, Path: path, Found: "missing"}
	}
	name, ok := raw.(string)
	if !ok {
		return res, &InvalidNameFieldError{Entry: entry, Path: path, Found: jsonKind(raw)}
	}

	newName, renamed := ReplaceName(name, r.opts.Search, r.opts.Replace)
	res.OldName, res.NewName, res.Renamed = name, newName, renamed
	if renamed {
		obj.Set("name", newName)
	}

	out, err := ordjson.MarshalIndent(obj, r.opts.Indent)
	if err != nil {
		return res, &WriteError{Entry: entry, Path: path, Err: err}
	}
	if r.opts.TrailingNewline {
		out = append(out, '\n')
	}

	if bytes.Equal(out, data) {
		logger.Debug("descriptor unchanged", "name", name)
		return res, nil
	}
	if r.opts.DryRun {
		logger.Info("would rewrite descriptor", "from", name, "to", newName)
		return res, nil
	}

	if err := afero.WriteFile(r.fs, path, out, info.Mode().Perm()); err != nil {
		return res, &WriteError{Entry: entry, Path: path, Err: err}
	}
	res.Written = true
	if renamed {
		logger.Info("renamed package", "from", name, "to", newName)
	} else {
		logger.Debug("descriptor reformatted", "name", name)
	}
	return res, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case []any:
		return "array"
	case *ordjson.Object:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
