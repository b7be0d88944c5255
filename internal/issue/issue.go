// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a catalog entry.
type Id int

const (
	DirectoryNotFoundId Id = iota + 1
	DescriptorNotFoundId
	MalformedDescriptorId
	InvalidNameFieldId
	DescriptorWriteFailedId
	ConfigLoadFailedId
)

type (
	// MarkdownMsg is Markdown help text.
	MarkdownMsg string

	// HttpLink is an absolute URL shown under "See also".
	HttpLink string

	// Issue is one help page of the catalog.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		extLinks []HttpLink
	}
)

// Id returns the catalog ID.
func (i *Issue) Id() Id { return i.id }

// MarkdownMsg returns the raw Markdown body.
func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

// ExtLinks returns a copy of the external reference links.
func (i *Issue) ExtLinks() []HttpLink { return slices.Clone(i.extLinks) }

// Render renders the help page for a terminal using a glamour style such as
// "dark", "light" or "notty".
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.extLinks {
			md.WriteString("- " + string(link) + "\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	directoryNotFoundIssue = &Issue{
		id: DirectoryNotFoundId,
		mdMsg: `
# Architecture root directory not found!

The directory that should hold one sub-directory per target platform does
not exist, is not a directory, or cannot be read.

## Things you can try:
- Run the native build step that generates the per-platform packages first:
~~~
$ napi create-npm-dirs
~~~

- Point npmscope at the right directory:
~~~
$ npmscope rewrite --root ./npm
~~~

- Or set it once in ` + "`npmscope.cue`" + `:
~~~cue
root_dir: "./npm"
~~~`,
	}

	descriptorNotFoundIssue = &Issue{
		id: DescriptorNotFoundId,
		mdMsg: `
# Package descriptor not found!

An entry of the root directory has no readable ` + "`package.json`" + `.
Every immediate child of the root is treated as a platform package.

## Things you can try:
- Remove stray files or folders from the root directory
- Skip them with an exclude pattern:
~~~
$ npmscope rewrite --exclude '.*' --exclude '*.md'
~~~

- If the descriptor lives elsewhere inside each entry, set ` + "`descriptor_path`" + `.`,
	}

	malformedDescriptorIssue = &Issue{
		id: MalformedDescriptorId,
		mdMsg: `
# Malformed package descriptor!

A ` + "`package.json`" + ` is not valid JSON, or its top-level value is not
an object.

## Things you can try:
- Regenerate the platform packages from a clean checkout
- Validate the file:
~~~
$ node -e 'JSON.parse(require("fs").readFileSync(process.argv[1], "utf8"))' npm/linux-x64-gnu/package.json
~~~`,
	}

	invalidNameFieldIssue = &Issue{
		id: InvalidNameFieldId,
		mdMsg: `
# Invalid package name field!

The descriptor has no ` + "`name`" + ` field, or its value is not a string.

## Things you can try:
- Check that the platform package was generated by the native build
- Add a string ` + "`name`" + ` field, e.g. ` + "`\"name\": \"anni-javascript-binding-linux-x64-gnu\"`",
		extLinks: []HttpLink{
			"https://docs.npmjs.com/cli/v10/configuring-npm/package-json#name",
		},
	}

	descriptorWriteFailedIssue = &Issue{
		id: DescriptorWriteFailedId,
		mdMsg: `
# Could not write package descriptor!

The rewritten ` + "`package.json`" + ` could not be saved. Entries processed
before this one have already been rewritten; the rest are untouched.

## Common causes:
- The file or its directory is read-only
- The disk is full

## Things you can try:
- Check permissions on the platform package directories
- Re-run from a clean checkout once the cause is fixed`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or does not match the schema.

## Things you can try:
- Show the configuration npmscope resolved:
~~~
$ npmscope config show
~~~

- Print a valid default file to start from:
~~~
$ npmscope config dump
~~~`,
		extLinks: []HttpLink{
			"https://cuelang.org/docs/",
		},
	}

	issues = map[Id]*Issue{
		directoryNotFoundIssue.Id():     directoryNotFoundIssue,
		descriptorNotFoundIssue.Id():    descriptorNotFoundIssue,
		malformedDescriptorIssue.Id():   malformedDescriptorIssue,
		invalidNameFieldIssue.Id():      invalidNameFieldIssue,
		descriptorWriteFailedIssue.Id(): descriptorWriteFailedIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
	}
)

// Values returns every catalog entry ordered by ID.
func Values() []*Issue {
	all := maps.Values(issues)
	slices.SortFunc(all, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return all
}

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
