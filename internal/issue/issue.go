// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	TargetNotFoundId Id = iota + 1
	InvalidModuleSelectionId
	InvalidEmitFormatId
	IncompleteCatalogId
	ConfigLoadFailedId
	OutputWriteFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation links shown under "See also"
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	targetNotFoundIssue = &Issue{
		id: TargetNotFoundId,
		mdMsg: `
# Unknown target!

The requested target has no table in the descriptor catalog.

## Things you can try:
- List the available targets:
~~~
$ gyprgen targets
~~~
- Check the target name for typos
- If the library is new, its file list must be added to the catalog first`,
	}

	invalidModuleSelectionIssue = &Issue{
		id: InvalidModuleSelectionId,
		mdMsg: `
# Invalid module selection!

The --modules value is not one of the recognized selections. Unknown values
are rejected rather than treated as "everything disabled", so a typo cannot
silently produce a descriptor with the wrong feature configuration.

## Recognized selections:
- ` + "`gpr_encoding`" + ` — enable only the GPR encoding module
- ` + "`gpr_decoding`" + ` — enable only the GPR decoding module
- ` + "`all`" + ` — enable both modules (default)

## Example:
~~~
$ gyprgen gen dng_sdk --modules gpr_decoding
~~~`,
	}

	invalidEmitFormatIssue = &Issue{
		id: InvalidEmitFormatId,
		mdMsg: `
# Invalid output format!

The --format value is not a recognized emitter.

## Recognized formats:
- ` + "`gyp`" + ` — gyp target-dict fragment (default)
- ` + "`json`" + ` — indented JSON document
- ` + "`toml`" + ` — TOML document`,
	}

	incompleteCatalogIssue = &Issue{
		id: IncompleteCatalogId,
		mdMsg: `
# Incomplete catalog table!

A catalog table is missing required fields (name, type, or sources). This is
a static authoring defect in the catalog itself, not a usage error, and no
descriptor is emitted until the table is fixed.

## Things you can try:
- Inspect the named table under internal/catalog/
- Ensure the source list is non-empty and the target has a name and type`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your config.cue file contains syntax errors or values outside the schema.

## Common issues:
- Invalid CUE syntax (missing quotes, braces, etc.)
- A 'modules' or 'format' value outside the recognized sets
- Unknown field names

## Things you can try:
- Show the resolved configuration and its source file:
~~~
$ gyprgen config show
$ gyprgen config path
~~~
- Remove the config file to fall back to defaults`,
	}

	outputWriteFailedIssue = &Issue{
		id: OutputWriteFailedId,
		mdMsg: `
# Failed to write output!

The descriptor was generated but could not be written to the requested path.

## Things you can try:
- Check that the output directory exists and is writable
- Omit --output to print the descriptor to stdout`,
	}

	issues = map[Id]*Issue{
		targetNotFoundIssue.Id():         targetNotFoundIssue,
		invalidModuleSelectionIssue.Id(): invalidModuleSelectionIssue,
		invalidEmitFormatIssue.Id():      invalidEmitFormatIssue,
		incompleteCatalogIssue.Id():      incompleteCatalogIssue,
		configLoadFailedIssue.Id():       configLoadFailedIssue,
		outputWriteFailedIssue.Id():      outputWriteFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
