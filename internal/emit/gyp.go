// SPDX-License-Identifier: MPL-2.0

package emit

import (
	"fmt"
	"io"
	"strings"

	"gyprgen/pkg/descriptor"
)

// writeGYP renders the descriptor as a gyp fragment: a single-quoted target
// dict wrapped in a 'targets' list, matching what the original GPR generator
// handed to gyp. List fields keep their authored order; include_dirs, defines
// and sources are written even when empty so downstream merges see every key,
// while includes only appears when the target pulls in a gypi.
func writeGYP(w io.Writer, t *descriptor.Target) error {
	var b strings.Builder

	b.WriteString("{\n")
	b.WriteString("  'targets': [\n")
	b.WriteString("    {\n")
	fmt.Fprintf(&b, "      'target_name': %s,\n", gypString(t.Name))
	fmt.Fprintf(&b, "      'type': %s,\n", gypString(string(t.Type)))

	writeGYPList(&b, "include_dirs", t.IncludeDirs)

	defines := make([]string, len(t.Defines))
	for i, d := range t.Defines {
		defines[i] = string(d)
	}
	writeGYPList(&b, "defines", defines)

	if len(t.Includes) > 0 {
		writeGYPList(&b, "includes", t.Includes)
	}
	writeGYPList(&b, "sources", t.Sources)

	b.WriteString("    },\n")
	b.WriteString("  ],\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeGYPList(b *strings.Builder, key string, items []string) {
	if len(items) == 0 {
		fmt.Fprintf(b, "      '%s': [],\n", key)
		return
	}
	fmt.Fprintf(b, "      '%s': [\n", key)
	for _, item := range items {
		fmt.Fprintf(b, "        %s,\n", gypString(item))
	}
	b.WriteString("      ],\n")
}

// gypString single-quotes a value the way gyp dicts are written. Backslashes
// and single quotes are escaped; catalog entries contain neither, but config
// fragments merged from elsewhere might.
func gypString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
