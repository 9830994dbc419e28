// SPDX-License-Identifier: MPL-2.0

package emit

import (
	"encoding/json"
	"fmt"
	"io"

	"gyprgen/pkg/descriptor"
)

// document wraps the target list so JSON and TOML output share the gyp
// fragment's top-level shape.
type document struct {
	Targets []*descriptor.Target `json:"targets" toml:"targets"`
}

func writeJSON(w io.Writer, t *descriptor.Target) error {
	data, err := json.MarshalIndent(document{Targets: []*descriptor.Target{t}}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode descriptor as JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
