// SPDX-License-Identifier: MPL-2.0

package emit

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"

	"gyprgen/pkg/descriptor"
)

func writeTOML(w io.Writer, t *descriptor.Target) error {
	enc := toml.NewEncoder(w)
	if err := enc.Encode(document{Targets: []*descriptor.Target{t}}); err != nil {
		return fmt.Errorf("encode descriptor as TOML: %w", err)
	}
	return nil
}
