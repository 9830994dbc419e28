// SPDX-License-Identifier: MPL-2.0

package catalog

import "gyprgen/pkg/descriptor"

// VC5Encoder is the VC-5 wavelet encoder library. It layers on vc5_common
// for bitstream and wavelet plumbing.
func VC5Encoder() *descriptor.Target {
	return &descriptor.Target{
		Name:        "vc5_encoder",
		Type:        descriptor.StaticLibrary,
		IncludeDirs: []string{"../vc5_common", "../common/public", "../common/private"},
		Defines: []descriptor.Define{
			"<@(default_defines)",
		},
		Sources: []string{
			"./codebooks.c",
			"./codebooks.h",
			"./component.c",
			"./component.h",
			"./encoder.c",
			"./encoder.h",
			"./forward.c",
			"./forward.h",
			"./headers.h",
			"./parameters.c",
			"./parameters.h",
			"./raw.c",
			"./raw.h",
			"./sections.c",
			"./sections.h",
			"./syntax.c",
			"./syntax.h",
			"./vc5_encoder.c",
			"./vc5_encoder.h",
			"./vlc.c",
		},
	}
}
