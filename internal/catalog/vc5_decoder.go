// SPDX-License-Identifier: MPL-2.0

package catalog

import "gyprgen/pkg/descriptor"

// VC5Decoder is the VC-5 wavelet decoder library. It layers on vc5_common
// for bitstream and wavelet plumbing.
func VC5Decoder() *descriptor.Target {
	return &descriptor.Target{
		Name:        "vc5_decoder",
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
			"./decoder.c",
			"./decoder.h",
			"./dequantize.c",
			"./dequantize.h",
			"./inverse.c",
			"./inverse.h",
			"./parameters.c",
			"./parameters.h",
			"./raw.c",
			"./raw.h",
			"./syntax.c",
			"./syntax.h",
			"./vc5_decoder.c",
			"./vc5_decoder.h",
			"./vlc.c",
			"./wavelet.c",
			"./wavelet.h",
		},
	}
}
