// SPDX-License-Identifier: MPL-2.0

package catalog

import "gyprgen/pkg/descriptor"

// VC5Common is the codec plumbing shared by the VC-5 encoder and decoder:
// bitstream and stream I/O, codec state, companding, log curve, and the
// wavelet transforms.
func VC5Common() *descriptor.Target {
	return &descriptor.Target{
		Name:        "vc5_common",
		Type:        descriptor.StaticLibrary,
		IncludeDirs: []string{"../common/public", "../common/private"},
		Defines: []descriptor.Define{
			"<@(default_defines)",
		},
		Sources: []string{
			"./bitstream.c",
			"./bitstream.h",
			"./codec.c",
			"./codec.h",
			"./codeset.h",
			"./common.h",
			"./companding.c",
			"./companding.h",
			"./config.h",
			"./error.h",
			"./image.c",
			"./image.h",
			"./logcurve.c",
			"./logcurve.h",
			"./pixel.h",
			"./stream.c",
			"./stream.h",
			"./syntax.c",
			"./syntax.h",
			"./types.h",
			"./unique.h",
			"./utilities.c",
			"./vc5_common.h",
			"./wavelet.c",
			"./wavelet.h",
		},
	}
}
