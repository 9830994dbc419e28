// SPDX-License-Identifier: MPL-2.0

package catalog

import "gyprgen/pkg/descriptor"

// GPRSDK is the top-level GPR library: the public gpr.h API plus the
// DNG/VC-5 glue (image reader/writer, EXIF, profile, and tuning info).
// Public headers precede the private implementation in the source list.
func GPRSDK() *descriptor.Target {
	return &descriptor.Target{
		Name: "gpr_sdk",
		Type: descriptor.StaticLibrary,
		IncludeDirs: []string{
			"./public",
			"./private",
			"../common/public",
			"../common/private",
			"../vc5_common",
			"../dng_sdk",
		},
		Defines: []descriptor.Define{
			"<@(default_defines)",
		},
		Sources: []string{
			"./public/gpr.h",
			"./public/gpr_exif_info.h",
			"./public/gpr_profile_info.h",
			"./public/gpr_tuning_info.h",
			"./private/gpr.cpp",
			"./private/gpr_exif_info.cpp",
			"./private/gpr_image_writer.cpp",
			"./private/gpr_image_writer.h",
			"./private/gpr_profile_info.cpp",
			"./private/gpr_read_image.cpp",
			"./private/gpr_read_image.h",
			"./private/gpr_tuning_info.cpp",
			"./private/gpr_utils.cpp",
			"./private/gpr_utils.h",
		},
	}
}
