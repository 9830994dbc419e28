// SPDX-License-Identifier: MPL-2.0

package catalog

import "gyprgen/pkg/descriptor"

// Common is the support library every other target links: allocator and
// buffer management, platform shims, and timing helpers.
func Common() *descriptor.Target {
	return &descriptor.Target{
		Name:        "common",
		Type:        descriptor.StaticLibrary,
		IncludeDirs: []string{"./public", "./private"},
		Defines: []descriptor.Define{
			"<@(default_defines)",
		},
		Sources: []string{
			"./public/gpr_allocator.h",
			"./public/gpr_buffer.h",
			"./public/gpr_platform.h",
			"./public/gpr_rgb_buffer.h",
			"./private/gpr_allocator.c",
			"./private/gpr_buffer.c",
			"./private/gpr_buffer_auto.cpp",
			"./private/gpr_buffer_auto.h",
			"./private/log.h",
			"./private/macros.h",
			"./private/timer.c",
		},
	}
}

// TinyJPEG is the embedded JPEG writer used for thumbnail previews.
func TinyJPEG() *descriptor.Target {
	return &descriptor.Target{
		Name:        "tiny_jpeg",
		Type:        descriptor.StaticLibrary,
		IncludeDirs: []string{"../common/public"},
		Defines: []descriptor.Define{
			"<@(default_defines)",
		},
		Sources: []string{
			"./jpeg.h",
		},
	}
}
