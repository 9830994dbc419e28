// SPDX-License-Identifier: MPL-2.0

package main

import cmd "gyprgen/cmd/gyprgen"

func main() {
	cmd.Execute()
}
