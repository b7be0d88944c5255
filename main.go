// SPDX-License-Identifier: MPL-2.0

// npmscope rewrites the names of per-platform npm package descriptors.
package main

import cmd "github.com/anni-rs/npmscope/cmd/npmscope"

func main() {
	cmd.Execute()
}
