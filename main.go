// SPDX-License-Identifier: MPL-2.0

// hearth is the task orchestrator for the host workspace and its WASM
// runtime sub-projects.
package main

import cmd "hearth-cli/cmd/hearth"

func main() {
	cmd.Execute()
}
