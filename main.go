// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/invowk/argsig/cmd/argsig"

func main() {
	cmd.Execute()
}
