// SPDX-License-Identifier: MPL-2.0

// Package parserdef loads declarative parser definitions from CUE files and
// materializes them as pflag flag sets wrapped in argsig descriptors.
//
// A definition file declares the options every parser accepts, the named
// parser factories of the global owner and one parser per command:
//
//	namespace: "Homebrew::CLI::Args"
//	global_options: [{name: "verbose", short: "v"}]
//	factories: [{name: "install_args", options: [{name: "force"}]}]
//	commands: [{
//		name: "fetch"
//		options: [{name: "os", kind: "comma_array"}]
//		arguments: ["formula"]
//	}]
package parserdef
