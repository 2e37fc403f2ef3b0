// Package app wires application dependencies for the CLI.
//
// It loads Config from an optional TOML file, builds the logger, the concrete
// stores, the nip44 codec and the high-level services, and exposes them via
// the Wire struct for commands to use.
package app
