// Package commands defines the nip44 CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init           Create, import or rotate the local identity
//   - pubkey         Print the identity public key and fingerprint
//   - contact        Manage aliases for peer public keys (add, list, rm)
//   - convkey        Print the conversation key shared with a peer
//   - encrypt        Encrypt a message for a peer
//   - decrypt        Decrypt a payload from a peer
//
// # Implementation
//
// The root command loads config.toml from the home directory, applies flag
// overrides and builds the dependency graph (stores, codec, services) before
// any subcommand runs. The passphrase comes from -p or NIP44_PASSPHRASE.
package commands
