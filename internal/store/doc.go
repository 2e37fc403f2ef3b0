// Package store provides file-based persistence for nip44's local data.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. All methods are concurrency-safe via
// internal locking. Stored files live under the configured home directory.
//
// The package includes stores for:
//   - Identity keys, sealed with a passphrase (IdentityFileStore)
//   - The contact book mapping aliases to public keys (ContactFileStore)
package store
