// Package crypto exposes the minimal primitives used by nip44.
//
// Contents
//
//   - secp256k1 key generation, x-only public keys and point multiplication
//     (GenerateKey, PublicKeyOf, Secp256k1)
//   - HKDF extract/expand over a configurable hash (HKDF)
//   - The unauthenticated ChaCha20 stream cipher (ChaCha20)
//   - Hex parsing of keys (ParsePrivateKey, ParsePublicKey)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// All key functions use fixed-size array types defined in internal/domain to
// avoid accidental reallocations. Callers should treat returned secrets as
// sensitive and rely on Wipe when practical to reduce lifetime in memory.
package crypto
