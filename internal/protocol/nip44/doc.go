// Package nip44 implements version 2 of the NIP-44 direct message encoding:
// secp256k1 key agreement, HKDF key derivation, length-hiding padding,
// ChaCha20 encryption with an HMAC-SHA256 tag, and a base64 wire format.
//
// Overview
//
//   - A conversation key is derived once per (private key, peer key) pair from
//     the x-coordinate of the shared point and cached by the Codec.
//   - Every message draws a 32 byte nonce. HKDF-Expand(conversation key, nonce)
//     yields the per-message cipher key, cipher nonce and MAC key.
//   - The plaintext is prefixed with its big-endian length and zero padded to a
//     bucketed size (CalcPaddedLen), then encrypted.
//   - The MAC covers nonce || ciphertext and is checked in constant time
//     before any unpadding takes place.
//
// Wire format
//
//	base64( 0x02 || nonce[32] || ciphertext || mac[32] )
//
// Errors
//
// Anything wrong with the shape of an incoming payload is reported as an error
// wrapping ErrMalformedPayload. Authentication failures are reported as
// ErrInvalidMAC. Neither path returns plaintext.
package nip44
