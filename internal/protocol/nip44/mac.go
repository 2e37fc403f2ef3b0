package nip44

import (
	"crypto/hmac"
	"hash"
)

// hmacAAD returns HMAC(key, aad || msg). The associated data is always the
// 32 byte nonce; anything else is a caller bug.
func hmacAAD(h func() hash.Hash, key [32]byte, aad, msg []byte) (out [MACSize]byte) {
	if len(aad) != NonceSize {
		panic("nip44: associated data must be 32 bytes")
	}
	m := hmac.New(h, key[:])
	m.Write(aad)
	m.Write(msg)
	copy(out[:], m.Sum(nil))
	return out
}
