package crypto

import (
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"
)

// HKDF implements RFC 5869 extract and expand over a fixed hash.
type HKDF struct {
	hash func() hash.Hash
	size int
}

// NewHKDF returns an HKDF bound to the given hash constructor.
func NewHKDF(h func() hash.Hash) HKDF {
	return HKDF{hash: h, size: h().Size()}
}

// Size returns the output length of the underlying hash.
func (k HKDF) Size() int { return k.size }

// Extract returns the pseudorandom key for ikm under salt.
func (k HKDF) Extract(salt, ikm []byte) []byte {
	return hkdf.Extract(k.hash, ikm, salt)
}

// Expand derives length bytes from prk and info. Asking for more than 255
// hash blocks panics.
func (k HKDF) Expand(prk, info []byte, length int) []byte {
	if length < 0 || length > 255*k.size {
		panic(fmt.Sprintf("crypto: hkdf expand length %d out of range", length))
	}
	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.Expand(k.hash, prk, info), out); err != nil {
		panic("crypto: hkdf expand: " + err.Error())
	}
	return out
}
