package types

import (
	"encoding/hex"
	"fmt"
)

// PrivateKey is a secp256k1 secret scalar in big-endian form.
type PrivateKey [32]byte

// Slice returns the key as a []byte.
func (k PrivateKey) Slice() []byte { return k[:] }

// PublicKey is an x-only secp256k1 public key (the point with even Y).
type PublicKey [32]byte

// Slice returns the key as a []byte.
func (p PublicKey) Slice() []byte { return p[:] }

// String returns the lowercase hex form used on the wire.
func (p PublicKey) String() string { return hex.EncodeToString(p[:]) }

// MarshalText encodes the key as hex so JSON files stay readable.
func (p PublicKey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a 64 character hex key. It does not check that the
// key lies on the curve.
func (p *PublicKey) UnmarshalText(b []byte) error {
	if len(b) != hex.EncodedLen(len(p)) {
		return fmt.Errorf("public key: want %d hex characters, got %d", hex.EncodedLen(len(p)), len(b))
	}
	_, err := hex.Decode(p[:], b)
	return err
}
