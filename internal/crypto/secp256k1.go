package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"nip44/internal/domain"
)

var (
	ErrInvalidPublicKey  = errors.New("crypto: bad public key")
	ErrInvalidPrivateKey = errors.New("crypto: bad private key")
)

// Secp256k1 multiplies points on the secp256k1 curve.
type Secp256k1 struct{}

var _ domain.PointMultiplier = Secp256k1{}

// Multiply returns scalar·point in compressed form. The scalar must lie in
// [1, n-1] and the point must decode to a curve point.
func (Secp256k1) Multiply(point [33]byte, scalar [32]byte) (out [33]byte, err error) {
	var s secp256k1.ModNScalar
	defer s.Zero()
	if overflow := s.SetBytes(&scalar); overflow != 0 || s.IsZero() {
		return out, ErrInvalidPrivateKey
	}

	pub, err := secp256k1.ParsePubKey(point[:])
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}

	var p, r secp256k1.JacobianPoint
	pub.AsJacobian(&p)
	secp256k1.ScalarMultNonConst(&s, &p, &r)
	if r.Z.IsZero() {
		return out, ErrInvalidPublicKey
	}
	r.ToAffine()
	copy(out[:], secp256k1.NewPublicKey(&r.X, &r.Y).SerializeCompressed())
	return out, nil
}

// GenerateKey returns a fresh private key and its x-only public key.
func GenerateKey() (priv domain.PrivateKey, pub domain.PublicKey, err error) {
	return generateKey(rand.Reader)
}

func generateKey(r io.Reader) (priv domain.PrivateKey, pub domain.PublicKey, err error) {
	sk, err := secp256k1.GeneratePrivateKeyFromRand(r)
	if err != nil {
		return priv, pub, err
	}
	defer sk.Zero()
	sk.Key.PutBytes((*[32]byte)(&priv))
	pub, err = PublicKeyOf(priv)
	return priv, pub, err
}

// PublicKeyOf returns the x-only public key for priv.
func PublicKeyOf(priv domain.PrivateKey) (pub domain.PublicKey, err error) {
	var s secp256k1.ModNScalar
	if overflow := s.SetBytes((*[32]byte)(&priv)); overflow != 0 || s.IsZero() {
		return pub, ErrInvalidPrivateKey
	}
	sk := secp256k1.NewPrivateKey(&s)
	defer sk.Zero()
	copy(pub[:], sk.PubKey().SerializeCompressed()[1:])
	return pub, nil
}

// ParsePrivateKey decodes a 64 character hex private key and checks its range.
func ParsePrivateKey(s string) (priv domain.PrivateKey, err error) {
	b, err := decodeHex32(s)
	if err != nil {
		return priv, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	defer Wipe(b[:])
	priv = domain.PrivateKey(b)
	if _, err := PublicKeyOf(priv); err != nil {
		Wipe(priv[:])
		return domain.PrivateKey{}, err
	}
	return priv, nil
}

// ParsePublicKey decodes a 64 character hex x-only public key and checks
// that it lifts to a curve point.
func ParsePublicKey(s string) (pub domain.PublicKey, err error) {
	b, err := decodeHex32(s)
	if err != nil {
		return pub, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	var compressed [33]byte
	compressed[0] = secp256k1.PubKeyFormatCompressedEven
	copy(compressed[1:], b[:])
	if _, err := secp256k1.ParsePubKey(compressed[:]); err != nil {
		return pub, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return domain.PublicKey(b), nil
}

func decodeHex32(s string) (out [32]byte, err error) {
	s = strings.TrimSpace(s)
	if len(s) != 64 {
		return out, fmt.Errorf("want 64 hex characters, got %d", len(s))
	}
	if _, err := hex.Decode(out[:], []byte(s)); err != nil {
		return out, err
	}
	return out, nil
}
