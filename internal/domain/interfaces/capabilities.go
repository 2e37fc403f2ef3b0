package interfaces

// PointMultiplier multiplies a compressed curve point by a secret scalar and
// returns the compressed product.
type PointMultiplier interface {
	Multiply(point [33]byte, scalar [32]byte) ([33]byte, error)
}

// StreamCipher XORs src with the keystream for (key, nonce) into dst.
// dst must be at least as long as src.
type StreamCipher interface {
	XORKeyStream(key [32]byte, nonce [12]byte, dst, src []byte) error
}
