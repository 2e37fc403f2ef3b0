package crypto

import (
	"golang.org/x/crypto/chacha20"

	"nip44/internal/domain"
)

// ChaCha20 is the RFC 8439 stream cipher with the block counter starting at 0.
type ChaCha20 struct{}

var _ domain.StreamCipher = ChaCha20{}

// XORKeyStream XORs src with the keystream for key and nonce into dst.
func (ChaCha20) XORKeyStream(key [32]byte, nonce [12]byte, dst, src []byte) error {
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return err
	}
	c.XORKeyStream(dst, src)
	return nil
}
