package nip44

import (
	"crypto/sha256"
	"fmt"

	"nip44/internal/crypto"
	"nip44/internal/domain"
)

const messageKeysSize = 76

var conversationSalt = []byte("nip44-v2")

// ConversationKey is the long-lived secret shared by a pair of keys.
type ConversationKey [32]byte

// MessageKeys are the per-message secrets expanded from a conversation key
// and a nonce. They are never cached.
type MessageKeys struct {
	CipherKey   [32]byte
	CipherNonce [12]byte
	MACKey      [32]byte
}

// Wipe zeroes the keys.
func (k *MessageKeys) Wipe() {
	crypto.Wipe(k.CipherKey[:])
	crypto.Wipe(k.CipherNonce[:])
	crypto.Wipe(k.MACKey[:])
}

// DeriveMessageKeys expands the message keys for nonce using HKDF-SHA256.
func DeriveMessageKeys(ck ConversationKey, nonce [NonceSize]byte) MessageKeys {
	return deriveMessageKeys(crypto.NewHKDF(sha256.New), ck, nonce)
}

func deriveMessageKeys(kdf crypto.HKDF, ck ConversationKey, nonce [NonceSize]byte) (keys MessageKeys) {
	okm := kdf.Expand(ck[:], nonce[:], messageKeysSize)
	defer crypto.Wipe(okm)
	copy(keys.CipherKey[:], okm[0:32])
	copy(keys.CipherNonce[:], okm[32:44])
	copy(keys.MACKey[:], okm[44:76])
	return keys
}

// deriveConversationKey multiplies the even-Y lift of pub by priv and extracts
// the x-coordinate under the version salt.
func deriveConversationKey(
	kdf crypto.HKDF,
	mul domain.PointMultiplier,
	priv domain.PrivateKey,
	pub domain.PublicKey,
) (ck ConversationKey, err error) {
	var point [33]byte
	point[0] = 0x02
	copy(point[1:], pub[:])

	shared, err := mul.Multiply(point, [32]byte(priv))
	if err != nil {
		return ck, fmt.Errorf("%w: %w", ErrConversationKey, err)
	}
	defer crypto.Wipe(shared[:])

	prk := kdf.Extract(conversationSalt, shared[1:])
	defer crypto.Wipe(prk)
	copy(ck[:], prk)
	return ck, nil
}
