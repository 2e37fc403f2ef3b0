package nip44

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"hash"
	"io"

	"github.com/rs/zerolog"

	"nip44/internal/crypto"
	"nip44/internal/domain"
)

// Primitives are the capabilities the codec is built on. Zero fields fall
// back to the production implementation.
type Primitives struct {
	Multiplier domain.PointMultiplier
	Cipher     domain.StreamCipher
	Hash       func() hash.Hash
	Random     io.Reader
}

// DefaultPrimitives returns secp256k1, ChaCha20, SHA-256 and crypto/rand.
func DefaultPrimitives() Primitives {
	return Primitives{
		Multiplier: crypto.Secp256k1{},
		Cipher:     crypto.ChaCha20{},
		Hash:       sha256.New,
		Random:     rand.Reader,
	}
}

func (p Primitives) withDefaults() Primitives {
	d := DefaultPrimitives()
	if p.Multiplier == nil {
		p.Multiplier = d.Multiplier
	}
	if p.Cipher == nil {
		p.Cipher = d.Cipher
	}
	if p.Hash == nil {
		p.Hash = d.Hash
	}
	if p.Random == nil {
		p.Random = d.Random
	}
	return p
}

type options struct {
	prims     Primitives
	cacheSize int
	log       zerolog.Logger
}

// Option configures a Codec.
type Option func(*options)

// WithPrimitives replaces the cryptographic capabilities.
func WithPrimitives(p Primitives) Option {
	return func(o *options) { o.prims = p }
}

// WithCacheSize bounds the number of cached conversation keys.
func WithCacheSize(n int) Option {
	return func(o *options) { o.cacheSize = n }
}

// WithLogger sets the logger used for rejected payloads.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// Codec encrypts and decrypts NIP-44 v2 payloads. It is safe for concurrent use.
type Codec struct {
	prims Primitives
	kdf   crypto.HKDF
	cache *ConversationKeyCache
	log   zerolog.Logger
}

// New returns a Codec with its own conversation key cache.
func New(opts ...Option) (*Codec, error) {
	o := options{cacheSize: DefaultCacheSize, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Codec{
		prims: o.prims.withDefaults(),
		log:   o.log.With().Str("component", "nip44").Logger(),
	}
	c.kdf = crypto.NewHKDF(c.prims.Hash)

	cache, err := NewConversationKeyCache(o.cacheSize, func(priv domain.PrivateKey, pub domain.PublicKey) (ConversationKey, error) {
		return deriveConversationKey(c.kdf, c.prims.Multiplier, priv, pub)
	})
	if err != nil {
		return nil, err
	}
	c.cache = cache
	return c, nil
}

// Encrypt encrypts plaintext from priv to peer under a fresh nonce and returns
// the base64 payload.
func (c *Codec) Encrypt(plaintext string, priv domain.PrivateKey, peer domain.PublicKey) (string, error) {
	ck, err := c.ConversationKey(priv, peer)
	if err != nil {
		return "", err
	}
	info, err := c.EncryptWithKey(plaintext, ck)
	if err != nil {
		return "", err
	}
	return EncodePayload(info), nil
}

// Decrypt authenticates and decrypts a base64 payload exchanged between priv
// and peer.
func (c *Codec) Decrypt(payload string, priv domain.PrivateKey, peer domain.PublicKey) (string, error) {
	ck, err := c.ConversationKey(priv, peer)
	if err != nil {
		return "", err
	}
	return c.DecryptPayload(payload, ck)
}

// ConversationKey returns the cached conversation key for the pair,
// deriving it on first use.
func (c *Codec) ConversationKey(priv domain.PrivateKey, peer domain.PublicKey) (ConversationKey, error) {
	return c.cache.GetOrCompute(priv, peer)
}

// ClearConversationKeyCache forgets every cached conversation key.
func (c *Codec) ClearConversationKeyCache() {
	c.cache.Clear()
	c.log.Debug().Msg("conversation key cache cleared")
}

// CachedConversationKeys reports how many pairs are cached.
func (c *Codec) CachedConversationKeys() int { return c.cache.Len() }

// MessageKeys expands the per-message keys for nonce.
func (c *Codec) MessageKeys(ck ConversationKey, nonce [NonceSize]byte) MessageKeys {
	return deriveMessageKeys(c.kdf, ck, nonce)
}

// EncryptWithKey encrypts plaintext under ck with a nonce read from the
// random source.
func (c *Codec) EncryptWithKey(plaintext string, ck ConversationKey) (EncryptedInfo, error) {
	var nonce [NonceSize]byte
	if _, err := io.ReadFull(c.prims.Random, nonce[:]); err != nil {
		return EncryptedInfo{}, fmt.Errorf("nip44: read nonce: %w", err)
	}
	return c.EncryptWithNonce(plaintext, ck, nonce)
}

// EncryptWithNonce encrypts plaintext under ck and nonce. Reusing a nonce
// with the same conversation key leaks the XOR of the plaintexts; it exists
// for deterministic tests.
func (c *Codec) EncryptWithNonce(plaintext string, ck ConversationKey, nonce [NonceSize]byte) (EncryptedInfo, error) {
	padded, err := Pad([]byte(plaintext))
	if err != nil {
		return EncryptedInfo{}, err
	}
	defer crypto.Wipe(padded)

	keys := c.MessageKeys(ck, nonce)
	defer keys.Wipe()

	ct := make([]byte, len(padded))
	if err := c.prims.Cipher.XORKeyStream(keys.CipherKey, keys.CipherNonce, ct, padded); err != nil {
		return EncryptedInfo{}, fmt.Errorf("nip44: encrypt: %w", err)
	}
	return EncryptedInfo{
		Nonce:      nonce,
		Ciphertext: ct,
		MAC:        hmacAAD(c.prims.Hash, keys.MACKey, nonce[:], ct),
	}, nil
}

// DecryptInfo verifies the MAC of info and returns the plaintext.
func (c *Codec) DecryptInfo(info EncryptedInfo, ck ConversationKey) (string, error) {
	keys := c.MessageKeys(ck, info.Nonce)
	defer keys.Wipe()

	want := hmacAAD(c.prims.Hash, keys.MACKey, info.Nonce[:], info.Ciphertext)
	if !hmac.Equal(want[:], info.MAC[:]) {
		c.log.Error().Err(ErrInvalidMAC).Int("ciphertext_len", len(info.Ciphertext)).Msg("rejected payload")
		return "", ErrInvalidMAC
	}

	padded := make([]byte, len(info.Ciphertext))
	defer crypto.Wipe(padded)
	if err := c.prims.Cipher.XORKeyStream(keys.CipherKey, keys.CipherNonce, padded, info.Ciphertext); err != nil {
		return "", fmt.Errorf("nip44: decrypt: %w", err)
	}
	pt, err := Unpad(padded)
	if err != nil {
		c.log.Warn().Err(err).Int("ciphertext_len", len(info.Ciphertext)).Msg("rejected payload")
		return "", err
	}
	return string(pt), nil
}

// DecryptPayload decodes text and decrypts it under ck.
func (c *Codec) DecryptPayload(text string, ck ConversationKey) (string, error) {
	info, err := DecodePayload(text)
	if err != nil {
		c.log.Warn().Err(err).Int("payload_len", len(text)).Msg("rejected payload")
		return "", err
	}
	return c.DecryptInfo(info, ck)
}
