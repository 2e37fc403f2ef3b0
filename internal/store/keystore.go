package store

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"nip44/internal/crypto"
)

// keystoreFormatVersion is the version of the sealed blob written to disk.
const keystoreFormatVersion = 1

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// sealed blob has been modified.
var ErrWrongPassphrase = errors.New("store: wrong passphrase or corrupted keystore")

// ScryptParams are the scrypt cost parameters used to derive the sealing key.
type ScryptParams struct {
	N int `toml:"n"`
	R int `toml:"r"`
	P int `toml:"p"`
}

// DefaultScryptParams returns N=2^15, r=8, p=1.
func DefaultScryptParams() ScryptParams { return ScryptParams{N: 1 << 15, R: 8, P: 1} }

// sealed is the on-disk JSON structure holding the ciphertext and KDF parameters.
type sealed struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	Nonce  []byte `json:"nonce"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// seal derives a key from passphrase and encrypts raw into a JSON blob. The
// header fields are bound as associated data.
func seal(passphrase string, raw []byte, params ScryptParams) ([]byte, error) {
	s := sealed{
		V:     keystoreFormatVersion,
		Salt:  make([]byte, 16),
		Nonce: make([]byte, chacha20poly1305.NonceSize),
		N:     params.N,
		R:     params.R,
		P:     params.P,
	}
	if _, err := rand.Read(s.Salt); err != nil {
		return nil, err
	}
	if _, err := rand.Read(s.Nonce); err != nil {
		return nil, err
	}
	aead, err := s.aead(passphrase)
	if err != nil {
		return nil, err
	}
	s.Cipher = aead.Seal(nil, s.Nonce, raw, s.header())
	return json.Marshal(s)
}

// open decrypts a blob produced by seal.
func open(passphrase string, b []byte) ([]byte, error) {
	var s sealed
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("store: parse keystore: %w", err)
	}
	if s.V != keystoreFormatVersion {
		return nil, fmt.Errorf("store: unsupported keystore version %d", s.V)
	}
	if len(s.Nonce) != chacha20poly1305.NonceSize {
		return nil, ErrWrongPassphrase
	}
	aead, err := s.aead(passphrase)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, s.Nonce, s.Cipher, s.header())
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func (s sealed) aead(passphrase string) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(passphrase), s.Salt, s.N, s.R, s.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("store: derive key: %w", err)
	}
	defer crypto.Wipe(key)
	return chacha20poly1305.New(key)
}

// header returns the associated data covering every field except the ciphertext.
func (s sealed) header() []byte {
	return fmt.Appendf(nil, "v=%d;N=%d;r=%d;p=%d;salt=%x", s.V, s.N, s.R, s.P, s.Salt)
}
