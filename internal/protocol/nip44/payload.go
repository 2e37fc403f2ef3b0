package nip44

import (
	"encoding/base64"
	"fmt"
)

const (
	Version   byte = 2
	NonceSize      = 32
	MACSize        = 32

	minPayloadTextSize = 132
	maxPayloadTextSize = 87472
	minPayloadSize     = 99
	maxPayloadSize     = 65603
)

// EncryptedInfo is a decoded payload.
type EncryptedInfo struct {
	Nonce      [NonceSize]byte
	Ciphertext []byte
	MAC        [MACSize]byte
}

// EncodePayload returns base64(version || nonce || ciphertext || mac).
func EncodePayload(info EncryptedInfo) string {
	buf := make([]byte, 0, 1+NonceSize+len(info.Ciphertext)+MACSize)
	buf = append(buf, Version)
	buf = append(buf, info.Nonce[:]...)
	buf = append(buf, info.Ciphertext...)
	buf = append(buf, info.MAC[:]...)
	return base64.StdEncoding.EncodeToString(buf)
}

// DecodePayload parses a base64 payload. Every failure wraps ErrMalformedPayload.
func DecodePayload(text string) (info EncryptedInfo, err error) {
	if n := len(text); n < minPayloadTextSize || n > maxPayloadTextSize {
		return info, fmt.Errorf("%w: %d characters", ErrPayloadLength, n)
	}
	if text[0] == '#' {
		return info, ErrUnsupportedEncoding
	}
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return info, fmt.Errorf("%w: %w", ErrInvalidBase64, err)
	}
	if n := len(raw); n < minPayloadSize || n > maxPayloadSize {
		return info, fmt.Errorf("%w: %d bytes", ErrPayloadLength, n)
	}
	if raw[0] != Version {
		return info, fmt.Errorf("%w: %d", ErrUnknownVersion, raw[0])
	}

	copy(info.Nonce[:], raw[1:1+NonceSize])
	info.Ciphertext = raw[1+NonceSize : len(raw)-MACSize]
	copy(info.MAC[:], raw[len(raw)-MACSize:])
	return info, nil
}
