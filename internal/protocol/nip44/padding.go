package nip44

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

const (
	MinPlaintextSize = 1
	MaxPlaintextSize = 65535

	lengthPrefixSize = 2
	minPaddedSize    = 32
)

// CalcPaddedLen returns the padded size for an n byte plaintext. Sizes up to
// 32 pad to 32. Above that, sizes are rounded up to a multiple of 32 while the
// next power of two is at most 256, and to a multiple of an eighth of the next
// power of two afterwards. It panics if n < 1.
func CalcPaddedLen(n int) int {
	if n < 1 {
		panic(fmt.Sprintf("nip44: padded length of %d", n))
	}
	if n <= minPaddedSize {
		return minPaddedSize
	}
	nextPower := 1 << bits.Len(uint(n-1))
	chunk := 32
	if nextPower > 256 {
		chunk = nextPower / 8
	}
	return chunk * ((n-1)/chunk + 1)
}

// Pad returns len(plaintext) as two big-endian bytes, then plaintext, then
// zeros up to 2 + CalcPaddedLen(len(plaintext)).
func Pad(plaintext []byte) ([]byte, error) {
	n := len(plaintext)
	if n < MinPlaintextSize || n > MaxPlaintextSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrPlaintextLength, n)
	}
	out := make([]byte, lengthPrefixSize+CalcPaddedLen(n))
	binary.BigEndian.PutUint16(out, uint16(n))
	copy(out[lengthPrefixSize:], plaintext)
	return out, nil
}

// Unpad reverses Pad. The returned slice aliases padded.
func Unpad(padded []byte) ([]byte, error) {
	if len(padded) < lengthPrefixSize+minPaddedSize {
		return nil, ErrInvalidPadding
	}
	n := int(binary.BigEndian.Uint16(padded))
	if n < MinPlaintextSize || lengthPrefixSize+n > len(padded) {
		return nil, ErrInvalidPadding
	}
	if len(padded) != lengthPrefixSize+CalcPaddedLen(n) {
		return nil, ErrInvalidPadding
	}
	return padded[lengthPrefixSize : lengthPrefixSize+n], nil
}
