package nip44_test

import (
	"crypto/sha256"
	"errors"
	"testing"

	fuzz "github.com/trailofbits/go-fuzz-utils"

	"nip44/internal/protocol/nip44"
)

// FuzzDecryptPayload feeds arbitrary text to the decoder and checks that every
// failure is classified and that no plaintext escapes with an error.
func FuzzDecryptPayload(f *testing.F) {
	c, err := nip44.New()
	if err != nil {
		f.Fatal(err)
	}
	ck := nip44.ConversationKey(sha256.Sum256([]byte("fuzz")))
	info, err := c.EncryptWithNonce("seed", ck, [32]byte{1})
	if err != nil {
		f.Fatal(err)
	}
	f.Add(nip44.EncodePayload(info))
	f.Add("#" + nip44.EncodePayload(info)[1:])
	f.Add("")

	f.Fuzz(func(t *testing.T, text string) {
		pt, err := c.DecryptPayload(text, ck)
		if err == nil {
			return
		}
		if pt != "" {
			t.Fatalf("plaintext %q returned with error %v", pt, err)
		}
		if !errors.Is(err, nip44.ErrMalformedPayload) && !errors.Is(err, nip44.ErrInvalidMAC) {
			t.Fatalf("unclassified error: %v", err)
		}
	})
}

// FuzzRoundTrip encrypts structured random input, checks that it decrypts, and
// that flipping one byte of the payload is rejected.
func FuzzRoundTrip(f *testing.F) {
	for i := 0; i < 8; i++ {
		seed := sha256.Sum256([]byte{byte(i)})
		f.Add(append(seed[:], seed[:]...))
	}

	c, err := nip44.New()
	if err != nil {
		f.Fatal(err)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}
		keyMaterial, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}
		nonceMaterial, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}
		plaintext, err := tp.GetString()
		if err != nil || len(plaintext) == 0 || len(plaintext) > nip44.MaxPlaintextSize {
			t.Skip()
		}
		flip, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}

		ck := nip44.ConversationKey(sha256.Sum256(keyMaterial))
		info, err := c.EncryptWithNonce(plaintext, ck, sha256.Sum256(nonceMaterial))
		if err != nil {
			t.Fatalf("EncryptWithNonce: %v", err)
		}
		got, err := c.DecryptPayload(nip44.EncodePayload(info), ck)
		if err != nil {
			t.Fatalf("DecryptPayload: %v", err)
		}
		if got != plaintext {
			t.Fatalf("round trip mismatch")
		}

		tampered := info
		tampered.Ciphertext = append([]byte(nil), info.Ciphertext...)
		tampered.Ciphertext[int(flip)%len(tampered.Ciphertext)] ^= 0x01
		if _, err := c.DecryptInfo(tampered, ck); !errors.Is(err, nip44.ErrInvalidMAC) {
			t.Fatalf("tampered ciphertext: got %v", err)
		}
	})
}
