package nip44_test

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"nip44/internal/protocol/nip44"
)

func sampleInfo(ctLen int) nip44.EncryptedInfo {
	info := nip44.EncryptedInfo{Ciphertext: bytes.Repeat([]byte{0xab}, ctLen)}
	for i := range info.Nonce {
		info.Nonce[i] = byte(i)
	}
	for i := range info.MAC {
		info.MAC[i] = byte(0xff - i)
	}
	return info
}

func TestPayload_RoundTrip(t *testing.T) {
	for _, n := range []int{34, 66, 65538} {
		info := sampleInfo(n)
		got, err := nip44.DecodePayload(nip44.EncodePayload(info))
		if err != nil {
			t.Fatalf("DecodePayload(%d): %v", n, err)
		}
		if got.Nonce != info.Nonce || got.MAC != info.MAC || !bytes.Equal(got.Ciphertext, info.Ciphertext) {
			t.Fatalf("round trip mismatch for %d byte ciphertext", n)
		}
	}
}

func TestPayload_Layout(t *testing.T) {
	raw, err := base64.StdEncoding.DecodeString(nip44.EncodePayload(sampleInfo(34)))
	if err != nil {
		t.Fatalf("base64: %v", err)
	}
	if raw[0] != nip44.Version || len(raw) != 1+32+34+32 {
		t.Fatalf("unexpected layout: version %d, len %d", raw[0], len(raw))
	}
}

func TestDecodePayload_Malformed(t *testing.T) {
	valid := nip44.EncodePayload(sampleInfo(34))

	raw, _ := base64.StdEncoding.DecodeString(valid)
	raw[0] = 1
	badVersion := base64.StdEncoding.EncodeToString(raw)

	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", nip44.ErrPayloadLength},
		{"short", valid[:131], nip44.ErrPayloadLength},
		{"huge", strings.Repeat("A", 87473), nip44.ErrPayloadLength},
		{"hash prefix", "#" + valid[1:], nip44.ErrUnsupportedEncoding},
		{"bad alphabet", "!" + valid[1:], nip44.ErrInvalidBase64},
		{"bad version", badVersion, nip44.ErrUnknownVersion},
		{"decoded too short", base64.StdEncoding.EncodeToString(make([]byte, 96)) + "\r\n\r\n", nip44.ErrPayloadLength},
	}
	for _, c := range cases {
		_, err := nip44.DecodePayload(c.in)
		if !errors.Is(err, c.want) {
			t.Fatalf("%s: got %v, want %v", c.name, err, c.want)
		}
		if !errors.Is(err, nip44.ErrMalformedPayload) {
			t.Fatalf("%s: %v does not wrap ErrMalformedPayload", c.name, err)
		}
	}
}
