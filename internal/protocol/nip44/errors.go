package nip44

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedPayload is wrapped by every error describing a payload that
	// cannot be parsed or unpadded.
	ErrMalformedPayload = errors.New("nip44: malformed payload")

	ErrPayloadLength       = fmt.Errorf("%w: invalid payload length", ErrMalformedPayload)
	ErrUnsupportedEncoding = fmt.Errorf("%w: unsupported encoding", ErrMalformedPayload)
	ErrInvalidBase64       = fmt.Errorf("%w: invalid base64", ErrMalformedPayload)
	ErrUnknownVersion      = fmt.Errorf("%w: unknown version", ErrMalformedPayload)
	ErrInvalidPadding      = fmt.Errorf("%w: invalid padding", ErrMalformedPayload)

	// ErrInvalidMAC means the payload was well formed but failed authentication.
	ErrInvalidMAC = errors.New("nip44: invalid MAC")

	ErrPlaintextLength = errors.New("nip44: invalid plaintext length")
	ErrConversationKey = errors.New("nip44: cannot derive conversation key")
)
