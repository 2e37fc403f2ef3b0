package interfaces

import domaintypes "nip44/internal/domain/types"

// IdentityService creates, retrieves, and inspects your identity keys.
type IdentityService interface {
	GenerateIdentity(passphrase string) (
		domaintypes.Identity,
		domaintypes.Fingerprint,
		error,
	)
	ImportIdentity(passphrase string, priv domaintypes.PrivateKey) (
		domaintypes.Identity,
		domaintypes.Fingerprint,
		error,
	)
	LoadIdentity(passphrase string) (domaintypes.Identity, error)
	FingerprintIdentity(passphrase string) (domaintypes.Fingerprint, error)
}

// MessageService seals and opens direct messages for a peer. A peer is
// either a contact alias or a hex public key.
type MessageService interface {
	Seal(passphrase, peer, plaintext string) (string, error)
	Open(passphrase, peer, payload string) (string, error)
	ConversationKey(passphrase, peer string) ([32]byte, error)
	ResolvePeer(peer string) (domaintypes.PublicKey, error)
	Forget()
}

// ContactService manages the local contact book.
type ContactService interface {
	AddContact(alias, publicKeyHex string) (domaintypes.Contact, error)
	ListContacts() ([]domaintypes.Contact, error)
	RemoveContact(alias string) error
}
