package message

import (
	"errors"
	"fmt"

	"nip44/internal/crypto"
	"nip44/internal/domain"
	"nip44/internal/protocol/nip44"
)

// ErrUnknownPeer indicates the peer is neither a contact alias nor a valid
// hex public key.
var ErrUnknownPeer = errors.New("unknown peer: not a contact alias or hex public key")

// Service seals and opens direct messages with the local identity.
//
// High-level flow:
//   - Seal: unseal the identity, resolve the peer, encrypt through the codec.
//   - Open: same resolution, then authenticate and decrypt the payload.
//
// Conversation keys are cached by the codec for the lifetime of the Service.
// Call Forget after the identity changes.
type Service struct {
	idStore      domain.IdentityStore
	contactStore domain.ContactStore
	codec        *nip44.Codec
}

// New constructs a message service over the given stores and codec.
func New(
	idStore domain.IdentityStore,
	contactStore domain.ContactStore,
	codec *nip44.Codec,
) *Service {
	return &Service{
		idStore:      idStore,
		contactStore: contactStore,
		codec:        codec,
	}
}

// Seal encrypts plaintext for peer and returns the base64 payload.
func (s *Service) Seal(passphrase, peer, plaintext string) (string, error) {
	id, pub, err := s.load(passphrase, peer)
	if err != nil {
		return "", err
	}
	defer crypto.Wipe(id.Private[:])
	return s.codec.Encrypt(plaintext, id.Private, pub)
}

// Open authenticates and decrypts a payload received from peer.
func (s *Service) Open(passphrase, peer, payload string) (string, error) {
	id, pub, err := s.load(passphrase, peer)
	if err != nil {
		return "", err
	}
	defer crypto.Wipe(id.Private[:])
	return s.codec.Decrypt(payload, id.Private, pub)
}

// ConversationKey returns the conversation key shared with peer.
func (s *Service) ConversationKey(passphrase, peer string) ([32]byte, error) {
	id, pub, err := s.load(passphrase, peer)
	if err != nil {
		return [32]byte{}, err
	}
	defer crypto.Wipe(id.Private[:])
	ck, err := s.codec.ConversationKey(id.Private, pub)
	return [32]byte(ck), err
}

// ResolvePeer maps a contact alias or a hex public key to a public key.
// Aliases take precedence.
func (s *Service) ResolvePeer(peer string) (domain.PublicKey, error) {
	c, ok, err := s.contactStore.LoadContact(domain.Alias(peer))
	if err != nil {
		return domain.PublicKey{}, err
	}
	if ok {
		return c.Public, nil
	}
	pub, err := crypto.ParsePublicKey(peer)
	if err != nil {
		return domain.PublicKey{}, fmt.Errorf("%w: %q", ErrUnknownPeer, peer)
	}
	return pub, nil
}

// Forget drops every cached conversation key.
func (s *Service) Forget() { s.codec.ClearConversationKeyCache() }

func (s *Service) load(passphrase, peer string) (domain.Identity, domain.PublicKey, error) {
	pub, err := s.ResolvePeer(peer)
	if err != nil {
		return domain.Identity{}, domain.PublicKey{}, err
	}
	id, err := s.idStore.LoadIdentity(passphrase)
	if err != nil {
		return domain.Identity{}, domain.PublicKey{}, err
	}
	return id, pub, nil
}

// Compile-time assertion that Service implements domain.MessageService.
var _ domain.MessageService = (*Service)(nil)
