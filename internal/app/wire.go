package app

import (
	"os"

	"github.com/rs/zerolog"

	"nip44/internal/domain"
	"nip44/internal/protocol/nip44"
	contactsvc "nip44/internal/services/contact"
	identitysvc "nip44/internal/services/identity"
	messagesvc "nip44/internal/services/message"
	"nip44/internal/store"
)

// Wire bundles all stores and services for the CLI.
type Wire struct {
	Identity domain.IdentityService
	Contacts domain.ContactService
	Messages domain.MessageService
	Codec    *nip44.Codec
	Log      zerolog.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// File-based stores
	identityStore := store.NewIdentityFileStore(cfg.Home, cfg.Scrypt)
	contactStore := store.NewContactFileStore(cfg.Home)

	codec, err := nip44.New(
		nip44.WithCacheSize(cfg.CacheSize),
		nip44.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	return &Wire{
		Identity: identitysvc.New(identityStore),
		Contacts: contactsvc.New(contactStore),
		Messages: messagesvc.New(identityStore, contactStore, codec),
		Codec:    codec,
		Log:      log,
	}, nil
}
