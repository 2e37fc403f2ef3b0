package interfaces

import domaintypes "nip44/internal/domain/types"

// IdentityStore persists your long-term identity keys.
type IdentityStore interface {
	SaveIdentity(passphrase string, id domaintypes.Identity) error
	LoadIdentity(passphrase string) (domaintypes.Identity, error)
}

// ContactStore keeps the alias to public key book.
type ContactStore interface {
	SaveContact(contact domaintypes.Contact) error
	LoadContact(alias domaintypes.Alias) (domaintypes.Contact, bool, error)
	ListContacts() ([]domaintypes.Contact, error)
	DeleteContact(alias domaintypes.Alias) (bool, error)
}
