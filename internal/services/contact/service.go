package contact

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"nip44/internal/crypto"
	"nip44/internal/domain"
)

var (
	ErrInvalidAlias   = errors.New("contact: alias must be 1-64 characters without whitespace")
	ErrUnknownContact = errors.New("contact: no such alias")
)

// Service validates and stores contacts.
type Service struct {
	store domain.ContactStore
	now   func() time.Time
}

// New returns a contact service backed by the given store.
func New(s domain.ContactStore) *Service { return &Service{store: s, now: time.Now} }

// AddContact validates publicKeyHex and stores it under alias, replacing any
// previous entry.
func (s *Service) AddContact(alias, publicKeyHex string) (domain.Contact, error) {
	if !validAlias(alias) {
		return domain.Contact{}, ErrInvalidAlias
	}
	pub, err := crypto.ParsePublicKey(publicKeyHex)
	if err != nil {
		return domain.Contact{}, err
	}
	c := domain.Contact{
		Alias:    domain.Alias(alias),
		Public:   pub,
		AddedUTC: s.now().UTC().Unix(),
	}
	if err := s.store.SaveContact(c); err != nil {
		return domain.Contact{}, fmt.Errorf("save contact: %w", err)
	}
	return c, nil
}

// ListContacts returns every contact sorted by alias.
func (s *Service) ListContacts() ([]domain.Contact, error) {
	return s.store.ListContacts()
}

// RemoveContact deletes alias.
func (s *Service) RemoveContact(alias string) error {
	ok, err := s.store.DeleteContact(domain.Alias(alias))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownContact, alias)
	}
	return nil
}

func validAlias(a string) bool {
	return len(a) > 0 && len(a) <= 64 && !strings.ContainsFunc(a, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// Compile-time assertion that Service implements domain.ContactService.
var _ domain.ContactService = (*Service)(nil)
