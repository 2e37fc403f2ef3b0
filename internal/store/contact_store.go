package store

import (
	"path/filepath"
	"sort"
	"sync"

	"nip44/internal/domain"
)

const contactsFile = "contacts.json"

// ContactFileStore persists the contact book to disk as a JSON object keyed
// by alias.
type ContactFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewContactFileStore returns a ContactFileStore rooted at dir.
func NewContactFileStore(dir string) *ContactFileStore {
	return &ContactFileStore{dir: dir}
}

func (s *ContactFileStore) path() string { return filepath.Join(s.dir, contactsFile) }

func (s *ContactFileStore) load() (map[domain.Alias]domain.Contact, error) {
	contacts := make(map[domain.Alias]domain.Contact)
	if _, err := readJSON(s.path(), &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// SaveContact stores or replaces the contact under its alias.
func (s *ContactFileStore) SaveContact(contact domain.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, err := s.load()
	if err != nil {
		return err
	}
	contacts[contact.Alias] = contact
	return writeJSON(s.path(), contacts, 0o600)
}

// LoadContact returns the contact for alias, if present.
func (s *ContactFileStore) LoadContact(alias domain.Alias) (domain.Contact, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, err := s.load()
	if err != nil {
		return domain.Contact{}, false, err
	}
	c, ok := contacts[alias]
	return c, ok, nil
}

// ListContacts returns every contact sorted by alias.
func (s *ContactFileStore) ListContacts() ([]domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Contact, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Alias < out[j].Alias })
	return out, nil
}

// DeleteContact removes alias and reports whether it existed.
func (s *ContactFileStore) DeleteContact(alias domain.Alias) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, err := s.load()
	if err != nil {
		return false, err
	}
	if _, ok := contacts[alias]; !ok {
		return false, nil
	}
	delete(contacts, alias)
	return true, writeJSON(s.path(), contacts, 0o600)
}

// Compile-time assertion that ContactFileStore implements domain.ContactStore.
var _ domain.ContactStore = (*ContactFileStore)(nil)
