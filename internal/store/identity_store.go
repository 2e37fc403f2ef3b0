package store

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"nip44/internal/crypto"
	"nip44/internal/domain"
)

const identityFile = "identity.json.enc"

// ErrNoIdentity is returned by LoadIdentity before an identity has been saved.
var ErrNoIdentity = errors.New("store: no identity, run init first")

// identityRecord is the plaintext sealed inside the keystore.
type identityRecord struct {
	Private    string           `json:"private"`
	Public     domain.PublicKey `json:"public"`
	CreatedUTC int64            `json:"created_utc"`
}

// IdentityFileStore persists the local identity to disk, sealed with a passphrase.
type IdentityFileStore struct {
	dir    string
	params ScryptParams
	mu     sync.Mutex
}

// NewIdentityFileStore returns an IdentityFileStore rooted at dir.
func NewIdentityFileStore(dir string, params ScryptParams) *IdentityFileStore {
	return &IdentityFileStore{dir: dir, params: params}
}

// SaveIdentity seals id with passphrase and replaces any existing identity.
func (s *IdentityFileStore) SaveIdentity(passphrase string, id domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := identityRecord{
		Private:    hex.EncodeToString(id.Private[:]),
		Public:     id.Public,
		CreatedUTC: id.CreatedUTC,
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	defer crypto.Wipe(raw)

	blob, err := seal(passphrase, raw, s.params)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, identityFile), blob, 0o600)
}

// LoadIdentity reads and unseals the identity.
func (s *IdentityFileStore) LoadIdentity(passphrase string) (domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, identityFile))
	if errors.Is(err, os.ErrNotExist) {
		return domain.Identity{}, ErrNoIdentity
	}
	if err != nil {
		return domain.Identity{}, err
	}
	raw, err := open(passphrase, b)
	if err != nil {
		return domain.Identity{}, err
	}
	defer crypto.Wipe(raw)

	var rec identityRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.Identity{}, fmt.Errorf("store: parse identity: %w", err)
	}
	priv, err := crypto.ParsePrivateKey(rec.Private)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("store: parse identity: %w", err)
	}
	return domain.Identity{Private: priv, Public: rec.Public, CreatedUTC: rec.CreatedUTC}, nil
}

// Compile-time assertion that IdentityFileStore implements domain.IdentityStore.
var _ domain.IdentityStore = (*IdentityFileStore)(nil)
