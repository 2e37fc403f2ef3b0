package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nip44/internal/crypto"
	"nip44/internal/domain"
	"nip44/internal/store"
)

// fastScrypt keeps key derivation cheap in tests.
var fastScrypt = store.ScryptParams{N: 1 << 10, R: 8, P: 1}

func testIdentity(t *testing.T) domain.Identity {
	t.Helper()
	priv, pub, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	return domain.Identity{Private: priv, Public: pub, CreatedUTC: 1700000000}
}

func TestIdentity_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	var ids domain.IdentityStore = store.NewIdentityFileStore(home, fastScrypt)

	id := testIdentity(t)
	if err := ids.SaveIdentity("pass", id); err != nil {
		t.Fatalf("save identity: %v", err)
	}
	got, err := ids.LoadIdentity("pass")
	if err != nil {
		t.Fatalf("load identity: %v", err)
	}
	if got != id {
		t.Fatalf("mismatch after load")
	}

	info, err := os.Stat(filepath.Join(home, "identity.json.enc"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("identity file mode %v", info.Mode().Perm())
	}
}

func TestIdentity_NotPlaintextOnDisk(t *testing.T) {
	home := t.TempDir()
	ids := store.NewIdentityFileStore(home, fastScrypt)
	id := testIdentity(t)
	if err := ids.SaveIdentity("pass", id); err != nil {
		t.Fatalf("save identity: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(home, "identity.json.enc"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(b), id.Public.String()) {
		t.Fatal("public key stored in the clear")
	}
}

func TestIdentity_WrongPassphrase_Fails(t *testing.T) {
	home := t.TempDir()
	ids := store.NewIdentityFileStore(home, fastScrypt)

	if err := ids.SaveIdentity("correct", testIdentity(t)); err != nil {
		t.Fatalf("save identity: %v", err)
	}
	if _, err := ids.LoadIdentity("wrong"); !errors.Is(err, store.ErrWrongPassphrase) {
		t.Fatalf("expected ErrWrongPassphrase, got %v", err)
	}
}

func TestIdentity_TamperedHeader_Fails(t *testing.T) {
	home := t.TempDir()
	ids := store.NewIdentityFileStore(home, fastScrypt)
	if err := ids.SaveIdentity("pass", testIdentity(t)); err != nil {
		t.Fatalf("save identity: %v", err)
	}

	path := filepath.Join(home, "identity.json.enc")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	b = []byte(strings.Replace(string(b), `"scrypt_p":1`, `"scrypt_p":2`, 1))
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ids.LoadIdentity("pass"); !errors.Is(err, store.ErrWrongPassphrase) {
		t.Fatalf("expected ErrWrongPassphrase, got %v", err)
	}
}

func TestIdentity_Missing(t *testing.T) {
	ids := store.NewIdentityFileStore(t.TempDir(), fastScrypt)
	if _, err := ids.LoadIdentity("pass"); !errors.Is(err, store.ErrNoIdentity) {
		t.Fatalf("expected ErrNoIdentity, got %v", err)
	}
}

func TestContacts_SaveLoadListDelete(t *testing.T) {
	home := t.TempDir()
	var cs domain.ContactStore = store.NewContactFileStore(home)

	if got, err := cs.ListContacts(); err != nil || len(got) != 0 {
		t.Fatalf("empty book: got %v, %v", got, err)
	}

	bob := domain.Contact{Alias: "bob", Public: testIdentity(t).Public, AddedUTC: 1}
	alice := domain.Contact{Alias: "alice", Public: testIdentity(t).Public, AddedUTC: 2}
	for _, c := range []domain.Contact{bob, alice} {
		if err := cs.SaveContact(c); err != nil {
			t.Fatalf("save %s: %v", c.Alias, err)
		}
	}

	got, ok, err := cs.LoadContact("bob")
	if err != nil || !ok || got != bob {
		t.Fatalf("load bob: %v %v %v", got, ok, err)
	}
	if _, ok, err := cs.LoadContact("carol"); err != nil || ok {
		t.Fatalf("load carol: %v %v", ok, err)
	}

	list, err := cs.ListContacts()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Alias != "alice" || list[1].Alias != "bob" {
		t.Fatalf("list order: %v", list)
	}

	raw, err := os.ReadFile(filepath.Join(home, "contacts.json"))
	if err != nil {
		t.Fatalf("read contacts: %v", err)
	}
	if !strings.Contains(string(raw), bob.Public.String()) {
		t.Fatalf("contacts file does not hold hex keys: %s", raw)
	}

	removed, err := cs.DeleteContact("bob")
	if err != nil || !removed {
		t.Fatalf("delete bob: %v %v", removed, err)
	}
	removed, err = cs.DeleteContact("bob")
	if err != nil || removed {
		t.Fatalf("delete bob twice: %v %v", removed, err)
	}
}
