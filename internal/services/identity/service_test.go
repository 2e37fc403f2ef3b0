package identity_test

import (
	"errors"
	"testing"

	"nip44/internal/crypto"
	"nip44/internal/services/identity"
	"nip44/internal/store"
)

const strongPass = "Correct-Horse-9"

func newService(t *testing.T) *identity.Service {
	t.Helper()
	return identity.New(store.NewIdentityFileStore(t.TempDir(), store.ScryptParams{N: 1 << 10, R: 8, P: 1}))
}

func TestGenerateIdentity_SavesAndLoads(t *testing.T) {
	svc := newService(t)

	id, fp, err := svc.GenerateIdentity(strongPass)
	if err != nil {
		t.Fatalf("GenerateIdentity: %v", err)
	}
	pub, err := crypto.PublicKeyOf(id.Private)
	if err != nil || pub != id.Public {
		t.Fatalf("public key does not match private key")
	}
	if id.CreatedUTC == 0 {
		t.Fatal("creation time not set")
	}

	got, err := svc.LoadIdentity(strongPass)
	if err != nil {
		t.Fatalf("LoadIdentity: %v", err)
	}
	if got != id {
		t.Fatal("loaded identity differs")
	}

	fp2, err := svc.FingerprintIdentity(strongPass)
	if err != nil {
		t.Fatalf("FingerprintIdentity: %v", err)
	}
	if fp != fp2 {
		t.Fatalf("fingerprint %s != %s", fp, fp2)
	}
}

func TestImportIdentity(t *testing.T) {
	svc := newService(t)
	priv, err := crypto.ParsePrivateKey("0000000000000000000000000000000000000000000000000000000000000001")
	if err != nil {
		t.Fatalf("ParsePrivateKey: %v", err)
	}
	id, _, err := svc.ImportIdentity(strongPass, priv)
	if err != nil {
		t.Fatalf("ImportIdentity: %v", err)
	}
	if id.Public.String() != "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" {
		t.Fatalf("unexpected public key %s", id.Public)
	}
}

func TestWeakPassphrase_Rejected(t *testing.T) {
	svc := newService(t)
	for _, p := range []string{"", "short-A1", "alllowercase-123", "ALLUPPER-1234", "NoDigitsHere!!", "NoSymbols12345"} {
		if _, _, err := svc.GenerateIdentity(p); !errors.Is(err, identity.ErrWeakPassphrase) {
			t.Fatalf("passphrase %q: got %v", p, err)
		}
	}
}

func TestLoadIdentity_Missing(t *testing.T) {
	svc := newService(t)
	if _, err := svc.LoadIdentity(strongPass); !errors.Is(err, store.ErrNoIdentity) {
		t.Fatalf("got %v", err)
	}
}
