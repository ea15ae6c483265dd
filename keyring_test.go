package bookmarks

import (
	"errors"
	"reflect"
	"testing"

	"github.com/zalando/go-keyring"
)

func newMockKeyring(t *testing.T) *KeyringStore {
	t.Helper()
	keyring.MockInit()
	ks, err := NewKeyringStore("bookmarks-test")
	if err != nil {
		t.Fatal(err)
	}
	return ks
}

func TestKeyringStoreRoundTrip(t *testing.T) {
	ks := newMockKeyring(t)

	token := []byte{0x00, 0x01, 0xfe, 0xff}
	if err := ks.Save("project", token); err != nil {
		t.Fatal(err)
	}
	got, err := ks.Load("project")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, token) {
		t.Errorf("token mangled in round trip: %v", got)
	}
}

func TestKeyringStoreMissingKey(t *testing.T) {
	ks := newMockKeyring(t)

	if _, err := ks.Load("absent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestKeyringStoreDelete(t *testing.T) {
	ks := newMockKeyring(t)

	if err := ks.Save("k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	if err := ks.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, err := ks.Load("k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := ks.Delete("absent"); err != nil {
		t.Errorf("delete of missing key should succeed, got %v", err)
	}
}

func TestKeyringStoreKeysUnsupported(t *testing.T) {
	ks := newMockKeyring(t)

	if _, err := ks.Keys(); !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("expected errors.ErrUnsupported, got %v", err)
	}
}

func TestNewKeyringStoreEmptyService(t *testing.T) {
	if _, err := NewKeyringStore(""); err == nil {
		t.Error("expected error for empty service name")
	}
}
