package db

import (
	"errors"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_GetSet(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set("preferences", []byte(`{"minMatchScore":40}`)); err != nil {
		t.Fatalf("set value: %v", err)
	}

	got, err := store.Get("preferences")
	if err != nil {
		t.Fatalf("get value: %v", err)
	}
	if string(got) != `{"minMatchScore":40}` {
		t.Errorf("unexpected value: %s", got)
	}
}

func TestStore_GetNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get("nonexistent")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set("digest/2025-01-02", []byte(`{"items":[]}`)); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if err := store.Delete("digest/2025-01-02"); err != nil {
		t.Fatalf("delete value: %v", err)
	}

	_, err := store.Get("digest/2025-01-02")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
	}
}

func TestStore_List(t *testing.T) {
	store := openTestStore(t)

	store.Set("digest/2025-01-01", []byte("a"))
	store.Set("digest/2025-01-02", []byte("b"))
	store.Set("preferences", []byte("c"))

	keys, err := store.List("digest/")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(keys))
	}
	if keys[0] != "digest/2025-01-01" || keys[1] != "digest/2025-01-02" {
		t.Errorf("unexpected keys: %v", keys)
	}
}

func TestMemKV_Roundtrip(t *testing.T) {
	kv := NewMemKV()

	if err := kv.Set("saved", []byte("[1,2]")); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := kv.Get("saved")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "[1,2]" {
		t.Errorf("unexpected value: %s", got)
	}

	_, err = kv.Get("missing")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}
