package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStorageSaveAndReadBack(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("unexpected error creating storage: %v", err)
	}
	if store.LocalBaseDir() != dir {
		t.Fatalf("expected base dir %q, got %q", dir, store.LocalBaseDir())
	}

	payload := []byte("fake image bytes")
	relPath, err := store.Save(context.Background(), payload, SaveOptions{
		Category:  "blog",
		Extension: "png",
		BaseName:  "cover",
	})
	if err != nil {
		t.Fatalf("unexpected error saving: %v", err)
	}

	absPath := filepath.Join(dir, filepath.FromSlash(relPath))
	data, err := os.ReadFile(absPath)
	if err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}
	if string(data) != string(payload) {
		t.Fatal("file content does not match payload")
	}
}

func TestLocalStorageSaveRejectsEmptyPayload(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error creating storage: %v", err)
	}
	if _, err := store.Save(context.Background(), nil, SaveOptions{Category: "blog"}); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestLocalStorageSaveHonoursCancelledContext(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error creating storage: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.Save(ctx, []byte("data"), SaveOptions{Category: "blog"}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
