package kv

import (
	"context"
	"path/filepath"
	"testing"
)

// backends returns every Store implementation under a fresh state.
func backends(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := sqlite.Close(); closeErr != nil {
			t.Errorf("close sqlite: %v", closeErr)
		}
	})

	return map[string]Store{
		"sqlite": sqlite,
		"memory": NewMemory(),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
				t.Fatalf("Get(missing) = ok=%v err=%v, want absent", ok, err)
			}

			if err := s.Set(ctx, "k", "v1"); err != nil {
				t.Fatalf("Set: %v", err)
			}
			value, ok, err := s.Get(ctx, "k")
			if err != nil || !ok || value != "v1" {
				t.Fatalf("Get(k) = %q ok=%v err=%v, want v1", value, ok, err)
			}

			// Set replaces.
			if err := s.Set(ctx, "k", "v2"); err != nil {
				t.Fatalf("Set replace: %v", err)
			}
			value, _, _ = s.Get(ctx, "k")
			if value != "v2" {
				t.Fatalf("Get after replace = %q, want v2", value)
			}

			if err := s.Delete(ctx, "k"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, ok, _ := s.Get(ctx, "k"); ok {
				t.Fatal("key still present after Delete")
			}

			// Deleting an absent key is a no-op.
			if err := s.Delete(ctx, "k"); err != nil {
				t.Fatalf("Delete absent key: %v", err)
			}

			if err := s.Ping(ctx); err != nil {
				t.Fatalf("Ping: %v", err)
			}
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reopen.db")

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	if err := s.Set(ctx, "k", "persisted"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() {
		if closeErr := reopened.Close(); closeErr != nil {
			t.Errorf("close reopened: %v", closeErr)
		}
	}()

	value, ok, err := reopened.Get(ctx, "k")
	if err != nil || !ok || value != "persisted" {
		t.Fatalf("Get after reopen = %q ok=%v err=%v, want persisted", value, ok, err)
	}
}
