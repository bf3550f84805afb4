package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	st, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSQLiteRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if _, err := st.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing: %v, want ErrNotFound", err)
	}

	if err := st.Put(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := st.Get(ctx, "k")
	if err != nil || string(got) != "v1" {
		t.Fatalf("Get=%q err=%v, want v1", got, err)
	}

	// Put overwrites: last writer wins.
	if err := st.Put(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	got, err = st.Get(ctx, "k")
	if err != nil || string(got) != "v2" {
		t.Fatalf("Get after overwrite=%q err=%v, want v2", got, err)
	}

	if err := st.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := st.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get deleted: %v, want ErrNotFound", err)
	}

	// Deleting a missing key is not an error.
	if err := st.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
}

func TestSQLitePersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	st, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Put(ctx, GamificationKeyFor("alice"), []byte(`{"xp":10}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	st2, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer st2.Close()
	got, err := st2.Get(ctx, GamificationKeyFor("alice"))
	if err != nil || string(got) != `{"xp":10}` {
		t.Fatalf("Get after reopen=%q err=%v", got, err)
	}
}

func TestKeyNaming(t *testing.T) {
	if got := GamificationKeyFor(""); got != GamificationKey {
		t.Fatalf("unscoped key=%q, want %q", got, GamificationKey)
	}
	if got := GamificationKeyFor("a@b.c"); got != "nextstep-gamification-a@b.c" {
		t.Fatalf("scoped key=%q", got)
	}
	if got := ResumeKeyFor("a@b.c"); got != "nextstep-resume-a@b.c" {
		t.Fatalf("resume key=%q", got)
	}
}
