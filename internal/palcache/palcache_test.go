package palcache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/termtint/internal/colormath"
	"github.com/vovakirdan/termtint/internal/probe"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "palettes.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleSnapshot() *probe.Snapshot {
	ansi := make(map[int]colormath.RGB, 16)
	for i := 0; i < 16; i++ {
		ansi[i] = colormath.RGB{R: uint8(i * 16), G: uint8(i), B: 0x42}
	}
	fg := colormath.RGB{R: 0xee, G: 0xee, B: 0xee}
	bg := colormath.RGB{R: 0x1e, G: 0x1e, B: 0x1e}
	return &probe.Snapshot{ANSI: ansi, Foreground: &fg, Background: &bg}
}

func TestPutAndGetRoundTrip(t *testing.T) {
	store := openTestStore(t)
	want := sampleSnapshot()

	if err := store.Put("iTerm.app", want); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	got, capturedAt, err := store.Get("iTerm.app")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get() returned nil for a stored identity")
	}
	if len(got.ANSI) != 16 {
		t.Errorf("got %d colors, expected 16", len(got.ANSI))
	}
	for i := 0; i < 16; i++ {
		if got.ANSI[i] != want.ANSI[i] {
			t.Errorf("color %d = %v, expected %v", i, got.ANSI[i], want.ANSI[i])
		}
	}
	if got.Foreground == nil || *got.Foreground != *want.Foreground {
		t.Errorf("foreground = %v", got.Foreground)
	}
	if got.Background == nil || *got.Background != *want.Background {
		t.Errorf("background = %v", got.Background)
	}
	if time.Since(capturedAt) > time.Minute {
		t.Errorf("capture time %v is not recent", capturedAt)
	}
}

func TestGetMissingIdentity(t *testing.T) {
	store := openTestStore(t)
	snap, _, err := store.Get("unknown")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if snap != nil {
		t.Errorf("Get(missing) = %+v, expected nil", snap)
	}
}

func TestPutReplacesExisting(t *testing.T) {
	store := openTestStore(t)
	first := sampleSnapshot()
	if err := store.Put("term", first); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	second := sampleSnapshot()
	second.ANSI[0] = colormath.RGB{R: 0xff, G: 0xff, B: 0xff}
	second.Foreground = nil
	if err := store.Put("term", second); err != nil {
		t.Fatalf("second Put() failed: %v", err)
	}

	got, _, err := store.Get("term")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.ANSI[0] != (colormath.RGB{R: 0xff, G: 0xff, B: 0xff}) {
		t.Errorf("color 0 = %v after replace", got.ANSI[0])
	}
	if got.Foreground != nil {
		t.Errorf("foreground = %v, expected nil after replace", got.Foreground)
	}

	entries, err := store.Entries()
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d entries after replace, expected 1", len(entries))
	}
}

func TestFreshRespectsTTL(t *testing.T) {
	store := openTestStore(t)
	if err := store.Put("term", sampleSnapshot()); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	snap, err := store.Fresh("term", time.Hour)
	if err != nil || snap == nil {
		t.Fatalf("Fresh() with generous TTL = (%v, %v)", snap, err)
	}

	// Backdate the row past the TTL.
	if _, err := store.db.Exec(
		"UPDATE palettes SET captured_at = ? WHERE identity = ?",
		time.Now().Add(-48*time.Hour).Unix(), "term",
	); err != nil {
		t.Fatalf("backdating failed: %v", err)
	}

	snap, err = store.Fresh("term", time.Hour)
	if err != nil {
		t.Fatalf("Fresh() failed: %v", err)
	}
	if snap != nil {
		t.Error("stale entry returned as fresh")
	}
}

func TestClear(t *testing.T) {
	store := openTestStore(t)
	if err := store.Put("a", sampleSnapshot()); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := store.Put("b", sampleSnapshot()); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	entries, err := store.Entries()
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries after Clear", len(entries))
	}
}

func TestPutRejectsEmpty(t *testing.T) {
	store := openTestStore(t)
	if err := store.Put("", sampleSnapshot()); err == nil {
		t.Error("Put with empty identity succeeded")
	}
	if err := store.Put("term", nil); err == nil {
		t.Error("Put with nil snapshot succeeded")
	}
}
