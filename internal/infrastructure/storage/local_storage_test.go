package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStorage(t *testing.T, grace time.Duration) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(t.TempDir(), grace)
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	return s
}

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestNewFileID(t *testing.T) {
	s := newTestStorage(t, 0)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := s.NewFileID()
		if len(id) != 8 {
			t.Fatalf("NewFileID() = %q, want 8 chars", id)
		}
		for _, r := range id {
			if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
				t.Fatalf("NewFileID() = %q, want hex", id)
			}
		}
		seen[id] = true
	}
	if len(seen) < 45 {
		t.Fatalf("too many collisions: %d unique ids", len(seen))
	}
}

func TestOutputTemplate(t *testing.T) {
	s := newTestStorage(t, 0)
	want := filepath.Join(s.Dir(), "abc12345.%(ext)s")
	if got := s.OutputTemplate("abc12345"); got != want {
		t.Fatalf("OutputTemplate = %q, want %q", got, want)
	}
}

func TestFindByID(t *testing.T) {
	s := newTestStorage(t, 0)
	writeFile(t, s.Dir(), "abc12345.webm", "x")
	writeFile(t, s.Dir(), "ffff0000.mp4", "y")
	if err := os.Mkdir(filepath.Join(s.Dir(), "abc12345.dir"), 0o755); err != nil {
		t.Fatal(err)
	}

	name, ok := s.FindByID("abc12345")
	if !ok || name != "abc12345.webm" {
		t.Fatalf("FindByID = %q, %v", name, ok)
	}
	if _, ok := s.FindByID("deadbeef"); ok {
		t.Fatalf("FindByID found a file that does not exist")
	}
	if _, ok := s.FindByID("../x"); ok {
		t.Fatalf("FindByID accepted a traversal id")
	}
}

func TestExistsRejectsTraversal(t *testing.T) {
	s := newTestStorage(t, 0)
	writeFile(t, s.Dir(), "abc12345.mp3", "x")
	writeFile(t, filepath.Dir(s.Dir()), "secret.txt", "x")

	if !s.Exists("abc12345.mp3") {
		t.Fatalf("Exists(abc12345.mp3) = false")
	}
	for _, name := range []string{"", ".", "..", "../secret.txt", "a/b.mp3", `a\b.mp3`, "missing.mp4"} {
		if s.Exists(name) {
			t.Fatalf("Exists(%q) = true", name)
		}
		if _, _, err := s.Open(name); err == nil {
			t.Fatalf("Open(%q) succeeded", name)
		}
	}
}

func TestOpenTracksActiveServe(t *testing.T) {
	s := newTestStorage(t, 0)
	writeFile(t, s.Dir(), "abc12345.mp4", "video-bytes")

	rc, info, err := s.Open("abc12345.mp4")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if info.Size() != int64(len("video-bytes")) {
		t.Fatalf("size = %d", info.Size())
	}
	if !s.InUse("abc12345.mp4") {
		t.Fatalf("InUse = false while open")
	}
	body, _ := io.ReadAll(rc)
	if string(body) != "video-bytes" {
		t.Fatalf("body = %q", body)
	}
	rc.Close()
	rc.Close()
	if s.InUse("abc12345.mp4") {
		t.Fatalf("InUse = true after close with no grace")
	}
}

func TestInUseGraceWindow(t *testing.T) {
	s := newTestStorage(t, 30*time.Second)
	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }
	writeFile(t, s.Dir(), "abc12345.mp3", "x")

	if s.InUse("abc12345.mp3") {
		t.Fatalf("InUse = true before any serve")
	}
	rc, _, err := s.Open("abc12345.mp3")
	if err != nil {
		t.Fatal(err)
	}
	rc.Close()

	clock = clock.Add(10 * time.Second)
	if !s.InUse("abc12345.mp3") {
		t.Fatalf("InUse = false inside grace window")
	}
	clock = clock.Add(30 * time.Second)
	if s.InUse("abc12345.mp3") {
		t.Fatalf("InUse = true after grace window")
	}
}

func TestListAndDelete(t *testing.T) {
	s := newTestStorage(t, 0)
	writeFile(t, s.Dir(), "a.mp4", "1")
	writeFile(t, s.Dir(), "b.mp3", "2")
	if err := os.Mkdir(filepath.Join(s.Dir(), "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	infos, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 2 {
		t.Fatalf("List() returned %d files, want 2", len(infos))
	}
	if err := s.Delete("a.mp4"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if s.Exists("a.mp4") {
		t.Fatalf("file still exists after Delete")
	}
	if err := s.Delete("../b.mp3"); err == nil {
		t.Fatalf("Delete accepted a traversal name")
	}
}
