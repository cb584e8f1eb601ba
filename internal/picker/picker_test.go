package picker

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"song.MP3", true},
		{"song.wav", true},
		{"song.ogg", true},
		{"song.flac", false},
		{"song.txt", false},
		{"song", false},
		{"dir/song.Ogg", true},
	}
	for _, tt := range tests {
		if got := IsAudioFile(tt.path); got != tt.want {
			t.Errorf("IsAudioFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestRandomSiblingExcludesCurrent(t *testing.T) {
	dir := t.TempDir()
	current := touch(t, dir, "a.mp3")
	touch(t, dir, "b.mp3")
	touch(t, dir, "c.ogg")
	touch(t, dir, "notes.txt")
	if err := os.Mkdir(filepath.Join(dir, "sub.mp3"), 0o755); err != nil {
		t.Fatal(err)
	}

	rng := testRNG()
	for range 50 {
		got, err := RandomSibling(rng, current)
		if err != nil {
			t.Fatal(err)
		}
		if got == current {
			t.Fatal("returned the current track")
		}
		if !IsAudioFile(got) {
			t.Fatalf("returned non-audio file %q", got)
		}
		if filepath.Dir(got) != dir {
			t.Fatalf("returned file outside the directory: %q", got)
		}
	}
}

func TestRandomSiblingNoCandidates(t *testing.T) {
	dir := t.TempDir()
	current := touch(t, dir, "only.mp3")
	touch(t, dir, "readme.txt")

	_, err := RandomSibling(testRNG(), current)
	if !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("err = %v, want ErrNoCandidates", err)
	}
}

func TestRandomSiblingMissingDir(t *testing.T) {
	_, err := RandomSibling(testRNG(), filepath.Join(t.TempDir(), "gone", "x.mp3"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestRandomTrack(t *testing.T) {
	dir := t.TempDir()
	want := touch(t, dir, "a.wav")
	touch(t, dir, "skip.pdf")

	got, err := RandomTrack(testRNG(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRandomTrackEmptyDir(t *testing.T) {
	_, err := RandomTrack(testRNG(), t.TempDir())
	if !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("err = %v, want ErrNoCandidates", err)
	}
}

func TestRandomTrackEventuallyPicksAll(t *testing.T) {
	dir := t.TempDir()
	names := []string{"a.mp3", "b.wav", "c.ogg"}
	for _, n := range names {
		touch(t, dir, n)
	}

	rng := testRNG()
	seen := make(map[string]bool)
	for range 200 {
		got, err := RandomTrack(rng, dir)
		if err != nil {
			t.Fatal(err)
		}
		seen[filepath.Base(got)] = true
	}
	for _, n := range names {
		if !seen[n] {
			t.Errorf("never picked %q", n)
		}
	}
}
