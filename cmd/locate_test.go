package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func makeBottle(t *testing.T, root, bottle string, withGame bool) {
	t.Helper()

	dir := filepath.Join(root, bottle)
	if withGame {
		dir = filepath.Join(dir, filepath.FromSlash(gameRelPath))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
}

func TestFindGamePath(t *testing.T) {
	root := t.TempDir()
	makeBottle(t, root, "Steam", true)

	want := filepath.Join(root, "Steam", filepath.FromSlash(gameRelPath))
	if got := findGamePath([]string{root}); got != want {
		t.Errorf("findGamePath() = %q, want %q", got, want)
	}
}

func TestFindGamePathSkipsBottlesWithoutTheGame(t *testing.T) {
	root := t.TempDir()
	makeBottle(t, root, "Empty-Bottle", false)
	makeBottle(t, root, "Steam", true)

	want := filepath.Join(root, "Steam", filepath.FromSlash(gameRelPath))
	if got := findGamePath([]string{root}); got != want {
		t.Errorf("findGamePath() = %q, want %q", got, want)
	}
}

func TestFindGamePathChecksRootsInOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	makeBottle(t, first, "Bottle-A", true)
	makeBottle(t, second, "Bottle-B", true)

	want := filepath.Join(first, "Bottle-A", filepath.FromSlash(gameRelPath))
	if got := findGamePath([]string{first, second}); got != want {
		t.Errorf("findGamePath() = %q, want %q", got, want)
	}
}

func TestFindGamePathNotFound(t *testing.T) {
	if got := findGamePath([]string{t.TempDir()}); got != "" {
		t.Errorf("findGamePath() on empty root = %q, want empty", got)
	}
	if got := findGamePath([]string{filepath.Join(t.TempDir(), "missing")}); got != "" {
		t.Errorf("findGamePath() on missing root = %q, want empty", got)
	}
	if got := findGamePath(nil); got != "" {
		t.Errorf("findGamePath(nil) = %q, want empty", got)
	}
}

func TestFindGamePathIgnoresPlainFiles(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "not-a-bottle"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if got := findGamePath([]string{root}); got != "" {
		t.Errorf("findGamePath() = %q, want empty", got)
	}
}
