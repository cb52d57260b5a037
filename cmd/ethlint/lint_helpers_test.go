package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCollectTargetsMixesFilesAndDirs(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "contracts")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"contracts/a.sol", "contracts/b.sol", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("uint x;"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	loose := filepath.Join(dir, "loose.sol")
	if err := os.WriteFile(loose, []byte("uint y;"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := collectTargets([]string{loose, sub})
	if err != nil {
		t.Fatalf("collectTargets: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3: %v", len(files), files)
	}
	if files[0] != loose {
		t.Errorf("explicit file should come first, got %v", files)
	}
}

func TestCollectTargetsMissingPath(t *testing.T) {
	if _, err := collectTargets([]string{filepath.Join(t.TempDir(), "nope.sol")}); err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		in      string
		want    uiMode
		wantErr bool
	}{
		{"", uiModeAuto, false},
		{"auto", uiModeAuto, false},
		{"ON", uiModeOn, false},
		{" off ", uiModeOff, false},
		{"sometimes", "", true},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("readUIMode(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("readUIMode(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("readUIMode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
