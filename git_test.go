package main

import (
	"path/filepath"
	"testing"
)

func TestCheckGitDirty_Empty(t *testing.T) {
	if checkGitDirty("") {
		t.Error("checkGitDirty(\"\") = true, want false")
	}
}

func TestCheckGitDirty_NotARepo(t *testing.T) {
	// Outside a repository git fails; unknown counts as clean.
	path := filepath.Join(t.TempDir(), "README.md")
	if checkGitDirty(path) {
		t.Errorf("checkGitDirty(%q) = true, want false", path)
	}
}
