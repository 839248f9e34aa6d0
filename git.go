package main

import (
	"os/exec"
	"path/filepath"
)

// checkGitDirty runs `git status --porcelain` for a single file and returns
// true when it has uncommitted changes. Returns false on any error (git not
// on PATH, not a repo, etc.); callers treat unknown as clean.
func checkGitDirty(path string) bool {
	if path == "" {
		return false
	}
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	out, err := exec.Command("git", "-C", dir, "status", "--porcelain", "--", file).Output()
	if err != nil {
		return false
	}
	return len(out) > 0
}
