package config

import (
	"os"
	"path/filepath"
)

// ResolveRuntimePath turns a configured directory into an absolute path.
// Relative paths are anchored at the executable's directory so the server
// behaves the same regardless of where it was started from. An empty
// value falls back to the given subdirectory.
func ResolveRuntimePath(raw, fallbackSubdir string) string {
	target := raw
	if target == "" {
		target = fallbackSubdir
	}
	if target == "" {
		return baseDir()
	}
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(baseDir(), target)
}

func baseDir() string {
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
