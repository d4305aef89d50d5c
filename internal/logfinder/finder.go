// Package logfinder locates saved guild activity log exports on disk.
package logfinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// EnvLogDir is the environment variable naming the directory guild log
// exports are saved to.
const EnvLogDir = "GUILDLOG_DIR"

// logGlob matches saved guild log exports.
const logGlob = "*.txt"

// Sentinel errors.
var (
	ErrLogDirNotFound = errors.New("log directory not found")
	ErrNoLogFiles     = errors.New("no log files found")
)

// FindLogDir returns the directory to read guild log exports from.
//
// Priority:
//  1. explicit (if non-empty)
//  2. GUILDLOG_DIR environment variable
//
// The returned path has symlinks resolved and is known to contain at least
// one log file. There is no auto-detected default: exports land wherever the
// guild site download put them.
func FindLogDir(explicit string) (string, error) {
	if explicit != "" {
		if resolved := validateLogDir(explicit); resolved != "" {
			return resolved, nil
		}
		return "", fmt.Errorf("%w: %s is invalid or has no log files", ErrLogDirNotFound, explicit)
	}

	if envDir := os.Getenv(EnvLogDir); envDir != "" {
		if resolved := validateLogDir(envDir); resolved != "" {
			return resolved, nil
		}
		return "", fmt.Errorf("%w: %s points to a directory without log files", ErrLogDirNotFound, EnvLogDir)
	}

	return "", ErrLogDirNotFound
}

// candidate caches the stat result so a file deleted mid-scan cannot skew
// the sort.
type candidate struct {
	path    string
	modTime int64
}

// FindLatestLog returns the most recently modified log export in dir.
// Returns ErrNoLogFiles when the directory has none.
func FindLatestLog(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, logGlob))
	if err != nil {
		return "", fmt.Errorf("globbing log files: %w", err)
	}

	candidates := make([]candidate, 0, len(matches))
	for _, m := range matches {
		info, err := os.Lstat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		candidates = append(candidates, candidate{path: m, modTime: info.ModTime().UnixNano()})
	}
	if len(candidates) == 0 {
		return "", ErrNoLogFiles
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].modTime > candidates[j].modTime
	})
	return candidates[0].path, nil
}

// validateLogDir resolves symlinks and confirms the directory holds at least
// one log export. Returns "" when it does not qualify.
func validateLogDir(dir string) string {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return ""
	}

	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return ""
	}

	matches, err := filepath.Glob(filepath.Join(resolved, logGlob))
	if err != nil || len(matches) == 0 {
		return ""
	}
	return resolved
}
