// Package util provides shared utility functions for the CLI.
package util

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

var (
	// disallowedChars matches anything not in [a-z0-9-_.].
	disallowedChars = regexp.MustCompile(`[^a-z0-9\-_.]`)
	// multiHyphen collapses consecutive hyphens.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// Slug converts an add-on or skill name into a directory-safe name.
//   - Lowercases
//   - Replaces spaces and slashes with hyphens
//   - Strips all characters not in [a-z0-9-_.]
//   - Collapses consecutive hyphens
//   - Trims leading/trailing hyphens and dots
//
// Example: "Frontend Design (v2)" → "frontend-design-v2"
func Slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.NewReplacer(" ", "-", "/", "-", "\\", "-").Replace(s)
	s = disallowedChars.ReplaceAllString(s, "")
	s = multiHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-.")
	return s
}

// ExpandHome replaces a leading ~ with the user's home directory.
//
// Parameters:
//   - path: File path that may start with ~
//
// Returns:
//   - string: Path with ~ expanded to the actual home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback for edge cases
		if runtime.GOOS == "windows" {
			home = os.Getenv("USERPROFILE")
		} else {
			home = os.Getenv("HOME")
		}
	}

	return filepath.Join(home, path[1:])
}
