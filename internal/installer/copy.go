package installer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tidwall/gjson"
)

// CopyTree copies the tree rooted at root in fsys into dest, creating
// directories as needed and overwriting existing files.
//
// Existing .json files are merged with MergeJSON instead of overwritten.
// An existing .json file that does not parse is left untouched and skipped.
//
// Parameters:
//   - fsys: Source filesystem
//   - root: Directory inside fsys to copy
//   - dest: Destination directory on disk
//   - onFile: Called with each written path, relative to dest (may be nil)
//
// Returns:
//   - []string: Written file paths relative to dest, slash separated, in walk order
//   - error: The first read or write failure
func CopyTree(fsys fs.FS, root, dest string, onFile func(rel string)) ([]string, error) {
	var written []string

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
		target := filepath.Join(dest, filepath.FromSlash(rel))

		if d.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}

		if path.Ext(p) == ".json" {
			merged, skip, err := mergeExisting(target, data)
			if err != nil {
				return err
			}
			if skip {
				log.Warn("Existing file is not valid JSON, leaving it unchanged", "path", target)
				return nil
			}
			data = merged
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(target), err)
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}

		log.Debug("Copied file", "src", p, "dest", target)
		written = append(written, rel)
		if onFile != nil {
			onFile(rel)
		}
		return nil
	})
	return written, err
}

// mergeExisting merges data into the JSON file already at target, if any.
// skip is true when the existing file cannot be parsed.
func mergeExisting(target string, data []byte) (merged []byte, skip bool, err error) {
	existing, err := os.ReadFile(target)
	if errors.Is(err, fs.ErrNotExist) {
		return data, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", target, err)
	}

	merged, err = MergeJSON(existing, data)
	if errors.Is(err, ErrInvalidJSON) {
		if !gjson.ValidBytes(data) {
			return nil, false, fmt.Errorf("bundled file for %s is not valid JSON", target)
		}
		return nil, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return merged, false, nil
}
