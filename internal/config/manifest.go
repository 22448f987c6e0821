// Package config provides install manifest management.
//
// This package handles reading and writing the devlyn.yaml manifest that
// devlyn keeps inside the target directory, recording what was installed
// and any per-project overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// ManifestFileName is the manifest file name inside the target directory.
	ManifestFileName = "devlyn.yaml"

	// DefaultExternalCommand installs an external skill pack. {package} is
	// replaced with the add-on's package identifier.
	DefaultExternalCommand = "npx skills add {package}"

	// ExternalCommandEnv overrides the external install command.
	ExternalCommandEnv = "DEVLYN_SKILLS_COMMAND"
)

// Manifest represents the <target>/devlyn.yaml file.
type Manifest struct {
	// Version is the devlyn version that last installed into the directory.
	Version string `yaml:"version,omitempty"`

	// InstalledAt records when the last install finished (RFC3339, UTC).
	InstalledAt string `yaml:"installed_at,omitempty"`

	// Files lists the bundle files copied by the last install, relative to
	// the target directory.
	Files []string `yaml:"files,omitempty"`

	// Addons lists every add-on installed into the directory so far.
	Addons []InstalledAddon `yaml:"addons,omitempty"`

	// ExternalCommand overrides DefaultExternalCommand for this project.
	ExternalCommand string `yaml:"external_command,omitempty"`
}

// InstalledAddon is one add-on recorded in the manifest.
type InstalledAddon struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
}

// ManifestPath returns the manifest location for a target directory.
func ManifestPath(targetDir string) string {
	return filepath.Join(targetDir, ManifestFileName)
}

// MarkInstalled stamps the manifest with the installing version, the copied
// files and the current time (UTC, RFC3339).
//
// Parameters:
//   - version: The devlyn version performing the install
//   - files: Copied file paths, relative to the target directory
func (m *Manifest) MarkInstalled(version string, files []string) {
	m.Version = version
	m.InstalledAt = time.Now().UTC().Format(time.RFC3339)
	m.Files = append([]string(nil), files...)
	sort.Strings(m.Files)
}

// HasAddon reports whether name was installed before.
func (m *Manifest) HasAddon(name string) bool {
	for _, a := range m.Addons {
		if a.Name == name {
			return true
		}
	}
	return false
}

// RecordAddon adds name to the installed add-ons, replacing an earlier
// entry with the same name.
func (m *Manifest) RecordAddon(name, source string) {
	for i, a := range m.Addons {
		if a.Name == name {
			m.Addons[i].Source = source
			return
		}
	}
	m.Addons = append(m.Addons, InstalledAddon{Name: name, Source: source})
}

// ResolveExternalCommand returns the external install command, preferring
// the environment override, then the manifest, then the default.
func (m *Manifest) ResolveExternalCommand() string {
	if v := strings.TrimSpace(os.Getenv(ExternalCommandEnv)); v != "" {
		return v
	}
	if v := strings.TrimSpace(m.ExternalCommand); v != "" {
		return v
	}
	return DefaultExternalCommand
}

// LoadManifest loads the manifest at path.
//
// A missing file is not an error: it yields an empty manifest, which is the
// state of a directory devlyn never installed into.
//
// Parameters:
//   - path: Path to devlyn.yaml
//
// Returns:
//   - *Manifest: The parsed manifest
//   - error: If the file exists but cannot be read or parsed
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return &m, nil
}

// WriteManifest writes the manifest to path, creating its directory.
func WriteManifest(path string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	header := "# devlyn install manifest\n# Generated by: devlyn init\n\n"
	content := header + string(data)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create manifest directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}
