// Package addon provides the catalog of optional add-ons devlyn can install
// on top of the base configuration.
//
// Local add-ons are skill directories embedded in the binary. External
// add-ons are skill packs fetched by an external installer at install time.
package addon

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/devlyn/cli/assets"
)

// ErrUnknownAddon is returned when a requested add-on is not in the catalog.
var ErrUnknownAddon = errors.New("unknown add-on")

// Source tells how an add-on is installed.
type Source string

const (
	// SourceLocal add-ons are copied from the embedded bundle.
	SourceLocal Source = "local"

	// SourceExternal add-ons are installed by the external skills installer.
	SourceExternal Source = "external"
)

// Addon describes one installable add-on.
type Addon struct {
	// Name is unique within the catalog and doubles as the install directory.
	Name string

	// Description is a one-line summary shown in prompts and listings.
	Description string

	// Source tells how the add-on is installed.
	Source Source

	// Dir is the add-on directory inside the embedded bundle (local only).
	Dir string

	// Package is the identifier passed to the external installer (external only).
	Package string
}

// Catalog is an ordered, name-unique list of add-ons.
type Catalog struct {
	addons []Addon
}

// New builds a catalog from addons in the given order.
//
// Returns an error if a name is empty or appears twice.
func New(addons ...Addon) (*Catalog, error) {
	seen := make(map[string]bool, len(addons))
	for _, a := range addons {
		if a.Name == "" {
			return nil, errors.New("add-on with empty name")
		}
		if seen[a.Name] {
			return nil, fmt.Errorf("duplicate add-on name %q", a.Name)
		}
		seen[a.Name] = true
	}
	return &Catalog{addons: append([]Addon(nil), addons...)}, nil
}

// Load builds the default catalog: local add-ons discovered under
// assets.OptionalSkillsDir in fsys, sorted by name, followed by the
// external add-ons.
func Load(fsys fs.FS) (*Catalog, error) {
	local, err := discoverLocal(fsys)
	if err != nil {
		return nil, err
	}
	return New(append(local, External()...)...)
}

func discoverLocal(fsys fs.FS) ([]Addon, error) {
	entries, err := fs.ReadDir(fsys, assets.OptionalSkillsDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", assets.OptionalSkillsDir, err)
	}

	var out []Addon
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := path.Join(assets.OptionalSkillsDir, entry.Name())
		content, err := fs.ReadFile(fsys, path.Join(dir, assets.SkillFileName))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", dir, err)
		}

		meta := ParseMetadata(string(content), entry.Name())
		out = append(out, Addon{
			Name:        meta.Name,
			Description: meta.Description,
			Source:      SourceLocal,
			Dir:         dir,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// All returns a copy of all add-ons in catalog order.
func (c *Catalog) All() []Addon {
	out := make([]Addon, len(c.addons))
	copy(out, c.addons)
	return out
}

// Len returns the number of add-ons.
func (c *Catalog) Len() int {
	return len(c.addons)
}

// Names returns all add-on names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.addons))
	for _, a := range c.addons {
		names = append(names, a.Name)
	}
	return names
}

// Get returns one add-on by exact name.
func (c *Catalog) Get(name string) (Addon, bool) {
	name = strings.TrimSpace(name)
	for _, a := range c.addons {
		if a.Name == name {
			return a, true
		}
	}
	return Addon{}, false
}

// Select resolves names to add-ons in catalog order, ignoring duplicates.
//
// Parameters:
//   - names: Requested add-on names
//
// Returns:
//   - []Addon: The matching add-ons, in catalog order
//   - error: Wraps ErrUnknownAddon naming every unknown entry
func (c *Catalog) Select(names []string) ([]Addon, error) {
	want := make(map[string]bool, len(names))
	var unknown []string
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := c.Get(n); !ok {
			unknown = append(unknown, n)
			continue
		}
		want[n] = true
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s (available: %s)",
			ErrUnknownAddon, strings.Join(unknown, ", "), strings.Join(c.Names(), ", "))
	}

	out := make([]Addon, 0, len(want))
	for _, a := range c.addons {
		if want[a.Name] {
			out = append(out, a)
		}
	}
	return out, nil
}
