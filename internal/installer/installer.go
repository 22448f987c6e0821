// Package installer copies the embedded configuration bundle into a project
// and installs add-ons, either from the bundle or through an external
// skills installer.
package installer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/devlyn/cli/assets"
	"github.com/devlyn/cli/internal/addon"
	"github.com/devlyn/cli/internal/config"
)

// SkillsDir is where local add-ons land inside the target directory.
const SkillsDir = "skills"

// Installer installs into one target directory.
type Installer struct {
	// FS is the bundle to install from, normally assets.FS().
	FS fs.FS

	// TargetDir is the configuration directory, e.g. ./.claude.
	TargetDir string

	// ProjectDir is the working directory for external installers.
	ProjectDir string

	// ExternalCommand is the command template for external add-ons.
	// Defaults to config.DefaultExternalCommand.
	ExternalCommand string

	// Runner runs external installers. Defaults to NewExecRunner().
	Runner Runner

	// OnFile is called with each file written, relative to TargetDir.
	OnFile func(rel string)
}

// InstallBase copies the base configuration tree into the target directory.
//
// Returns:
//   - []string: Written files relative to TargetDir
//   - error: If the bundle has no config tree or a copy fails
func (i *Installer) InstallBase() ([]string, error) {
	if _, err := fs.Stat(i.FS, assets.ConfigDir); err != nil {
		return nil, fmt.Errorf("config source not found: %w", err)
	}
	log.Debug("Installing base config", "target", i.TargetDir)
	return CopyTree(i.FS, assets.ConfigDir, i.TargetDir, i.OnFile)
}

// Install installs one add-on.
//
// Local add-ons are copied to <TargetDir>/skills/<name>/. External add-ons
// are handed to the external installer with the add-on's package.
//
// Returns:
//   - []string: Written files relative to TargetDir (empty for external add-ons)
//   - error: If the add-on is malformed or installation fails
func (i *Installer) Install(ctx context.Context, a addon.Addon) ([]string, error) {
	switch a.Source {
	case addon.SourceLocal:
		return i.installLocal(a)
	case addon.SourceExternal:
		return nil, i.installExternal(ctx, a)
	default:
		return nil, fmt.Errorf("add-on %s has unknown source %q", a.Name, a.Source)
	}
}

func (i *Installer) installLocal(a addon.Addon) ([]string, error) {
	if a.Dir == "" {
		return nil, fmt.Errorf("local add-on %s has no bundle directory", a.Name)
	}

	prefix := path.Join(SkillsDir, a.Name)
	dest := filepath.Join(i.TargetDir, filepath.FromSlash(prefix))

	onFile := func(rel string) {
		if i.OnFile != nil {
			i.OnFile(path.Join(prefix, rel))
		}
	}

	log.Debug("Installing local add-on", "name", a.Name, "dest", dest)
	files, err := CopyTree(i.FS, a.Dir, dest, onFile)
	for n, f := range files {
		files[n] = path.Join(prefix, f)
	}
	if err != nil {
		return files, fmt.Errorf("install %s: %w", a.Name, err)
	}
	return files, nil
}

func (i *Installer) installExternal(ctx context.Context, a addon.Addon) error {
	if a.Package == "" {
		return errors.New("external add-on " + a.Name + " has no package")
	}

	template := i.ExternalCommand
	if template == "" {
		template = config.DefaultExternalCommand
	}
	name, args, err := BuildCommand(template, a.Package)
	if err != nil {
		return err
	}

	runner := i.Runner
	if runner == nil {
		runner = NewExecRunner()
	}

	log.Debug("Installing external add-on", "name", a.Name, "package", a.Package)
	if err := runner.Run(ctx, i.ProjectDir, name, args...); err != nil {
		return fmt.Errorf("install %s: %w", a.Name, err)
	}
	return nil
}
