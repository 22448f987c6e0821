// Package main provides the init command, which installs or updates the
// .claude configuration and optional add-ons.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/devlyn/cli/assets"
	"github.com/devlyn/cli/internal/addon"
	"github.com/devlyn/cli/internal/config"
	"github.com/devlyn/cli/internal/installer"
	"github.com/devlyn/cli/internal/selector"
	"github.com/devlyn/cli/internal/ui"
	"github.com/devlyn/cli/internal/util"
)

// defaultTarget is the configuration directory, relative to the working directory.
const defaultTarget = ".claude"

var (
	installTarget     string
	installAddonNames []string
	installAllAddons  bool
	installNoAddons   bool
)

// initCmd installs or updates the configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Install or update the .claude config",
	Long: `Install or update the devlyn configuration in the current project.

Copies the bundled commands, templates and skills into .claude/,
overwriting files devlyn installed before. Existing JSON settings are
merged: keys you already set are kept.

When run in an interactive terminal, you are then asked which optional
add-ons to install. Local add-ons are copied from the bundle; external
add-ons are installed with the skills installer (npx skills add).

EXAMPLES:
  devlyn init                            # Install and pick add-ons
  devlyn init --addon frontend-design    # Install one add-on, no prompt
  devlyn init --all-addons               # Install every add-on
  devlyn init --no-addons                # Base config only
  devlyn init --target ~/.claude         # Install to the user directory`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	addInstallFlags(initCmd.Flags())
}

// addInstallFlags registers the install flags on flags. Both the root command
// and init share the same variables.
func addInstallFlags(flags *pflag.FlagSet) {
	flags.StringVar(&installTarget, "target", defaultTarget, "Directory to install into")
	flags.StringSliceVar(&installAddonNames, "addon", nil, "Add-on to install without prompting (repeatable)")
	flags.BoolVar(&installAllAddons, "all-addons", false, "Install every available add-on")
	flags.BoolVar(&installNoAddons, "no-addons", false, "Skip add-on installation")
}

// installOptions holds everything runInstall needs, so tests can replace the
// bundle, the external runner and the prompt.
type installOptions struct {
	Target      string
	ProjectDir  string
	Addons      []string
	AllAddons   bool
	NoAddons    bool
	Interactive bool

	FS     fs.FS
	Runner installer.Runner
	Prompt func(items []selector.Item) ([]selector.Item, error)
}

// runInit is the cobra handler for `devlyn` and `devlyn init`.
func runInit(cmd *cobra.Command, args []string) error {
	ui.PrintBanner(version)

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	opts := installOptions{
		Target:      installTarget,
		ProjectDir:  cwd,
		Addons:      installAddonNames,
		AllAddons:   installAllAddons,
		NoAddons:    installNoAddons,
		Interactive: isInteractive(),
		FS:          assets.FS(),
		Prompt:      promptTerminal,
	}

	err = runInstall(cmd.Context(), opts)
	if errors.Is(err, selector.ErrInterrupted) {
		fmt.Println()
		ui.PrintWarning("Cancelled")
		os.Exit(selector.ExitInterrupted)
	}
	return err
}

// isInteractive reports whether the add-on prompt can be shown: both stdin
// and stdout must be terminals and quiet mode must be off.
func isInteractive() bool {
	if ui.IsQuiet() {
		return false
	}
	in := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	out := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	return in && out
}

// promptTerminal runs the add-on selector on the process terminal.
func promptTerminal(items []selector.Item) ([]selector.Item, error) {
	return selector.Select(items,
		selector.WithIO(os.Stdin, os.Stdout),
		selector.WithTerminal(selector.NewStdioTerminal()),
	)
}

// runInstall copies the base config, resolves add-ons and installs them.
//
// Parameters:
//   - ctx: Context for external installer processes
//   - opts: Install options
//
// Returns:
//   - error: Flag conflicts, copy failures, selector.ErrInterrupted, or a
//     summary error when any add-on failed
func runInstall(ctx context.Context, opts installOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	catalog, err := addon.Load(opts.FS)
	if err != nil {
		return fmt.Errorf("failed to load add-on catalog: %w", err)
	}

	plan, err := planAddons(catalog, opts)
	if err != nil {
		return err
	}

	target, err := resolveTarget(opts.Target)
	if err != nil {
		return err
	}

	manifestPath := config.ManifestPath(target)
	manifest, err := config.LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	inst := &installer.Installer{
		FS:              opts.FS,
		TargetDir:       target,
		ProjectDir:      opts.ProjectDir,
		ExternalCommand: manifest.ResolveExternalCommand(),
		Runner:          opts.Runner,
		OnFile:          ui.PrintFile,
	}

	ui.PrintSection("📁 Installing to " + displayPath(opts.ProjectDir, target))
	files, err := inst.InstallBase()
	if err != nil {
		return err
	}

	chosen := plan.addons
	if plan.prompt {
		ui.Println()
		chosen, err = promptAddons(catalog, manifest, opts.Prompt)
		if err != nil {
			return err
		}
	}

	installed, failed, addonFiles := installAddons(ctx, inst, chosen, manifest)
	files = append(files, addonFiles...)

	manifest.MarkInstalled(version, files)
	if err := config.WriteManifest(manifestPath, manifest); err != nil {
		return err
	}
	log.Debug("Wrote manifest", "path", manifestPath, "files", len(files), "addons", len(manifest.Addons))

	if len(chosen) > 0 {
		ui.Println()
		ui.PrintInstallSummary(installed, failed)
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d add-ons failed to install", len(failed), len(chosen))
	}

	ui.Println()
	ui.PrintSuccess("Done!")
	ui.PrintDim("   Run `devlyn` again to update")
	return nil
}

// addonPlan is the outcome of flag resolution: a fixed list, or a prompt.
type addonPlan struct {
	addons []addon.Addon
	prompt bool
}

// planAddons decides which add-ons to install from the flags, before
// anything is written.
func planAddons(catalog *addon.Catalog, opts installOptions) (addonPlan, error) {
	explicit := len(opts.Addons) > 0
	if explicit && (opts.AllAddons || opts.NoAddons) {
		return addonPlan{}, errors.New("--addon cannot be combined with --all-addons or --no-addons")
	}
	if opts.AllAddons && opts.NoAddons {
		return addonPlan{}, errors.New("--all-addons and --no-addons are mutually exclusive")
	}

	switch {
	case explicit:
		selected, err := catalog.Select(opts.Addons)
		if err != nil {
			return addonPlan{}, err
		}
		return addonPlan{addons: selected}, nil
	case opts.AllAddons:
		return addonPlan{addons: catalog.All()}, nil
	case opts.NoAddons:
		return addonPlan{}, nil
	case opts.Interactive && opts.Prompt != nil && catalog.Len() > 0:
		return addonPlan{prompt: true}, nil
	default:
		log.Debug("Not interactive, skipping add-on prompt")
		return addonPlan{}, nil
	}
}

// promptAddons asks the user to pick add-ons and maps the answer back to
// the catalog.
func promptAddons(catalog *addon.Catalog, manifest *config.Manifest, prompt func([]selector.Item) ([]selector.Item, error)) ([]addon.Addon, error) {
	items := toItems(catalog.All(), manifest)
	picked, err := prompt(items)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(picked))
	for _, it := range picked {
		names = append(names, it.Name)
	}
	return catalog.Select(names)
}

// toItems converts add-ons into selector rows. Add-ons already recorded in
// the manifest are marked in their description.
func toItems(addons []addon.Addon, manifest *config.Manifest) []selector.Item {
	items := make([]selector.Item, 0, len(addons))
	for _, a := range addons {
		category := selector.CategoryLocal
		if a.Source == addon.SourceExternal {
			category = selector.CategoryExternal
		}
		desc := a.Description
		if manifest != nil && manifest.HasAddon(a.Name) {
			desc = "(installed) " + desc
		}
		items = append(items, selector.Item{Name: a.Name, Description: desc, Category: category})
	}
	return items
}

// installAddons installs each add-on in order, continuing past failures.
// Successful installs are recorded in the manifest.
func installAddons(ctx context.Context, inst *installer.Installer, addons []addon.Addon, manifest *config.Manifest) ([]string, []ui.InstallFailure, []string) {
	var installed []string
	var failed []ui.InstallFailure
	var files []string

	for _, a := range addons {
		ui.PrintSection(fmt.Sprintf("📦 %s", a.Name))
		written, err := inst.Install(ctx, a)
		files = append(files, written...)
		if err != nil {
			log.Debug("Add-on install failed", "name", a.Name, "error", err)
			failed = append(failed, ui.InstallFailure{Name: a.Name, Err: err})
			continue
		}
		installed = append(installed, a.Name)
		manifest.RecordAddon(a.Name, string(a.Source))
	}

	return installed, failed, files
}

// resolveTarget expands ~ and makes the target absolute.
func resolveTarget(target string) (string, error) {
	if target == "" {
		target = defaultTarget
	}
	abs, err := filepath.Abs(util.ExpandHome(target))
	if err != nil {
		return "", fmt.Errorf("invalid target %q: %w", target, err)
	}
	return abs, nil
}

// displayPath shows target relative to the project when it lives inside it.
func displayPath(projectDir, target string) string {
	if projectDir != "" {
		if rel, err := filepath.Rel(projectDir, target); err == nil && !strings.HasPrefix(rel, "..") {
			return rel + string(filepath.Separator)
		}
	}
	return target
}
