// Package main provides sanity tests for the devlyn CLI command initialization.
package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/devlyn/cli/internal/ui"
)

// TestRootCommandInitialization verifies that the root command exists and has all expected subcommands.
func TestRootCommandInitialization(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd is nil")
	}

	expectedCommands := []string{"version", "init", "list"}

	for _, name := range expectedCommands {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected command %q not found", name)
		}
	}
}

// TestGlobalFlagsExist verifies that all expected global flags are registered on the root command.
func TestGlobalFlagsExist(t *testing.T) {
	for _, name := range []string{"debug", "quiet"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected global flag %q not found", name)
		}
	}
}

// TestInstallFlagsOnRootAndInit verifies the bare command accepts the same
// install flags as init, since it runs the same install.
func TestInstallFlagsOnRootAndInit(t *testing.T) {
	for _, name := range []string{"target", "addon", "all-addons", "no-addons"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("root command missing install flag %q", name)
		}
		if initCmd.Flags().Lookup(name) == nil {
			t.Errorf("init command missing install flag %q", name)
		}
	}
}

// TestRootCommandHasUse verifies the root command has the correct Use field.
func TestRootCommandHasUse(t *testing.T) {
	if rootCmd.Use != "devlyn" {
		t.Errorf("expected root command Use to be 'devlyn', got %q", rootCmd.Use)
	}
	if rootCmd.RunE == nil {
		t.Error("bare devlyn should run the install")
	}
}

// TestSubcommandsHaveShortDescription verifies all subcommands have a Short description.
func TestSubcommandsHaveShortDescription(t *testing.T) {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Short == "" {
			t.Errorf("command %q is missing Short description", cmd.Name())
		}
	}
}

// TestAddonFlagCollectsNames verifies repeated and comma separated --addon
// values land in the install names.
func TestAddonFlagCollectsNames(t *testing.T) {
	t.Cleanup(func() {
		installTarget = defaultTarget
		installAddonNames = nil
	})

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addInstallFlags(flags)
	if err := flags.Parse([]string{"--addon", "frontend-design", "--addon", "api-docs,test-writer"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"frontend-design", "api-docs", "test-writer"}
	if !reflect.DeepEqual(installAddonNames, want) {
		t.Errorf("installAddonNames = %v, want %v", installAddonNames, want)
	}
}

// executeRoot runs rootCmd with args and returns what cobra printed.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		_ = rootCmd.PersistentFlags().Set("quiet", "false")
		_ = initCmd.Flags().Set("no-addons", "false")
		installAddonNames = nil
		initCmd.SilenceUsage = false
		ui.SetQuietMode(false)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// TestRuntimeErrorOmitsUsage verifies a failing install reports its error
// without cobra's usage text or error line.
func TestRuntimeErrorOmitsUsage(t *testing.T) {
	out, err := executeRoot(t, "init", "-q", "--addon", "frontend-design", "--no-addons")
	if err == nil || !strings.Contains(err.Error(), "cannot be combined") {
		t.Fatalf("Execute() error = %v, want flag conflict", err)
	}
	if strings.Contains(out, "Usage:") {
		t.Errorf("usage printed for a runtime error:\n%s", out)
	}
	if strings.Contains(out, "Error:") {
		t.Errorf("cobra printed the error itself:\n%s", out)
	}
}

// TestUsageErrorPrintsUsage verifies bad arguments still show usage.
func TestUsageErrorPrintsUsage(t *testing.T) {
	out, err := executeRoot(t, "init", "unexpected")
	if err == nil {
		t.Fatal("Execute() error = nil, want argument error")
	}
	if !strings.Contains(out, "Usage:") {
		t.Errorf("usage missing for an argument error:\n%s", out)
	}
}

// TestVersionInfo verifies the version box lists the build metadata.
func TestVersionInfo(t *testing.T) {
	got := versionInfo()
	for _, want := range []string{"Version: " + version, "Commit:  " + commit, "Built:   " + date} {
		if !strings.Contains(got, want) {
			t.Errorf("versionInfo() missing %q:\n%s", want, got)
		}
	}
}
