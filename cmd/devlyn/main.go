// Package main provides the entry point for the devlyn CLI.
//
// devlyn installs and updates a bundle of Claude Code configuration
// (commands, templates, skills) into a project's .claude directory and
// optionally installs extra add-ons picked from an interactive list.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/devlyn/cli/internal/ui"
)

// Version information set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd represents the base command. Run without a subcommand it behaves
// like `devlyn init`.
var rootCmd = &cobra.Command{
	Use:   "devlyn",
	Short: "Claude Code config toolkit",
	Long:  ui.GetHelpText(),

	// Errors are printed by Execute.
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Flags and arguments are valid by now; later failures are not usage errors.
		cmd.SilenceUsage = true

		debug, _ := cmd.Flags().GetBool("debug")
		if debug {
			log.SetLevel(log.DebugLevel)
			log.Debug("Debug logging enabled")
		}

		quiet, _ := cmd.Flags().GetBool("quiet")
		ui.SetQuietMode(quiet)
	},
	RunE: runInit,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.PrintError("%v", err)
		os.Exit(1)
	}
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(false)

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-essential output")

	// The bare command installs, so it takes the same flags as init.
	addInstallFlags(rootCmd.Flags())

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		ui.PrintBanner(version)
		ui.PrintBox("devlyn", versionInfo())
	},
}

// versionInfo is the body of the version box.
func versionInfo() string {
	return fmt.Sprintf("Version: %s\nCommit:  %s\nBuilt:   %s", version, commit, date)
}

func main() {
	Execute()
}
