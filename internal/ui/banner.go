// Package ui provides the ASCII banner for the devlyn CLI.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// banner is the ASCII art logo for devlyn.
const banner = `
  ██████╗ ███████╗██╗   ██╗██╗  ██╗   ██╗███╗   ██╗
  ██╔══██╗██╔════╝██║   ██║██║  ╚██╗ ██╔╝████╗  ██║
  ██║  ██║█████╗  ██║   ██║██║   ╚████╔╝ ██╔██╗ ██║
  ██║  ██║██╔══╝  ╚██╗ ██╔╝██║    ╚██╔╝  ██║╚██╗██║
  ██████╔╝███████╗ ╚████╔╝ ███████╗██║   ██║ ╚████║
  ╚═════╝ ╚══════╝  ╚═══╝  ╚══════╝╚═╝   ╚═╝  ╚═══╝`

// tagline is the product tagline.
const tagline = "Claude Code config toolkit"

// PrintBanner prints the devlyn banner with version info.
//
// Parameters:
//   - version: The CLI version string to display
func PrintBanner(version string) {
	if IsQuiet() {
		return
	}

	styledBanner := lipgloss.NewStyle().
		Foreground(Blue).
		Bold(true).
		Render(banner)

	fmt.Println(styledBanner)
	fmt.Println()

	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		PaddingLeft(2)

	fmt.Println(infoStyle.Italic(true).Render(tagline))
	fmt.Println(infoStyle.Render(fmt.Sprintf("Version: %s", version)))
	fmt.Println(DimStyle.Render("  " + strings.Repeat("─", 40)))
}

// GetHelpText returns the long help text for the CLI, used by `devlyn --help`.
func GetHelpText() string {
	accent := lipgloss.NewStyle().Foreground(Blue).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	return fmt.Sprintf(`%s

%s
  %s                  Install/update .claude config
  %s             Same as above
  %s  Install specific add-ons without prompting
  %s             List available add-ons

Rerun %s at any time to update the installed config.`,
		dim.Render(tagline+": commands, templates and skills for your project."),
		accent.Render("Usage:"),
		accent.Render("devlyn"),
		accent.Render("devlyn init"),
		accent.Render("devlyn init --addon <name>"),
		accent.Render("devlyn list"),
		accent.Render("devlyn"),
	)
}
