// Package ui provides result rendering components.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// InstallFailure is one add-on that failed to install.
type InstallFailure struct {
	Name string
	Err  error
}

// FormatInstallSummary builds the boxed summary shown after add-ons install.
//
// Parameters:
//   - installed: Names of add-ons that installed successfully
//   - failed: Add-ons that failed, with their errors
//
// Returns:
//   - string: The rendered box, or "" when nothing was attempted
func FormatInstallSummary(installed []string, failed []InstallFailure) string {
	if len(installed) == 0 && len(failed) == 0 {
		return ""
	}

	var boxStyle lipgloss.Style
	var icon string
	if len(failed) == 0 {
		boxStyle = SummaryOKStyle
		icon = "✓"
	} else {
		boxStyle = SummaryFailedStyle
		icon = "✗"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d/%d add-ons installed", icon, len(installed), len(installed)+len(failed))
	for _, name := range installed {
		fmt.Fprintf(&b, "\n  %s %s", SuccessStyle.Render("✓"), name)
	}
	for _, f := range failed {
		fmt.Fprintf(&b, "\n  %s %s %s", ErrorStyle.Render("✗"), f.Name, DimStyle.Render(f.Err.Error()))
	}

	return boxStyle.Render(b.String())
}

// PrintInstallSummary prints the add-on summary box.
func PrintInstallSummary(installed []string, failed []InstallFailure) {
	if s := FormatInstallSummary(installed, failed); s != "" {
		fmt.Println(s)
	}
}
