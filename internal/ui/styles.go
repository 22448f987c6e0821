// Package ui provides terminal UI components using Charm libraries.
//
// This package contains the styling and message helpers shared by every
// devlyn command, plus the install summary box and catalog table.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Brand colors for devlyn.
var (
	// Primary brand color
	Blue = lipgloss.Color("#3B82F6")

	// Secondary colors
	Cyan    = lipgloss.Color("#06B6D4")
	Red     = lipgloss.Color("#EF4444")
	Amber   = lipgloss.Color("#F59E0B")
	Green   = lipgloss.Color("#22C55E")
	DimGray = lipgloss.Color("#9CA3AF")
	White   = lipgloss.Color("#E5E7EB")
)

// Text styles.
var (
	// TitleStyle for main headings
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Blue)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// WarningStyle for warning messages
	WarningStyle = lipgloss.NewStyle().
			Foreground(Amber)

	// InfoStyle for informational messages
	InfoStyle = lipgloss.NewStyle().
			Foreground(White)

	// DimStyle for less important text
	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	// AccentStyle for markers and option numbers
	AccentStyle = lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true)

	// HighlightStyle for the row under the cursor in interactive lists
	HighlightStyle = lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true).
			Underline(true)
)

// Box styles.
var (
	// BoxStyle for content boxes
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Padding(0, 1)

	// BoxTitleStyle for box titles
	BoxTitleStyle = lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true)

	// SummaryOKStyle for a summary where everything installed
	SummaryOKStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Padding(0, 1)

	// SummaryFailedStyle for a summary with failures
	SummaryFailedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Red).
				Padding(0, 1)
)

// Table styles.
var (
	// TableHeaderStyle for table headers
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(DimGray).
				Bold(true)

	// TableCellStyle for table cells
	TableCellStyle = lipgloss.NewStyle()
)
