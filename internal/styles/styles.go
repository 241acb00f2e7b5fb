// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Tokyo Night color palette.
var (
	ColorGreen  = lipgloss.Color("#9ece6a")
	ColorYellow = lipgloss.Color("#e0af68")
	ColorBlue   = lipgloss.Color("#7aa2f7")
	ColorPurple = lipgloss.Color("#bb9af7")
	ColorRed    = lipgloss.Color("#f7768e")
	ColorGray   = lipgloss.Color("#565f89")
	ColorWhite  = lipgloss.Color("#c0caf5")
)

// CommandHeaderStyle styles the hook command headers.
var CommandHeaderStyle = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Bold(true)

// CommandStyle styles the command text.
var CommandStyle = lipgloss.NewStyle().
	Foreground(ColorWhite)

// DividerStyle styles horizontal dividers.
var DividerStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// AuthorStyle styles the author name in message lines.
var AuthorStyle = lipgloss.NewStyle().
	Foreground(ColorPurple).
	Bold(true)

// TimestampStyle styles message timestamps.
var TimestampStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// HeaderStyle styles the TUI title bar.
var HeaderStyle = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Bold(true).
	Padding(0, 1)

// StatusStyle styles the TUI status line.
var StatusStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Padding(0, 1)

// ErrorStyle styles inline errors.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorRed)

// InputBorderStyle frames the TUI compose box.
var InputBorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorGray).
	Padding(0, 1)
