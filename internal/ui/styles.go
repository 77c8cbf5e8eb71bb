package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// IsTTY indicates whether stdout is an interactive terminal.
// When false, UI functions produce plain text without colors or decorations.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

// ═══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Field carpet, alliance bumpers
// ═══════════════════════════════════════════════════════════════════════════════

var (
	// Alliance colors
	Red  = lipgloss.Color("#E74C3C")
	Blue = lipgloss.Color("#3498DB")

	// Accents
	Gold   = lipgloss.Color("#F4D03F")
	Amber  = lipgloss.Color("#E59866")
	Purple = lipgloss.Color("#9B59B6")
	Green  = lipgloss.Color("#58D68D")
	Pink   = lipgloss.Color("#FF6B9D")

	// Neutrals
	White    = lipgloss.Color("#FDFEFE")
	Gray     = lipgloss.Color("#AAB7B8")
	DarkGray = lipgloss.Color("#5D6D7E")
	Black    = lipgloss.Color("#1C2833")
)

// ═══════════════════════════════════════════════════════════════════════════════
// TEXT STYLES
// ═══════════════════════════════════════════════════════════════════════════════

var (
	// Muted/secondary text
	Muted = lipgloss.NewStyle().
		Foreground(Gray)

	// Highlight for file names
	Highlight = lipgloss.NewStyle().
		Foreground(Gold).
		Bold(true)
)

// ═══════════════════════════════════════════════════════════════════════════════
// BADGES
// ═══════════════════════════════════════════════════════════════════════════════

var baseBadge = lipgloss.NewStyle().
	Padding(0, 1).
	Bold(true)

// AutoBadge marks an autonomous routine
func AutoBadge() string {
	if !IsTTY {
		return "[AUTO]"
	}
	return baseBadge.Background(Purple).Foreground(White).Render("▶ AUTO")
}

// PathBadge marks a path
func PathBadge() string {
	if !IsTTY {
		return "[PATH]"
	}
	return baseBadge.Background(Blue).Foreground(White).Render("↝ PATH")
}

// DryRunBadge flags output from a run that wrote nothing
func DryRunBadge() string {
	if !IsTTY {
		return "[DRY RUN]"
	}
	return baseBadge.Background(Amber).Foreground(Black).Render("DRY RUN")
}

// ═══════════════════════════════════════════════════════════════════════════════
// HEADERS
// ═══════════════════════════════════════════════════════════════════════════════

// Logo returns the banner shown in help output
func Logo() string {
	if !IsTTY {
		return "\n  AUTODUP - PathPlanner auto duplicator\n"
	}

	red := lipgloss.NewStyle().Foreground(Red).Bold(true).Render("AUTO")
	blue := lipgloss.NewStyle().Foreground(Blue).Bold(true).Render("DUP")
	tag := lipgloss.NewStyle().Foreground(Gray).Render("PathPlanner auto duplicator")
	return fmt.Sprintf("\n  %s%s  %s\n", red, blue, tag)
}

// SectionHeader creates a decorated section header
func SectionHeader(title string) string {
	// Plain output for non-TTY environments
	if !IsTTY {
		return fmt.Sprintf("=== %s ===", title)
	}

	// Use terminal width, capped at 80
	width := TerminalWidth()
	if width > 80 {
		width = 80
	}

	titleStyled := lipgloss.NewStyle().
		Foreground(Gold).
		Bold(true).
		Render(title)

	titleLen := lipgloss.Width(title)
	padLeft := (width - titleLen - 6) / 2
	padRight := width - titleLen - 6 - padLeft
	if padLeft < 0 {
		padLeft, padRight = 0, 0
	}

	left := lipgloss.NewStyle().Foreground(DarkGray).Render(strings.Repeat("─", padLeft) + "┤ ")
	right := lipgloss.NewStyle().Foreground(DarkGray).Render(" ├" + strings.Repeat("─", padRight))

	return left + titleStyled + right
}

// ═══════════════════════════════════════════════════════════════════════════════
// STATUS LINE COMPONENTS
// ═══════════════════════════════════════════════════════════════════════════════

// StatusLine creates a status line with icon and message
func StatusLine(icon, message string, color lipgloss.Color) string {
	if !IsTTY {
		return fmt.Sprintf("  %s %s", icon, message)
	}
	iconStyled := lipgloss.NewStyle().Foreground(color).Render(icon)
	msgStyled := lipgloss.NewStyle().Foreground(color).Render(message)
	return fmt.Sprintf("  %s %s", iconStyled, msgStyled)
}

// SuccessLine creates a success status line
func SuccessLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  OK: %s", message)
	}
	return StatusLine("✓", message, Green)
}

// ErrorLine creates an error status line
func ErrorLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  ERROR: %s", message)
	}
	return StatusLine("✗", message, Pink)
}

// InfoLine creates an info status line
func InfoLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  %s", message)
	}
	return StatusLine("→", message, Blue)
}

// EmptyDir returns the notice printed for a directory with no entries
func EmptyDir(dir string) string {
	return "  " + RenderMuted("(empty) "+dir)
}

// ═══════════════════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════════════════

// Render applies a lipgloss style to text, returning plain text in non-TTY environments.
func Render(style lipgloss.Style, text string) string {
	if !IsTTY {
		return text
	}
	return style.Render(text)
}

// RenderMuted renders text in muted style (TTY-aware)
func RenderMuted(text string) string {
	return Render(Muted, text)
}

// RenderHighlight renders text in highlight style (TTY-aware)
func RenderHighlight(text string) string {
	return Render(Highlight, text)
}

// TerminalWidth returns the current terminal width, defaulting to 80 if unknown
func TerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
