package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KidQuest theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconSpark     = "✨"
	IconDone      = "✅"
	IconTrophy    = "🏆"
	IconStar      = "⭐"
	IconFire      = "🔥"
	IconTarget    = "🎯"
	IconShop      = "🛍️"
	IconBook      = "📖"
	IconPaw       = "🐾"
	IconGift      = "🎁"
	IconLock      = "🔒"
	IconInfo      = "ℹ️"
	IconWarn      = "⚠️"
	IconError     = "🧨"
	IconCalendar  = "📅"
	IconHourglass = "⏳"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel      = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)

	BadgeUnlocked = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("UNLOCKED")
)

// ApplyTheme recolors the base styles with a purchased shop theme. Hex
// values come straight from the item payload.
func ApplyTheme(primary, secondary, accent string) {
	if primary != "" {
		cPrimary = lipgloss.Color(primary)
	}
	if secondary != "" {
		cMuted = lipgloss.Color(secondary)
	}
	if accent != "" {
		cAccent = lipgloss.Color(accent)
	}
	Title = Title.Foreground(cAccent)
	H2 = H2.Foreground(cPrimary)
	Muted = Muted.Foreground(cMuted)
	Key = Key.Foreground(cPrimary)
	Dim = Dim.Foreground(cMuted)
	Panel = Panel.BorderForeground(cMuted)
	PanelTitle = PanelTitle.Foreground(cPrimary)
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// ProgressBar renders a fixed-width bar like ███░░░░░ 3/8.
func ProgressBar(current, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if current > total {
		current = total
	}
	if current < 0 {
		current = 0
	}
	filled := current * width / total
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %d/%d", Good.Render(bar), current, total)
}
