// Package ui holds the terminal styles and small renderers used by the CLI.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/osse101/questgame/internal/domain"
)

const (
	IconQuest   = "🗺️"
	IconDone    = "✔"
	IconEvent   = "⚡"
	IconStar    = "★"
	IconStep    = "○"
	IconChecked = "✓"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconLoot    = "🎁"
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

	Banner = lipgloss.NewStyle().BorderStyle(lipgloss.DoubleBorder()).BorderForeground(cGold).Padding(0, 2)
)

// Heading renders a section title like "── QuestGame Status ──"
func Heading(title string) string {
	return Title.Render("── " + title + " ──")
}

// LabelValue renders "Label: value" with the label highlighted
func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// CategoryLabel renders a category in upper case, padded for table alignment
func CategoryLabel(c domain.Category) string {
	return fmt.Sprintf("%-5s", strings.ToUpper(string(c)))
}

// RarityLabel returns the celebration suffix for the best badge in loot
func RarityLabel(loot []string) string {
	for _, item := range loot {
		if item == "epic_badge" {
			return Gold.Render(strings.Repeat(IconStar, 3) + " EPICO!")
		}
	}
	for _, item := range loot {
		if item == "rare_badge" {
			return Gold.Render(strings.Repeat(IconStar, 2) + " RARO!")
		}
	}
	return ""
}

// StepLine renders one numbered quest step
func StepLine(i int, step domain.Step) string {
	if step.Done {
		return fmt.Sprintf("%s %d. %s", Good.Render(IconChecked), i+1, Muted.Render(step.Text))
	}
	return fmt.Sprintf("%s %d. %s", IconStep, i+1, step.Text)
}
