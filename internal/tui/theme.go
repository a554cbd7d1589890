package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// NewHuhTheme returns the orange/blue theme used by every prompt.
func NewHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = t.Focused.Title.Foreground(Blue).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(Gray)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(Orange)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(Orange)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(Red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(Red)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(Orange)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(Orange)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(Orange)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
