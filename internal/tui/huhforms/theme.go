package huhforms

import (
	"image/color"

	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskflow/internal/config/colors"
)

// formPalette is the subset of the color scheme the create form uses
type formPalette struct {
	frame, heading, hint, text, chosen, invalid color.Color
}

func newFormPalette(cs colors.ColorScheme) formPalette {
	return formPalette{
		frame:   lipgloss.Color(cs.Create),
		heading: lipgloss.Color(cs.Title),
		hint:    lipgloss.Color(cs.Subtle),
		text:    lipgloss.Color(cs.Normal),
		chosen:  lipgloss.Color(cs.Accent),
		invalid: lipgloss.Color(cs.Delete),
	}
}

// CreateTaskflowTheme creates the create-form theme from the active color
// scheme. The focused field is framed in the create color; the others
// drop their border and dim their title.
func CreateTaskflowTheme(cs colors.ColorScheme) huh.Theme {
	p := newFormPalette(cs)

	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		f := &t.Focused
		f.Base = f.Base.BorderForeground(p.frame)
		f.Title = f.Title.Foreground(p.heading).Bold(true)
		f.NoteTitle = f.NoteTitle.Foreground(p.heading).Bold(true)
		f.Description = f.Description.Foreground(p.hint)
		f.ErrorIndicator = f.ErrorIndicator.Foreground(p.invalid)
		f.ErrorMessage = f.ErrorMessage.Foreground(p.invalid)

		// Priority and project selects
		f.SelectSelector = f.SelectSelector.Foreground(p.chosen)
		f.SelectedOption = f.SelectedOption.Foreground(p.chosen)
		f.SelectedPrefix = f.SelectedPrefix.Foreground(p.chosen)
		f.UnselectedOption = f.UnselectedOption.Foreground(p.text)
		f.UnselectedPrefix = f.UnselectedPrefix.Foreground(p.hint)
		f.NextIndicator = f.NextIndicator.Foreground(p.chosen)
		f.PrevIndicator = f.PrevIndicator.Foreground(p.chosen)

		// Title, due date and tags inputs
		f.TextInput.Cursor = f.TextInput.Cursor.Foreground(p.chosen)
		f.TextInput.Prompt = f.TextInput.Prompt.Foreground(p.chosen)
		f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(p.hint)
		f.TextInput.Text = f.TextInput.Text.Foreground(p.text)

		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(p.hint).Bold(false)

		return t
	})
}
