package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskflow/internal/derive"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

// RenderStats renders the four header cards
//
//	╭──────────╮╭──────────╮╭──────────╮╭──────────╮
//	│ Total    ││ Completed││ Pending  ││ Overdue  │
//	│ 3        ││ 0        ││ 2        ││ 1        │
//	╰──────────╯╰──────────╯╰──────────╯╰──────────╯
func RenderStats(stats derive.Stats, width int) string {
	cards := []struct {
		label string
		value int
		color string
	}{
		{"Total Tasks", stats.Total, theme.Highlight},
		{"Completed", stats.Completed, theme.Create},
		{"Pending", stats.Pending, theme.Edit},
		{"Overdue", stats.Overdue, theme.Delete},
	}

	// Four cards share the width; border and padding take 4 columns each
	cardWidth := max(width/len(cards)-4, 10)

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		value := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.color)).
			Render(fmt.Sprintf("%d", c.value))
		body := lipgloss.JoinVertical(lipgloss.Left, SubtleStyle.Render(c.label), value)
		rendered = append(rendered, StatCardStyle.Width(cardWidth).Render(body))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
